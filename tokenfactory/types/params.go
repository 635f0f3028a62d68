package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params would carry the denom creation fee. Fee charging is not modeled, so the
// params query reports ErrUnimplemented instead of returning a default.
type Params struct {
	DenomCreationFee sdk.Coins `json:"denom_creation_fee"`
}
