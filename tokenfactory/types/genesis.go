package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

type GenesisDenom struct {
	Denom             string                 `json:"denom"`
	AuthorityMetadata DenomAuthorityMetadata `json:"authority_metadata"`
	Metadata          *Metadata              `json:"metadata,omitempty"`
}

// GenesisState is the full registry content, denoms listed in creator order.
type GenesisState struct {
	FactoryDenoms []GenesisDenom `json:"factory_denoms"`
}

// DefaultGenesis returns the default tokenfactory genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		FactoryDenoms: []GenesisDenom{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seenDenoms := map[string]bool{}

	for _, denom := range gs.FactoryDenoms {
		canonical, err := ValidateFullDenom(denom.Denom, nil)
		if err != nil {
			return err
		}
		if canonical != denom.Denom {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "denom %s is not in canonical form %s", denom.Denom, canonical)
		}
		if seenDenoms[denom.Denom] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate denom: %s", denom.Denom)
		}
		seenDenoms[denom.Denom] = true

		if denom.Metadata != nil {
			if _, err := denom.Metadata.ForDenom(denom.Denom); err != nil {
				return err
			}
		}
	}

	return nil
}
