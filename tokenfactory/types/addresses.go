package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	mockAddressMinLength = 3
	mockAddressMaxLength = 64
)

// MockAddresses accepts the plain lowercase identities used by test harnesses
// ("creator", "govner", ...).
type MockAddresses struct{}

var _ AddressValidator = MockAddresses{}

func (MockAddresses) ValidateAddress(addr string) error {
	switch {
	case len(addr) < mockAddressMinLength:
		return sdkerrors.Wrapf(ErrInvalidAddress, "human address too short for this mock implementation (must be >= %d)", mockAddressMinLength)
	case len(addr) > mockAddressMaxLength:
		return sdkerrors.Wrapf(ErrInvalidAddress, "human address too long for this mock implementation (must be <= %d)", mockAddressMaxLength)
	case strings.ToLower(addr) != addr:
		return sdkerrors.Wrapf(ErrInvalidAddress, "address %s must be lowercase", addr)
	}
	return nil
}

// Bech32Addresses accepts bech32 account addresses with the configured human readable prefix.
type Bech32Addresses struct {
	Prefix string
}

var _ AddressValidator = Bech32Addresses{}

func (b Bech32Addresses) ValidateAddress(addr string) error {
	bz, err := sdk.GetFromBech32(addr, b.Prefix)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "address from bech32: %s", err)
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "verify address format: %s", err)
	}
	return nil
}
