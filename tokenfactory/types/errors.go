package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/tokenfactory registry errors
var (
	ErrInvalidDenom     = sdkerrors.Register(ModuleName, 2, "invalid denom")
	ErrDenomExists      = sdkerrors.Register(ModuleName, 3, "attempting to create a denom that already exists")
	ErrUnknownDenom     = sdkerrors.Register(ModuleName, 4, "denom was never created")
	ErrNotAdmin         = sdkerrors.Register(ModuleName, 5, "not admin of token, cannot perform action")
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 6, "invalid address")
	ErrZeroAmount       = sdkerrors.Register(ModuleName, 7, "amount must be greater than zero")
	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 8, "invalid amount")
	ErrUnimplemented    = sdkerrors.Register(ModuleName, 9, "not implemented")
	ErrInvalidMetadata  = sdkerrors.Register(ModuleName, 10, "invalid denom metadata")
	ErrUnknownRequest   = sdkerrors.Register(ModuleName, 11, "unknown request")
	ErrInvalidGenesis   = sdkerrors.Register(ModuleName, 12, "invalid genesis state")
	ErrFieldMismatch    = sdkerrors.Register(ModuleName, 20, "unexpected protobuf field number")
	ErrWireTypeMismatch = sdkerrors.Register(ModuleName, 21, "unexpected protobuf wire type")
	ErrVarintTooShort   = sdkerrors.Register(ModuleName, 22, "varint data too short")
	ErrVarintTooLong    = sdkerrors.Register(ModuleName, 23, "varint data too long")
	ErrPayloadTooShort  = sdkerrors.Register(ModuleName, 24, "message too short")
	ErrInvalidUtf8      = sdkerrors.Register(ModuleName, 25, "invalid utf-8 payload")
)

// InvalidDenomError carries the offending denom and why it was rejected.
// errors.Is(err, ErrInvalidDenom) holds for every InvalidDenomError.
type InvalidDenomError struct {
	Denom  string
	Reason string
}

func (e *InvalidDenomError) Error() string {
	return fmt.Sprintf("invalid denom '%s': %s", e.Denom, e.Reason)
}

func (e *InvalidDenomError) Unwrap() error {
	return ErrInvalidDenom
}

func invalidDenom(denom string, format string, args ...interface{}) error {
	return &InvalidDenomError{Denom: denom, Reason: fmt.Sprintf(format, args...)}
}
