package types

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	MinDenomLength        = 3
	MaxDenomLength        = 128
	MaxSubdenomLength     = 44
	MaxCreatorLength      = 75
	CrossChainDenomPrefix = "ibc/"
)

// GetTokenDenom constructs a denom string for tokens created by tokenfactory
// based on an input creator address and a subdenom
// The denom constructed is factory/{creator}/{subdenom}
func GetTokenDenom(creator, subdenom string) (string, error) {
	denom := strings.Join([]string{ModuleDenomPrefix, creator, subdenom}, "/")

	if len(denom) < MinDenomLength || len(denom) > MaxDenomLength {
		return "", invalidDenom(denom, "length must be between %d and %d, was %d", MinDenomLength, MaxDenomLength, len(denom))
	}
	if strings.Contains(creator, "/") {
		return "", invalidDenom(denom, "creator address cannot contain '/'")
	}
	if len(subdenom) > MaxSubdenomLength {
		return "", invalidDenom(denom, "subdenom too long, max length is %d bytes", MaxSubdenomLength)
	}
	if len(creator) > MaxCreatorLength {
		return "", invalidDenom(denom, "creator too long, max length is %d bytes", MaxCreatorLength)
	}
	return denom, nil
}

// FullDenomLookup resolves a (creator, subdenom) pair to its full denom
type FullDenomLookup func(creator, subdenom string) (string, error)

// ValidateFullDenom checks an already assembled denom string and returns its canonical form.
// The prefix is matched case-insensitively; the returned denom is the one the lookup
// produced, so "FACTORY/a/b" and "factory/a/b" address the same registry entry.
func ValidateFullDenom(denom string, lookup FullDenomLookup) (string, error) {
	if strings.HasPrefix(strings.ToLower(denom), CrossChainDenomPrefix) {
		return "", sdkerrors.Wrapf(ErrUnimplemented, "cross-chain denom %s", denom)
	}

	parts := strings.Split(denom, "/")
	if len(parts) != 3 {
		return "", invalidDenom(denom, "denom must have 3 parts separated by /, had %d", len(parts))
	}

	prefix, creator, subdenom := parts[0], parts[1], parts[2]
	if !strings.EqualFold(prefix, ModuleDenomPrefix) {
		return "", invalidDenom(denom, "prefix must be '%s', was %s", ModuleDenomPrefix, prefix)
	}

	if lookup == nil {
		lookup = GetTokenDenom
	}
	canonical, err := lookup(creator, subdenom)
	if err != nil {
		return "", invalidDenom(denom, "%s", err.Error())
	}
	return canonical, nil
}

// DeconstructDenom takes a token denom string and verifies that it is a valid
// denom of the tokenfactory module, then returns its creator and subdenom.
func DeconstructDenom(denom string) (creator string, subdenom string, err error) {
	canonical, err := ValidateFullDenom(denom, nil)
	if err != nil {
		return "", "", err
	}
	parts := strings.Split(canonical, "/")
	return parts[1], parts[2], nil
}
