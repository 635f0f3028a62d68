package types

import (
	"encoding/binary"

	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is also the error codespace
	ModuleName = "tokenfactory"

	// StoreKey prefixes every registry key when the registry shares a store with other modules
	StoreKey = ModuleName

	ModuleDenomPrefix = "factory"
)

var (
	DenomAuthorityPrefix = []byte{0x01}
	DenomMetadataPrefix  = []byte{0x02}
	CreatorDenomsPrefix  = []byte{0x03}
	CreatorCountPrefix   = []byte{0x04}
)

// GetDenomAuthorityKey is the admin record key of a denom
func GetDenomAuthorityKey(denom string) []byte {
	return append(append([]byte{}, DenomAuthorityPrefix...), lengthPrefix(denom)...)
}

func GetDenomMetadataKey(denom string) []byte {
	return append(append([]byte{}, DenomMetadataPrefix...), lengthPrefix(denom)...)
}

// GetCreatorPrefix is the prefix under which a creator's denoms are stored by sequence number.
// Length prefixing the creator keeps one creator's range from covering another's.
func GetCreatorPrefix(creator string) []byte {
	return append(append([]byte{}, CreatorDenomsPrefix...), lengthPrefix(creator)...)
}

func GetCreatorDenomKey(creator string, seq uint64) []byte {
	return binary.BigEndian.AppendUint64(GetCreatorPrefix(creator), seq)
}

func GetCreatorCountKey(creator string) []byte {
	return append(append([]byte{}, CreatorCountPrefix...), lengthPrefix(creator)...)
}

// lengthPrefix also prefixes the empty string, which address.MustLengthPrefix leaves bare.
// Callers keep components within address.MaxAddrLen.
func lengthPrefix(component string) []byte {
	if component == "" {
		return []byte{0}
	}
	return address.MustLengthPrefix([]byte(component))
}
