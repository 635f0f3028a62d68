package types

import (
	"unicode/utf8"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	// CreateDenomReplyField holds the new denom in a create denom reply
	CreateDenomReplyField = 1

	wireTypeLengthDelimited = 2
	varintMaxBytes          = 9
)

// EncodeCreateDenomReply encodes the reply of a successful create denom: a single
// length-delimited field 1 holding the denom.
func EncodeCreateDenomReply(denom string) []byte {
	bz := protowire.AppendTag(nil, CreateDenomReplyField, protowire.BytesType)
	return protowire.AppendString(bz, denom)
}

// ParseCreateDenomReply recovers the created denom from a create denom reply payload.
func ParseCreateDenomReply(data []byte) (string, error) {
	return DecodeStringField(data, CreateDenomReplyField)
}

// DecodeStringField reads one length-delimited string field from the start of data.
// An empty buffer decodes to the empty string. Bytes after the field are ignored.
func DecodeStringField(data []byte, fieldNumber uint8) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	tag := data[0]
	wireType := tag & 0b11
	field := tag >> 3
	if field != fieldNumber {
		return "", sdkerrors.Wrapf(ErrFieldMismatch, "invalid field: %d != %d", field, fieldNumber)
	}
	if wireType != wireTypeLengthDelimited {
		return "", sdkerrors.Wrapf(ErrWireTypeMismatch, "field #%d: invalid wire type %d != %d", fieldNumber, wireType, wireTypeLengthDelimited)
	}

	length, n, err := decodeVarint(data[1:], fieldNumber)
	if err != nil {
		return "", err
	}

	rest := data[1+n:]
	if uint64(len(rest)) < length {
		return "", sdkerrors.Wrapf(ErrPayloadTooShort, "field #%d: need %d bytes, have %d", fieldNumber, length, len(rest))
	}

	payload := rest[:length]
	if !utf8.Valid(payload) {
		return "", sdkerrors.Wrapf(ErrInvalidUtf8, "field #%d", fieldNumber)
	}
	return string(payload), nil
}

// decodeVarint returns the value and the number of bytes it occupied.
func decodeVarint(data []byte, fieldNumber uint8) (uint64, int, error) {
	var value uint64
	for i := 0; i < varintMaxBytes; i++ {
		if i == len(data) {
			return 0, 0, sdkerrors.Wrapf(ErrVarintTooShort, "field #%d", fieldNumber)
		}
		value |= uint64(data[i]&0x7f) << (7 * i)
		if data[i]&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	return 0, 0, sdkerrors.Wrapf(ErrVarintTooLong, "field #%d", fieldNumber)
}
