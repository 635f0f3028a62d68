package util

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToDisplayAmount shifts a base-unit amount by exponent decimal places.
func ToDisplayAmount(i *big.Int, exponent uint32) decimal.Decimal {
	return decimal.NewFromBigInt(i, -int32(exponent))
}

// StrNotSet will return true if the string value provided is empty
func StrNotSet(value string) bool {
	return len(value) == 0
}
