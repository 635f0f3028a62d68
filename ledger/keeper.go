// Package ledger is a minimal balance keeper standing in for the bank module.
// It only knows how to credit, debit and move amounts of a denom.
package ledger

import (
	sdkmath "cosmossdk.io/math"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

const StoreKey = "bank"

var (
	BalancesPrefix = []byte{0x10}
	SupplyPrefix   = []byte{0x11}
)

type Keeper struct {
	store storetypes.KVStore
}

var _ types.BankKeeper = Keeper{}

func NewKeeper(store storetypes.KVStore) Keeper {
	return Keeper{store: store}
}

// balanceKey fails for addresses that cannot be length prefixed; no account can exist under them.
func balanceKey(addr, denom string) ([]byte, error) {
	if addr == "" {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "empty address")
	}
	prefixed, err := address.LengthPrefix([]byte(addr))
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "address of %d bytes, max is %d", len(addr), address.MaxAddrLen)
	}
	key := append(append([]byte{}, BalancesPrefix...), prefixed...)
	return append(key, denom...), nil
}

func supplyKey(denom string) []byte {
	return append(append([]byte{}, SupplyPrefix...), denom...)
}

func (k Keeper) getAmount(key []byte) sdkmath.Int {
	bz := k.store.Get(key)
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	amount, ok := sdkmath.NewIntFromString(string(bz))
	if !ok {
		panic("ledger: corrupt amount under key " + string(key))
	}
	return amount
}

func (k Keeper) setAmount(key []byte, amount sdkmath.Int) {
	if amount.IsZero() {
		k.store.Delete(key)
		return
	}
	k.store.Set(key, []byte(amount.String()))
}

// GetBalance returns the balance of addr in denom, zero when the account never held it.
func (k Keeper) GetBalance(addr, denom string) sdk.Coin {
	key, err := balanceKey(addr, denom)
	if err != nil {
		return sdk.Coin{Denom: denom, Amount: sdkmath.ZeroInt()}
	}
	return sdk.Coin{Denom: denom, Amount: k.getAmount(key)}
}

// GetSupply returns the minted minus burned amount of denom.
func (k Keeper) GetSupply(denom string) sdk.Coin {
	return sdk.Coin{Denom: denom, Amount: k.getAmount(supplyKey(denom))}
}

func (k Keeper) MintCoins(recipient string, amount sdk.Coin) error {
	if err := validateCoin(amount); err != nil {
		return err
	}

	to, err := balanceKey(recipient, amount.Denom)
	if err != nil {
		return err
	}

	k.setAmount(supplyKey(amount.Denom), k.getAmount(supplyKey(amount.Denom)).Add(amount.Amount))
	k.setAmount(to, k.getAmount(to).Add(amount.Amount))
	return nil
}

func (k Keeper) BurnCoins(from string, amount sdk.Coin) error {
	if err := validateCoin(amount); err != nil {
		return err
	}

	fromKey, err := balanceKey(from, amount.Denom)
	if err != nil {
		return err
	}
	balance, err := k.spendable(fromKey, amount)
	if err != nil {
		return err
	}

	k.setAmount(fromKey, balance.Sub(amount.Amount))
	k.setAmount(supplyKey(amount.Denom), k.getAmount(supplyKey(amount.Denom)).Sub(amount.Amount))
	return nil
}

func (k Keeper) SendCoins(from, to string, amount sdk.Coin) error {
	if err := validateCoin(amount); err != nil {
		return err
	}

	fromKey, err := balanceKey(from, amount.Denom)
	if err != nil {
		return err
	}
	toKey, err := balanceKey(to, amount.Denom)
	if err != nil {
		return err
	}
	balance, err := k.spendable(fromKey, amount)
	if err != nil {
		return err
	}

	k.setAmount(fromKey, balance.Sub(amount.Amount))
	k.setAmount(toKey, k.getAmount(toKey).Add(amount.Amount))
	return nil
}

func (k Keeper) spendable(key []byte, amount sdk.Coin) (sdkmath.Int, error) {
	balance := k.getAmount(key)
	if balance.LT(amount.Amount) {
		return balance, sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s%s is smaller than %s", balance, amount.Denom, amount)
	}
	return balance, nil
}

func validateCoin(amount sdk.Coin) error {
	if amount.Amount.IsNil() || amount.Amount.IsNegative() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "%s", amount)
	}
	return nil
}
