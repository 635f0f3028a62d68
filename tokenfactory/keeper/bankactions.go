package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// MintTokens credits amount of denom to recipient. Only the admin of denom may mint.
func (k Keeper) MintTokens(sender, denom string, amount sdkmath.Int, recipient string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	denom, err := k.authorize(sender, denom)
	if err != nil {
		return err
	}

	if err := k.addresses.ValidateAddress(recipient); err != nil {
		return err
	}

	if err := k.bankKeeper.MintCoins(recipient, sdk.Coin{Denom: denom, Amount: amount}); err != nil {
		return err
	}

	config.Log.ZDebug().Str("denom", denom).Str("amount", amount.String()).Str("recipient", recipient).Msg("minted tokens")
	return nil
}

// BurnTokens debits amount of denom from the admin. burnFrom must be empty or the admin itself;
// burning from any other account is not supported.
func (k Keeper) BurnTokens(sender, denom string, amount sdkmath.Int, burnFrom string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	denom, err := k.authorize(sender, denom)
	if err != nil {
		return err
	}

	if burnFrom != "" && burnFrom != sender {
		return sdkerrors.Wrapf(types.ErrUnimplemented, "burning from %s, burn from address must be the admin", burnFrom)
	}

	if err := k.bankKeeper.BurnCoins(sender, sdk.Coin{Denom: denom, Amount: amount}); err != nil {
		return err
	}

	config.Log.ZDebug().Str("denom", denom).Str("amount", amount.String()).Str("burn_from", sender).Msg("burned tokens")
	return nil
}

// ForceTransfer moves amount of denom from fromAddr to toAddr without the owner's consent.
// Only the admin of denom may do this.
func (k Keeper) ForceTransfer(sender, denom string, amount sdkmath.Int, fromAddr, toAddr string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	denom, err := k.authorize(sender, denom)
	if err != nil {
		return err
	}

	if err := k.addresses.ValidateAddress(fromAddr); err != nil {
		return err
	}
	if err := k.addresses.ValidateAddress(toAddr); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoins(fromAddr, toAddr, sdk.Coin{Denom: denom, Amount: amount}); err != nil {
		return err
	}

	config.Log.ZDebug().Str("denom", denom).Str("amount", amount.String()).Str("from", fromAddr).Str("to", toAddr).Msg("force transferred tokens")
	return nil
}

func validateAmount(amount sdkmath.Int) error {
	if amount.IsNil() || amount.IsZero() {
		return types.ErrZeroAmount
	}
	if amount.IsNegative() {
		return sdkerrors.Wrapf(types.ErrInvalidAmount, "negative amount %s", amount)
	}
	return nil
}
