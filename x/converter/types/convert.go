package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BuildConversion runs the conversion of funds by caller against cfg and
// returns the settlement the host must execute. It reads and writes nothing.
func BuildConversion(cfg Config, grantee, caller string, funds sdk.Coins) (Settlement, error) {
	if cfg.Paused {
		return Settlement{}, ErrPaused
	}

	if len(funds) != 1 {
		return Settlement{}, errorsmod.Wrapf(ErrInvalidFunds, "expected exactly one coin, got %d", len(funds))
	}
	coin := funds[0]

	if coin.Denom != cfg.SourceDenom.String() {
		return Settlement{}, errorsmod.Wrapf(ErrInvalidSourceDenom, "expected %s, got %s", cfg.SourceDenom, coin.Denom)
	}

	if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
		return Settlement{}, ErrAmountIsZero
	}

	minted, err := cfg.Rate.ApplyTo(math.NewUintFromBigInt(coin.Amount.BigInt()))
	if err != nil {
		return Settlement{}, err
	}

	return NewSettlement(grantee, cfg.PoaAdmin, caller, coin, sdk.Coin{
		Denom:  cfg.TargetDenom.String(),
		Amount: math.NewIntFromBigInt(minted.BigInt()),
	})
}
