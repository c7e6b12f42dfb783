package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// Instantiate validates msg and stores the initial configuration, admin and
// contract info. Nothing is written when validation fails.
func (k Keeper) Instantiate(ctx context.Context, msg types.MsgInstantiate) (types.MsgInstantiateResponse, error) {
	if err := checkNonPayable(msg.Funds); err != nil {
		return types.MsgInstantiateResponse{}, err
	}

	exists, err := k.Config.Has(ctx)
	if err != nil {
		return types.MsgInstantiateResponse{}, err
	}
	if exists {
		return types.MsgInstantiateResponse{}, types.ErrAlreadyInstantiated
	}

	if err := types.ValidateAddress(k.addressCodec, msg.Admin); err != nil {
		return types.MsgInstantiateResponse{}, err
	}

	cfg, err := types.NewConfig(k.addressCodec, msg.PoaAdmin, msg.Rate, msg.SourceDenom, msg.TargetDenom, msg.Paused)
	if err != nil {
		return types.MsgInstantiateResponse{}, err
	}

	if err := k.ContractInfo.Set(ctx, types.ContractInfo{Contract: types.ContractName, Version: types.ContractVersion}); err != nil {
		return types.MsgInstantiateResponse{}, err
	}
	if err := k.Config.Set(ctx, cfg); err != nil {
		return types.MsgInstantiateResponse{}, err
	}
	if err := k.admin.SetAdmin(ctx, msg.Admin); err != nil {
		return types.MsgInstantiateResponse{}, err
	}

	k.emit(ctx, sdk.NewEvent(
		types.EventTypeInstantiate,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeInstantiate),
		sdk.NewAttribute(types.AttributeKeyContract, types.ContractName),
		sdk.NewAttribute(types.AttributeKeyVersion, types.ContractVersion),
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
		sdk.NewAttribute(types.AttributeKeyPoaAdmin, cfg.PoaAdmin),
		sdk.NewAttribute(types.AttributeKeyRate, cfg.Rate.String()),
		sdk.NewAttribute(types.AttributeKeySourceDenom, cfg.SourceDenom.String()),
		sdk.NewAttribute(types.AttributeKeyTargetDenom, cfg.TargetDenom.String()),
		sdk.NewAttribute(types.AttributeKeyPaused, strconv.FormatBool(cfg.Paused)),
	))

	k.logger.Info("converter instantiated", "admin", msg.Admin, "rate", cfg.Rate.String(),
		"source_denom", cfg.SourceDenom.String(), "target_denom", cfg.TargetDenom.String())

	return types.MsgInstantiateResponse{}, nil
}
