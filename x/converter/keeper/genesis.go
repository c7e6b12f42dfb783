package keeper

import (
	"context"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if data.Config == nil {
		return nil
	}
	if err := types.ValidateAddress(k.addressCodec, data.Admin); err != nil {
		return err
	}
	if err := types.ValidateAddress(k.addressCodec, data.Config.PoaAdmin); err != nil {
		return err
	}

	info := types.ContractInfo{Contract: types.ContractName, Version: types.ContractVersion}
	if data.ContractInfo != nil {
		info = *data.ContractInfo
	}
	if err := k.ContractInfo.Set(ctx, info); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, *data.Config); err != nil {
		return err
	}
	return k.admin.SetAdmin(ctx, data.Admin)
}

// ExportGenesis exports the module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	has, err := k.Config.Has(ctx)
	if err != nil {
		return nil, err
	}
	if !has {
		return types.DefaultGenesisState(), nil
	}

	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	info, err := k.ContractInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	admin, _, err := k.admin.Admin(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Admin:        admin,
		Config:       &cfg,
		ContractInfo: &info,
	}, nil
}
