package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// Migrate moves the stored state to ContractVersion.
func (k Keeper) Migrate(ctx context.Context) (types.MsgMigrateResponse, error) {
	stored, err := k.ContractInfo.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.MsgMigrateResponse{}, types.ErrNotInstantiated
	}
	if err != nil {
		return types.MsgMigrateResponse{}, err
	}

	if stored.Contract != types.ContractName {
		return types.MsgMigrateResponse{}, types.ErrInvalidContractName
	}

	if stored.Version == types.ContractVersion {
		k.emit(ctx, sdk.NewEvent(
			types.EventTypeMigrate,
			sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeMigrate),
			sdk.NewAttribute(types.AttributeKeyNote, types.NoteLatestVersion),
			sdk.NewAttribute(types.AttributeKeyVersion, types.ContractVersion),
		))
		return types.MsgMigrateResponse{Note: types.NoteLatestVersion}, nil
	}

	if err := k.ContractInfo.Set(ctx, types.ContractInfo{Contract: types.ContractName, Version: types.ContractVersion}); err != nil {
		return types.MsgMigrateResponse{}, err
	}

	k.emit(ctx, sdk.NewEvent(
		types.EventTypeMigrate,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeMigrate),
		sdk.NewAttribute(types.AttributeKeyContract, types.ContractName),
		sdk.NewAttribute(types.AttributeKeyFromVersion, stored.Version),
		sdk.NewAttribute(types.AttributeKeyToVersion, types.ContractVersion),
	))

	k.logger.Info("converter migrated", "from_version", stored.Version, "to_version", types.ContractVersion)

	return types.MsgMigrateResponse{FromVersion: stored.Version, ToVersion: types.ContractVersion}, nil
}

// Migrator registers store migrations with the module configurator.
type Migrator struct {
	keeper Keeper
}

func NewMigrator(k Keeper) Migrator {
	return Migrator{keeper: k}
}

// Migrate1to2 bumps the recorded contract version.
func (m Migrator) Migrate1to2(ctx sdk.Context) error {
	_, err := m.keeper.Migrate(ctx)
	if errors.Is(err, types.ErrNotInstantiated) {
		return nil
	}
	return err
}
