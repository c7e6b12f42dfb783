package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// UpdateConfig applies a partial configuration update sent by the admin.
// Empty and identical updates are answered with a note and write nothing.
func (k Keeper) UpdateConfig(ctx context.Context, msg types.MsgUpdateConfig) (types.MsgUpdateConfigResponse, error) {
	if err := checkNonPayable(msg.Funds); err != nil {
		return types.MsgUpdateConfigResponse{}, err
	}
	if err := k.admin.AssertAdmin(ctx, msg.Sender); err != nil {
		return types.MsgUpdateConfigResponse{}, err
	}

	if msg.Config.IsEmpty() {
		return k.noteConfigUnchanged(ctx, types.NoteEmptyConfig), nil
	}

	current, err := k.GetConfig(ctx)
	if err != nil {
		return types.MsgUpdateConfigResponse{}, err
	}

	if msg.Config.IsNoop(current) {
		return k.noteConfigUnchanged(ctx, types.NoteIdenticalConfig), nil
	}

	next, err := msg.Config.Apply(k.addressCodec, current)
	if err != nil {
		return types.MsgUpdateConfigResponse{}, err
	}

	if err := k.Config.Set(ctx, next); err != nil {
		return types.MsgUpdateConfigResponse{}, err
	}

	k.emit(ctx, sdk.NewEvent(
		types.EventTypeUpdateConfig,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeUpdateConfig),
		sdk.NewAttribute(types.AttributeKeyContract, types.ContractName),
		sdk.NewAttribute(types.AttributeKeyVersion, types.ContractVersion),
		sdk.NewAttribute(types.AttributeKeyPoaAdmin, next.PoaAdmin),
		sdk.NewAttribute(types.AttributeKeyRate, next.Rate.String()),
		sdk.NewAttribute(types.AttributeKeySourceDenom, next.SourceDenom.String()),
		sdk.NewAttribute(types.AttributeKeyTargetDenom, next.TargetDenom.String()),
		sdk.NewAttribute(types.AttributeKeyPaused, strconv.FormatBool(next.Paused)),
	))

	k.logger.Info("converter config updated", "sender", msg.Sender, "rate", next.Rate.String(), "paused", next.Paused)

	return types.MsgUpdateConfigResponse{}, nil
}

func (k Keeper) noteConfigUnchanged(ctx context.Context, note string) types.MsgUpdateConfigResponse {
	k.emit(ctx, sdk.NewEvent(
		types.EventTypeUpdateConfig,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeUpdateConfig),
		sdk.NewAttribute(types.AttributeKeyNote, note),
	))
	return types.MsgUpdateConfigResponse{Note: note}
}

// UpdateAdmin hands the admin role to another address. Renouncing the role is
// not allowed.
func (k Keeper) UpdateAdmin(ctx context.Context, msg types.MsgUpdateAdmin) (types.MsgUpdateAdminResponse, error) {
	if err := checkNonPayable(msg.Funds); err != nil {
		return types.MsgUpdateAdminResponse{}, err
	}
	if err := k.admin.AssertAdmin(ctx, msg.Sender); err != nil {
		return types.MsgUpdateAdminResponse{}, err
	}
	if msg.Admin == nil {
		return types.MsgUpdateAdminResponse{}, types.ErrCannotRenounce
	}

	newAdmin := *msg.Admin
	if err := types.ValidateAddress(k.addressCodec, newAdmin); err != nil {
		return types.MsgUpdateAdminResponse{}, err
	}
	if err := k.admin.SetAdmin(ctx, newAdmin); err != nil {
		return types.MsgUpdateAdminResponse{}, err
	}

	k.emit(ctx, sdk.NewEvent(
		types.EventTypeUpdateAdmin,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeUpdateAdmin),
		sdk.NewAttribute(types.AttributeKeyContract, types.ContractName),
		sdk.NewAttribute(types.AttributeKeyVersion, types.ContractVersion),
		sdk.NewAttribute(types.AttributeKeyOldAdmin, msg.Sender),
		sdk.NewAttribute(types.AttributeKeyNewAdmin, newAdmin),
	))

	k.logger.Info("converter admin updated", "old_admin", msg.Sender, "new_admin", newAdmin)

	return types.MsgUpdateAdminResponse{}, nil
}
