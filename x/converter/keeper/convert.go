package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

// Convert builds the settlement for converting funds sent by sender. It
// never writes state; executing the settlement is up to the caller.
func (k Keeper) Convert(ctx context.Context, sender string, funds sdk.Coins) (types.Settlement, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Settlement{}, err
	}

	grantee, err := k.moduleAddressString()
	if err != nil {
		return types.Settlement{}, err
	}

	settlement, err := types.BuildConversion(cfg, grantee, sender, funds)
	if err != nil {
		return types.Settlement{}, err
	}

	burned, minted := settlement.Burned, settlement.Minted
	k.emit(ctx, sdk.NewEvent(
		types.EventTypeConvert,
		sdk.NewAttribute(types.AttributeKeyAction, types.EventTypeConvert),
		sdk.NewAttribute(types.AttributeKeyContract, types.ContractName),
		sdk.NewAttribute(types.AttributeKeyVersion, types.ContractVersion),
		sdk.NewAttribute(types.AttributeKeySender, sender),
		sdk.NewAttribute(types.AttributeKeyPoaAdmin, cfg.PoaAdmin),
		sdk.NewAttribute(types.AttributeKeyBurned, burned.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyMinted, minted.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyBurnedDenom, burned.Denom),
		sdk.NewAttribute(types.AttributeKeyMintedDenom, minted.Denom),
		sdk.NewAttribute(types.AttributeKeyAuthzGrantee, grantee),
		sdk.NewAttribute(types.AttributeKeyAuthzMsgCount, strconv.Itoa(len(settlement.Exec.Msgs))),
		sdk.NewAttribute(types.AttributeKeyBurnType, sdk.MsgTypeURL(settlement.Burn)),
		sdk.NewAttribute(types.AttributeKeyMintType, sdk.MsgTypeURL(settlement.Mint)),
	))

	k.logger.Debug("conversion settled", "sender", sender, "burned", burned.String(), "minted", minted.String())

	return settlement, nil
}
