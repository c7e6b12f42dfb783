package keeper

import (
	"context"

	"github.com/hashicorp/go-metrics"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the handler for converter messages. It executes
// settlements on the host: deposits are pulled from the sender and every
// settlement message is routed in order, all-or-nothing.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) Instantiate(goCtx context.Context, msg *types.MsgInstantiate) (*types.MsgInstantiateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	res, err := k.Keeper.Instantiate(goCtx, *msg)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (k msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	res, err := k.Keeper.UpdateConfig(goCtx, *msg)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (k msgServer) UpdateAdmin(goCtx context.Context, msg *types.MsgUpdateAdmin) (*types.MsgUpdateAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	res, err := k.Keeper.UpdateAdmin(goCtx, *msg)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (k msgServer) Convert(goCtx context.Context, msg *types.MsgConvert) (*types.MsgConvertResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	sender, err := k.addressCodec.StringToBytes(msg.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}

	cacheCtx, write := ctx.CacheContext()

	settlement, err := k.Keeper.Convert(cacheCtx, msg.Sender, msg.Funds)
	if err != nil {
		return nil, err
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, sender, types.ModuleName, msg.Funds); err != nil {
		return nil, errorsmod.Wrap(err, "failed to deposit funds")
	}

	for _, m := range settlement.Msgs() {
		if err := k.dispatch(cacheCtx, m); err != nil {
			return nil, err
		}
	}

	write()

	burned, minted := settlement.Burned, settlement.Minted
	if k.telemetry {
		defer func() {
			for _, c := range []sdk.Coin{burned, minted} {
				if c.Amount.IsInt64() {
					telemetry.IncrCounterWithLabels(
						[]string{types.ModuleName, "convert", "volume"},
						float32(c.Amount.Int64()),
						[]metrics.Label{telemetry.NewLabel("denom", c.Denom)},
					)
				}
			}
		}()
	}

	return &types.MsgConvertResponse{Burned: burned, Minted: minted}, nil
}

func (k msgServer) dispatch(ctx sdk.Context, msg sdk.Msg) error {
	handler := k.router.Handler(msg)
	if handler == nil {
		return errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message route: %s", sdk.MsgTypeURL(msg))
	}

	res, err := handler(ctx, msg)
	if err != nil {
		return errorsmod.Wrapf(err, "failed to execute %s", sdk.MsgTypeURL(msg))
	}

	for _, event := range res.GetEvents() {
		ctx.EventManager().EmitEvent(sdk.Event(event))
	}
	return nil
}
