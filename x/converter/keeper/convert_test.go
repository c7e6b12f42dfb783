package keeper_test

import (
	"testing"

	manifesttypes "github.com/liftedinit/manifest-ledger/x/manifest/types"
	"github.com/stretchr/testify/require"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func TestConvert(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)

	settlement, err := f.k.Convert(f.ctx, callerAddr, sdk.NewCoins(sdk.NewInt64Coin("umfx", 1000)))
	require.NoError(t, err)

	msgs := settlement.Msgs()
	require.Len(t, msgs, 2)

	send := msgs[0].(*banktypes.MsgSend)
	require.Equal(t, f.moduleAddr, send.FromAddress)
	require.Equal(t, poaAddr, send.ToAddress)
	require.Equal(t, "1000umfx", send.Amount.String())

	exec := msgs[1].(*authz.MsgExec)
	require.Equal(t, f.moduleAddr, exec.Grantee)
	require.Len(t, exec.Msgs, 2)
	require.Equal(t, "500"+types.DefaultTargetDenom, settlement.Mint.Amount.String())
	require.Equal(t, callerAddr, settlement.Mint.MintToAddress)

	attrs, ok := findEvent(f.ctx.EventManager().Events(), types.EventTypeConvert)
	require.True(t, ok)
	require.Equal(t, callerAddr, attrs[types.AttributeKeySender])
	require.Equal(t, poaAddr, attrs[types.AttributeKeyPoaAdmin])
	require.Equal(t, "1000", attrs[types.AttributeKeyBurned])
	require.Equal(t, "500", attrs[types.AttributeKeyMinted])
	require.Equal(t, types.DefaultSourceDenom, attrs[types.AttributeKeyBurnedDenom])
	require.Equal(t, types.DefaultTargetDenom, attrs[types.AttributeKeyMintedDenom])
	require.Equal(t, f.moduleAddr, attrs[types.AttributeKeyAuthzGrantee])
	require.Equal(t, "2", attrs[types.AttributeKeyAuthzMsgCount])
	require.Equal(t, sdk.MsgTypeURL(&manifesttypes.MsgBurnHeldBalance{}), attrs[types.AttributeKeyBurnType])
	require.Equal(t, sdk.MsgTypeURL(&tokenfactorytypes.MsgMint{}), attrs[types.AttributeKeyMintType])
}

func TestConvertRejects(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.Convert(f.ctx, callerAddr, sdk.NewCoins(sdk.NewInt64Coin("umfx", 1000)))
	require.ErrorIs(t, err, types.ErrNotInstantiated)

	f.instantiate(t)

	_, err = f.k.Convert(f.ctx, callerAddr, nil)
	require.ErrorIs(t, err, types.ErrInvalidFunds)

	_, err = f.k.Convert(f.ctx, callerAddr, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)))
	require.ErrorIs(t, err, types.ErrInvalidSourceDenom)

	_, err = f.k.Convert(f.ctx, callerAddr, sdk.NewCoins(sdk.NewInt64Coin("umfx", 1)))
	require.ErrorIs(t, err, types.ErrApplyZero)

	_, err = f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{Paused: ptr(true)}})
	require.NoError(t, err)

	settlement, err := f.k.Convert(f.ctx, callerAddr, sdk.NewCoins(sdk.NewInt64Coin("umfx", 1000)))
	require.ErrorIs(t, err, types.ErrPaused)
	require.Empty(t, settlement.Msgs())

	_, ok := findEvent(f.ctx.EventManager().Events(), types.EventTypeConvert)
	require.False(t, ok)
}
