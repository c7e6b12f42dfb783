package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func TestUpdateConfig(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)

	res, err := f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{
		Sender: adminAddr,
		Config: types.UpdateConfig{Rate: ptr("0.75"), Paused: ptr(true)},
	})
	require.NoError(t, err)
	require.Empty(t, res.Note)

	cfg, err := f.k.GetConfig(f.ctx)
	require.NoError(t, err)
	require.Equal(t, "0.75", cfg.Rate.String())
	require.True(t, cfg.Paused)
	require.Equal(t, poaAddr, cfg.PoaAdmin)

	attrs, ok := findEvent(f.ctx.EventManager().Events(), types.EventTypeUpdateConfig)
	require.True(t, ok)
	require.Equal(t, "0.75", attrs[types.AttributeKeyRate])
	require.Equal(t, "true", attrs[types.AttributeKeyPaused])
	require.Equal(t, poaAddr, attrs[types.AttributeKeyPoaAdmin])
	require.Equal(t, types.DefaultSourceDenom, attrs[types.AttributeKeySourceDenom])
	require.Equal(t, types.DefaultTargetDenom, attrs[types.AttributeKeyTargetDenom])
}

func TestUpdateConfigNotes(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)

	res, err := f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{Sender: adminAddr})
	require.NoError(t, err)
	require.Equal(t, types.NoteEmptyConfig, res.Note)

	res, err = f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{
		Sender: adminAddr,
		Config: types.UpdateConfig{
			PoaAdmin:    ptr(poaAddr),
			Rate:        ptr("0.5"),
			SourceDenom: ptr(types.DefaultSourceDenom),
			TargetDenom: ptr(types.DefaultTargetDenom),
			Paused:      ptr(false),
		},
	})
	require.NoError(t, err)
	require.Equal(t, types.NoteIdenticalConfig, res.Note)

	attrs, ok := findEvent(f.ctx.EventManager().Events(), types.EventTypeUpdateConfig)
	require.True(t, ok)
	require.Equal(t, types.NoteEmptyConfig, attrs[types.AttributeKeyNote])
}

func TestUpdateConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		msg  types.MsgUpdateConfig
		err  error
	}{
		{
			name: "not admin",
			msg:  types.MsgUpdateConfig{Sender: callerAddr, Config: types.UpdateConfig{Paused: ptr(true)}},
			err:  types.ErrNotAdmin,
		},
		{
			name: "not admin with empty update",
			msg:  types.MsgUpdateConfig{Sender: callerAddr},
			err:  types.ErrNotAdmin,
		},
		{
			name: "funds attached",
			msg: types.MsgUpdateConfig{
				Sender: adminAddr,
				Funds:  sdk.NewCoins(sdk.NewInt64Coin("umfx", 1)),
				Config: types.UpdateConfig{Paused: ptr(true)},
			},
			err: types.ErrNonPayable,
		},
		{
			name: "same denom",
			msg:  types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{TargetDenom: ptr(types.DefaultSourceDenom)}},
			err:  types.ErrSameDenom,
		},
		{
			name: "invalid rate",
			msg:  types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{Rate: ptr("0.0000000000000000001")}},
			err:  types.ErrInvalidRateParsing,
		},
		{
			name: "valid field before invalid one",
			msg: types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{
				Paused:      ptr(true),
				SourceDenom: ptr("ibc/xyz"),
			}},
			err: types.ErrInvalidIbcDenomFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := SetupTest(t)
			f.instantiate(t)

			before, err := f.k.GetConfig(f.ctx)
			require.NoError(t, err)

			_, err = f.k.UpdateConfig(f.ctx, tc.msg)
			require.ErrorIs(t, err, tc.err)

			after, err := f.k.GetConfig(f.ctx)
			require.NoError(t, err)
			require.Equal(t, before.Rate.String(), after.Rate.String())
			require.Equal(t, before.Paused, after.Paused)
			require.Equal(t, before.SourceDenom, after.SourceDenom)
			require.Equal(t, before.TargetDenom, after.TargetDenom)
		})
	}
}

func TestUpdateConfigBeforeInstantiate(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{Paused: ptr(true)}})
	require.ErrorIs(t, err, types.ErrNotAdmin)
}

func TestUpdateAdmin(t *testing.T) {
	f := SetupTest(t)
	f.instantiate(t)

	_, err := f.k.UpdateAdmin(f.ctx, types.MsgUpdateAdmin{Sender: callerAddr, Admin: ptr(callerAddr)})
	require.ErrorIs(t, err, types.ErrNotAdmin)

	_, err = f.k.UpdateAdmin(f.ctx, types.MsgUpdateAdmin{Sender: adminAddr})
	require.ErrorIs(t, err, types.ErrCannotRenounce)

	_, err = f.k.UpdateAdmin(f.ctx, types.MsgUpdateAdmin{Sender: adminAddr, Admin: ptr("invalid")})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = f.k.UpdateAdmin(f.ctx, types.MsgUpdateAdmin{
		Sender: adminAddr,
		Funds:  sdk.NewCoins(sdk.NewInt64Coin("umfx", 1)),
		Admin:  ptr(callerAddr),
	})
	require.ErrorIs(t, err, types.ErrNonPayable)

	_, err = f.k.UpdateAdmin(f.ctx, types.MsgUpdateAdmin{Sender: adminAddr, Admin: ptr(callerAddr)})
	require.NoError(t, err)

	admin, err := f.queryServer.Admin(f.ctx)
	require.NoError(t, err)
	require.Equal(t, callerAddr, *admin.Admin)

	attrs, ok := findEvent(f.ctx.EventManager().Events(), types.EventTypeUpdateAdmin)
	require.True(t, ok)
	require.Equal(t, adminAddr, attrs[types.AttributeKeyOldAdmin])
	require.Equal(t, callerAddr, attrs[types.AttributeKeyNewAdmin])

	// the previous admin lost its rights
	_, err = f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{Sender: adminAddr, Config: types.UpdateConfig{Paused: ptr(true)}})
	require.ErrorIs(t, err, types.ErrNotAdmin)

	_, err = f.k.UpdateConfig(f.ctx, types.MsgUpdateConfig{Sender: callerAddr, Config: types.UpdateConfig{Paused: ptr(true)}})
	require.NoError(t, err)
}
