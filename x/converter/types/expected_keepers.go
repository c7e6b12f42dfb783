package types // noalias

import (
	"context"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper moves the deposit into the module account.
type BankKeeper interface {
	SendCoinsFromAccountToModule(
		ctx context.Context,
		senderAddr sdk.AccAddress,
		recipientModule string,
		amt sdk.Coins,
	) error
}

// MsgRouter dispatches settlement messages, baseapp.MsgServiceRouter
// satisfies it.
type MsgRouter interface {
	Handler(msg sdk.Msg) baseapp.MsgServiceHandler
}

// AdminController owns the admin role of the converter.
type AdminController interface {
	Admin(ctx context.Context) (string, bool, error)
	AssertAdmin(ctx context.Context, caller string) error
	SetAdmin(ctx context.Context, admin string) error
}
