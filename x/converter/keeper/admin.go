package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

var _ types.AdminController = StoreAdmin{}

// StoreAdmin keeps the admin address in a collections item.
type StoreAdmin struct {
	item         collections.Item[string]
	addressCodec address.Codec
}

func NewStoreAdmin(item collections.Item[string], addressCodec address.Codec) StoreAdmin {
	return StoreAdmin{item: item, addressCodec: addressCodec}
}

// Admin returns the admin address and whether one is set.
func (a StoreAdmin) Admin(ctx context.Context) (string, bool, error) {
	admin, err := a.item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return admin, true, nil
}

func (a StoreAdmin) AssertAdmin(ctx context.Context, caller string) error {
	admin, ok, err := a.Admin(ctx)
	if err != nil {
		return err
	}
	if !ok || admin != caller {
		return types.ErrNotAdmin
	}
	return nil
}

func (a StoreAdmin) SetAdmin(ctx context.Context, admin string) error {
	if err := types.ValidateAddress(a.addressCodec, admin); err != nil {
		return err
	}
	return a.item.Set(ctx, admin)
}
