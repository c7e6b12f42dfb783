package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

type Keeper struct {
	logger       log.Logger
	addressCodec address.Codec
	bankKeeper   types.BankKeeper
	router       types.MsgRouter
	admin        types.AdminController
	telemetry    bool

	// state management
	Schema       collections.Schema
	Config       collections.Item[types.Config]
	AdminAddr    collections.Item[string]
	ContractInfo collections.Item[types.ContractInfo]
}

// Option configures optional Keeper collaborators.
type Option func(*Keeper)

// WithAdminController replaces the store backed admin role.
func WithAdminController(c types.AdminController) Option {
	return func(k *Keeper) { k.admin = c }
}

// WithTelemetry enables conversion metrics.
func WithTelemetry(enabled bool) Option {
	return func(k *Keeper) { k.telemetry = enabled }
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	addressCodec address.Codec,
	bankKeeper types.BankKeeper,
	router types.MsgRouter,
	opts ...Option,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger:       logger,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
		router:       router,
		Config: collections.NewItem(
			sb,
			types.ConfigKey,
			"config",
			types.JSONValue[types.Config]()),
		AdminAddr: collections.NewItem(
			sb,
			types.AdminKey,
			"admin",
			collections.StringValue),
		ContractInfo: collections.NewItem(
			sb,
			types.ContractInfoKey,
			"contract_info",
			types.JSONValue[types.ContractInfo]()),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	k.admin = NewStoreAdmin(k.AdminAddr, addressCodec)
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

func (k Keeper) AddressCodec() address.Codec {
	return k.addressCodec
}

// AdminController returns the collaborator owning the admin role.
func (k Keeper) AdminController() types.AdminController {
	return k.admin
}

// ModuleAddress is the account that receives deposits and executes the authz
// grants of the POA admin.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

func (k Keeper) moduleAddressString() (string, error) {
	return k.addressCodec.BytesToString(k.ModuleAddress())
}

// GetConfig loads the stored configuration.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	cfg, err := k.Config.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Config{}, types.ErrNotInstantiated
	}
	if err != nil {
		return types.Config{}, errorsmod.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

func (k Keeper) emit(ctx context.Context, event sdk.Event) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event)
}

func checkNonPayable(funds sdk.Coins) error {
	if !funds.Empty() {
		return errorsmod.Wrapf(types.ErrNonPayable, "got %s", funds)
	}
	return nil
}
