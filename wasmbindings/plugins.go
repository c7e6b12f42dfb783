package wasmbinding

import (
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/manifest-network/manifest-contracts/x/converter/keeper"
)

// RegisterQueryPlugins returns the wasm keeper option exposing the converter
// and the whitelisted chain queries to contracts.
func RegisterQueryPlugins(k keeper.Keeper, queryRouter *baseapp.GRPCQueryRouter, cdc codec.Codec) wasmkeeper.Option {
	return wasmkeeper.WithQueryPlugins(&wasmkeeper.QueryPlugins{
		Custom:   CustomQuerier(keeper.NewQuerier(k)),
		Stargate: StargateQuerier(queryRouter, cdc),
		Grpc:     GrpcQuerier(queryRouter),
	})
}
