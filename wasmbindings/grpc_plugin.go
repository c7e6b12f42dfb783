package wasmbinding

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/gogoproto/proto"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GrpcQuerier answers whitelisted grpc queries with the decoded response.
func GrpcQuerier(queryRouter *baseapp.GRPCQueryRouter) func(ctx sdk.Context, request *wasmvmtypes.GrpcQuery) (proto.Message, error) {
	return func(ctx sdk.Context, request *wasmvmtypes.GrpcQuery) (proto.Message, error) {
		protoResponse, bz, err := routeWhitelisted(ctx, queryRouter, request.Path, request.Data)
		if err != nil {
			return nil, err
		}
		if err := proto.Unmarshal(bz, protoResponse); err != nil {
			return nil, err
		}
		return protoResponse, nil
	}
}
