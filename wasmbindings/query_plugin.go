package wasmbinding

import (
	"encoding/json"
	"fmt"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/cosmos/gogoproto/proto"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manifest-network/manifest-contracts/x/converter/keeper"
)

// ConverterQuery is the custom query envelope contracts send,
// e.g. {"converter":{"config":{}}}.
type ConverterQuery struct {
	Converter json.RawMessage `json:"converter,omitempty"`
}

// CustomQuerier answers converter queries sent by contracts.
func CustomQuerier(q keeper.Querier) func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
	return func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
		var query ConverterQuery
		if err := json.Unmarshal(request, &query); err != nil {
			return nil, wasmvmtypes.InvalidRequest{Err: err.Error(), Request: request}
		}
		if query.Converter == nil {
			return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown custom query variant"}
		}

		bz, err := q.Query(ctx, query.Converter)
		if err != nil {
			return nil, wasmvmtypes.UnsupportedRequest{Kind: err.Error()}
		}
		return bz, nil
	}
}

// StargateQuerier answers whitelisted stargate queries with the JSON form of
// the response, which contracts decode without protobuf support.
func StargateQuerier(queryRouter *baseapp.GRPCQueryRouter, cdc codec.Codec) func(ctx sdk.Context, request *wasmvmtypes.StargateQuery) ([]byte, error) {
	return func(ctx sdk.Context, request *wasmvmtypes.StargateQuery) ([]byte, error) {
		protoResponseType, bz, err := routeWhitelisted(ctx, queryRouter, request.Path, request.Data)
		if err != nil {
			return nil, err
		}
		return ConvertProtoToJSONMarshal(protoResponseType, bz, cdc)
	}
}

// routeWhitelisted runs the query at path if it is whitelisted and returns a
// fresh response message with the raw response. The whitelisted prototype is
// shared between contracts and never handed out.
func routeWhitelisted(ctx sdk.Context, queryRouter *baseapp.GRPCQueryRouter, path string, data []byte) (proto.Message, []byte, error) {
	protoResponseType, err := GetWhitelistedQuery(path)
	if err != nil {
		return nil, nil, err
	}

	route := queryRouter.Route(path)
	if route == nil {
		return nil, nil, wasmvmtypes.UnsupportedRequest{Kind: fmt.Sprintf("No route to query '%s'", path)}
	}

	res, err := route(ctx, &abci.RequestQuery{
		Data: data,
		Path: path,
	})
	if err != nil {
		return nil, nil, err
	}
	if res.Value == nil {
		return nil, nil, fmt.Errorf("res returned from abci query route is nil")
	}
	return proto.Clone(protoResponseType), res.Value, nil
}

// ConvertProtoToJSONMarshal decodes bz into protoResponseType and returns
// its JSON form, which contracts can decode without protobuf support.
func ConvertProtoToJSONMarshal(protoResponseType proto.Message, bz []byte, cdc codec.Codec) ([]byte, error) {
	err := cdc.Unmarshal(bz, protoResponseType)
	if err != nil {
		return nil, wasmvmtypes.Unknown{}
	}

	bz, err = cdc.MarshalJSON(protoResponseType)
	if err != nil {
		return nil, wasmvmtypes.Unknown{}
	}

	protoResponseType.Reset()

	return bz, nil
}
