package types

import (
	"encoding/json"
	"fmt"

	manifesttypes "github.com/liftedinit/manifest-ledger/x/manifest/types"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	collcodec "cosmossdk.io/collections/codec"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// RegisterSettlementInterfaces registers every message a Settlement may
// carry, so the packed authz messages resolve when encoded.
func RegisterSettlementInterfaces(registry cdctypes.InterfaceRegistry) {
	banktypes.RegisterInterfaces(registry)
	authz.RegisterInterfaces(registry)
	manifesttypes.RegisterInterfaces(registry)
	tokenfactorytypes.RegisterInterfaces(registry)
}

// NewSettlementCodec returns a proto codec able to JSON encode settlements
// outside of a running app.
func NewSettlementCodec() codec.Codec {
	registry := cdctypes.NewInterfaceRegistry()
	RegisterSettlementInterfaces(registry)
	return codec.NewProtoCodec(registry)
}

// JSONValue is a collections value codec storing T as JSON.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValue[T]{}
}

type jsonValue[T any] struct{}

func (jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (v jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return v.Encode(value)
}

func (v jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return v.Decode(b)
}

func (v jsonValue[T]) Stringify(value T) string {
	bz, err := v.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (jsonValue[T]) ValueType() string {
	var value T
	return fmt.Sprintf("json/%T", value)
}
