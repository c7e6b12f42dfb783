package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/proto"
	manifesttypes "github.com/liftedinit/manifest-ledger/x/manifest/types"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// Settlement is the ordered batch of instructions that completes a conversion.
// The host must execute Msgs all-or-nothing.
type Settlement struct {
	// Transfer forwards the deposit to the POA admin.
	Transfer *banktypes.MsgSend
	// Exec runs Burn and Mint on behalf of the POA admin.
	Exec *authz.MsgExec

	// Burn destroys the deposit once it is held by the POA admin.
	Burn *manifesttypes.MsgBurnHeldBalance
	Mint *tokenfactorytypes.MsgMint

	Burned sdk.Coin
	Minted sdk.Coin
}

// NewSettlement builds the settlement for a conversion by caller. grantee is
// the account executing the authz grants of poaAdmin.
func NewSettlement(grantee, poaAdmin, caller string, burned, minted sdk.Coin) (Settlement, error) {
	burn := &manifesttypes.MsgBurnHeldBalance{
		Authority: poaAdmin,
		BurnCoins: sdk.Coins{burned},
	}
	mint := &tokenfactorytypes.MsgMint{
		Sender:        poaAdmin,
		Amount:        minted,
		MintToAddress: caller,
	}

	inner := make([]*codectypes.Any, 0, 2)
	for _, msg := range []proto.Message{burn, mint} {
		packed, err := codectypes.NewAnyWithValue(msg)
		if err != nil {
			return Settlement{}, err
		}
		inner = append(inner, packed)
	}

	return Settlement{
		Transfer: &banktypes.MsgSend{
			FromAddress: grantee,
			ToAddress:   poaAdmin,
			Amount:      sdk.Coins{burned},
		},
		Exec: &authz.MsgExec{
			Grantee: grantee,
			Msgs:    inner,
		},
		Burn:   burn,
		Mint:   mint,
		Burned: burned,
		Minted: minted,
	}, nil
}

// Msgs returns the instructions in execution order.
func (s Settlement) Msgs() []sdk.Msg {
	if s.Transfer == nil || s.Exec == nil {
		return nil
	}
	return []sdk.Msg{s.Transfer, s.Exec}
}

func (s Settlement) IsEmpty() bool { return len(s.Msgs()) == 0 }

// MarshalSettlementJSON renders the settlement as a JSON array of typed
// messages. Messages packed inside the authz exec are rendered on their own
// so every message uses the proto field names.
func MarshalSettlementJSON(cdc codec.JSONCodec, s Settlement) ([]byte, error) {
	if s.IsEmpty() {
		return []byte("[]"), nil
	}

	transfer, err := cdc.MarshalInterfaceJSON(s.Transfer)
	if err != nil {
		return nil, err
	}

	inner := make([]json.RawMessage, 0, len(s.Exec.Msgs))
	for _, msg := range []proto.Message{s.Burn, s.Mint} {
		bz, err := cdc.MarshalInterfaceJSON(msg)
		if err != nil {
			return nil, err
		}
		inner = append(inner, bz)
	}

	exec := struct {
		Type    string            `json:"@type"`
		Grantee string            `json:"grantee"`
		Msgs    []json.RawMessage `json:"msgs"`
	}{
		Type:    sdk.MsgTypeURL(s.Exec),
		Grantee: s.Exec.Grantee,
		Msgs:    inner,
	}
	execBz, err := json.Marshal(exec)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent([]json.RawMessage{transfer, execBz}, "", "  ")
}
