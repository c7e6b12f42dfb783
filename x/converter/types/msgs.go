package types

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer handles the converter messages.
type MsgServer interface {
	Instantiate(context.Context, *MsgInstantiate) (*MsgInstantiateResponse, error)
	Convert(context.Context, *MsgConvert) (*MsgConvertResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	UpdateAdmin(context.Context, *MsgUpdateAdmin) (*MsgUpdateAdminResponse, error)
}

// MsgInstantiate sets up the converter. Sender and Funds describe the call,
// the rest is the requested configuration.
type MsgInstantiate struct {
	Sender      string    `json:"-"`
	Funds       sdk.Coins `json:"-"`
	Admin       string    `json:"admin"`
	PoaAdmin    string    `json:"poa_admin"`
	Rate        string    `json:"rate"`
	SourceDenom string    `json:"source_denom"`
	TargetDenom string    `json:"target_denom"`
	Paused      bool      `json:"paused"`
}

type MsgInstantiateResponse struct{}

// MsgConvert converts the single attached source coin.
type MsgConvert struct {
	Sender string    `json:"-"`
	Funds  sdk.Coins `json:"-"`
}

type MsgConvertResponse struct {
	Burned sdk.Coin `json:"burned"`
	Minted sdk.Coin `json:"minted"`
}

type MsgUpdateConfig struct {
	Sender string       `json:"-"`
	Funds  sdk.Coins    `json:"-"`
	Config UpdateConfig `json:"config"`
}

// MsgUpdateConfigResponse carries a note when nothing was written.
type MsgUpdateConfigResponse struct {
	Note string `json:"note,omitempty"`
}

// MsgUpdateAdmin hands the admin role over. A nil Admin asks to renounce it.
type MsgUpdateAdmin struct {
	Sender string    `json:"-"`
	Funds  sdk.Coins `json:"-"`
	Admin  *string   `json:"admin"`
}

type MsgUpdateAdminResponse struct{}

type MsgMigrateResponse struct {
	Note        string `json:"note,omitempty"`
	FromVersion string `json:"from_version,omitempty"`
	ToVersion   string `json:"to_version,omitempty"`
}

func validateCall(sender string, funds sdk.Coins) error {
	if sender == "" {
		return fmt.Errorf("sender cannot be empty")
	}
	if err := funds.Validate(); err != nil {
		return fmt.Errorf("invalid funds: %w", err)
	}
	return nil
}

// ValidateBasic performs stateless checks on MsgInstantiate.
func (m *MsgInstantiate) ValidateBasic() error {
	if err := validateCall(m.Sender, m.Funds); err != nil {
		return err
	}
	if m.Admin == "" {
		return fmt.Errorf("admin cannot be empty")
	}
	if m.PoaAdmin == "" {
		return fmt.Errorf("poa admin cannot be empty")
	}
	return nil
}

func (m *MsgConvert) ValidateBasic() error {
	return validateCall(m.Sender, m.Funds)
}

func (m *MsgUpdateConfig) ValidateBasic() error {
	return validateCall(m.Sender, m.Funds)
}

func (m *MsgUpdateAdmin) ValidateBasic() error {
	return validateCall(m.Sender, m.Funds)
}
