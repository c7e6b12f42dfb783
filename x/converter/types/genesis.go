package types

import (
	"fmt"
)

// ContractInfo records the name and version of the stored state.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// GenesisState is the exported state of the converter. A nil Config means
// the converter has not been instantiated.
type GenesisState struct {
	Admin        string        `json:"admin,omitempty"`
	Config       *Config       `json:"config,omitempty"`
	ContractInfo *ContractInfo `json:"contract_info,omitempty"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(admin string, config Config) *GenesisState {
	return &GenesisState{
		Admin:  admin,
		Config: &config,
		ContractInfo: &ContractInfo{
			Contract: ContractName,
			Version:  ContractVersion,
		},
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if gs.Config == nil {
		if gs.Admin != "" || gs.ContractInfo != nil {
			return fmt.Errorf("admin and contract info require a config")
		}
		return nil
	}

	if gs.Admin == "" {
		return fmt.Errorf("admin cannot be empty")
	}
	if err := gs.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if gs.ContractInfo != nil && gs.ContractInfo.Contract != ContractName {
		return fmt.Errorf("unexpected contract name %q", gs.ContractInfo.Contract)
	}
	return nil
}
