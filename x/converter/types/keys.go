package types

import "cosmossdk.io/collections"

var (
	// ConfigKey saves the converter configuration.
	ConfigKey = collections.NewPrefix(0)
	// AdminKey saves the address allowed to change the configuration.
	AdminKey = collections.NewPrefix(1)
	// ContractInfoKey saves the contract name and version used by migrations.
	ContractInfoKey = collections.NewPrefix(2)
)

const (
	ModuleName = "converter"

	StoreKey = ModuleName

	QuerierRoute = ModuleName

	RouterKey = ModuleName
)
