package types

const (
	// ContractName identifies the stored state for migrations. Never change it.
	ContractName = "manifest/converter"

	// ContractVersion is bumped on every release that changes stored state.
	ContractVersion = "1.0.0"

	// Bech32Prefix is the account prefix of the Manifest Network.
	Bech32Prefix = "manifest"

	// DefaultPoaAdmin is the POA admin address of the Manifest Network.
	DefaultPoaAdmin = Bech32Prefix + "1afk9zr2hn2jsac63h4hm60vl9z3e5u69gndzf7c99cqge3vzwjzsfmy9qj"

	// DefaultSourceDenom is the base denom of the Manifest Network.
	DefaultSourceDenom = "umfx"

	// DefaultTargetDenom is the factory denom minted by the POA admin.
	DefaultTargetDenom = "factory/" + DefaultPoaAdmin + "/upwr"
)

// DefaultSourceDenomValue returns the trusted default source denom.
func DefaultSourceDenomValue() Denom {
	return UncheckedDenom(DefaultSourceDenom)
}

// DefaultTargetDenomValue returns the trusted default target denom.
func DefaultTargetDenomValue() Denom {
	return UncheckedDenom(DefaultTargetDenom)
}
