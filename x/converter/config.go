package converter

import (
	"fmt"

	"github.com/spf13/cast"

	"cosmossdk.io/core/address"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"

	"github.com/manifest-network/manifest-contracts/x/converter/keeper"
	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

const (
	flagBech32Prefix = "converter.bech32-prefix"
	flagTelemetry    = "converter.telemetry"
)

// Config defines the node side converter configuration, the [converter]
// section of app.toml.
type Config struct {
	Bech32Prefix string `mapstructure:"bech32-prefix" json:"bech32_prefix"`
	Telemetry    bool   `mapstructure:"telemetry" json:"telemetry"`
}

func DefaultConfig() Config {
	return Config{
		Bech32Prefix: types.Bech32Prefix,
		Telemetry:    false,
	}
}

// DefaultConfigTemplate returns the default TOML snippet for the converter configuration.
func DefaultConfigTemplate() string {
	return ConfigTemplate(DefaultConfig())
}

// ConfigTemplate returns the TOML snippet for the converter configuration.
func ConfigTemplate(c Config) string {
	return fmt.Sprintf(`
[converter]
# Account prefix used to validate admin, POA admin and sender addresses.
bech32-prefix = %q
# Emit converted volume metrics.
telemetry = %t
`, c.Bech32Prefix, c.Telemetry)
}

// NewConfigFromOptions reads the [converter] section. Missing values fall
// back to DefaultConfig.
func NewConfigFromOptions(opts servertypes.AppOptions) Config {
	c := DefaultConfig()
	if prefix := cast.ToString(opts.Get(flagBech32Prefix)); prefix != "" {
		c.Bech32Prefix = prefix
	}
	c.Telemetry = cast.ToBool(opts.Get(flagTelemetry))
	return c
}

func (c Config) AddressCodec() address.Codec {
	return addresscodec.NewBech32Codec(c.Bech32Prefix)
}

// KeeperOptions returns the keeper options implied by c.
func (c Config) KeeperOptions() []keeper.Option {
	return []keeper.Option{keeper.WithTelemetry(c.Telemetry)}
}
