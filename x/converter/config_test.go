package converter

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.Equal(t, types.Bech32Prefix, config.Bech32Prefix)
	require.False(t, config.Telemetry, "telemetry should be disabled by default")
}

// TestDefaultConfigTemplate verifies the default TOML template generation
func TestDefaultConfigTemplate(t *testing.T) {
	template := DefaultConfigTemplate()

	require.Contains(t, template, "[converter]")
	require.Contains(t, template, `bech32-prefix = "manifest"`)
	require.Contains(t, template, "telemetry = false")

	v := viper.New()
	v.SetConfigType("toml")
	err := v.ReadConfig(strings.NewReader(template))
	require.NoError(t, err, "template should be valid TOML")

	require.Equal(t, "manifest", v.GetString(flagBech32Prefix))
	require.False(t, v.GetBool(flagTelemetry))
}

func TestNewConfigFromOptions(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected Config
	}{
		{
			name:     "defaults",
			template: DefaultConfigTemplate(),
			expected: DefaultConfig(),
		},
		{
			name:     "custom",
			template: ConfigTemplate(Config{Bech32Prefix: "osmo", Telemetry: true}),
			expected: Config{Bech32Prefix: "osmo", Telemetry: true},
		},
		{
			name:     "missing section",
			template: "",
			expected: DefaultConfig(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			v.SetConfigType("toml")
			require.NoError(t, v.ReadConfig(strings.NewReader(tc.template)))

			config := NewConfigFromOptions(v)
			require.Equal(t, tc.expected, config)
			require.Len(t, config.KeeperOptions(), 1)
		})
	}
}

func TestConfigAddressCodec(t *testing.T) {
	ac := DefaultConfig().AddressCodec()

	_, err := ac.StringToBytes(types.DefaultPoaAdmin)
	require.NoError(t, err)

	_, err = ac.StringToBytes("osmo14nalsczp8rnu5htrtvshqxa9x40x30m96zdrvg")
	require.Error(t, err)
}
