package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	require.Equal(t, "converterd", cmd.Use)
	require.NotNil(t, cmd.PersistentPreRunE)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Subset(t, names, []string{"denom", "rate", "config", "convert"})

	_, err := execute(t, "invalid-command")
	require.Error(t, err)
}

func TestDenomValidate(t *testing.T) {
	tests := []struct {
		denom   string
		want    string
		wantErr error
	}{
		{denom: "umfx", want: "native"},
		{denom: "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", want: "ibc"},
		{denom: "factory/" + testPoa + "/upwr", want: "factory"},
		{denom: "mfx", wantErr: types.ErrInvalidDenomFormat},
		{denom: "ibc/xyz", wantErr: types.ErrInvalidIbcDenomFormat},
		{denom: "factory/bad/upwr", wantErr: types.ErrInvalidFactoryDenomFormat},
	}

	for _, tc := range tests {
		t.Run(tc.denom, func(t *testing.T) {
			out, err := execute(t, "denom", "validate", tc.denom)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestRateApply(t *testing.T) {
	out, err := execute(t, "rate", "apply", "0.379", "1000")
	require.NoError(t, err)
	assert.Equal(t, "379", strings.TrimSpace(out))

	out, err = execute(t, "rate", "apply", "0.379", "3")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	_, err = execute(t, "rate", "apply", "0.379", "2")
	require.ErrorIs(t, err, types.ErrApplyZero)

	_, err = execute(t, "rate", "apply", "0", "1000")
	require.ErrorIs(t, err, types.ErrInvalidRateZero)

	_, err = execute(t, "rate", "apply", "0.5", "0x10")
	require.ErrorIs(t, err, types.ErrInvalidAmountParse)
}
