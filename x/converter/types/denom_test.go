package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

const (
	testAddr     = "manifest1hj5fveer5cjtn4wd6wstzugjfdxzl0xp8ws9ct"
	testOsmoAddr = "osmo14nalsczp8rnu5htrtvshqxa9x40x30m96zdrvg"
	testIbcDenom = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"
)

func TestValidateDenom(t *testing.T) {
	tests := []struct {
		name  string
		denom string
		kind  types.DenomKind
		err   error
	}{
		{"native", "umfx", types.DenomKindNative, nil},
		{"native with digits", "uatom2", types.DenomKindNative, nil},
		{"native max length", "u" + strings.Repeat("a", 127), types.DenomKindNative, nil},
		{"ibc", testIbcDenom, types.DenomKindIBC, nil},
		{"ibc other hash", "ibc/E91A88D2F4A515E48A183869B10B7C20A73F6DEE1BBE864FD15924EADB8A078F", types.DenomKindIBC, nil},
		{"factory", "factory/" + testAddr + "/upwr", types.DenomKindFactory, nil},
		{"factory default", types.DefaultTargetDenom, types.DenomKindFactory, nil},
		{"factory foreign prefix", "factory/" + testOsmoAddr + "/utest", types.DenomKindFactory, nil},
		{"factory subdenom charset", "factory/" + testAddr + "/Ab0.:_-", types.DenomKindFactory, nil},

		{"empty", "", "", types.ErrEmptyDenom},
		{"native too short", "um", "", types.ErrInvalidDenomFormat},
		{"native too long", "u" + strings.Repeat("a", 128), "", types.ErrInvalidDenomFormat},
		{"native wrong leading", "mfx", "", types.ErrInvalidDenomFormat},
		{"native uppercase", "uMFX", "", types.ErrInvalidDenomFormat},
		{"native dash", "umf-x", "", types.ErrInvalidDenomFormat},
		{"native whitespace", "umfx ", "", types.ErrInvalidDenomFormat},
		{"native multibyte", "uµfx", "", types.ErrInvalidDenomFormat},
		{"native invalid utf8", "u\xff\xfe", "", types.ErrInvalidDenomFormat},
		{"ibc prefix only", "ibc/", "", types.ErrInvalidIbcDenomFormat},
		{"ibc short hash", testIbcDenom[:len(testIbcDenom)-1], "", types.ErrInvalidIbcDenomFormat},
		{"ibc long hash", testIbcDenom + "A", "", types.ErrInvalidIbcDenomFormat},
		{"ibc lowercase hash", strings.ToLower(testIbcDenom), "", types.ErrInvalidIbcDenomFormat},
		{"ibc non hex", testIbcDenom[:len(testIbcDenom)-1] + "G", "", types.ErrInvalidIbcDenomFormat},
		{"factory missing subdenom", "factory/a", "", types.ErrInvalidFactoryDenomFormat},
		{"factory prefix only", "factory/", "", types.ErrInvalidFactoryDenomFormat},
		{"factory empty subdenom", "factory/" + testAddr + "/", "", types.ErrInvalidFactoryDenomFormat},
		{"factory extra segment", "factory/" + testAddr + "/utgt/a", "", types.ErrInvalidFactoryDenomFormat},
		{"factory bad creator", "factory/notanaddress/upwr", "", types.ErrInvalidFactoryDenomFormat},
		{"factory bad checksum", "factory/manifest1hj5fveer5cjtn4wd6wstzugjfdxzl0xp8ws9cu/upwr", "", types.ErrInvalidFactoryDenomFormat},
		{"factory subdenom too long", "factory/" + testAddr + "/" + strings.Repeat("a", 129), "", types.ErrInvalidFactoryDenomFormat},
		{"factory subdenom bad char", "factory/" + testAddr + "/up wr", "", types.ErrInvalidFactoryDenomFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := types.ValidateDenom(tc.denom)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Empty(t, kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.kind, kind)

			d, err := types.NewDenom(tc.denom)
			require.NoError(t, err)
			require.Equal(t, tc.denom, d.String())
			require.Equal(t, tc.kind, d.Kind())
		})
	}
}

func TestNewDenomRejectsInvalid(t *testing.T) {
	d, err := types.NewDenom("MFX")
	require.ErrorIs(t, err, types.ErrInvalidDenomFormat)
	require.True(t, d.IsZero())
}

func TestDenomJSON(t *testing.T) {
	d, err := types.NewDenom("umfx")
	require.NoError(t, err)

	bz, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"umfx"`, string(bz))

	var decoded types.Denom
	require.NoError(t, json.Unmarshal(bz, &decoded))
	require.True(t, d.Equal(decoded))

	err = json.Unmarshal([]byte(`"ibc/abc"`), &decoded)
	require.ErrorIs(t, err, types.ErrInvalidIbcDenomFormat)
}

func TestDefaultDenomsAreValid(t *testing.T) {
	_, err := types.ValidateDenom(types.DefaultSourceDenomValue().String())
	require.NoError(t, err)
	_, err = types.ValidateDenom(types.DefaultTargetDenomValue().String())
	require.NoError(t, err)
}
