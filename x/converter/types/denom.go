package types

import (
	"encoding/json"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

const (
	ibcDenomPrefix     = "ibc/"
	factoryDenomPrefix = "factory/"

	ibcHashLength      = 64
	minNativeDenomLen  = 3
	maxNativeDenomLen  = 128
	maxSubdenomLength  = 128
	nativeDenomLeading = 'u'
)

// DenomKind is the grammar a denom was accepted under.
type DenomKind string

const (
	DenomKindNative  DenomKind = "native"
	DenomKindIBC     DenomKind = "ibc"
	DenomKindFactory DenomKind = "factory"
)

// Denom is a token denomination that passed ValidateDenom. The zero value is
// not a valid denom and is only used as a placeholder.
type Denom struct {
	s string
}

// NewDenom validates s and wraps it.
func NewDenom(s string) (Denom, error) {
	if _, err := ValidateDenom(s); err != nil {
		return Denom{}, err
	}
	return Denom{s: s}, nil
}

// UncheckedDenom wraps s without validation. It must only be used for
// compiled-in defaults, never for user input.
func UncheckedDenom(s string) Denom {
	return Denom{s: s}
}

func (d Denom) String() string { return d.s }

func (d Denom) Equal(other Denom) bool { return d.s == other.s }

func (d Denom) IsZero() bool { return d.s == "" }

// Kind reports the grammar of d. It assumes d was built by NewDenom.
func (d Denom) Kind() DenomKind {
	switch {
	case strings.HasPrefix(d.s, ibcDenomPrefix):
		return DenomKindIBC
	case strings.HasPrefix(d.s, factoryDenomPrefix):
		return DenomKindFactory
	default:
		return DenomKindNative
	}
}

func (d Denom) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.s)
}

func (d *Denom) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	denom, err := NewDenom(s)
	if err != nil {
		return err
	}
	*d = denom
	return nil
}

// ValidateDenom checks s against the native, ibc and factory grammars and
// returns the grammar it matched.
func ValidateDenom(s string) (DenomKind, error) {
	if s == "" {
		return "", ErrEmptyDenom
	}

	switch {
	case strings.HasPrefix(s, ibcDenomPrefix):
		if !isIbcDenom(s) {
			return "", ErrInvalidIbcDenomFormat
		}
		return DenomKindIBC, nil
	case strings.HasPrefix(s, factoryDenomPrefix):
		if !isFactoryDenom(s) {
			return "", ErrInvalidFactoryDenomFormat
		}
		return DenomKindFactory, nil
	default:
		if !isNativeDenom(s) {
			return "", ErrInvalidDenomFormat
		}
		return DenomKindNative, nil
	}
}

func isNativeDenom(s string) bool {
	if len(s) < minNativeDenomLen || len(s) > maxNativeDenomLen {
		return false
	}
	if s[0] != nativeDenomLeading {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isDigit(s[i]) && !isLower(s[i]) {
			return false
		}
	}
	return true
}

func isIbcDenom(s string) bool {
	hash := s[len(ibcDenomPrefix):]
	if len(hash) != ibcHashLength {
		return false
	}
	for i := 0; i < len(hash); i++ {
		if !isDigit(hash[i]) && (hash[i] < 'A' || hash[i] > 'F') {
			return false
		}
	}
	return true
}

func isFactoryDenom(s string) bool {
	parts := strings.Split(s[len(factoryDenomPrefix):], "/")
	if len(parts) != 2 {
		return false
	}
	creator, sub := parts[0], parts[1]

	// any human readable prefix is accepted, only the checksum matters
	if _, _, err := bech32.DecodeAndConvert(creator); err != nil {
		return false
	}

	if len(sub) == 0 || len(sub) > maxSubdenomLength {
		return false
	}
	for i := 0; i < len(sub); i++ {
		c := sub[i]
		switch {
		case isDigit(c), isLower(c), c >= 'A' && c <= 'Z':
		case c == '.', c == ':', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
