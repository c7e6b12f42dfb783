package types

import (
	"encoding/json"
	"strings"

	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// RatePrecision is the number of fractional digits a Rate carries.
const RatePrecision = math.LegacyPrecision

var (
	// decimalFractional is 10^RatePrecision, the atomics of 1.0.
	decimalFractional = uint256.NewInt(1_000_000_000_000_000_000)

	maxUint256 = new(uint256.Int).SetAllOne()

	// MaxConvertibleAmount is the largest amount that still fits the
	// fixed-point domain once scaled by 10^RatePrecision.
	MaxConvertibleAmount = math.NewUintFromBigInt(new(uint256.Int).Div(maxUint256, decimalFractional).ToBig())
)

// Rate is a strictly positive fixed-point multiplier with RatePrecision
// fractional digits, stored as atomics = value * 10^RatePrecision on 256 bits.
type Rate struct {
	atomics *uint256.Int
}

// NewRateFromAtomics builds a Rate from its raw atomics.
func NewRateFromAtomics(atomics *uint256.Int) (Rate, error) {
	if atomics == nil || atomics.IsZero() {
		return Rate{}, ErrInvalidRateZero
	}
	return Rate{atomics: new(uint256.Int).Set(atomics)}, nil
}

// NewRateFromDec converts a legacy decimal into a Rate. Negative values and
// values outside of the 256-bit atomics range are parse failures.
func NewRateFromDec(dec math.LegacyDec) (Rate, error) {
	if dec.IsNil() || dec.IsNegative() {
		return Rate{}, ErrInvalidRateParsing
	}
	atomics, overflow := uint256.FromBig(dec.BigInt())
	if overflow {
		return Rate{}, errorsmod.Wrapf(ErrInvalidRateParsing, "%s is out of range", dec)
	}
	return NewRateFromAtomics(atomics)
}

// ParseRate parses a non-negative base-10 decimal with at most
// RatePrecision fractional digits.
func ParseRate(s string) (Rate, error) {
	if !isPlainDecimal(s) {
		return Rate{}, ErrInvalidRateParsing
	}
	dec, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return Rate{}, errorsmod.Wrap(ErrInvalidRateParsing, err.Error())
	}
	return NewRateFromDec(dec)
}

// MustParseRate is ParseRate for compiled-in values. It panics on error.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// isPlainDecimal accepts "123" and "1.23"; signs, exponents and bare dots are
// rejected before reaching the decimal parser.
func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := -1
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
		case s[i] == '.' && dot == -1:
			dot = i
		default:
			return false
		}
	}
	return dot != 0 && dot != len(s)-1
}

func (r Rate) IsZero() bool { return r.atomics == nil || r.atomics.IsZero() }

func (r Rate) Equal(other Rate) bool {
	if r.atomics == nil || other.atomics == nil {
		return r.atomics == other.atomics
	}
	return r.atomics.Eq(other.atomics)
}

// Dec returns the rate as a legacy decimal.
func (r Rate) Dec() math.LegacyDec {
	if r.atomics == nil {
		return math.LegacyZeroDec()
	}
	return math.LegacyNewDecFromBigIntWithPrec(r.atomics.ToBig(), RatePrecision)
}

// String returns the canonical form of the rate: no trailing fractional
// zeros, no trailing dot.
func (r Rate) String() string {
	if r.atomics == nil {
		return "0"
	}
	whole, frac := new(uint256.Int).DivMod(r.atomics, decimalFractional, new(uint256.Int))
	if frac.IsZero() {
		return whole.Dec()
	}
	fs := frac.Dec()
	fs = strings.Repeat("0", RatePrecision-len(fs)) + fs
	return whole.Dec() + "." + strings.TrimRight(fs, "0")
}

// ApplyTo multiplies amount by the rate and floors the product. The result
// never exceeds what the deposit is worth at this rate.
func (r Rate) ApplyTo(amount math.Uint) (math.Uint, error) {
	if r.IsZero() {
		return math.Uint{}, ErrInvalidRateZero
	}
	if amount.IsNil() || amount.IsZero() {
		return math.Uint{}, ErrAmountIsZero
	}
	a, overflow := uint256.FromBig(amount.BigInt())
	if overflow {
		return math.Uint{}, ErrAmountExceedsMax
	}
	scaled, overflow := new(uint256.Int).MulOverflow(a, decimalFractional)
	if overflow {
		return math.Uint{}, ErrAmountExceedsMax
	}
	product, overflow := new(uint256.Int).MulDivOverflow(r.atomics, scaled, decimalFractional)
	if overflow {
		return math.Uint{}, ErrApplyOverflow
	}
	floor := new(uint256.Int).Div(product, decimalFractional)
	if floor.IsZero() {
		return math.Uint{}, ErrApplyZero
	}
	return math.NewUintFromBigInt(floor.ToBig()), nil
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rate) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	rate, err := ParseRate(s)
	if err != nil {
		return err
	}
	*r = rate
	return nil
}

// ParseAmount parses a base-10 unsigned integer amount.
func ParseAmount(s string) (math.Uint, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return math.Uint{}, errorsmod.Wrapf(ErrInvalidAmountParse, "%q is not a base-10 integer", s)
	}
	amount, err := math.ParseUint(s)
	if err != nil {
		return math.Uint{}, errorsmod.Wrap(ErrInvalidAmountParse, err.Error())
	}
	return amount, nil
}
