package types

import (
	"strconv"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
)

// Config is the converter configuration. Never rename or remove fields; new
// fields must be optional so stored configs keep decoding.
type Config struct {
	PoaAdmin    string `json:"poa_admin"`
	Rate        Rate   `json:"rate"`
	SourceDenom Denom  `json:"source_denom"`
	TargetDenom Denom  `json:"target_denom"`
	Paused      bool   `json:"paused"`
}

// NewConfig validates every field and then the cross-field invariant.
func NewConfig(ac address.Codec, poaAdmin, rate, sourceDenom, targetDenom string, paused bool) (Config, error) {
	if err := ValidateAddress(ac, poaAdmin); err != nil {
		return Config{}, err
	}
	r, err := ParseRate(rate)
	if err != nil {
		return Config{}, err
	}
	src, err := NewDenom(sourceDenom)
	if err != nil {
		return Config{}, err
	}
	tgt, err := NewDenom(targetDenom)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		PoaAdmin:    poaAdmin,
		Rate:        r,
		SourceDenom: src,
		TargetDenom: tgt,
		Paused:      paused,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultConfig returns the Manifest Network defaults with the given rate.
func DefaultConfig(rate Rate) (Config, error) {
	c := Config{
		PoaAdmin:    DefaultPoaAdmin,
		Rate:        rate,
		SourceDenom: DefaultSourceDenomValue(),
		TargetDenom: DefaultTargetDenomValue(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the invariants that must hold after every mutation.
func (c Config) Validate() error {
	if c.PoaAdmin == "" {
		return errorsmod.Wrap(ErrInvalidAddress, "poa admin is empty")
	}
	if c.Rate.IsZero() {
		return ErrInvalidRateZero
	}
	if c.SourceDenom.IsZero() || c.TargetDenom.IsZero() {
		return ErrEmptyDenom
	}
	if c.SourceDenom.Equal(c.TargetDenom) {
		return ErrSameDenom
	}
	return nil
}

// FieldValue returns the serialized value of field, as used by the no-op
// comparison.
func (c Config) FieldValue(field ConfigField) string {
	switch field {
	case FieldPoaAdmin:
		return c.PoaAdmin
	case FieldRate:
		return c.Rate.String()
	case FieldSourceDenom:
		return c.SourceDenom.String()
	case FieldTargetDenom:
		return c.TargetDenom.String()
	case FieldPaused:
		return strconv.FormatBool(c.Paused)
	default:
		return ""
	}
}

// ConfigField names a mutable field of Config.
type ConfigField string

const (
	FieldPoaAdmin    ConfigField = "poa_admin"
	FieldRate        ConfigField = "rate"
	FieldSourceDenom ConfigField = "source_denom"
	FieldTargetDenom ConfigField = "target_denom"
	FieldPaused      ConfigField = "paused"
)

// FieldChange is a single requested change of a Config field.
type FieldChange struct {
	Field ConfigField
	Value string
}

// UpdateConfig is a partial update of Config. A nil field is left unchanged.
type UpdateConfig struct {
	PoaAdmin    *string `json:"poa_admin,omitempty"`
	Rate        *string `json:"rate,omitempty"`
	SourceDenom *string `json:"source_denom,omitempty"`
	TargetDenom *string `json:"target_denom,omitempty"`
	Paused      *bool   `json:"paused,omitempty"`
}

// Changes lists the set fields in the order they are applied.
func (u UpdateConfig) Changes() []FieldChange {
	var changes []FieldChange
	if u.PoaAdmin != nil {
		changes = append(changes, FieldChange{Field: FieldPoaAdmin, Value: *u.PoaAdmin})
	}
	if u.Rate != nil {
		changes = append(changes, FieldChange{Field: FieldRate, Value: *u.Rate})
	}
	if u.SourceDenom != nil {
		changes = append(changes, FieldChange{Field: FieldSourceDenom, Value: *u.SourceDenom})
	}
	if u.TargetDenom != nil {
		changes = append(changes, FieldChange{Field: FieldTargetDenom, Value: *u.TargetDenom})
	}
	if u.Paused != nil {
		changes = append(changes, FieldChange{Field: FieldPaused, Value: strconv.FormatBool(*u.Paused)})
	}
	return changes
}

// IsEmpty reports whether no field is set.
func (u UpdateConfig) IsEmpty() bool {
	return len(u.Changes()) == 0
}

// IsNoop reports whether applying u to current would change nothing.
func (u UpdateConfig) IsNoop(current Config) bool {
	for _, change := range u.Changes() {
		if change.Value != current.FieldValue(change.Field) {
			return false
		}
	}
	return true
}

// Apply returns a copy of current with every set field applied, or the first
// validation error. current is never modified.
func (u UpdateConfig) Apply(ac address.Codec, current Config) (Config, error) {
	next := current
	for _, change := range u.Changes() {
		switch change.Field {
		case FieldPoaAdmin:
			if err := ValidateAddress(ac, change.Value); err != nil {
				return Config{}, err
			}
			next.PoaAdmin = change.Value
		case FieldRate:
			r, err := ParseRate(change.Value)
			if err != nil {
				return Config{}, err
			}
			next.Rate = r
		case FieldSourceDenom:
			d, err := NewDenom(change.Value)
			if err != nil {
				return Config{}, err
			}
			next.SourceDenom = d
		case FieldTargetDenom:
			d, err := NewDenom(change.Value)
			if err != nil {
				return Config{}, err
			}
			next.TargetDenom = d
		case FieldPaused:
			next.Paused = *u.Paused
		}
	}
	if err := next.Validate(); err != nil {
		return Config{}, err
	}
	return next, nil
}

// ValidateAddress checks addr with the chain address codec.
func ValidateAddress(ac address.Codec, addr string) error {
	if _, err := ac.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%q: %s", addr, err)
	}
	return nil
}
