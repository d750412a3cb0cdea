package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Trim selects the trim policy for reports when the --trim flag is not
	// given.
	Trim ConfigKey[bool] = NewBoolKey("trim", false)

	// LogLevel is the slog level name used when --log-level is not given.
	LogLevel ConfigKey[string] = NewStringKey("log-level", "warn", "oneof=debug info warn error")
)

func init() {
	AddKey(Trim)
	AddKey(LogLevel)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type BoolKey struct {
	name string
	def  bool
}

func NewBoolKey(name string, def bool) *BoolKey {
	return &BoolKey{name, def}
}

func (k *BoolKey) Name() string              { return k.name }
func (k *BoolKey) New() bool                 { return k.def }
func (k *BoolKey) IsDefault(value bool) bool { return value == k.def }

func (k *BoolKey) NewFrom(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return k.Parse(v)
	default:
		return k.def, fmt.Errorf("expected a boolean, got %T", value)
	}
}

func (k *BoolKey) Parse(text string) (bool, error) {
	return strconv.ParseBool(text)
}

// StringKey holds a string checked against validator rules, in the syntax of
// a `validate` struct tag.
type StringKey struct {
	name  string
	def   string
	rules string
}

func NewStringKey(name, def, rules string) *StringKey {
	if err := validate.Var(def, rules); err != nil {
		panic(fmt.Errorf("default for config key %q fails its own rules: %w", name, err))
	}
	return &StringKey{name, def, rules}
}

func (k *StringKey) Name() string                { return k.name }
func (k *StringKey) New() string                 { return k.def }
func (k *StringKey) IsDefault(value string) bool { return value == k.def }

func (k *StringKey) NewFrom(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return k.def, fmt.Errorf("expected a string, got %T", value)
	}
	return k.Parse(s)
}

func (k *StringKey) Parse(text string) (string, error) {
	if err := validate.Var(text, k.rules); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			return k.def, fmt.Errorf("%q does not satisfy %q", text, k.rules)
		}
		return k.def, err
	}
	return text, nil
}
