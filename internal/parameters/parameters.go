// Package parameters handles generic configuration Params, a map[string]string that the
// user can set when selecting a search engine.
package parameters

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// FromConfigString creates params from the user's configuration string, a comma-separated
// list of `key` or `key=value` entries. See GetOr and PopOr to parse values from this map.
func FromConfigString(config string) Params {
	params := make(Params)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[key] = value
	}
	return params
}

// PopOr is like GetOr, but it also deletes the retrieved parameter from the params map.
//
// Typical use pops every parameter a component knows about and then calls CheckExhausted.
func PopOr[T interface {
	bool | int | float32 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetOr attempts to parse a parameter to the given type if the key is present, or returns
// the defaultValue if not.
//
// For bool types, a key without a value is interpreted as true.
func GetOr[T interface {
	bool | int | float32 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var t T
	switch any(defaultValue).(type) {
	case string:
		return any(value).(T), nil
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		return any(parsed).(T), nil
	case float32:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		return any(float32(parsed)).(T), nil
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			return any(true).(T), nil
		case "false", "0":
			return any(false).(T), nil
		}
		return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
	}
	return defaultValue, nil
}

// CheckExhausted returns an error if any parameters are left in the map: it is called after
// a component popped everything it understands, so leftovers are misspelled or unknown keys.
func (p Params) CheckExhausted(context string) error {
	if len(p) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	return errors.Errorf("unknown parameter(s) %q given to %s", strings.Join(keys, ", "), context)
}
