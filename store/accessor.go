package store

import (
	"github.com/dshills/confkit/blueprint"
	"github.com/dshills/confkit/value"
)

// Typed accessors over Get. Null values yield the zero value of the
// requested type; any other kind mismatch yields a TypeError.

// GetString returns a string option.
func (s *Store) GetString(section, option string) (string, error) {
	v, err := s.Get(section, option)
	if err != nil {
		return "", err
	}
	if v.IsNull() {
		return "", nil
	}
	if v.Kind() != value.KindString {
		return "", typeError(section, option, value.KindString, v)
	}
	return v.Str(), nil
}

// GetInt returns an integer option. Float values are truncated.
func (s *Store) GetInt(section, option string) (int64, error) {
	v, err := s.Get(section, option)
	if err != nil {
		return 0, err
	}
	if v.IsNull() {
		return 0, nil
	}
	if !v.IsNumber() {
		return 0, typeError(section, option, value.KindInt, v)
	}
	return v.Int(), nil
}

// GetFloat returns a numeric option as a float64.
func (s *Store) GetFloat(section, option string) (float64, error) {
	v, err := s.Get(section, option)
	if err != nil {
		return 0, err
	}
	if v.IsNull() {
		return 0, nil
	}
	if !v.IsNumber() {
		return 0, typeError(section, option, value.KindInt|value.KindFloat, v)
	}
	return v.Float(), nil
}

// GetBool returns a boolean option.
func (s *Store) GetBool(section, option string) (bool, error) {
	v, err := s.Get(section, option)
	if err != nil {
		return false, err
	}
	if v.IsNull() {
		return false, nil
	}
	if v.Kind() != value.KindBool {
		return false, typeError(section, option, value.KindBool, v)
	}
	return v.Bool(), nil
}

// GetStringSlice returns a list option whose elements are all strings.
func (s *Store) GetStringSlice(section, option string) ([]string, error) {
	v, err := s.Get(section, option)
	if err != nil {
		return nil, err
	}
	if v.IsNull() {
		return nil, nil
	}
	if v.Kind() != value.KindList {
		return nil, typeError(section, option, value.KindList, v)
	}

	items := v.Items()
	out := make([]string, len(items))
	for i, item := range items {
		if item.Kind() != value.KindString {
			return nil, typeError(section, option, value.KindString, item)
		}
		out[i] = item.Str()
	}
	return out, nil
}

func typeError(section, option string, expected value.Kind, v value.Value) error {
	return &blueprint.TypeError{
		Section:  section,
		Option:   option,
		Expected: expected,
		Value:    v,
	}
}
