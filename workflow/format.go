package workflow

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FormatValue converts a scalar to the text written after "key=".
//
// Integers are written in base 10 and floats in their shortest decimal form
// without exponent or grouping. Nil and composite values are rejected.
func FormatValue(v any) (string, error) {
	if isNilPointer(v) {
		return "", fmt.Errorf("%w: nil %T value", ErrValidation, v)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: marshal %T: %w", ErrValidation, v, err)
		}
		return string(b), nil
	}
	if s, ok, err := formatNumber(v); ok {
		return s, err
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}
	return "", fmt.Errorf("%w: unsupported value type %T", ErrValidation, v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// formatNumber reports ok=false when v is not a number. Named numeric
// types are formatted by their underlying kind.
func formatNumber(v any) (string, bool, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		s, err := formatFloat(rv.Float(), 32)
		return s, true, err
	case reflect.Float64:
		s, err := formatFloat(rv.Float(), 64)
		return s, true, err
	}
	return "", false, nil
}

func formatFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrValidation, f)
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrValidation)
	}
	if strings.ContainsAny(key, "=\r\n") {
		return fmt.Errorf("%w: key %q contains '=' or a line break", ErrValidation, key)
	}
	// The runner reads "<<" as the start of a heredoc before it looks for "=".
	if strings.Contains(key, "<<") {
		return fmt.Errorf("%w: key %q contains '<<'", ErrValidation, key)
	}
	return nil
}

func isMultiline(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// formatEntry renders one entry. Multi-line values use the runner's
// "key<<DELIMITER" form.
func (w *Writer) formatEntry(e Entry) (string, error) {
	if err := validateKey(e.Key); err != nil {
		return "", err
	}
	value, err := FormatValue(e.Value)
	if err != nil {
		return "", fmt.Errorf("key %q: %w", e.Key, err)
	}
	if !isMultiline(value) {
		return e.Key + "=" + value + "\n", nil
	}

	delimiter, err := w.delimiter()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("%w: value of %q contains the delimiter %q", ErrValidation, e.Key, delimiter)
	}
	return e.Key + "<<" + delimiter + "\n" + value + "\n" + delimiter + "\n", nil
}
