package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-chat-config/models"
)

// Field describes one configuration key. Values handed out by a Catalog must
// be treated as read-only.
type Field struct {
	// Key is the dotted public name, "<category>.<field>".
	Key string

	// Column is the matching column of the application row.
	Column string

	Type models.ValueType

	// Default is an int64, bool, string or json.RawMessage matching Type.
	Default any

	// Min and Max bound number fields when Bounded is set.
	Min, Max int64
	Bounded  bool

	// Enum lists the allowed values of a string field. Empty means any.
	Enum []string
}

// Category returns the part of Key before the first dot.
func (f Field) Category() string {
	category, _, _ := strings.Cut(f.Key, ".")
	return category
}

// Parse reads text stored for the field (an override value or a text row
// column) and returns the canonical value.
func (f Field) Parse(text string) (any, error) {
	value, err := ParseAs(f.Type, text)
	if err != nil {
		return nil, err
	}
	if err = f.Check(value); err != nil {
		return nil, err
	}
	return value, nil
}

// FromColumn converts a non-null application row value into the canonical
// value of the field.
func (f Field) FromColumn(value any) (any, error) {
	if f.Type == models.ValueTypeJSON {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects json text, got %T", ErrInvalidValue, f.Key, value)
		}
		return f.Parse(text)
	}
	return f.Coerce(value)
}

// Coerce converts a decoded JSON value (or a Go value) into the canonical
// representation of the field and checks its bounds.
func (f Field) Coerce(value any) (any, error) {
	var (
		out any
		err error
	)

	switch f.Type {
	case models.ValueTypeNumber:
		out, err = toInt64(value)
	case models.ValueTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			err = fmt.Errorf("expected boolean, got %T", value)
		}
		out = b
	case models.ValueTypeString:
		s, ok := value.(string)
		if !ok {
			err = fmt.Errorf("expected string, got %T", value)
		}
		out = s
	case models.ValueTypeJSON:
		out, err = toRawJSON(value)
	default:
		err = fmt.Errorf("unsupported type %q", f.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, f.Key, err)
	}

	if err = f.Check(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Check verifies the bounds of a canonical value.
func (f Field) Check(value any) error {
	switch v := value.(type) {
	case int64:
		if f.Bounded && (v < f.Min || v > f.Max) {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrOutOfRange, f.Key, f.Min, f.Max, v)
		}
	case string:
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, v) {
			return fmt.Errorf("%w: %s must be one of %s, got %q", ErrOutOfRange, f.Key, strings.Join(f.Enum, ", "), v)
		}
	}
	return nil
}

// ToColumn converts a canonical value into what the application row stores:
// json values are kept as text.
func (f Field) ToColumn(value any) any {
	if raw, ok := value.(json.RawMessage); ok {
		return string(raw)
	}
	return value
}

// ParseAs parses text as a value of type t.
func ParseAs(t models.ValueType, text string) (any, error) {
	switch t {
	case models.ValueTypeNumber:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, text)
		}
		return n, nil
	case models.ValueTypeBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, text)
		}
		return b, nil
	case models.ValueTypeString:
		return text, nil
	case models.ValueTypeJSON:
		raw, err := toRawJSON(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidValue, t)
	}
}

// Format renders a canonical value as the text form stored in overrides.
func Format(value any) string {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case json.RawMessage:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int64(v), nil
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

// toRawJSON accepts JSON text, raw JSON or any encodable value and returns
// compacted JSON.
func toRawJSON(value any) (json.RawMessage, error) {
	var data []byte
	switch v := value.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		data = encoded
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("not valid json: %w", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

func number(key, column string, def, minimum, maximum int64) Field {
	return Field{Key: key, Column: column, Type: models.ValueTypeNumber, Default: def, Min: minimum, Max: maximum, Bounded: true}
}

func boolean(key, column string, def bool) Field {
	return Field{Key: key, Column: column, Type: models.ValueTypeBoolean, Default: def}
}

func text(key, column, def string, enum ...string) Field {
	return Field{Key: key, Column: column, Type: models.ValueTypeString, Default: def, Enum: enum}
}

func jsonValue(key, column, def string) Field {
	return Field{Key: key, Column: column, Type: models.ValueTypeJSON, Default: json.RawMessage(def)}
}
