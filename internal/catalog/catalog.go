package catalog

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-chat-config/models"
)

// Catalog is an immutable, indexed set of fields.
type Catalog struct {
	fields   []Field
	byKey    map[string]int
	byColumn map[string]int
}

// New builds a catalog and checks that keys and columns are unique and that
// every default is valid for its own field.
func New(fields ...Field) (*Catalog, error) {
	c := &Catalog{
		fields:   make([]Field, 0, len(fields)),
		byKey:    make(map[string]int, len(fields)),
		byColumn: make(map[string]int, len(fields)),
	}

	var errs []error
	for _, f := range fields {
		if _, dup := c.byKey[f.Key]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate key %q", ErrSchema, f.Key))
			continue
		}
		if _, dup := c.byColumn[f.Column]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate column %q", ErrSchema, f.Column))
			continue
		}
		if !f.Type.IsValid() {
			errs = append(errs, fmt.Errorf("%w: %s has unsupported type %q", ErrSchema, f.Key, f.Type))
			continue
		}
		if _, err := f.Coerce(f.Default); err != nil {
			errs = append(errs, fmt.Errorf("%w: default of %s: %w", ErrSchema, f.Key, err))
			continue
		}

		c.byKey[f.Key] = len(c.fields)
		c.byColumn[f.Column] = len(c.fields)
		c.fields = append(c.fields, f)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// MustNew is New that panics on error. It is meant for package level
// catalogs defined in code.
func MustNew(fields ...Field) *Catalog {
	c, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}

// Fields returns all fields in declaration order.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lookup finds a field by its dotted key.
func (c *Catalog) Lookup(key string) (Field, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return Field{}, false
	}
	return c.fields[idx], true
}

// LookupColumn finds a field by its application row column.
func (c *Catalog) LookupColumn(column string) (Field, bool) {
	idx, ok := c.byColumn[column]
	if !ok {
		return Field{}, false
	}
	return c.fields[idx], true
}

// DefaultFor returns the platform default of key.
func (c *Catalog) DefaultFor(key string) (any, error) {
	f, ok := c.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f.Default, nil
}

// Keys returns every key in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.fields))
	for i, f := range c.fields {
		keys[i] = f.Key
	}
	return keys
}

// Columns returns every application row column in declaration order.
func (c *Catalog) Columns() []string {
	columns := make([]string, len(c.fields))
	for i, f := range c.fields {
		columns[i] = f.Column
	}
	return columns
}

// VerifyColumns compares the catalog against the setting columns found in
// storage. Every storage column needs a catalog entry and every catalog
// column must exist in storage.
func (c *Catalog) VerifyColumns(columns []string) error {
	var errs []error

	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		seen[column] = struct{}{}
		if _, ok := c.byColumn[column]; !ok {
			errs = append(errs, fmt.Errorf("%w: column %q has no default", ErrSchema, column))
		}
	}
	for _, f := range c.fields {
		if _, ok := seen[f.Column]; !ok {
			errs = append(errs, fmt.Errorf("%w: column %q of %s is missing in storage", ErrSchema, f.Column, f.Key))
		}
	}

	return errors.Join(errs...)
}

var goTypes = map[models.ValueType]reflect.Type{
	models.ValueTypeNumber:  reflect.TypeFor[*int64](),
	models.ValueTypeBoolean: reflect.TypeFor[*bool](),
	models.ValueTypeString:  reflect.TypeFor[*string](),
	models.ValueTypeJSON:    reflect.TypeFor[*string](),
}

// VerifyModel checks the catalog against models.ApplicationConfig: same set
// of columns, and a Go field type that can hold the catalog type.
func (c *Catalog) VerifyModel() error {
	if err := c.VerifyColumns(models.ApplicationConfigColumns()); err != nil {
		return err
	}

	var errs []error
	rt := reflect.TypeFor[models.ApplicationConfig]()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		f, ok := c.byColumn[sf.Tag.Get("db")]
		if !ok {
			continue
		}
		field := c.fields[f]
		if want := goTypes[field.Type]; sf.Type != want {
			errs = append(errs, fmt.Errorf("%w: %s.%s is %s, %s needs %s", ErrSchema, rt.Name(), sf.Name, sf.Type, field.Key, want))
		}
	}

	return errors.Join(errs...)
}
