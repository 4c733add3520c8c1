package catalog

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-chat-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAs(t *testing.T) {
	tests := []struct {
		name    string
		typ     models.ValueType
		text    string
		want    any
		wantErr bool
	}{
		{name: "number", typ: models.ValueTypeNumber, text: "500", want: int64(500)},
		{name: "number with spaces", typ: models.ValueTypeNumber, text: " 42 ", want: int64(42)},
		{name: "number malformed", typ: models.ValueTypeNumber, text: "abc", wantErr: true},
		{name: "number fraction", typ: models.ValueTypeNumber, text: "1.5", wantErr: true},
		{name: "boolean", typ: models.ValueTypeBoolean, text: "true", want: true},
		{name: "boolean malformed", typ: models.ValueTypeBoolean, text: "yes", wantErr: true},
		{name: "string", typ: models.ValueTypeString, text: "dark", want: "dark"},
		{name: "json compacted", typ: models.ValueTypeJSON, text: `{ "a": 1 }`, want: json.RawMessage(`{"a":1}`)},
		{name: "json malformed", typ: models.ValueTypeJSON, text: `{`, wantErr: true},
		{name: "unknown type", typ: "date", text: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAs(tt.typ, tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_Parse_ChecksBounds(t *testing.T) {
	f, _ := Platform().Lookup("chat.maxMessageLength")

	_, err := f.Parse("0")
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, err := f.Parse("500")
	require.NoError(t, err)
	assert.Equal(t, int64(500), v)
}

func TestField_Coerce(t *testing.T) {
	c := Platform()
	length, _ := c.Lookup("chat.maxMessageLength")
	mode, _ := c.Lookup("contacts.managementMode")
	emojis, _ := c.Lookup("chat.allowEmojis")
	headers, _ := c.Lookup("integration.customHeaders")

	t.Run("decoded json number", func(t *testing.T) {
		v, err := length.Coerce(float64(200))
		require.NoError(t, err)
		assert.Equal(t, int64(200), v)
	})
	t.Run("json.Number", func(t *testing.T) {
		v, err := length.Coerce(json.Number("300"))
		require.NoError(t, err)
		assert.Equal(t, int64(300), v)
	})
	t.Run("fractional number", func(t *testing.T) {
		_, err := length.Coerce(2.5)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
	t.Run("number out of range", func(t *testing.T) {
		_, err := length.Coerce(int64(100001))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
	t.Run("wrong type", func(t *testing.T) {
		_, err := emojis.Coerce("true")
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
	t.Run("enum member", func(t *testing.T) {
		v, err := mode.Coerce("HIBRIDO")
		require.NoError(t, err)
		assert.Equal(t, "HIBRIDO", v)
	})
	t.Run("enum outsider", func(t *testing.T) {
		_, err := mode.Coerce("REMOTE")
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
	t.Run("json object", func(t *testing.T) {
		v, err := headers.Coerce(map[string]any{"X-Tenant": "acme"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"X-Tenant":"acme"}`, string(v.(json.RawMessage)))
	})
}

func TestField_FromColumn(t *testing.T) {
	headers, _ := Platform().Lookup("integration.customHeaders")
	length, _ := Platform().Lookup("chat.maxMessageLength")

	v, err := headers.FromColumn(`{"a": true}`)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{"a":true}`), v)

	_, err = headers.FromColumn(int64(1))
	assert.ErrorIs(t, err, ErrInvalidValue)

	v, err = length.FromColumn(int64(750))
	require.NoError(t, err)
	assert.Equal(t, int64(750), v)
}

func TestField_ToColumn(t *testing.T) {
	headers, _ := Platform().Lookup("integration.customHeaders")

	assert.Equal(t, `{"a":1}`, headers.ToColumn(json.RawMessage(`{"a":1}`)))
	assert.Equal(t, int64(3), headers.ToColumn(int64(3)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "500", Format(int64(500)))
	assert.Equal(t, "false", Format(false))
	assert.Equal(t, "dark", Format("dark"))
	assert.Equal(t, `{"a":1}`, Format(json.RawMessage(`{"a":1}`)))
}
