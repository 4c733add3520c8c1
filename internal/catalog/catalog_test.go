package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_CoversApplicationRow(t *testing.T) {
	c := Platform()

	require.NoError(t, c.VerifyModel())
	assert.Equal(t, len(models.ApplicationConfigColumns()), c.Len())
}

func TestPlatform_IsShared(t *testing.T) {
	assert.Same(t, Platform(), Platform())
}

func TestDefaultFor(t *testing.T) {
	c := Platform()

	tests := []struct {
		key  string
		want any
	}{
		{"chat.maxMessageLength", int64(1000)},
		{"attachments.maxSizeMB", int64(10)},
		{"security.requireAuthentication", true},
		{"notifications.email", false},
		{"contacts.managementMode", "LOCAL"},
		{"interface.theme", "light"},
		{"integration.customHeaders", json.RawMessage(`{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := c.DefaultFor(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultFor_UnknownKey(t *testing.T) {
	_, err := Platform().DefaultFor("chat.doesNotExist")

	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLookupColumn(t *testing.T) {
	f, ok := Platform().LookupColumn("chat_max_message_length")

	require.True(t, ok)
	assert.Equal(t, "chat.maxMessageLength", f.Key)
	assert.Equal(t, "chat", f.Category())
	assert.Equal(t, models.ValueTypeNumber, f.Type)
}

func TestKeysAndColumns_SameOrder(t *testing.T) {
	c := Platform()
	keys, columns := c.Keys(), c.Columns()

	require.Len(t, columns, len(keys))
	for i := range keys {
		f, ok := c.Lookup(keys[i])
		require.True(t, ok)
		assert.Equal(t, columns[i], f.Column)
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New(
		boolean("a.b", "a_b", true),
		boolean("a.b", "a_c", true),
		boolean("a.d", "a_b", true),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), `duplicate key "a.b"`)
	assert.Contains(t, err.Error(), `duplicate column "a_b"`)
}

func TestNew_RejectsBadDefault(t *testing.T) {
	_, err := New(number("a.n", "a_n", 0, 1, 10))

	assert.ErrorIs(t, err, ErrSchema)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(text("a.t", "a_t", "x", "y", "z"))
	})
}

func TestVerifyColumns(t *testing.T) {
	c := MustNew(
		boolean("a.one", "a_one", true),
		boolean("a.two", "a_two", true),
	)

	assert.NoError(t, c.VerifyColumns([]string{"a_two", "a_one"}))

	err := c.VerifyColumns([]string{"a_one", "a_three"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), `column "a_three" has no default`)
	assert.Contains(t, err.Error(), `column "a_two" of a.two is missing in storage`)
}

func TestFields_ReturnsCopy(t *testing.T) {
	c := MustNew(boolean("a.one", "a_one", true))

	fields := c.Fields()
	fields[0].Key = "changed"

	_, ok := c.Lookup("a.one")
	assert.True(t, ok)
}
