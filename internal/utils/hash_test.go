package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("ak_token"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("ak_token", "key"))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("payload", "key"), HashString("payload", "key"))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("payload", "key-1"), HashString("payload", "key-2"))
}

func TestHashString_DifferentPayloads(t *testing.T) {
	assert.NotEqual(t, HashString("payload-1", "key"), HashString("payload-2", "key"))
}

func TestEqualHashes(t *testing.T) {
	h := HashString("payload", "key")

	assert.True(t, EqualHashes(h, HashString("payload", "key")))
	assert.False(t, EqualHashes(h, HashString("other", "key")))
	assert.False(t, EqualHashes(h, ""))
}
