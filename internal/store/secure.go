package store

import (
	"encoding/base64"
	"encoding/json"

	"github.com/google/uuid"
)

// securePrefix namespaces the obfuscated entries inside the kv table.
const securePrefix = "secure_hustle_"

// obfuscationKeyRow is where the masking key lives, stored plain and
// outside the planner namespace so Clear never drops it.
const obfuscationKeyRow = "_sk"

// Secure layers a reversible byte-wise XOR mask over the key-value store.
// It keeps financial records from being readable by casually opening the
// database file; it is not encryption and offers no protection against
// anyone who also reads the key row. The mask key is generated once per
// profile and never rotated, so data written by older versions stays
// readable.
type Secure struct {
	store *Store
	key   []byte
}

// NewSecure returns the obfuscated view over s.
func NewSecure(s *Store) *Secure {
	return &Secure{store: s}
}

// maskKey returns the per-profile key, generating and persisting it on
// first use.
func (s *Secure) maskKey() []byte {
	if len(s.key) > 0 {
		return s.key
	}
	if raw, ok := s.store.getRaw(obfuscationKeyRow); ok && raw != "" {
		s.key = []byte(raw)
		return s.key
	}
	k := uuid.NewString()
	s.store.setRaw(obfuscationKeyRow, k)
	s.key = []byte(k)
	return s.key
}

// xorMask applies the repeating-key XOR. The transform is its own inverse
// for a fixed key.
func xorMask(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// SetSecure serializes value to JSON, masks it, and stores it
// base64-encoded under the secure namespace. Failures are silent.
func (s *Secure) SetSecure(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	masked := xorMask(data, s.maskKey())
	s.store.setRaw(securePrefix+key, base64.StdEncoding.EncodeToString(masked))
}

// GetSecure reverses the transform for the value stored under key. The
// second return is false when the key is absent or the stored text is
// corrupted (bad base64 or bad JSON after unmasking); it never errors out.
func GetSecure[T any](s *Secure, key string) (T, bool) {
	var zero T
	raw, ok := s.store.getRaw(securePrefix + key)
	if !ok {
		return zero, false
	}
	masked, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return zero, false
	}
	data := xorMask(masked, s.maskKey())
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false
	}
	return v, true
}

// RemoveSecure deletes the obfuscated value under key, if any.
func (s *Secure) RemoveSecure(key string) {
	s.store.removeRaw(securePrefix + key)
}

// ClearSecure removes every key in the secure namespace and nothing else.
func (s *Secure) ClearSecure() {
	s.store.removePrefix(securePrefix)
}
