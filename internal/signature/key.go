package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"webhook-guard/internal/common/errors"
)

// Key holds derived HMAC-SHA256 key material for webhook signature
// verification. A Key is immutable after creation and safe for concurrent
// use by any number of goroutines without synchronization.
type Key struct {
	material []byte
}

// DeriveKey imports a channel secret as verify-only key material.
//
// The secret's raw UTF-8 bytes become the HMAC-SHA256 key. An empty secret
// is invalid configuration and returns a config-typed error; derivation
// never fails for any non-empty secret.
func DeriveKey(channelSecret string) (*Key, error) {
	if channelSecret == "" {
		return nil, errors.ConfigError("channel secret is required")
	}

	return &Key{material: []byte(channelSecret)}, nil
}

// Verify reports whether signature is the standard base64 encoding of the
// HMAC-SHA256 digest of body under this key.
//
// A signature that is not valid standard base64 yields false, never an
// error. The digest comparison is constant time.
func (k *Key) Verify(body []byte, signature string) bool {
	provided, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, k.material)
	mac.Write(body)

	return hmac.Equal(provided, mac.Sum(nil))
}
