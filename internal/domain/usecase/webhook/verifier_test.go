package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier(t *testing.T) {
	const secret = "sk_test_secret"
	payload := []byte(`{"event":"charge.success","data":{"amount":20000}}`)

	verifier := NewSignatureVerifier(secret)

	t.Run("Valid signature is accepted", func(t *testing.T) {
		assert.True(t, verifier.Verify(payload, signPayload(secret, payload)))
	})

	t.Run("Signature from a different secret is rejected", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, signPayload("sk_other_secret", payload)))
	})

	t.Run("Tampered payload is rejected", func(t *testing.T) {
		signature := signPayload(secret, payload)
		tampered := []byte(`{"event":"charge.success","data":{"amount":99999}}`)

		assert.False(t, verifier.Verify(tampered, signature))
	})

	t.Run("Empty signature is rejected", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, ""))
	})

	t.Run("Non-hex signature is rejected", func(t *testing.T) {
		assert.False(t, verifier.Verify(payload, "not-a-hex-string"))
	})

	t.Run("Truncated signature is rejected", func(t *testing.T) {
		signature := signPayload(secret, payload)

		assert.False(t, verifier.Verify(payload, signature[:64]))
	})
}
