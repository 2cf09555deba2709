package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureVerifier validates that an inbound funding notification genuinely
// originated from the payment gateway. The gateway signs the exact raw
// payload bytes with HMAC-SHA512 over the shared secret and sends the hex
// digest in a request header.
type SignatureVerifier struct {
	secret []byte
}

// NewSignatureVerifier creates a verifier bound to the gateway's shared secret
func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Verify computes the keyed hash over the raw payload and compares it to the
// provided signature in constant time, so verification leaks no timing
// information about how many leading digits matched.
func (v *SignatureVerifier) Verify(rawPayload []byte, providedSignature string) bool {
	if len(providedSignature) == 0 {
		return false
	}

	mac := hmac.New(sha512.New, v.secret)
	mac.Write(rawPayload)
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(providedSignature)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, provided)
}
