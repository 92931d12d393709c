package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// WebhookVerifier verifies webhook payload signatures
type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier creates a verifier for the shared webhook secret
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Verify checks the payload against the base64-encoded HMAC-SHA256 header
func (v *WebhookVerifier) Verify(payload []byte, hmacHeader string) error {
	if hmacHeader == "" {
		return fmt.Errorf("missing hmac header")
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hmacHeader)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
