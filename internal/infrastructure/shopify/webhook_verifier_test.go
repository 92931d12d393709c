package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	verifier := NewWebhookVerifier("secret")
	payload := []byte(`{"domain":"test.myshopify.com"}`)

	assert.NoError(t, verifier.Verify(payload, sign("secret", payload)))
}

func TestVerifyRejectsMissingHeader(t *testing.T) {
	verifier := NewWebhookVerifier("secret")

	assert.Error(t, verifier.Verify([]byte("{}"), ""))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier := NewWebhookVerifier("secret")
	payload := []byte(`{"domain":"test.myshopify.com"}`)

	assert.Error(t, verifier.Verify(payload, sign("other", payload)))
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	verifier := NewWebhookVerifier("secret")
	signature := sign("secret", []byte(`{"domain":"test.myshopify.com"}`))

	assert.Error(t, verifier.Verify([]byte(`{"domain":"evil.myshopify.com"}`), signature))
}
