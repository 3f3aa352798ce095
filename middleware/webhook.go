package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the processor's HMAC of the request body.
const SignatureHeader = "X-Payment-Signature"

// VerifyWebhookSignature checks the processor's HMAC-SHA256 signature over
// the raw body before the event reaches the confirmation handler. The body
// is restored for downstream binding.
func VerifyWebhookSignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(SignatureHeader)
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing webhook signature"})
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		expected := Sign(secret, body)
		if !hmac.Equal([]byte(expected), []byte(provided)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Sign computes the signature value for a payload, shared with tests and
// local webhook replay tooling.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
