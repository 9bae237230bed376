package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks that the checkout callback genuinely came from
// Razorpay: the gateway signs orderID|paymentID with the key secret and
// sends the hex HMAC-SHA256 alongside. The comparison is constant-time
// via hmac.Equal.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the hex HMAC-SHA256 over orderID|paymentID keyed by
// secret, the same digest the gateway produces.
func Sign(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}
