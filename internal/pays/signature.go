package pays

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"
)

// canonicalStringV1 serializes the signed callback fields in the order the
// gateway hashes them: gateway payment ID, merchant order number, status
// code, currency code, minor-unit amount, minor-unit divisor, concatenated
// with no separator. Any future gateway revision with a different field set
// or separator gets its own versioned function; this one never changes.
func canonicalStringV1(gatewayPaymentID int64, clientPaymentID string, status Status, currency Currency, amount, baseUnits int64) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(gatewayPaymentID, 10))
	b.WriteString(clientPaymentID)
	b.WriteString(string(status))
	b.WriteString(string(currency))
	b.WriteString(strconv.FormatInt(amount, 10))
	b.WriteString(strconv.FormatInt(baseUnits, 10))
	return b.String()
}

// Signer computes and checks the gateway's keyed hash over a canonical
// string.
type Signer struct {
	secret  []byte
	newHash func() hash.Hash
}

// NewSigner builds a signer for the shared secret. A nil digest constructor
// falls back to MD5, the algorithm the live gateway uses.
func NewSigner(secret string, newHash func() hash.Hash) *Signer {
	if newHash == nil {
		newHash = md5.New
	}
	return &Signer{secret: []byte(secret), newHash: newHash}
}

// Sign returns the hex-encoded HMAC of msg.
func (s *Signer) Sign(msg string) string {
	mac := hmac.New(s.newHash, s.secret)
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the HMAC of msg and compares it to the received hex
// digest in constant time. Hex case does not matter; undecodable input
// fails.
func (s *Signer) Verify(msg, received string) bool {
	got, err := hex.DecodeString(received)
	if err != nil {
		return false
	}
	mac := hmac.New(s.newHash, s.secret)
	mac.Write([]byte(msg))
	return hmac.Equal(mac.Sum(nil), got)
}
