package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ryft-xyz/ryft-indexer/internal/domain"
)

// VerifySignature checks the HMAC-SHA256 hex digest of the raw request
// body against the signature header value. The comparison is constant
// time. Returns domain.ErrInvalidSignature on mismatch.
func VerifySignature(body []byte, signature, signingKey string) error {
	h := hmac.New(sha256.New, []byte(signingKey))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.ErrInvalidSignature
	}
	return nil
}
