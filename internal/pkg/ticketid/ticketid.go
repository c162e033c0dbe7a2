package ticketid

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"
)

const (
	Prefix    = "TKT-"
	digestLen = 8
)

// New returns a ticket id like "TKT-3F9C01AB". The digest input mixes the
// wall clock with random bytes so ids stay unique even for bookings created
// within the same second.
func New() string {
	entropy := make([]byte, 16)
	_, _ = rand.Read(entropy)

	h := sha1.New()
	h.Write([]byte(time.Now().Format(time.RFC3339Nano)))
	h.Write(entropy)

	digest := hex.EncodeToString(h.Sum(nil))
	return Prefix + strings.ToUpper(digest[:digestLen])
}
