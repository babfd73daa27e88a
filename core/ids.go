package core

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"insultbot/utils"
)

// NewID generates a new ULID with the given prefix.
// The format is: prefix_ULID
// Example: core.NewID("evt") returns "evt_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewID(prefix string) string {
	utils.AssertInvariant(strings.TrimSpace(prefix) != "", "prefix cannot be empty")

	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)

	return strings.ToLower(strings.TrimSpace(prefix)) + "_" + id.String()
}

// IsValidID checks that id has the prefix_ULID shape produced by NewID.
func IsValidID(id string) bool {
	prefix, ulidPart, found := strings.Cut(id, "_")
	if !found || prefix == "" {
		return false
	}
	for _, r := range prefix {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}

	if len(ulidPart) != ulid.EncodedSize {
		return false
	}
	// Crockford base32 excludes I, L, O and U
	for _, r := range ulidPart {
		if !((r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z' && r != 'I' && r != 'L' && r != 'O' && r != 'U')) {
			return false
		}
	}

	_, err := ulid.ParseStrict(ulidPart)
	return err == nil
}
