// Package gameid generates sortable identifiers for simulated games in the
// TypeID style: a "gin_" prefix and a UUIDv7 in Crockford base32.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// Prefix is prepended to every game ID.
const Prefix = "gin"

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const suffixLen = 26

// RandSource supplies the random bits of an ID; *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator produces game IDs. A Generator with a RandSource is not safe for
// concurrent use unless the source is.
type Generator struct {
	randSource RandSource
	now        func() time.Time
}

// NewGenerator creates a generator. A nil randSource reads crypto/rand and a
// nil now uses the wall clock.
func NewGenerator(randSource RandSource, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{randSource: randSource, now: now}
}

// Generate creates a new game ID
func (g *Generator) Generate() string {
	return Prefix + "_" + encodeBase32(g.uuidV7())
}

// uuidV7 lays out a 48-bit millisecond timestamp, the version and variant
// bits, and 74 random bits.
func (g *Generator) uuidV7() [16]byte {
	var uuid [16]byte

	ms := uint64(g.now().UnixMilli())
	binary.BigEndian.PutUint64(uuid[:8], ms<<16)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return uuid
}

// encodeBase32 encodes 128 bits as 26 characters. The two padding bits sit
// at the top, so the first character is at most '7'.
func encodeBase32(data [16]byte) string {
	hi := binary.BigEndian.Uint64(data[:8])
	lo := binary.BigEndian.Uint64(data[8:])

	var out [suffixLen]byte
	for i := suffixLen - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Validate checks that id is a prefixed, well-formed game ID.
func Validate(id string) error {
	suffix, ok := strings.CutPrefix(id, Prefix+"_")
	if !ok {
		return fmt.Errorf("game ID must start with %q", Prefix+"_")
	}
	if len(suffix) != suffixLen {
		return fmt.Errorf("game ID suffix must be exactly %d characters, got %d", suffixLen, len(suffix))
	}
	if suffix[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", suffix[0])
	}
	for i, char := range suffix {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
