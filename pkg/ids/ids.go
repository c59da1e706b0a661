// Package ids generates identifiers: random UUIDs and short, time-prefixed
// message IDs. Randomness and time are injectable through Generator so callers
// can produce deterministic IDs in tests.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMessagePrefix is prepended to IDs produced by MessageID.
const DefaultMessagePrefix = "msg-"

// Generator produces identifiers from an explicit random source and clock.
// The zero value is ready to use and reads from crypto/rand and time.Now.
type Generator struct {
	// Rand supplies random bytes. Nil means crypto/rand.Reader.
	Rand io.Reader
	// Now supplies the current time. Nil means time.Now.
	Now func() time.Time
}

var defaultGenerator = &Generator{}

// UUID returns a random version 4 UUID string. It panics only if the system
// random source fails, which leaves no sane way to continue.
func UUID() string {
	id, err := defaultGenerator.UUID()
	if err != nil {
		panic(fmt.Sprintf("ids: generate uuid: %v", err))
	}
	return id
}

// MessageID returns "msg-<base36 unix millis>-<8 hex chars>".
// IDs are unique in practice within a process, not across a distributed system.
func MessageID() string {
	id, err := defaultGenerator.MessageID()
	if err != nil {
		panic(fmt.Sprintf("ids: generate message id: %v", err))
	}
	return id
}

// UUID returns a version 4 UUID. It prefers google/uuid and falls back to
// building the string by hand from the generator's random bytes.
func (g *Generator) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.reader())
	if err == nil {
		return id.String(), nil
	}
	// The configured reader failed; build the ID from the system CSPRNG instead.
	return manualUUID(rand.Reader)
}

// manualUUID formats 16 random bytes as xxxxxxxx-xxxx-4xxx-Yxxx-xxxxxxxxxxxx.
func manualUUID(r io.Reader) (string, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

	var buf [36]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], b[10:])
	return string(buf[:]), nil
}

// MessageID returns an ID using DefaultMessagePrefix.
func (g *Generator) MessageID() (string, error) {
	return g.MessageIDWithPrefix(DefaultMessagePrefix)
}

// MessageIDWithPrefix returns prefix + base36(unix millis) + "-" + 4 random bytes in hex.
func (g *Generator) MessageIDWithPrefix(prefix string) (string, error) {
	var b [4]byte
	if _, err := io.ReadFull(g.reader(), b[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	millis := g.now().UnixMilli()
	return prefix + strconv.FormatInt(millis, 36) + "-" + hex.EncodeToString(b[:]), nil
}

func (g *Generator) reader() io.Reader {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.Reader
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
