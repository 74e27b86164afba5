package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// StreamSource is a rand.Source reading from a cipher stream. With the stream
// of the Ed25519 suite it yields cryptographically secure numbers, at the cost
// of speed and reproducibility.
type StreamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

// NewSecureSource returns a source backed by the suite random stream.
func NewSecureSource() *StreamSource {
	return &StreamSource{stream: suite.RandomStream()}
}

// NewSecureRand is a shortcut for rand.New(NewSecureSource()).
func NewSecureRand() *rand.Rand {
	return rand.New(NewSecureSource())
}

// Uint64 implements rand.Source. It is not safe for concurrent use.
func (s *StreamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
