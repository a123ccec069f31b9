package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers for locally-created records.
type Generator interface {
	New() string
}

type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Sequential issues id-1, id-2, ... Test helper.
type Sequential struct{ n int }

func (s *Sequential) New() string {
	s.n++
	return "id-" + hexDigit(s.n)
}

func hexDigit(n int) string {
	return hex.EncodeToString([]byte{byte(n)})
}
