/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

const (
	hashSeed       uint32 = 0x345678
	hashMultiplier uint32 = 1000003
)

// # HashGenerator
//
// HashGenerator accumulates the structure of schema document into
// a 32-bit fingerprint. Equal schemas give equal fingerprints on every
// platform: nothing but folded values affects the result.
type HashGenerator struct {
	acc uint32
}

func NewHashGenerator() *HashGenerator {
	return &HashGenerator{acc: hashSeed}
}

func (h *HashGenerator) AddUint32(v uint32) {
	h.acc = h.acc*hashMultiplier ^ v
}

func (h *HashGenerator) AddInt(v int) {
	h.AddUint32(uint32(v))
}

// Folds 64-bit value as two 32-bit units, low first.
func (h *HashGenerator) AddUint64(v uint64) {
	h.AddUint32(uint32(v))
	h.AddUint32(uint32(v >> 32))
}

// Folds string length, then every byte of string.
func (h *HashGenerator) AddString(s string) {
	h.AddInt(len(s))
	for i := 0; i < len(s); i++ {
		h.AddUint32(uint32(s[i]))
	}
}

func (h *HashGenerator) Hash() uint32 { return h.acc }
