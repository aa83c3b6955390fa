// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj holds the output side of the encoder: the sink that encoded
// instruction words are written to.
package obj

import "encoding/binary"

// A WordWriter consumes fixed-width 32-bit instruction words in program
// order.
type WordWriter interface {
	EmitWord(w uint32)
}

// A Buffer is a growable little-endian code buffer.
type Buffer struct {
	p []byte
}

// EmitWord appends w in little-endian byte order.
func (b *Buffer) EmitWord(w uint32) {
	b.p = binary.LittleEndian.AppendUint32(b.p, w)
}

// PC returns the byte offset at which the next word will be written.
func (b *Buffer) PC() int64 {
	return int64(len(b.p))
}

// Bytes returns the encoded bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.p
}

// Words returns the emitted instruction words.
func (b *Buffer) Words() []uint32 {
	out := make([]uint32, 0, len(b.p)/4)
	for i := 0; i+4 <= len(b.p); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(b.p[i:]))
	}
	return out
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.p = b.p[:0]
}
