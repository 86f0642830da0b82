// Package scratch is a reusable byte arena for short-lived strings, such as
// per-frame UI labels, built without fmt or per-call heap allocation.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-threaded. Reset it once per frame; strings viewed from it
// stay valid until then.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// ----- Append primitives (chainable) -----

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F64 appends a float with prec digits after the decimal point.
func (b *Buffer) F64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// StringFrom copies the bytes written since mark.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

// ViewFrom is a zero-copy string over the bytes written since mark. Valid
// until the next Reset. A later append that grows the buffer leaves it intact.
func (b *Buffer) ViewFrom(mark int) string {
	n := len(b.buf) - mark
	if n <= 0 {
		return ""
	}
	return unsafe.String(&b.buf[mark], n)
}
