package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// replacementChar is U+FFFD encoded as UTF-8.
var replacementChar = []byte("\uFFFD")

// utf8Validator copies valid UTF-8 through unchanged and fails on the first
// invalid sequence. With asciiOnly it also fails on bytes above 0x7F.
type utf8Validator struct {
	asciiOnly bool
	offset    int64
}

func (v *utf8Validator) Reset() { v.offset = 0 }

func (v *utf8Validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		if v.asciiOnly {
			return nDst, nSrc, fmt.Errorf("%w: byte 0x%02x at offset %d is not ascii", ErrMalformedInput, c, v.offset+int64(nSrc))
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			return nDst, nSrc, fmt.Errorf("%w: invalid utf-8 at offset %d", ErrMalformedInput, v.offset+int64(nSrc))
		}
		if nDst+size > len(dst) {
			err = transform.ErrShortDst
			break
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	v.offset += int64(nSrc)
	return nDst, nSrc, err
}

// strictDecoder runs an x/text decoder and fails when its output holds more
// U+FFFD than the consumed source encodes, since x/text emits U+FFFD for
// undecodable input.
type strictDecoder struct {
	name string
	dec  transform.Transformer

	// literals counts U+FFFD written in the source. Nil when the encoding
	// cannot represent U+FFFD, so every one in the output is an error.
	literals literalCounter
}

func (s *strictDecoder) Reset() {
	s.dec.Reset()
	if s.literals != nil {
		s.literals.reset()
	}
}

func (s *strictDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, err = s.dec.Transform(dst, src, atEOF)

	// Counted on every chunk: the UTF-16 counter follows the BOM
	literal := 0
	if s.literals != nil {
		literal = s.literals.count(src[:nSrc])
	}
	if bytes.Count(dst[:nDst], replacementChar) > literal {
		return nDst, nSrc, fmt.Errorf("%w: bytes not decodable as %s", ErrMalformedInput, s.name)
	}
	return nDst, nSrc, err
}

// literalCounter counts encoded U+FFFD in consecutive chunks of a source.
type literalCounter interface {
	count(src []byte) int
	reset()
}

// sequenceCounter counts a fixed byte sequence, for stateless encodings.
type sequenceCounter []byte

func (c sequenceCounter) count(src []byte) int { return bytes.Count(src, c) }
func (c sequenceCounter) reset()               {}

// utf16Counter counts U+FFFD code units at even offsets. With detectBOM the
// byte order follows a leading BOM, as the x/text decoder does.
type utf16Counter struct {
	defaultBigEndian bool
	detectBOM        bool

	bigEndian bool
	started   bool
}

func newUTF16Counter(bigEndian, detectBOM bool) *utf16Counter {
	return &utf16Counter{defaultBigEndian: bigEndian, detectBOM: detectBOM, bigEndian: bigEndian}
}

func (c *utf16Counter) reset() {
	c.bigEndian = c.defaultBigEndian
	c.started = false
}

func (c *utf16Counter) count(src []byte) int {
	if len(src) == 0 {
		return 0
	}

	i := 0
	if c.detectBOM && !c.started && len(src) >= 2 {
		switch {
		case src[0] == 0xfe && src[1] == 0xff:
			c.bigEndian, i = true, 2
		case src[0] == 0xff && src[1] == 0xfe:
			c.bigEndian, i = false, 2
		}
	}
	c.started = true

	hi, lo := byte(0xfd), byte(0xff) // little endian
	if c.bigEndian {
		hi, lo = 0xff, 0xfd
	}
	n := 0
	for ; i+1 < len(src); i += 2 {
		if src[i] == hi && src[i+1] == lo {
			n++
		}
	}
	return n
}
