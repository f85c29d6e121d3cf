// Package charset resolves codec names to decoders and turns input bytes
// into UTF-8, failing instead of substituting on malformed input.
//
// Names are accepted in the spelling of Python codecs (utf_8, utf_16_le,
// cp1251, latin_1) as well as WHATWG and IANA labels (windows-1251,
// ISO-8859-5, Shift_JIS). Lookup order:
//
//  1. built-in aliases for the UTF family, Latin-1 and ASCII
//  2. golang.org/x/text/encoding/htmlindex
//  3. golang.org/x/text/encoding/ianaindex
package charset

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for charset operations.
var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrMalformedInput  = errors.New("malformed input")
)

// DefaultName is the codec used when no name is given.
const DefaultName = "utf-8"

// Codec is a resolved encoding.
type Codec struct {
	// Name is the canonical name of the encoding.
	Name string

	newTransformer func() transform.Transformer
}

// NewReader returns a reader yielding the UTF-8 decoding of r.
// Reads fail with ErrMalformedInput at the first undecodable sequence.
func (c *Codec) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, c.newTransformer())
}

// builtins covers names whose htmlindex mapping differs from Python codecs
// (latin1 and ascii map to windows-1252 there) or needs a BOM policy.
var builtins = map[string]func() *Codec{
	"utf-8":      utf8Codec,
	"utf8":       utf8Codec,
	"u8":         utf8Codec,
	"utf":        utf8Codec,
	"cp65001":    utf8Codec,
	"utf-8-sig":  utf8SigCodec,
	"utf-16":     utf16Codec,
	"utf-16-le":  utf16LECodec,
	"utf-16le":   utf16LECodec,
	"utf-16-be":  utf16BECodec,
	"utf-16be":   utf16BECodec,
	"latin-1":    latin1Codec,
	"latin1":     latin1Codec,
	"l1":         latin1Codec,
	"iso-8859-1": latin1Codec,
	"iso8859-1":  latin1Codec,
	"cp819":      latin1Codec,
	"ascii":      asciiCodec,
	"us-ascii":   asciiCodec,
	"646":        asciiCodec,
}

func utf8Codec() *Codec {
	return &Codec{Name: "utf-8", newTransformer: func() transform.Transformer {
		return &utf8Validator{}
	}}
}

func utf8SigCodec() *Codec {
	return &Codec{Name: "utf-8-sig", newTransformer: func() transform.Transformer {
		return transform.Chain(&utf8Validator{}, unicode.UTF8BOM.NewDecoder())
	}}
}

func asciiCodec() *Codec {
	return &Codec{Name: "ascii", newTransformer: func() transform.Transformer {
		return &utf8Validator{asciiOnly: true}
	}}
}

func latin1Codec() *Codec {
	return decoderCodec("iso-8859-1", charmap.ISO8859_1)
}

func utf16Codec() *Codec {
	return utf16DecoderCodec("utf-16", unicode.LittleEndian, unicode.UseBOM)
}

func utf16LECodec() *Codec {
	return utf16DecoderCodec("utf-16le", unicode.LittleEndian, unicode.IgnoreBOM)
}

func utf16BECodec() *Codec {
	return utf16DecoderCodec("utf-16be", unicode.BigEndian, unicode.IgnoreBOM)
}

func utf16DecoderCodec(name string, order unicode.Endianness, bom unicode.BOMPolicy) *Codec {
	enc := unicode.UTF16(order, bom)
	return &Codec{Name: name, newTransformer: func() transform.Transformer {
		return &strictDecoder{
			name:     name,
			dec:      enc.NewDecoder(),
			literals: newUTF16Counter(order == unicode.BigEndian, bom == unicode.UseBOM),
		}
	}}
}

// decoderCodec wraps enc. Encodings that can write U+FFFD (GB18030 and
// the like) let it through when the source spells it out; for the others,
// single-byte charmaps included, any U+FFFD means undecodable input.
func decoderCodec(name string, enc encoding.Encoding) *Codec {
	literal, err := enc.NewEncoder().Bytes(replacementChar)
	if err != nil {
		literal = nil
	}
	return &Codec{Name: name, newTransformer: func() transform.Transformer {
		s := &strictDecoder{name: name, dec: enc.NewDecoder()}
		if len(literal) > 0 {
			s.literals = sequenceCounter(literal)
		}
		return s
	}}
}

// Lookup resolves a codec name. An empty name resolves to UTF-8.
func Lookup(name string) (*Codec, error) {
	if strings.TrimSpace(name) == "" {
		return utf8Codec(), nil
	}

	for _, candidate := range candidates(name) {
		if mk, ok := builtins[candidate]; ok {
			return mk(), nil
		}
	}

	for _, candidate := range candidates(name) {
		if enc, err := htmlindex.Get(candidate); err == nil {
			return fromIndex(enc, candidate)
		}
	}

	for _, candidate := range candidates(name) {
		enc, err := ianaindex.IANA.Encoding(candidate)
		if err == nil && enc != nil {
			canonical, nameErr := ianaindex.IANA.Name(enc)
			if nameErr != nil {
				canonical = candidate
			}
			return decoderCodec(strings.ToLower(canonical), enc), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// fromIndex wraps an htmlindex result, keeping the strict UTF-8 path for utf-8.
func fromIndex(enc encoding.Encoding, label string) (*Codec, error) {
	if enc == unicode.UTF8 {
		return utf8Codec(), nil
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}
	return decoderCodec(canonical, enc), nil
}

// candidates returns the spellings tried for name: as given (lowercased),
// then with Python's underscores turned into dashes.
func candidates(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	dashed := strings.ReplaceAll(lower, "_", "-")
	if dashed == lower {
		return []string{lower}
	}
	return []string{lower, dashed}
}

// NewReader resolves name and returns the decoding reader over r.
func NewReader(r io.Reader, name string) (io.Reader, *Codec, error) {
	codec, err := Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	return codec.NewReader(r), codec, nil
}

// Names lists well-known codec names, for help and hints.
func Names() []string {
	names := []string{
		"utf_8", "utf_8_sig", "utf_16", "utf_16_le", "utf_16_be",
		"latin_1", "ascii", "cp1251", "cp1252", "cp866", "koi8_r",
		"iso8859_5", "shift_jis", "euc_jp", "gbk", "big5",
	}
	sort.Strings(names)
	return names
}
