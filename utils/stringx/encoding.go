// File: encoding.go
// Title: Text Encoding Resolution
// Description: Resolves encoding names for the case conversion functions and
//              splits encoded text into characters so that single characters
//              can be replaced without touching the surrounding bytes.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation on golang.org/x/text
// - 2026-10-19 v0.2.1: Character-wise transcoding, blank names rejected,
//                       decoder replacements reported as ENCODING_ERROR

package stringx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/msto63/strplus/core/errors"
)

// DefaultEncoding is assumed when no encoding argument is passed.
const DefaultEncoding = "UTF-8"

// decodeBufferSize holds the UTF-8 form of any single encoded character.
const decodeBufferSize = 64

// codec works on text in a named encoding. A nil enc means the text already
// is UTF-8.
type codec struct {
	name string
	enc  encoding.Encoding
}

// unit is one decoding step: the raw bytes consumed and the UTF-8 text they
// produced. Byte order marks and shift sequences produce no text.
type unit struct {
	raw  string
	text string
}

// resolveCodec picks the codec for the optional encoding argument of
// Capitalize and TitleCase. Only an absent argument selects DefaultEncoding.
func resolveCodec(operation string, names []string) (codec, error) {
	if len(names) > 1 {
		return codec{}, errors.StringxInvalidArgument(operation, "encoding", names, "at most one encoding name")
	}
	if len(names) == 0 {
		return codec{name: DefaultEncoding}, nil
	}

	name := strings.TrimSpace(names[0])
	if name == "" {
		return codec{}, errors.StringxInvalidArgument(operation, "encoding", names[0], "a non-empty encoding name")
	}

	if strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return codec{name: name}, nil
	}

	enc, err := LookupEncoding(name)
	if err != nil {
		return codec{}, errors.StringxInvalidArgument(operation, "encoding", name, "a supported IANA or WHATWG encoding name")
	}
	if enc == textunicode.UTF8 {
		return codec{name: name}, nil
	}
	return codec{name: name, enc: enc}, nil
}

// LookupEncoding resolves an IANA charset name or alias, falling back to the
// WHATWG labels known to browsers.
func LookupEncoding(name string) (encoding.Encoding, error) {
	// ianaindex returns a nil encoding without error for registered but
	// unsupported charsets
	enc, err := ianaindex.IANA.Encoding(name)
	if err == nil && enc != nil {
		return enc, nil
	}
	return htmlindex.Get(name)
}

func (c codec) isUTF8() bool {
	return c.enc == nil
}

// units decodes s one character at a time. Bytes the decoder can only
// replace with U+FFFD make the whole call fail. The returned codec encodes
// in the byte order announced by a leading byte order mark.
func (c codec) units(operation, s string) (codec, []unit, error) {
	dec := c.enc.NewDecoder()
	src := []byte(s)
	dst := make([]byte, decodeBufferSize)
	units := make([]unit, 0, len(src))

	for pos := 0; pos < len(src); {
		consumed := 0
		for end := pos + 1; end <= len(src); end++ {
			atEOF := end == len(src)
			nDst, nSrc, err := dec.Transform(dst, src[pos:end], atEOF)
			if nSrc > 0 {
				u := unit{raw: s[pos : pos+nSrc], text: string(dst[:nDst])}
				if pos == 0 && u.text == "" {
					c = c.withByteOrderMark(u.raw)
				}
				if strings.ContainsRune(u.text, utf8.RuneError) {
					if _, ok := c.reencode(u, u.text); !ok {
						return c, nil, errors.StringxEncodingError(operation, c.name,
							fmt.Errorf("malformed input at byte %d", pos))
					}
				}
				units = append(units, u)
				consumed = nSrc
				break
			}
			if err != transform.ErrShortSrc || atEOF {
				if err == nil || err == transform.ErrShortSrc {
					err = fmt.Errorf("incomplete input at byte %d", pos)
				}
				return c, nil, errors.StringxEncodingError(operation, c.name, err)
			}
		}
		pos += consumed
	}
	return c, units, nil
}

// withByteOrderMark fixes the byte order of a UTF-16 codec that reads byte
// order marks, so that replaced characters match the rest of the input.
func (c codec) withByteOrderMark(mark string) codec {
	for _, endianness := range []textunicode.Endianness{textunicode.BigEndian, textunicode.LittleEndian} {
		if c.enc != textunicode.UTF16(endianness, textunicode.UseBOM) &&
			c.enc != textunicode.UTF16(endianness, textunicode.ExpectBOM) {
			continue
		}
		switch mark {
		case "\xfe\xff":
			c.enc = textunicode.UTF16(textunicode.BigEndian, textunicode.IgnoreBOM)
		case "\xff\xfe":
			c.enc = textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM)
		}
		break
	}
	return c
}

// reencode encodes text for the position held by u. Prefixes a fresh
// encoder writes, such as a byte order mark, are dropped. It reports false
// when text has no form in the encoding or cannot be spliced in place of u.
func (c codec) reencode(u unit, text string) (string, bool) {
	original, err := c.enc.NewEncoder().String(u.text)
	if err != nil || !strings.HasSuffix(original, u.raw) {
		return "", false
	}
	prefix := original[:len(original)-len(u.raw)]

	raw, err := c.enc.NewEncoder().String(text)
	if err != nil || !strings.HasPrefix(raw, prefix) {
		return "", false
	}
	return raw[len(prefix):], true
}

// capitalizeUnit returns the raw bytes of u with its first character
// upper-cased, or u.raw when the upper-case form cannot be written.
func (c codec) capitalizeUnit(u unit) string {
	upper := capitalizeFirst(u.text)
	if upper == u.text {
		return u.raw
	}
	if raw, ok := c.reencode(u, upper); ok {
		return raw
	}
	return u.raw
}

func joinRaw(units []unit) string {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(u.raw)
	}
	return b.String()
}
