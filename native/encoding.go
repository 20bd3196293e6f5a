package native

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/gogpu/ggsvg/model"
)

// decoderFor returns the x/text encoding for enc. UTF-8 and glyph IDs
// have no decoder.
func decoderFor(enc model.TextEncoding) encoding.Encoding {
	switch enc {
	case model.TextEncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case model.TextEncodingUTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	}
	return nil
}

// DecodeText converts text bytes in enc to a Go string. Little-endian is
// assumed for UTF-16 and UTF-32 unless a byte order mark says otherwise.
// Glyph ID encoding cannot be decoded to text and returns
// ErrUnsupportedEncoding.
func DecodeText(b []byte, enc model.TextEncoding) (string, error) {
	switch enc {
	case model.TextEncodingUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid UTF-8", ErrUnsupportedEncoding)
		}
		return string(b), nil
	case model.TextEncodingGlyphID:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}

	dec := decoderFor(enc)
	if dec == nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}
	out, err := dec.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("native: decode %v: %w", enc, err)
	}
	return string(out), nil
}
