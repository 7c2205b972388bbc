package corpus

import (
	"bytes"
	"fmt"

	"github.com/Milly/go-base2048"
	"github.com/keith-turner/ecoji/v2"
)

// Bundle is a generated (or loaded) pattern/text/marks fixture, the unit
// the "generate" CLI command encodes.
type Bundle struct {
	Pattern          []byte
	Text             []byte
	PatternInitMarks string
	TextInitMarks    string
	InitSearchLength uint64
}

// EncodeBase2048 transport-encodes a Bundle's pattern and text into
// printable Unicode strings using base2048, making a generated fixture
// copy-pasteable (e.g. into a bug report or a fixture file).
func EncodeBase2048(b Bundle) (pattern, text string) {
	return base2048.DefaultEncoding.EncodeToString(b.Pattern), base2048.DefaultEncoding.EncodeToString(b.Text)
}

// DecodeBase2048 reverses EncodeBase2048.
func DecodeBase2048(pattern, text string) (Bundle, error) {
	p, err := base2048.DefaultEncoding.DecodeString(pattern)
	if err != nil {
		return Bundle{}, fmt.Errorf("decode base2048 pattern: %w", err)
	}
	t, err := base2048.DefaultEncoding.DecodeString(text)
	if err != nil {
		return Bundle{}, fmt.Errorf("decode base2048 text: %w", err)
	}
	return Bundle{Pattern: p, Text: t}, nil
}

// EncodeEcoji transport-encodes a Bundle's pattern and text as emoji
// strings via ecoji v2, for archiving a generated fixture in a form safe
// to paste into chat or ticket text.
func EncodeEcoji(b Bundle) (pattern, text string, err error) {
	p, err := ecojiEncode(b.Pattern)
	if err != nil {
		return "", "", fmt.Errorf("encode ecoji pattern: %w", err)
	}
	t, err := ecojiEncode(b.Text)
	if err != nil {
		return "", "", fmt.Errorf("encode ecoji text: %w", err)
	}
	return p, t, nil
}

// DecodeEcoji reverses EncodeEcoji.
func DecodeEcoji(pattern, text string) (Bundle, error) {
	p, err := ecojiDecode(pattern)
	if err != nil {
		return Bundle{}, fmt.Errorf("decode ecoji pattern: %w", err)
	}
	t, err := ecojiDecode(text)
	if err != nil {
		return Bundle{}, fmt.Errorf("decode ecoji text: %w", err)
	}
	return Bundle{Pattern: p, Text: t}, nil
}

func ecojiEncode(data []byte) (string, error) {
	var out bytes.Buffer
	if err := ecoji.EncodeV2(bytes.NewReader(data), &out, 0); err != nil {
		return "", err
	}
	return out.String(), nil
}

func ecojiDecode(data string) ([]byte, error) {
	var out bytes.Buffer
	if err := ecoji.Decode(bytes.NewReader([]byte(data)), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
