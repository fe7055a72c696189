// Package hexaurl packs short, case-insensitive, URL-safe identifiers
// into fixed-size byte arrays at four characters per three bytes, and
// validates them against configurable composition and delimiter
// rules.
//
// The alphabet is digits, letters (folded to lowercase), hyphen and
// underscore, each mapped to a 6-bit code from 1 to 63. Code 0 is
// reserved, so the trailing zero bytes of a packed array mark the end
// of the string without a length field, and the all-zero array is the
// empty string. Packed arrays compare byte-wise in identifier order,
// which makes them usable directly as map or database keys.
//
// Every operation is a pure function; compiled configurations are
// immutable and safe to share between goroutines.
package hexaurl

import (
	"bytes"
	"fmt"

	"github.com/hexaurl/hexaurl-go/config"
	"github.com/hexaurl/hexaurl-go/internal/common"
	"github.com/hexaurl/hexaurl-go/validate"
)

const (
	// Size is the packed width of the HexaURL type in bytes.
	Size = 16
	// MaxLen is the longest string a HexaURL can hold.
	MaxLen = 21
)

// Compiled once at startup and shared read-only; equivalent to
// building them explicitly at every call site.
var (
	defaultConfig = config.Default(Size)
	minimalConfig = config.Minimal(Size)
)

// DefaultConfig returns the shared default configuration for the
// HexaURL type: minimum length 3, alphanumeric plus hyphen, all
// delimiter placement disallowed.
func DefaultConfig() *config.Config { return defaultConfig }

// HexaURL is a packed 16-byte identifier holding up to 21
// characters. It is a plain value: comparable, usable as a map key,
// ordered by its bytes.
type HexaURL [Size]byte

// New encodes input under the default configuration.
func New(input string) (HexaURL, error) {
	return NewWithConfig(input, defaultConfig)
}

// NewWithConfig encodes input under cfg, which must have been
// compiled for Size bytes.
func NewWithConfig(input string, cfg *config.Config) (HexaURL, error) {
	var h HexaURL
	if cfg.Size() != Size {
		panic(fmt.Sprintf("hexaurl: config compiled for %d bytes, want %d", cfg.Size(), Size))
	}
	if err := validate.Validate(input, cfg); err != nil {
		return h, err
	}
	pack(h[:], input)
	return h, nil
}

// NewQuick encodes input after only the lookup-grade checks. Use it
// to re-derive a key for data already admitted through New.
func NewQuick(input string) (HexaURL, error) {
	var h HexaURL
	if err := validate.ValidateForLookup(input, Size); err != nil {
		return h, err
	}
	pack(h[:], input)
	return h, nil
}

// NewUnchecked encodes input with no checks; the caller guarantees
// validity.
func NewUnchecked(input string) HexaURL {
	var h HexaURL
	pack(h[:], input)
	return h
}

// FromBytes copies a packed value from b, which must be exactly Size
// bytes, and re-validates the recovered string under the minimal
// configuration (any representable identifier is accepted).
func FromBytes(b []byte) (HexaURL, error) {
	var h HexaURL
	if len(b) != Size {
		return h, fmt.Errorf("%w: expected %d bytes, got %d", validate.ErrInvalidLength, Size, len(b))
	}
	copy(h[:], b)
	if err := validate.Validate(h.String(), minimalConfig); err != nil {
		return HexaURL{}, err
	}
	return h, nil
}

// Decode returns the identifier re-validated under the default
// configuration.
func (h HexaURL) Decode() (string, error) {
	return Decode(h[:], defaultConfig)
}

// DecodeWithConfig returns the identifier re-validated under cfg.
func (h HexaURL) DecodeWithConfig(cfg *config.Config) (string, error) {
	return Decode(h[:], cfg)
}

// String returns the decoded identifier without re-validation.
func (h HexaURL) String() string {
	return DecodeUnchecked(h[:])
}

// Bytes returns the packed form.
func (h HexaURL) Bytes() []byte {
	return h[:]
}

// IsEmpty reports whether h holds the empty string.
func (h HexaURL) IsEmpty() bool {
	return h[0] == 0
}

// Len returns the character length of the identifier without
// decoding it. The byte length fixes the character count to within
// one; the low bits of the last content byte settle whether the final
// character slot of that group is occupied.
func (h HexaURL) Len() int {
	byteLen := common.FirstZero(h[:])
	if byteLen == 0 {
		return 0
	}
	base := byteLen / 3 * 4
	last := h[byteLen-1]

	var n int
	switch byteLen % 3 {
	case 0:
		if last&maskSixBits == 0 {
			n = base - 1
		} else {
			n = base
		}
	case 1:
		if last&maskTwoBits == 0 {
			n = base + 1
		} else {
			n = base + 2
		}
	case 2:
		if last&maskFourBits == 0 {
			n = base + 2
		} else {
			n = base + 3
		}
	}
	if n > MaxLen {
		return MaxLen
	}
	return n
}

// Compare orders h against other byte-wise, which equals identifier
// order ('-' < digits < letters < '_').
func (h HexaURL) Compare(other HexaURL) int {
	return bytes.Compare(h[:], other[:])
}

// MarshalText implements encoding.TextMarshaler with the decoded
// string, giving JSON support for free.
func (h HexaURL) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating under
// the default configuration.
func (h *HexaURL) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the packed
// form.
func (h HexaURL) MarshalBinary() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via
// FromBytes.
func (h *HexaURL) UnmarshalBinary(data []byte) error {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
