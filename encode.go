package hexaurl

import (
	"github.com/hexaurl/hexaurl-go/config"
	"github.com/hexaurl/hexaurl-go/validate"
)

const (
	maskTwoBits  = 0b11
	maskFourBits = 0b1111
	maskSixBits  = 0b111111
)

// Encode validates input against cfg and packs it into a fresh
// cfg.Size()-byte array. Validation and packing are all-or-nothing; a
// rejected input means the identifier is not acceptable, there is
// nothing to retry.
func Encode(input string, cfg *config.Config) ([]byte, error) {
	if err := validate.Validate(input, cfg); err != nil {
		return nil, err
	}
	dst := make([]byte, cfg.Size())
	pack(dst, input)
	return dst, nil
}

// EncodeQuick packs input after only the lookup-grade checks (length
// and ASCII-ness). Use it to re-derive a key from data that already
// passed full validation when it was stored, not to admit new input.
func EncodeQuick(input string, size int) ([]byte, error) {
	if err := validate.ValidateForLookup(input, size); err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	pack(dst, input)
	return dst, nil
}

// EncodeUnchecked packs input with no checks at all. The caller
// guarantees input is valid for a size-byte array; violating that
// contract panics rather than producing a diagnosable error.
func EncodeUnchecked(input string, size int) []byte {
	dst := make([]byte, size)
	pack(dst, input)
	return dst
}

// pack writes the 6-bit packed form of input into dst, which must be
// zeroed and large enough. Four characters become three bytes,
// big-endian within the group; a 1-2 character tail packs
// left-justified so its unused low bits stay zero. Output bytes past
// the content keep their zero initialization, terminating the array.
func pack(dst []byte, input string) {
	full := len(input) / 4
	for i := 0; i < full; i++ {
		c := input[i*4 : i*4+4]
		a := encodeTable[c[0]]
		b := encodeTable[c[1]]
		cc := encodeTable[c[2]]
		d := encodeTable[c[3]]

		o := dst[i*3 : i*3+3]
		o[0] = a<<2 | b>>4
		o[1] = (b&maskFourBits)<<4 | cc>>2
		o[2] = (cc&maskTwoBits)<<6 | d
	}

	rem := input[full*4:]
	o := dst[full*3:]
	switch len(rem) {
	case 3:
		a := encodeTable[rem[0]]
		b := encodeTable[rem[1]]
		c := encodeTable[rem[2]]
		o[0] = a<<2 | b>>4
		o[1] = (b&maskFourBits)<<4 | c>>2
		o[2] = (c & maskTwoBits) << 6
	case 2:
		a := encodeTable[rem[0]]
		b := encodeTable[rem[1]]
		o[0] = a<<2 | b>>4
		o[1] = (b & maskFourBits) << 4
	case 1:
		o[0] = encodeTable[rem[0]] << 2
	}
}
