package hexaurl

import (
	"fmt"

	"github.com/hexaurl/hexaurl-go/config"
	"github.com/hexaurl/hexaurl-go/internal/common"
	"github.com/hexaurl/hexaurl-go/validate"
)

// scratchCap holds the decoded form of any capacity up to 256 bytes
// (341 characters) on the stack, so DecodeUnchecked allocates nothing
// beyond the returned string.
const scratchCap = 344

// Decode unpacks a cfg.Size()-byte array and re-validates the
// recovered string, so corrupted or adversarially built bytes cannot
// decode into an identifier that violates cfg.
func Decode(src []byte, cfg *config.Config) (string, error) {
	if len(src) > cfg.Size() {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", validate.ErrBytesTooLong, cfg.Size(), len(src))
	}
	if len(src) < cfg.Size() {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", validate.ErrBytesTooShort, cfg.Size(), len(src))
	}
	s := DecodeUnchecked(src)
	if err := validate.Validate(s, cfg); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeUnchecked unpacks src without re-validating the result.
// Trailing zero bytes never appear in the output.
func DecodeUnchecked(src []byte) string {
	var scratch [scratchCap]byte
	need := decodedCap(len(src))
	var buf []byte
	if need <= scratchCap {
		buf = scratch[:need]
	} else {
		buf = make([]byte, need)
	}
	return string(unpack(src, buf))
}

// decodedCap returns the character capacity of a size-byte array,
// equal to floor(size*4/3).
func decodedCap(size int) int {
	return size/3*4 + size%3
}

// unpack expands src three bytes to four characters into dst and
// returns the content slice. A chunk whose leading byte is zero is
// the implicit terminator (code 0 is never assigned to a character),
// so decoding stops there; the final trim drops the characters of a
// partially used last chunk.
func unpack(src, dst []byte) []byte {
	full := len(src) / 3
	stopped := false
	for i := 0; i < full; i++ {
		s := src[i*3 : i*3+3]
		if s[0] == 0 {
			stopped = true
			break
		}
		d := dst[i*4 : i*4+4]
		d[0] = decodeTable[s[0]>>2]
		d[1] = decodeTable[(s[0]&maskTwoBits)<<4|s[1]>>4]
		d[2] = decodeTable[(s[1]&maskFourBits)<<2|s[2]>>6]
		d[3] = decodeTable[s[2]&maskSixBits]
	}

	if !stopped {
		s := src[full*3:]
		d := dst[full*4:]
		switch len(s) {
		case 2:
			d[0] = decodeTable[s[0]>>2]
			d[1] = decodeTable[(s[0]&maskTwoBits)<<4|s[1]>>4]
		case 1:
			d[0] = decodeTable[s[0]>>2]
		}
	}

	return dst[:common.FirstZero(dst)]
}
