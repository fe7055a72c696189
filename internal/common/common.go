package common

// SWAR helpers shared by the codec and the validator. All masks are
// exact per byte lane for ASCII input; no carry or borrow can cross a
// lane boundary.

const (
	ones = 0x0101010101010101
	los  = 0x7f7f7f7f7f7f7f7f

	// Highs has the top bit of every byte lane set. A word with all
	// Highs bits clear is all-ASCII.
	Highs = 0x8080808080808080
)

// Broadcast fills all eight lanes of a word with b.
func Broadcast(b byte) uint64 {
	return uint64(b) * ones
}

// ZeroByteMask returns Highs-style bits marking every zero lane of x.
// Each lane sum stays below 0x100, so the mask is exact per lane. The
// usual (x-ones)&^x&Highs detection trick is not: its borrows can leak
// into the lane above a zero byte.
func ZeroByteMask(x uint64) uint64 {
	y := (x & los) + los
	return ^(y | x | los) & Highs
}

// EqMask marks every lane of x equal to b.
func EqMask(x uint64, b byte) uint64 {
	return ZeroByteMask(x ^ Broadcast(b))
}

// GEMask marks every lane of x that is >= c. Valid only when all
// lanes of x are below 0x80.
func GEMask(x uint64, c byte) uint64 {
	return (x + (0x80-uint64(c))*ones) & Highs
}

// LoadString64 reads 8 bytes of s starting at i as a little-endian
// word. The caller guarantees i+8 <= len(s).
func LoadString64(s string, i int) uint64 {
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// Packed arrays are a non-zero content prefix followed by a zero
// suffix, so the first zero byte is the content length. Small arrays
// scan linearly from the midpoint; larger ones binary-search.
const zeroScanThreshold = 16

// FirstZero returns the index of the first zero byte in b, or len(b)
// when every byte is non-zero.
func FirstZero(b []byte) int {
	if len(b) <= zeroScanThreshold {
		return linearZero(b)
	}
	return binaryZero(b)
}

func linearZero(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	mid := len(b) / 2
	if b[mid] == 0 {
		for i := mid - 1; i >= 0; i-- {
			if b[i] != 0 {
				return i + 1
			}
		}
		return 0
	}
	for i := mid + 1; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	return len(b)
}

func binaryZero(b []byte) int {
	lo, hi := 0, len(b)
	for lo < hi {
		if hi-lo <= zeroScanThreshold {
			return lo + linearZero(b[lo:hi])
		}
		mid := lo + (hi-lo)/2
		if b[mid] == 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
