package validate

// isAllowedByte is the scalar membership test, used for the 0-7 bytes
// left over after full words and as the reference the word-parallel
// path is tested against.
func isAllowedByte(b byte, allowHyphen, allowUnderscore bool) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b == '-':
		return allowHyphen
	case b == '_':
		return allowUnderscore
	default:
		return false
	}
}
