package validate

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is; length bounds ride along in the
// wrapped message.
var (
	ErrStringTooShort = errors.New("hexaurl: string is too short")
	ErrStringTooLong  = errors.New("hexaurl: string is too long")

	// Byte-array variants, used when checking packed form directly.
	ErrBytesTooShort = errors.New("hexaurl: bytes below minimum length")
	ErrBytesTooLong  = errors.New("hexaurl: bytes exceed maximum length")
	ErrInvalidLength = errors.New("hexaurl: invalid byte length")

	ErrInvalidCharacter = errors.New("hexaurl: invalid character")

	ErrLeadingTrailingHyphen     = errors.New("hexaurl: leading or trailing hyphen not allowed")
	ErrLeadingTrailingUnderscore = errors.New("hexaurl: leading or trailing underscore not allowed")
	ErrConsecutiveHyphens        = errors.New("hexaurl: consecutive hyphens not allowed")
	ErrConsecutiveUnderscores    = errors.New("hexaurl: consecutive underscores not allowed")
	ErrAdjacentHyphenUnderscore  = errors.New("hexaurl: adjacent hyphen and underscore not allowed")
)

func stringTooShort(min int) error {
	return fmt.Errorf("%w: minimum length is %d characters", ErrStringTooShort, min)
}

func stringTooLong(max int) error {
	return fmt.Errorf("%w: maximum length is %d characters", ErrStringTooLong, max)
}
