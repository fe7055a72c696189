// Package validate decides whether a string is admissible as a
// HexaURL identifier under a compiled configuration: length bounds,
// character class membership and delimiter placement.
//
// The hot path is two-speed. A bulk pass classifies 8 bytes per step
// with word-parallel arithmetic and records whether any delimiter
// occurred at all; only when delimiters are present and the
// configuration restricts them does a precise scalar pass run.
package validate

import (
	"github.com/hexaurl/hexaurl-go/config"
	"github.com/hexaurl/hexaurl-go/internal/common"
)

// Validate checks input against cfg and returns nil when it is
// admissible. The returned error matches exactly one of the Err
// sentinels in this package.
func Validate(input string, cfg *config.Config) error {
	n := len(input)
	if min := cfg.MinLength(); min > 0 && n < min {
		return stringTooShort(min)
	}
	if max := cfg.EffectiveMax(); n > max {
		return stringTooLong(max)
	}

	allowHyphen := cfg.AllowHyphen()
	allowUnderscore := cfg.AllowUnderscore()

	var sawHyphen, sawUnderscore bool
	i := 0
	for ; i+8 <= n; i += 8 {
		ok, h, u := checkWord(common.LoadString64(input, i), allowHyphen, allowUnderscore)
		if !ok {
			return ErrInvalidCharacter
		}
		sawHyphen = sawHyphen || h
		sawUnderscore = sawUnderscore || u
	}
	for ; i < n; i++ {
		b := input[i]
		if !isAllowedByte(b, allowHyphen, allowUnderscore) {
			return ErrInvalidCharacter
		}
		sawHyphen = sawHyphen || b == '-'
		sawUnderscore = sawUnderscore || b == '_'
	}

	// A string without delimiters satisfies every placement rule, and
	// a configuration without restrictive rules cannot be violated.
	if (!sawHyphen && !sawUnderscore) || !cfg.NeedsDelimiterCheck() {
		return nil
	}
	return checkDelimiters(input, cfg.Delimiter())
}

// checkDelimiters runs the precise placement scan. Interior checks
// (consecutive runs, mixed adjacency) come first; leading/trailing
// placement is checked last, so a lone delimiter reports the
// leading/trailing error.
func checkDelimiters(input string, rules config.DelimiterRules) error {
	var last byte
	for i := 0; i < len(input); i++ {
		switch b := input[i]; b {
		case '-', '_':
			if last != 0 {
				if last == b {
					if b == '-' && !rules.AllowConsecutiveHyphens() {
						return ErrConsecutiveHyphens
					}
					if b == '_' && !rules.AllowConsecutiveUnderscores() {
						return ErrConsecutiveUnderscores
					}
				} else if !rules.AllowAdjacentHyphenUnderscore() {
					return ErrAdjacentHyphenUnderscore
				}
			}
			last = b
		default:
			last = 0
		}
	}

	first, end := input[0], input[len(input)-1]
	if (first == '-' || end == '-') && !rules.AllowLeadingTrailingHyphens() {
		return ErrLeadingTrailingHyphen
	}
	if (first == '_' || end == '_') && !rules.AllowLeadingTrailingUnderscores() {
		return ErrLeadingTrailingUnderscore
	}
	return nil
}

// ValidateForLookup checks only that input fits a size-byte array and
// is pure ASCII. It exists to re-derive a lookup key from data that
// already passed full validation when it was stored; never use it to
// admit new identifiers.
func ValidateForLookup(input string, size int) error {
	if max := config.MaxStringLen(size); len(input) > max {
		return stringTooLong(max)
	}
	i := 0
	for ; i+8 <= len(input); i += 8 {
		if common.LoadString64(input, i)&common.Highs != 0 {
			return ErrInvalidCharacter
		}
	}
	for ; i < len(input); i++ {
		if input[i] >= 0x80 {
			return ErrInvalidCharacter
		}
	}
	return nil
}
