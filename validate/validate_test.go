package validate

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"github.com/hexaurl/hexaurl-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCfg(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.NewBuilder().Build(16)
	require.NoError(t, err)
	return cfg
}

func buildCfg(t *testing.T, b *config.Builder, size int) *config.Config {
	t.Helper()
	cfg, err := b.Build(size)
	require.NoError(t, err)
	return cfg
}

func TestValidateLengthBounds(t *testing.T) {
	cfg := buildCfg(t, config.NewBuilder().MinLength(5), 16)
	require.ErrorIs(t, Validate("abcd", cfg), ErrStringTooShort)
	require.NoError(t, Validate("abcde", cfg))

	cfg = buildCfg(t, config.NewBuilder().MaxLength(8), 16)
	require.ErrorIs(t, Validate("abcdefghi", cfg), ErrStringTooLong)
	require.NoError(t, Validate("abcdefgh", cfg))

	// Capacity-derived maximum when no user maximum is set.
	cfg = defaultCfg(t)
	require.NoError(t, Validate(strings.Repeat("a", 21), cfg))
	require.ErrorIs(t, Validate(strings.Repeat("a", 22), cfg), ErrStringTooLong)
}

func TestValidateCharacterClass(t *testing.T) {
	cfg := defaultCfg(t)
	require.NoError(t, Validate("abc-123", cfg))
	require.NoError(t, Validate("ABC-123", cfg), "both cases admissible")
	require.ErrorIs(t, Validate("ab_c123", cfg), ErrInvalidCharacter, "underscore outside composition")
	require.ErrorIs(t, Validate("abc 123", cfg), ErrInvalidCharacter)
	require.ErrorIs(t, Validate("abcé", cfg), ErrInvalidCharacter, "non-ASCII")
	require.ErrorIs(t, Validate("abc\x00def", cfg), ErrInvalidCharacter)

	alnum := buildCfg(t, config.NewBuilder().Composition(config.Alphanumeric), 16)
	require.NoError(t, Validate("ABC123", alnum))
	require.ErrorIs(t, Validate("AB-C123", alnum), ErrInvalidCharacter)

	under := buildCfg(t, config.NewBuilder().Composition(config.AlphanumericUnderscore), 16)
	require.NoError(t, Validate("abc_123", under))
	require.ErrorIs(t, Validate("abc-123", under), ErrInvalidCharacter)
}

func TestValidateDelimiterRules(t *testing.T) {
	cfg := defaultCfg(t)
	require.ErrorIs(t, Validate("-abc", cfg), ErrLeadingTrailingHyphen)
	require.ErrorIs(t, Validate("abc-", cfg), ErrLeadingTrailingHyphen)
	require.ErrorIs(t, Validate("ab--cd", cfg), ErrConsecutiveHyphens)
	require.NoError(t, Validate("ab-cd", cfg))

	under := buildCfg(t, config.NewBuilder().Composition(config.AlphanumericUnderscore), 16)
	require.ErrorIs(t, Validate("_abc", under), ErrLeadingTrailingUnderscore)
	require.ErrorIs(t, Validate("abc_", under), ErrLeadingTrailingUnderscore)
	require.ErrorIs(t, Validate("ab__cd", under), ErrConsecutiveUnderscores)
	require.NoError(t, Validate("ab_cd", under))

	both := buildCfg(t, config.NewBuilder().Composition(config.AlphanumericHyphenUnderscore), 16)
	require.ErrorIs(t, Validate("ab-_cd", both), ErrAdjacentHyphenUnderscore)
	require.ErrorIs(t, Validate("ab_-cd", both), ErrAdjacentHyphenUnderscore)
	require.NoError(t, Validate("ab-cd_ef", both))
}

func TestValidateInteriorErrorPrecedence(t *testing.T) {
	// Both a consecutive run and a trailing hyphen are present; the
	// interior scan decides first.
	cfg := buildCfg(t, config.NewBuilder().MinLength(0), 16)
	require.ErrorIs(t, Validate("a--b-", cfg), ErrConsecutiveHyphens)

	// A lone delimiter has no interior, so the placement check fires.
	require.ErrorIs(t, Validate("-", cfg), ErrLeadingTrailingHyphen)
	under := buildCfg(t, config.NewBuilder().MinLength(0).Composition(config.AlphanumericUnderscore), 16)
	require.ErrorIs(t, Validate("_", under), ErrLeadingTrailingUnderscore)
}

func TestValidatePermissiveRules(t *testing.T) {
	rules := config.NewDelimiterRulesBuilder().
		AllowLeadingTrailingHyphens(true).
		AllowConsecutiveHyphens(true).
		Build()
	cfg := buildCfg(t, config.NewBuilder().Delimiter(rules), 16)
	require.NoError(t, Validate("--abc--", cfg))

	minimal := config.Minimal(16)
	require.NoError(t, Validate("-a_-b_", minimal))
	require.NoError(t, Validate("", minimal))
	require.NoError(t, Validate("___", minimal))
}

func TestValidateWordBoundaries(t *testing.T) {
	cfg := defaultCfg(t)

	// Delimiters on either side of the 8-byte word boundary must be
	// seen by the bulk pass and the remainder pass alike.
	require.ErrorIs(t, Validate("abcdefg--bcdef", cfg), ErrConsecutiveHyphens)
	require.ErrorIs(t, Validate("abcdefgh--cdef", cfg), ErrConsecutiveHyphens)
	require.ErrorIs(t, Validate("abcdefghijkl--", cfg), ErrConsecutiveHyphens)
	require.NoError(t, Validate("abcdefg-ijklmnop-rst", cfg))

	// Invalid byte in the tail after valid full words.
	require.ErrorIs(t, Validate("abcdefghijklmno!", cfg), ErrInvalidCharacter)
	// Invalid byte inside a full word.
	require.ErrorIs(t, Validate("abc!efghijklmnop", cfg), ErrInvalidCharacter)
}

func TestValidateForLookup(t *testing.T) {
	require.NoError(t, ValidateForLookup("abc123", 16))
	require.NoError(t, ValidateForLookup("!!! not an id", 16), "only length and ASCII are checked")
	require.NoError(t, ValidateForLookup(strings.Repeat("x", 21), 16))
	require.ErrorIs(t, ValidateForLookup(strings.Repeat("x", 22), 16), ErrStringTooLong)
	require.ErrorIs(t, ValidateForLookup("café", 16), ErrInvalidCharacter)
	require.ErrorIs(t, ValidateForLookup("aaaaaaaéaaa", 16), ErrInvalidCharacter, "non-ASCII inside a full word")
	require.NoError(t, ValidateForLookup(strings.Repeat("y", 10), 8))
	require.ErrorIs(t, ValidateForLookup(strings.Repeat("y", 11), 8), ErrStringTooLong)
}

// validateRef is the naive byte-by-byte rendition of the full
// contract, used to pin the word-parallel path.
func validateRef(input string, cfg *config.Config) error {
	if min := cfg.MinLength(); min > 0 && len(input) < min {
		return ErrStringTooShort
	}
	if len(input) > cfg.EffectiveMax() {
		return ErrStringTooLong
	}
	for i := 0; i < len(input); i++ {
		if !isAllowedByte(input[i], cfg.AllowHyphen(), cfg.AllowUnderscore()) {
			return ErrInvalidCharacter
		}
	}
	rules := cfg.Delimiter()
	isDelim := func(b byte) bool { return b == '-' || b == '_' }
	for i := 1; i < len(input); i++ {
		a, b := input[i-1], input[i]
		if !isDelim(a) || !isDelim(b) {
			continue
		}
		if a == b {
			if a == '-' && !rules.AllowConsecutiveHyphens() {
				return ErrConsecutiveHyphens
			}
			if a == '_' && !rules.AllowConsecutiveUnderscores() {
				return ErrConsecutiveUnderscores
			}
		} else if !rules.AllowAdjacentHyphenUnderscore() {
			return ErrAdjacentHyphenUnderscore
		}
	}
	if len(input) > 0 {
		first, last := input[0], input[len(input)-1]
		if (first == '-' || last == '-') && !rules.AllowLeadingTrailingHyphens() {
			return ErrLeadingTrailingHyphen
		}
		if (first == '_' || last == '_') && !rules.AllowLeadingTrailingUnderscores() {
			return ErrLeadingTrailingUnderscore
		}
	}
	return nil
}

var errKinds = []error{
	ErrStringTooShort, ErrStringTooLong, ErrInvalidCharacter,
	ErrLeadingTrailingHyphen, ErrLeadingTrailingUnderscore,
	ErrConsecutiveHyphens, ErrConsecutiveUnderscores,
	ErrAdjacentHyphenUnderscore,
}

func kindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range errKinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return err
}

func equivalenceConfigs(t *testing.T) []*config.Config {
	t.Helper()
	permissiveHyphens := config.NewDelimiterRulesBuilder().
		AllowLeadingTrailingHyphens(true).
		AllowConsecutiveHyphens(true).
		Build()
	return []*config.Config{
		buildCfg(t, config.NewBuilder().MinLength(0), 16),
		buildCfg(t, config.NewBuilder().MinLength(0).Composition(config.Alphanumeric), 16),
		buildCfg(t, config.NewBuilder().MinLength(0).Composition(config.AlphanumericUnderscore), 16),
		buildCfg(t, config.NewBuilder().MinLength(0).Composition(config.AlphanumericHyphenUnderscore), 16),
		buildCfg(t, config.NewBuilder().MinLength(0).Delimiter(permissiveHyphens), 16),
		buildCfg(t, config.NewBuilder().MinLength(3).MaxLength(12), 16),
		config.Minimal(16),
	}
}

func TestFastSlowEquivalenceRaw(t *testing.T) {
	configs := equivalenceConfigs(t)
	property := func(raw []byte) bool {
		if len(raw) > 25 {
			raw = raw[:25]
		}
		s := string(raw)
		for _, cfg := range configs {
			if kindOf(Validate(s, cfg)) != kindOf(validateRef(s, cfg)) {
				t.Logf("disagreement on %q", s)
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 2000}))
}

func TestFastSlowEquivalenceAlphabet(t *testing.T) {
	// Project random bytes onto the interesting alphabet so delimiter
	// placement cases actually occur.
	const charset = "abzAZ019-_-_"
	configs := equivalenceConfigs(t)
	property := func(raw []byte) bool {
		if len(raw) > 23 {
			raw = raw[:23]
		}
		b := make([]byte, len(raw))
		for i, c := range raw {
			b[i] = charset[int(c)%len(charset)]
		}
		s := string(b)
		for _, cfg := range configs {
			if kindOf(Validate(s, cfg)) != kindOf(validateRef(s, cfg)) {
				t.Logf("disagreement on %q", s)
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 4000}))
}

func TestValidateEmptyString(t *testing.T) {
	cfg := defaultCfg(t)
	require.ErrorIs(t, Validate("", cfg), ErrStringTooShort, "default minimum is 3")

	noMin := buildCfg(t, config.NewBuilder().MinLength(0), 16)
	assert.NoError(t, Validate("", noMin))
}
