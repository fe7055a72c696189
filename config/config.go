// Package config compiles identifier rules into immutable,
// capacity-aware configurations. A Config is built once for a given
// byte capacity and then shared read-only across every validate,
// encode and decode call.
package config

import (
	"errors"
	"fmt"
)

// Composition selects which character classes an identifier may use.
type Composition int

const (
	// Alphanumeric allows letters and digits only.
	Alphanumeric Composition = iota
	// AlphanumericHyphen additionally allows '-'. This is the default.
	AlphanumericHyphen
	// AlphanumericUnderscore additionally allows '_'.
	AlphanumericUnderscore
	// AlphanumericHyphenUnderscore allows both delimiters.
	AlphanumericHyphenUnderscore
)

// DefaultMinLength is the minimum identifier length applied when a
// builder leaves the minimum unset.
const DefaultMinLength = 3

var (
	// ErrInvalidLengthRange reports a user-supplied minimum above the
	// user-supplied maximum, before capacity clamping.
	ErrInvalidLengthRange = errors.New("hexaurl: min length exceeds max length")

	// ErrInvalidCompiledLengthRange reports a minimum above the
	// capacity-clamped maximum. Distinct from ErrInvalidLengthRange
	// because it can only be discovered once the byte capacity is
	// known.
	ErrInvalidCompiledLengthRange = errors.New("hexaurl: min length exceeds capacity-clamped max length")
)

// MaxStringLen returns the longest string a size-byte packed array
// can hold, at four characters per three bytes.
func MaxStringLen(size int) int {
	return size * 4 / 3
}

// Config is a compiled validation configuration. It is immutable and
// safe for concurrent use.
type Config struct {
	size                int
	minLength           int // 0 means no minimum
	effectiveMax        int
	composition         Composition
	delimiter           DelimiterRules
	allowHyphen         bool
	allowUnderscore     bool
	needsDelimiterCheck bool
}

// Size returns the byte capacity the configuration was compiled for.
func (c *Config) Size() int { return c.size }

// MinLength returns the minimum identifier length, 0 when none.
func (c *Config) MinLength() int { return c.minLength }

// EffectiveMax returns the maximum identifier length after clamping
// any user maximum to the byte capacity.
func (c *Config) EffectiveMax() int { return c.effectiveMax }

// Composition returns the character class rule.
func (c *Config) Composition() Composition { return c.composition }

// Delimiter returns the delimiter placement rules.
func (c *Config) Delimiter() DelimiterRules { return c.delimiter }

// AllowHyphen reports whether the composition admits '-'.
func (c *Config) AllowHyphen() bool { return c.allowHyphen }

// AllowUnderscore reports whether the composition admits '_'.
func (c *Config) AllowUnderscore() bool { return c.allowUnderscore }

// NeedsDelimiterCheck reports whether any admitted delimiter class
// carries a restrictive placement rule. When false the validator can
// skip its delimiter pass entirely.
func (c *Config) NeedsDelimiterCheck() bool { return c.needsDelimiterCheck }

// Builder accumulates configuration options before compilation.
// Unset fields take the defaults of the zero configuration: minimum
// length 3, no maximum, AlphanumericHyphen, all delimiter placement
// disallowed.
type Builder struct {
	minLength      int
	hasMin         bool
	maxLength      int
	hasMax         bool
	composition    Composition
	hasComposition bool
	delimiter      DelimiterRules
}

// NewBuilder returns an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MinLength sets the minimum identifier length. 0 disables the
// minimum.
func (b *Builder) MinLength(n int) *Builder {
	b.minLength = n
	b.hasMin = true
	return b
}

// MaxLength sets the maximum identifier length. 0 leaves only the
// capacity-derived maximum.
func (b *Builder) MaxLength(n int) *Builder {
	b.maxLength = n
	b.hasMax = true
	return b
}

// Composition sets the character class rule.
func (b *Builder) Composition(c Composition) *Builder {
	b.composition = c
	b.hasComposition = true
	return b
}

// Delimiter sets the delimiter placement rules.
func (b *Builder) Delimiter(r DelimiterRules) *Builder {
	b.delimiter = r
	return b
}

// Build compiles the configuration for a packed array of size bytes.
// Compilation is a pure function of the builder and size; the result
// never changes afterwards.
//
// Build panics on a non-positive size: capacity is a compile-time
// property of the caller, not input data.
func (b *Builder) Build(size int) (*Config, error) {
	if size <= 0 {
		panic("hexaurl: non-positive byte capacity")
	}

	min := DefaultMinLength
	if b.hasMin {
		min = b.minLength
	}
	max := 0
	if b.hasMax {
		max = b.maxLength
	}
	if max != 0 && min > max {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidLengthRange, min, max)
	}

	effectiveMax := MaxStringLen(size)
	if max != 0 && max < effectiveMax {
		effectiveMax = max
	}
	if min > effectiveMax {
		return nil, fmt.Errorf("%w: min %d, effective max %d", ErrInvalidCompiledLengthRange, min, effectiveMax)
	}

	comp := AlphanumericHyphen
	if b.hasComposition {
		comp = b.composition
	}
	rules := b.delimiter
	allowHyphen := comp == AlphanumericHyphen || comp == AlphanumericHyphenUnderscore
	allowUnderscore := comp == AlphanumericUnderscore || comp == AlphanumericHyphenUnderscore

	needs := (allowHyphen && !(rules.allowLeadingTrailingHyphens && rules.allowConsecutiveHyphens)) ||
		(allowUnderscore && !(rules.allowLeadingTrailingUnderscores && rules.allowConsecutiveUnderscores)) ||
		(allowHyphen && allowUnderscore && !rules.allowAdjacentHyphenUnderscore)

	return &Config{
		size:                size,
		minLength:           min,
		effectiveMax:        effectiveMax,
		composition:         comp,
		delimiter:           rules,
		allowHyphen:         allowHyphen,
		allowUnderscore:     allowUnderscore,
		needsDelimiterCheck: needs,
	}, nil
}

// Default compiles the default configuration for size bytes: minimum
// length 3, AlphanumericHyphen, all delimiter placement disallowed.
// Panics when size cannot hold the default minimum (size < 3), which
// is a programmer error rather than bad input.
func Default(size int) *Config {
	cfg, err := NewBuilder().Build(size)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Minimal compiles the most permissive configuration for size bytes:
// no minimum, both delimiters admitted, every placement allowed. It
// accepts any string the codec can represent.
func Minimal(size int) *Config {
	cfg, err := NewBuilder().
		MinLength(0).
		Composition(AlphanumericHyphenUnderscore).
		Delimiter(AllAllowed()).
		Build(size)
	if err != nil {
		panic(err) // unreachable: no minimum configured
	}
	return cfg
}
