package config

// DelimiterRules controls where hyphens and underscores may appear.
// The zero value disallows everything: no leading or trailing
// delimiter, no consecutive runs, no hyphen directly next to an
// underscore. Leading and trailing placement share one flag per
// delimiter type.
type DelimiterRules struct {
	allowLeadingTrailingHyphens     bool
	allowLeadingTrailingUnderscores bool
	allowConsecutiveHyphens         bool
	allowConsecutiveUnderscores     bool
	allowAdjacentHyphenUnderscore   bool
}

// NewDelimiterRules builds a rule set from explicit flags.
func NewDelimiterRules(leadingTrailingHyphens, leadingTrailingUnderscores, consecutiveHyphens, consecutiveUnderscores, adjacentHyphenUnderscore bool) DelimiterRules {
	return DelimiterRules{
		allowLeadingTrailingHyphens:     leadingTrailingHyphens,
		allowLeadingTrailingUnderscores: leadingTrailingUnderscores,
		allowConsecutiveHyphens:         consecutiveHyphens,
		allowConsecutiveUnderscores:     consecutiveUnderscores,
		allowAdjacentHyphenUnderscore:   adjacentHyphenUnderscore,
	}
}

// AllAllowed returns rules with every placement permitted.
func AllAllowed() DelimiterRules {
	return DelimiterRules{
		allowLeadingTrailingHyphens:     true,
		allowLeadingTrailingUnderscores: true,
		allowConsecutiveHyphens:         true,
		allowConsecutiveUnderscores:     true,
		allowAdjacentHyphenUnderscore:   true,
	}
}

// AllowLeadingTrailingHyphens reports whether an identifier may start
// or end with '-'.
func (r DelimiterRules) AllowLeadingTrailingHyphens() bool {
	return r.allowLeadingTrailingHyphens
}

// AllowLeadingTrailingUnderscores reports whether an identifier may
// start or end with '_'.
func (r DelimiterRules) AllowLeadingTrailingUnderscores() bool {
	return r.allowLeadingTrailingUnderscores
}

// AllowConsecutiveHyphens reports whether "--" is permitted.
func (r DelimiterRules) AllowConsecutiveHyphens() bool {
	return r.allowConsecutiveHyphens
}

// AllowConsecutiveUnderscores reports whether "__" is permitted.
func (r DelimiterRules) AllowConsecutiveUnderscores() bool {
	return r.allowConsecutiveUnderscores
}

// AllowAdjacentHyphenUnderscore reports whether "-_" or "_-" is
// permitted.
func (r DelimiterRules) AllowAdjacentHyphenUnderscore() bool {
	return r.allowAdjacentHyphenUnderscore
}

// DelimiterRulesBuilder assembles DelimiterRules field by field.
// Unset rules stay disallowed.
type DelimiterRulesBuilder struct {
	rules DelimiterRules
}

// NewDelimiterRulesBuilder returns a builder with every rule
// disallowed.
func NewDelimiterRulesBuilder() *DelimiterRulesBuilder {
	return &DelimiterRulesBuilder{}
}

// AllowLeadingTrailingHyphens sets the leading/trailing hyphen rule.
func (b *DelimiterRulesBuilder) AllowLeadingTrailingHyphens(allow bool) *DelimiterRulesBuilder {
	b.rules.allowLeadingTrailingHyphens = allow
	return b
}

// AllowLeadingTrailingUnderscores sets the leading/trailing
// underscore rule.
func (b *DelimiterRulesBuilder) AllowLeadingTrailingUnderscores(allow bool) *DelimiterRulesBuilder {
	b.rules.allowLeadingTrailingUnderscores = allow
	return b
}

// AllowConsecutiveHyphens sets the consecutive hyphen rule.
func (b *DelimiterRulesBuilder) AllowConsecutiveHyphens(allow bool) *DelimiterRulesBuilder {
	b.rules.allowConsecutiveHyphens = allow
	return b
}

// AllowConsecutiveUnderscores sets the consecutive underscore rule.
func (b *DelimiterRulesBuilder) AllowConsecutiveUnderscores(allow bool) *DelimiterRulesBuilder {
	b.rules.allowConsecutiveUnderscores = allow
	return b
}

// AllowAdjacentHyphenUnderscore sets the mixed-adjacency rule.
func (b *DelimiterRulesBuilder) AllowAdjacentHyphenUnderscore(allow bool) *DelimiterRulesBuilder {
	b.rules.allowAdjacentHyphenUnderscore = allow
	return b
}

// Build returns the assembled rules.
func (b *DelimiterRulesBuilder) Build() DelimiterRules {
	return b.rules
}
