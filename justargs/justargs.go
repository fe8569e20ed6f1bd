// Package justargs parses a flat command-line token sequence into positional
// arguments, multi-valued options, and multi-occurrence boolean flags.
//
// An "option" is a switch that takes a value (-o value, --option value,
// --option=value). A "flag" is a switch with an implicit boolean value:
// positive flags record true, negative flags record false. Short switches may
// be batched (-abc is -a -b -c), with the constraint that an option can only
// be the last switch in a batch. The literal token "--" ends switch parsing;
// everything after it is positional, even tokens that look like switches.
//
// The caller names the valid switches through a Registry mapping each switch
// key to the logical name that collects its occurrences in the result. The
// package performs no cardinality validation, no help generation, and no type
// coercion; values are returned as raw strings in encounter order.
package justargs

// Parse scans tokens left to right, once, and returns the accumulated result.
//
// The first maxArgs positional arguments populate ParsedArgs.Args; any beyond
// the cap populate ParsedArgs.Rest. A cap of zero routes every positional to
// Rest.
//
// Errors are fatal to the call and never leave a partial result:
//   - *ArgumentError when tokens is nil, maxArgs is negative, or a Registry
//     map is nil
//   - *ConfigError when switch keys collide across the registry maps
//   - *SyntaxError when a token is malformed relative to the registry,
//     carrying the zero-based index of the offending token
func Parse(tokens []string, maxArgs int, reg Registry) (*ParsedArgs, error) {
	if tokens == nil {
		return nil, &ArgumentError{Name: "tokens", Reason: "must not be nil"}
	}
	if maxArgs < 0 {
		return nil, &ArgumentError{Name: "maxArgs", Reason: "must be at least 0"}
	}
	if err := reg.check(); err != nil {
		return nil, err
	}
	if err := reg.validate(); err != nil {
		return nil, err
	}
	return newParser(tokens, maxArgs, reg).parse()
}

// ParseArgs is a convenience wrapper over Parse taking the six switch tables
// as separate arguments instead of a Registry value.
func ParseArgs(
	tokens []string,
	maxArgs int,
	shortOptions map[rune]string,
	longOptions map[string]string,
	shortPositiveFlags map[rune]string,
	longPositiveFlags map[string]string,
	shortNegativeFlags map[rune]string,
	longNegativeFlags map[string]string,
) (*ParsedArgs, error) {
	return Parse(tokens, maxArgs, Registry{
		ShortOptions:       shortOptions,
		LongOptions:        longOptions,
		ShortPositiveFlags: shortPositiveFlags,
		LongPositiveFlags:  longPositiveFlags,
		ShortNegativeFlags: shortNegativeFlags,
		LongNegativeFlags:  longNegativeFlags,
	})
}
