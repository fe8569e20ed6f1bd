package justargs

import (
	"cmp"
	"slices"
)

// Registry supplies the six switch tables consumed by Parse. Each map takes a
// switch key (a single rune for short switches, a string for long switches)
// to the logical name that collects its occurrences in the result. Multiple
// keys may share a logical name, so -v and --verbose can feed the same flag
// bucket.
//
// Keys must be unique across the three short maps and across the three long
// maps; a collision is a *ConfigError. All six maps are required, but any of
// them may be empty.
type Registry struct {
	ShortOptions       map[rune]string
	LongOptions        map[string]string
	ShortPositiveFlags map[rune]string
	LongPositiveFlags  map[string]string
	ShortNegativeFlags map[rune]string
	LongNegativeFlags  map[string]string
}

// check reports nil maps before anything else runs.
func (r Registry) check() error {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"ShortOptions", r.ShortOptions != nil},
		{"LongOptions", r.LongOptions != nil},
		{"ShortPositiveFlags", r.ShortPositiveFlags != nil},
		{"LongPositiveFlags", r.LongPositiveFlags != nil},
		{"ShortNegativeFlags", r.ShortNegativeFlags != nil},
		{"LongNegativeFlags", r.LongNegativeFlags != nil},
	} {
		if !f.ok {
			return &ArgumentError{Name: f.name, Reason: "must not be nil"}
		}
	}
	return nil
}

// validate reports keys appearing in more than one short map or more than one
// long map. Runs once per Parse call, before the first token is read.
func (r Registry) validate() error {
	shortKeys := duplicates(r.ShortOptions, r.ShortPositiveFlags, r.ShortNegativeFlags)
	longKeys := duplicates(r.LongOptions, r.LongPositiveFlags, r.LongNegativeFlags)
	if len(shortKeys) == 0 && len(longKeys) == 0 {
		return nil
	}
	return &ConfigError{ShortKeys: shortKeys, LongKeys: longKeys}
}

// longSwitchNames returns every registered long switch name, for suggestions
// on unrecognized switches.
func (r Registry) longSwitchNames() []string {
	names := make([]string, 0, len(r.LongOptions)+len(r.LongPositiveFlags)+len(r.LongNegativeFlags))
	for name := range r.LongOptions {
		names = append(names, name)
	}
	for name := range r.LongPositiveFlags {
		names = append(names, name)
	}
	for name := range r.LongNegativeFlags {
		names = append(names, name)
	}
	return names
}

// duplicates returns the sorted set of keys present in more than one of the
// given maps. Sorting keeps ConfigError messages deterministic.
func duplicates[K cmp.Ordered](maps ...map[K]string) []K {
	seen := make(map[K]int)
	for _, m := range maps {
		for k := range m {
			seen[k]++
		}
	}
	var dups []K
	for k, n := range seen {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	slices.Sort(dups)
	return dups
}
