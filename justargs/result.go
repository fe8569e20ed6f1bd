package justargs

import (
	"fmt"
	"slices"
	"strings"
)

// occurrences is an insertion-ordered multimap from logical names to the
// values accumulated for them during a scan. The names slice preserves
// first-occurrence order, which Go maps would otherwise lose.
type occurrences[V comparable] struct {
	names  []string
	values map[string][]V
}

func newOccurrences[V comparable]() *occurrences[V] {
	return &occurrences[V]{values: make(map[string][]V)}
}

func (o *occurrences[V]) add(name string, v V) {
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = append(o.values[name], v)
}

func (o *occurrences[V]) get(name string) ([]V, bool) {
	vs, ok := o.values[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(vs), true
}

func (o *occurrences[V]) snapshot() map[string][]V {
	m := make(map[string][]V, len(o.values))
	for name, vs := range o.values {
		m[name] = slices.Clone(vs)
	}
	return m
}

// equal compares contents without regard to name order, matching map equality
// semantics; per-name occurrence lists still compare in order.
func (o *occurrences[V]) equal(other *occurrences[V]) bool {
	if len(o.values) != len(other.values) {
		return false
	}
	for name, vs := range o.values {
		ws, ok := other.values[name]
		if !ok || !slices.Equal(vs, ws) {
			return false
		}
	}
	return true
}

// format renders entries in first-occurrence order for a stable String().
func (o *occurrences[V]) format(b *strings.Builder) {
	b.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%v", name, o.values[name])
	}
	b.WriteByte('}')
}

// ParsedArgs is the immutable result of a successful Parse call. It owns its
// containers exclusively: accessors return copies, so nothing a caller does
// to a returned slice or map reaches back into the result.
type ParsedArgs struct {
	args    []string
	rest    []string
	options *occurrences[string]
	flags   *occurrences[bool]
}

// newParsedArgs freezes the parser's call-local accumulators. The parser
// hands them over and drops its references, so no copying is needed here.
func newParsedArgs(args, rest []string, options *occurrences[string], flags *occurrences[bool]) *ParsedArgs {
	return &ParsedArgs{args: args, rest: rest, options: options, flags: flags}
}

// Args returns the primary positional arguments in encounter order.
func (p *ParsedArgs) Args() []string {
	return slices.Clone(p.args)
}

// Rest returns the positional arguments beyond the cap, in encounter order.
func (p *ParsedArgs) Rest() []string {
	return slices.Clone(p.rest)
}

// Option returns the values recorded for a logical option name, one per
// occurrence in encounter order. Reports false for names that never appeared;
// an option is never present with an empty list.
func (p *ParsedArgs) Option(name string) ([]string, bool) {
	return p.options.get(name)
}

// Flag returns the booleans recorded for a logical flag name, one per
// occurrence in encounter order: true for positive switches, false for
// negative ones. Reports false for names that never appeared.
func (p *ParsedArgs) Flag(name string) ([]bool, bool) {
	return p.flags.get(name)
}

// OptionNames returns the logical option names in first-occurrence order.
func (p *ParsedArgs) OptionNames() []string {
	return slices.Clone(p.options.names)
}

// FlagNames returns the logical flag names in first-occurrence order.
func (p *ParsedArgs) FlagNames() []string {
	return slices.Clone(p.flags.names)
}

// Options returns a snapshot of every recorded option.
func (p *ParsedArgs) Options() map[string][]string {
	return p.options.snapshot()
}

// Flags returns a snapshot of every recorded flag.
func (p *ParsedArgs) Flags() map[string][]bool {
	return p.flags.snapshot()
}

// Equal reports value equality: positional lists and per-name occurrence
// lists compare in order, option and flag maps compare without regard to
// name order.
func (p *ParsedArgs) Equal(other *ParsedArgs) bool {
	if other == nil {
		return false
	}
	return slices.Equal(p.args, other.args) &&
		slices.Equal(p.rest, other.rest) &&
		p.options.equal(other.options) &&
		p.flags.equal(other.flags)
}

func (p *ParsedArgs) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ParsedArgs[args=%v, rest=%v, options=", p.args, p.rest)
	p.options.format(&b)
	b.WriteString(", flags=")
	p.flags.format(&b)
	b.WriteByte(']')
	return b.String()
}
