package justargs

import (
	"fmt"
	"strings"

	"github.com/sigpwned/go-justargs/internal/fuzzy"
)

// maxSuggestionDistance bounds the edit distance for "did you mean" hints on
// unrecognized switches.
const maxSuggestionDistance = 2

// parser scans one token sequence. All state is call-local; Parse builds a
// fresh parser per call, so concurrent calls need no coordination.
type parser struct {
	reg     Registry
	tokens  []string
	maxArgs int

	position  int
	separated bool

	args    []string
	rest    []string
	options *occurrences[string]
	flags   *occurrences[bool]
}

func newParser(tokens []string, maxArgs int, reg Registry) *parser {
	return &parser{
		reg:     reg,
		tokens:  tokens,
		maxArgs: maxArgs,
		options: newOccurrences[string](),
		flags:   newOccurrences[bool](),
	}
}

// parse is the single left-to-right pass over the tokens. The first malformed
// token aborts with a *SyntaxError carrying that token's index.
func (p *parser) parse() (*ParsedArgs, error) {
	for p.position < len(p.tokens) {
		tok := p.tokens[p.position]

		switch {
		case !p.separated && tok == "--":
			// Separator: everything after it is positional. A later "--" is
			// an ordinary positional value, not a second separator.
			p.separated = true
		case p.separated:
			p.addPositional(tok)
		case strings.HasPrefix(tok, "--"):
			if err := p.parseLongSwitch(tok); err != nil {
				return nil, err
			}
		case len(tok) > 1 && tok[0] == '-':
			if err := p.parseShortBatch(tok); err != nil {
				return nil, err
			}
		default:
			// Bare "-" and empty tokens land here too.
			p.addPositional(tok)
		}

		p.position++
	}

	return newParsedArgs(p.args, p.rest, p.options, p.flags), nil
}

// parseLongSwitch handles --name and --name=value tokens. The switch name is
// everything between the dashes and the first "=", which can be empty; an
// empty name goes through ordinary lookup like any other.
func (p *parser) parseLongSwitch(tok string) error {
	body := tok[2:]

	name := body
	var attached string
	var hasAttached bool
	if eq := strings.IndexByte(body, '='); eq != -1 {
		name = body[:eq]
		attached = body[eq+1:]
		hasAttached = true
	}

	if logical, ok := p.reg.LongOptions[name]; ok {
		value := attached
		if !hasAttached {
			next, found := p.nextToken()
			if !found {
				return p.syntaxErrorf(ErrorTypeMissingValue,
					"option --%s requires a value but none given", name)
			}
			value = next
		}
		p.options.add(logical, value)
		return nil
	}
	if logical, ok := p.reg.LongPositiveFlags[name]; ok {
		if hasAttached {
			return p.syntaxErrorf(ErrorTypeUnexpectedValue, "flag --%s does not take a value", name)
		}
		p.flags.add(logical, true)
		return nil
	}
	if logical, ok := p.reg.LongNegativeFlags[name]; ok {
		if hasAttached {
			return p.syntaxErrorf(ErrorTypeUnexpectedValue, "flag --%s does not take a value", name)
		}
		p.flags.add(logical, false)
		return nil
	}

	err := p.syntaxErrorf(ErrorTypeUnknownSwitch, "unrecognized long switch --%s", name)
	err.Suggestion = fuzzy.Suggest(name, p.reg.longSwitchNames(), maxSuggestionDistance)
	return err
}

// parseShortBatch handles -f and -abc tokens. Every character after the dash
// is a switch. An option consumes the following token as its value, so it
// must be the last character in the batch; anything after it would be lost,
// and that is a hard error rather than a silent discard.
func (p *parser) parseShortBatch(tok string) error {
	batch := []rune(tok[1:])
	for i, r := range batch {
		if logical, ok := p.reg.ShortOptions[r]; ok {
			if i != len(batch)-1 {
				return p.syntaxErrorf(ErrorTypeBatchOrder,
					"option -%c must be the last character in the batch", r)
			}
			value, found := p.nextToken()
			if !found {
				return p.syntaxErrorf(ErrorTypeMissingValue,
					"option -%c requires a value but none given", r)
			}
			p.options.add(logical, value)
			return nil
		}
		if logical, ok := p.reg.ShortPositiveFlags[r]; ok {
			p.flags.add(logical, true)
			continue
		}
		if logical, ok := p.reg.ShortNegativeFlags[r]; ok {
			p.flags.add(logical, false)
			continue
		}

		err := p.syntaxErrorf(ErrorTypeUnknownSwitch, "unrecognized short switch -%c", r)
		// A word-shaped batch is usually a long switch typed with one dash,
		// so suggest against the long names using the whole batch.
		err.Suggestion = fuzzy.Suggest(string(batch), p.reg.longSwitchNames(), maxSuggestionDistance)
		return err
	}
	return nil
}

// addPositional routes a positional value to the primary list until the cap
// is reached, then to the overflow list. Applies uniformly on both sides of
// the separator.
func (p *parser) addPositional(tok string) {
	if len(p.args) < p.maxArgs {
		p.args = append(p.args, tok)
		return
	}
	p.rest = append(p.rest, tok)
}

// nextToken consumes the token after the current one as a switch value.
// Only called on success paths, so syntax errors always report the index of
// the switch token itself.
func (p *parser) nextToken() (string, bool) {
	if p.position+1 >= len(p.tokens) {
		return "", false
	}
	p.position++
	return p.tokens[p.position], true
}

func (p *parser) syntaxErrorf(typ ErrorType, format string, a ...any) *SyntaxError {
	return &SyntaxError{Type: typ, Index: p.position, Message: fmt.Sprintf(format, a...)}
}
