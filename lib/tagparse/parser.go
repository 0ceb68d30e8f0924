// Package tagparse parses and compiles the argument mini-language of the
// react template tag:
//
//	react <componentName> [with <propsExpr>] [in <containerExpr>]
//
// The host engine tokenizes the tag arguments and feeds the stream to an
// ArgParser, which decides token by token what belongs to the tag grammar
// (the component name and the with/in keywords) versus the host's own
// expression grammar (prop and container expressions). Compile then
// reassembles inline object literals that the tokenizer split apart and
// produces a Node whose expressions are evaluated against the template
// environment at render time.
package tagparse

// Keywords of the tag argument mini-language.
const (
	KeywordWith = "with"
	KeywordIn   = "in"
)

// ArgParser filters the token stream of one tag occurrence. Use a fresh
// parser per occurrence.
type ArgParser struct {
	args     []string
	seenName bool
}

// NewArgParser creates an argument parser for one tag occurrence.
func NewArgParser() *ArgParser {
	return &ArgParser{}
}

// Feed consumes one token and reports whether the host engine should also
// process it under its own grammar.
//
// The first token is the component name and the bare with/in identifiers are
// keyword markers; both are fully consumed here and return false. Every
// other token is part of a prop or container expression and returns true so
// the host can resolve it too. All tokens are appended to the argument list
// either way - the compiler re-derives structure from keyword positions.
func (p *ArgParser) Feed(tok Token) bool {
	p.args = append(p.args, tok.Val)

	if !p.seenName {
		p.seenName = true
		return false
	}
	if tok.Type == TokenIdent && (tok.Val == KeywordWith || tok.Val == KeywordIn) {
		return false
	}
	return true
}

// Args returns the captured argument list in stream order.
func (p *ArgParser) Args() []string {
	return p.args
}
