// Package lexer provides the regex-backed token primitives spec.md §2.1
// describes: whitespace-tolerant prefix consumption that returns the
// unconsumed remainder, case-insensitive and dot-matches-any throughout,
// mirroring the Python original's `m`/`m_split` helpers one-for-one but
// backed by a byte-offset Cursor instead of repeated string slicing
// (spec.md §9).
package lexer

import "regexp"

// Cursor is recursive-descent parsing state: the original input plus a
// byte offset into it. It never re-slices the input string.
type Cursor struct {
	input string
	pos   int
}

func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset, used by ParseError to report
// position context.
func (c *Cursor) Pos() int { return c.pos }

// SetPos rewinds the cursor to a previously observed offset, used to back
// out of a tentative axis match when the selector that must follow it
// fails to match.
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// Remainder returns the unconsumed suffix of the input.
func (c *Cursor) Remainder() string { return c.input[c.pos:] }

// AtEnd reports whether, ignoring leading whitespace, no input remains.
func (c *Cursor) AtEnd() bool {
	save := c.pos
	c.skipWhitespace()
	atEnd := c.pos >= len(c.input)
	c.pos = save
	return atEnd
}

func (c *Cursor) skipWhitespace() {
	for c.pos < len(c.input) && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// Consume skips leading whitespace and, if re matches the remaining
// input anchored at the current position, advances the cursor past the
// full match and returns the text captured by re's first (and only)
// capturing group. re must be anchored with ^ and compiled with the
// (?is) flags for case-insensitivity and dot-matches-newline, matching
// spec.md §4.1's "matching is case-insensitive and dot-matches-any".
func (c *Cursor) Consume(re *regexp.Regexp) (string, bool) {
	save := c.pos
	c.skipWhitespace()
	loc := re.FindStringSubmatchIndex(c.input[c.pos:])
	if loc == nil || loc[2] < 0 {
		c.pos = save
		return "", false
	}
	token := c.input[c.pos+loc[2] : c.pos+loc[3]]
	c.pos += loc[1]
	return token, true
}

// Peek behaves like Consume but does not advance the cursor.
func (c *Cursor) Peek(re *regexp.Regexp) (string, bool) {
	save := c.pos
	token, ok := c.Consume(re)
	c.pos = save
	return token, ok
}

// ConsumeStrict behaves like Consume but does not pre-skip leading
// whitespace, so re alone decides what may precede the match. Used for
// the `or`/`and` connectives, which spec.md §4.1 requires whitespace on
// both sides of, not just after: unlike every other token, a missing
// separator here must leave the keyword unconsumed rather than be
// tolerated.
func (c *Cursor) ConsumeStrict(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringSubmatchIndex(c.input[c.pos:])
	if loc == nil || loc[2] < 0 {
		return "", false
	}
	token := c.input[c.pos+loc[2] : c.pos+loc[3]]
	c.pos += loc[1]
	return token, true
}

// Compiled token primitives, one per grammar terminal in spec.md §4.1.
var (
	Axis         = regexp.MustCompile(`(?is)^(in|out)::`)
	Slash        = regexp.MustCompile(`(?is)^(/)`)
	Wildcard     = regexp.MustCompile(`(?is)^(\*)`)
	QName        = regexp.MustCompile(`(?is)^([a-z0-9_]+:[a-z0-9_]+)`)
	OpenBracket  = regexp.MustCompile(`(?is)^(\[)`)
	CloseBracket = regexp.MustCompile(`(?is)^(\])`)
	OpenParen    = regexp.MustCompile(`(?is)^(\()`)
	CloseParen   = regexp.MustCompile(`(?is)^(\))`)
	Comma        = regexp.MustCompile(`(?is)^(,)`)
	Dot          = regexp.MustCompile(`(?is)^(\.)`)
	// Or/And require whitespace on both sides of the keyword (spec.md
	// §4.1's `' or '`/`' and '` grammar literals) and are matched with
	// ConsumeStrict, not Consume, so that requirement isn't silently
	// discarded by generic leading-whitespace skipping.
	Or  = regexp.MustCompile(`(?is)^\s+(or)\s+`)
	And = regexp.MustCompile(`(?is)^\s+(and)\s+`)
	// Operator alternatives are ordered longest-first so 2-character
	// operators win over their 1-character prefixes (spec.md §4.1).
	Operator      = regexp.MustCompile(`(?is)^(<=|>=|!=|=|<|>)`)
	DoubleQuoted  = regexp.MustCompile(`(?is)^"([^"]*)"`)
	SingleQuoted  = regexp.MustCompile(`(?is)^'([^']*)'`)
	Number        = regexp.MustCompile(`(?is)^([0-9]+)`)
	TrueLiteral   = regexp.MustCompile(`(?is)^(true\(\))`)
	FalseLiteral  = regexp.MustCompile(`(?is)^(false\(\))`)
	TextFunction  = regexp.MustCompile(`(?is)^(text\(\))`)
	FunctionOpen  = regexp.MustCompile(`(?is)^(count|local-name|namespace-uri|uri|literal-value|literal-dt|exp|string-length|normalize-space|boolean|not|starts-with|contains|substring-before|substring-after|concat|number)\(`)
)
