// Package lexer turns a propositional-logic statement into a stream of
// tokens. The grammar is single characters for most operators (`^` and, `v`
// or, `~` not) with three multi-character ones (`<=>`, `=>`, `:=`), the
// literals `0` and `1`, and letters for variable names. `v` is the only
// reserved letter and always lexes as Or.
package lexer

type Lexer struct {
	input string
	pos   int
}

// New creates a Lexer over the full statement text. Tokens are produced
// lazily, one per call to Next, in a single left-to-right pass.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token in the statement, or a Token with type EOF once
// the input is exhausted. Malformed input fails the call instead of producing
// a token.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isWhitespace(c):
			l.pos++
		case c == '^':
			l.pos++
			return Token{Type: And}, nil
		case c == 'v':
			l.pos++
			return Token{Type: Or}, nil
		case c == '~':
			l.pos++
			return Token{Type: Not}, nil
		case c == '(':
			l.pos++
			return Token{Type: ParenOpen}, nil
		case c == ')':
			l.pos++
			return Token{Type: ParenClose}, nil
		case c == '<':
			if l.lookingAt("<=>") {
				l.pos += 3
				return Token{Type: Equivalence}, nil
			}
			return Token{}, NewIncompleteOperatorError(l.rest(3), "<=>")
		case c == '=':
			if l.lookingAt("=>") {
				l.pos += 2
				return Token{Type: Implication}, nil
			}
			return Token{}, NewIncompleteOperatorError(l.rest(2), "=>")
		case c == ':':
			if l.lookingAt(":=") {
				l.pos += 2
				return Token{Type: Assign}, nil
			}
			// a lone `:` is not a token and not an error either
			l.pos++
		case c == '0':
			l.pos++
			return Token{Type: Literal, Value: false}, nil
		case c == '1':
			l.pos++
			return Token{Type: Literal, Value: true}, nil
		case isLetter(c):
			return Token{Type: Variable, Name: l.readName()}, nil
		default:
			return Token{}, NewUnexpectedCharError(c)
		}
	}
	return Token{Type: EOF}, nil
}

// lookingAt reports whether the input at the current position starts with s.
func (l *Lexer) lookingAt(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	return l.input[l.pos:l.pos+len(s)] == s
}

// rest returns up to n characters from the current position, for error
// messages about incomplete operators.
func (l *Lexer) rest(n int) string {
	end := l.pos + n
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[l.pos:end]
}

// readName consumes a maximal run of letters. `v` is reserved for Or so it
// terminates the run.
func (l *Lexer) readName() string {
	start := l.pos
	for l.pos < len(l.input) && isLetter(l.input[l.pos]) && l.input[l.pos] != 'v' {
		l.pos++
	}
	return l.input[start:l.pos]
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
