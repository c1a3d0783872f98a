package syntax

import (
	"fmt"
	"iter"

	"github.com/quill-lang/quill/internal/buffer"
)

// TabWidth is the number of indentation columns a tab counts for.
// A space counts for one.
const TabWidth = 2

// Scanner performs lexical analysis on Quill source code.
//
// Block structure is inferred from indentation with a stack of open block
// widths. A ':' outside brackets opens a block (ScopeStart); the next logical
// line must be indented deeper than the enclosing block and its width is
// pushed. A logical line indented less than the innermost block closes
// blocks, one ScopeEnd per popped width, and must land exactly on an
// enclosing width. Lines indented deeper without a ':' continue the current
// line. Inside ( ) and [ ] newlines carry no indentation meaning.
type Scanner struct {
	source // embedded character reader

	trie *Trie // keyword table, shared and read-only

	// Current lexeme
	start  int // byte offset of the lexeme start
	tokPos Pos // position of the lexeme start

	// Indentation state
	indents   buffer.Buffer[int] // widths of open blocks; the bottom entry is 0
	width     int                // indentation width of the current line
	lineStart bool               // the next token begins a logical line
	openBlock bool               // a ':' is waiting for its indented body
	dedents   int                // ScopeEnd tokens still owed
	nest      int                // depth of open brackets

	// End of input
	done bool
	eof  Token
}

// NewScanner creates a Scanner over src. The scanner never modifies src.
// If trie is nil, DefaultTrie is used.
func NewScanner(filename string, src []byte, trie *Trie) *Scanner {
	if trie == nil {
		trie = DefaultTrie()
	}
	s := &Scanner{
		source:    newSource(filename, src),
		trie:      trie,
		lineStart: true,
	}
	s.indents.Append(0)
	return s
}

// Next scans and returns the next token. Error tokens report lexical
// errors; scanning may continue after one. Once EOF has been returned,
// every further call returns the same EOF token.
func (s *Scanner) Next() Token {
	if s.done {
		return s.eof
	}

	if s.dedents > 0 {
		s.dedents--
		return s.scopeEnd()
	}

	// 1. Skip blanks, comments and newlines
	s.skipBlank()

	// 2. Indentation boundaries
	if s.lineStart || s.ch < 0 {
		if tok, ok := s.indentation(); ok {
			return tok
		}
	}

	// 3. Record token start
	s.start = s.offs
	s.tokPos = s.pos()

	// 4. Scan one lexeme
	switch {
	case s.ch < 0:
		s.done = true
		s.eof = Token{Kind: _EOF, Text: "EOF", Pos: s.tokPos}
		return s.eof

	case isLetter(s.ch):
		return s.scanIdent()

	case isDigit(s.ch):
		return s.scanNumber()

	case s.ch == '"' || s.ch == '\'':
		return s.scanString()

	case isOperatorStart(s.ch):
		return s.scanOperator()

	default:
		ch := s.ch
		s.nextch()
		return s.errorf(UnknownChar, s.tokPos, "unknown character %q", ch)
	}
}

// All returns the remaining tokens as a lazy sequence. The sequence ends
// after yielding EOF; error tokens are yielded like any other token.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == _EOF {
				return
			}
		}
	}
}

// Tokens returns the token sequence of src, scanned on demand.
func Tokens(filename string, src []byte, trie *Trie) iter.Seq[Token] {
	return NewScanner(filename, src, trie).All()
}

// ScanAll drains s into a buffer. It stops after EOF, or at the first
// error token, in which case the error token is the last element and its
// *LexError is returned.
func ScanAll(s *Scanner) (*buffer.Buffer[Token], error) {
	toks := buffer.New[Token]()
	for tok := range s.All() {
		toks.Append(tok)
		if tok.Kind == _Error {
			return toks, tok.Err
		}
	}
	return toks, nil
}

// skipBlank skips blanks, comments and newlines, measuring the
// indentation of each new line.
func (s *Scanner) skipBlank() {
	for {
		switch s.ch {
		case ' ':
			s.width++
		case '\t':
			s.width += TabWidth
		case '\r':
		case '\n':
			if s.nest == 0 {
				s.lineStart = true
			}
			s.width = 0
		case '#':
			s.skipComment()
			continue
		default:
			return
		}
		s.nextch()
	}
}

// skipComment skips from '#' to the end of the line, leaving the newline.
func (s *Scanner) skipComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// indentation applies the block rules at the start of a logical line or
// at end of input. It reports a token when one must be emitted before
// the line's first lexeme.
func (s *Scanner) indentation() (Token, bool) {
	s.lineStart = false

	if s.ch < 0 {
		if s.openBlock {
			s.openBlock = false
			return s.errorf(InvalidIndent, s.pos(), "expected an indented block before end of file"), true
		}
		if n := s.indents.Len() - 1; n > 0 {
			s.indents.Resize(1)
			s.dedents = n - 1
			return s.scopeEnd(), true
		}
		return Token{}, false
	}

	top := s.indents.Last()

	if s.openBlock {
		s.openBlock = false
		if s.width <= top {
			// The line still closes every block it dedents past.
			s.dedents, _ = s.unindent()
			return s.errorf(InvalidIndent, s.pos(),
				"block indented %d columns, must be deeper than the enclosing %d", s.width, top), true
		}
		s.indents.Append(s.width)
		return Token{}, false
	}

	if s.width >= top {
		return Token{}, false
	}

	n, ok := s.unindent()
	if !ok {
		s.dedents = n
		return s.errorf(InvalidIndent, s.pos(),
			"unindent to %d columns does not match any enclosing block", s.width), true
	}
	s.dedents = n - 1
	return s.scopeEnd(), true
}

// unindent pops the levels deeper than the current line and reports how
// many were popped and whether the line lands exactly on a remaining level.
func (s *Scanner) unindent() (int, bool) {
	n := 0
	for s.indents.Len() > 1 && s.width < s.indents.Last() {
		s.indents.Remove()
		n++
	}
	return n, s.width == s.indents.Last()
}

// scopeEnd returns a synthetic block-end token at the current position.
func (s *Scanner) scopeEnd() Token {
	return Token{Kind: _ScopeEnd, Pos: s.pos()}
}

// token finishes the current lexeme as a token of kind k.
func (s *Scanner) token(k Kind) Token {
	return Token{Kind: k, Text: s.segment(s.start), Pos: s.tokPos}
}

// errorf returns an Error token carrying a *LexError.
func (s *Scanner) errorf(code LexErrorCode, pos Pos, format string, args ...interface{}) Token {
	err := &LexError{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	return Token{Kind: _Error, Text: err.Msg, Pos: pos, Err: err}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() Token {
	for isIdentChar(s.ch) {
		s.nextch()
	}
	tok := s.token(_Identifier)
	if k, ok := s.trie.Lookup(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanNumber scans an integer or floating-point literal.
func (s *Scanner) scanNumber() Token {
	kind := _Int
	s.scanDigits()

	if s.ch == '.' {
		if !isDigit(s.peek()) {
			pos := s.pos()
			s.nextch()
			return s.errorf(MalformedNumber, pos, "malformed number %q: expected digit after '.'", s.segment(s.start))
		}
		kind = _Float
		s.nextch()
		s.scanDigits()
	}

	if !endsNumber(s.ch) {
		return s.errorf(MalformedNumber, s.pos(), "malformed number %q: unexpected %q", s.segment(s.start), s.ch)
	}
	return s.token(kind)
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.nextch()
	}
}

// scanString scans a string literal delimited by ' or ".
// The content is kept verbatim, without the quotes.
func (s *Scanner) scanString() Token {
	quote := s.ch
	s.nextch()
	content := s.offs

	for s.ch != quote {
		if s.ch < 0 {
			return s.errorf(UnterminatedString, s.tokPos, "unterminated string")
		}
		s.nextch()
	}

	tok := Token{Kind: _String, Text: s.segment(content), Pos: s.tokPos}
	s.nextch() // closing quote
	return tok
}

// scanOperator scans an operator or delimiter.
func (s *Scanner) scanOperator() Token {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		if s.got('=') {
			return s.token(_PlusEqual)
		}
		return s.token(_Plus)
	case '-':
		if s.got('=') {
			return s.token(_MinusEqual)
		}
		return s.token(_Minus)
	case '*':
		return s.token(_Star)
	case '/':
		return s.token(_ForwardSlash)
	case '=':
		if s.got('=') {
			return s.token(_EqualEqual)
		}
		return s.token(_Equal)
	case '!':
		if s.got('=') {
			return s.token(_BangEqual)
		}
		return s.token(_Bang)
	case '<':
		if s.got('=') {
			return s.token(_LessEqual)
		}
		return s.token(_Less)
	case '>':
		if s.got('=') {
			return s.token(_GreaterEqual)
		}
		return s.token(_Greater)
	case ':':
		switch {
		case s.got(':'):
			return s.token(_ColonColon)
		case s.got('='):
			return s.token(_ColonEqual)
		case s.nest > 0:
			return s.token(_Colon)
		}
		s.openBlock = true
		return s.token(_ScopeStart)
	case '(':
		s.nest++
		return s.token(_LeftBracket)
	case ')':
		s.close()
		return s.token(_RightBracket)
	case '[':
		s.nest++
		return s.token(_LeftSquare)
	case ']':
		s.close()
		return s.token(_RightSquare)
	case ',':
		return s.token(_Comma)
	}

	panic("unreachable: isOperatorStart and scanOperator disagree on " + string(ch))
}

// got consumes the current character if it is ch.
func (s *Scanner) got(ch rune) bool {
	if s.ch == ch {
		s.nextch()
		return true
	}
	return false
}

func (s *Scanner) close() {
	if s.nest > 0 {
		s.nest--
	}
}
