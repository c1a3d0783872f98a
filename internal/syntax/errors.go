package syntax

import "fmt"

// LexErrorCode classifies lexical errors.
type LexErrorCode uint8

const (
	UnknownChar        LexErrorCode = iota // character that cannot start a token
	UnterminatedString                     // end of input before the closing quote
	MalformedNumber                        // numeric literal followed by a stray character
	InvalidIndent                          // block indentation that does not nest or match
)

var lexErrorNames = [...]string{
	UnknownChar:        "unknown character",
	UnterminatedString: "unterminated string",
	MalformedNumber:    "malformed number",
	InvalidIndent:      "invalid indentation",
}

func (c LexErrorCode) String() string {
	if int(c) < len(lexErrorNames) {
		return lexErrorNames[c]
	}
	return fmt.Sprintf("LexErrorCode(%d)", c)
}

// LexError is a lexical error. It is carried by the Error token that
// reports it.
type LexError struct {
	Code LexErrorCode
	Pos  Pos
	Msg  string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Status summarizes the outcome of a parse.
type Status uint8

const (
	StatusOK          Status = iota // no error
	StatusSyntaxError               // first error was a *SyntaxError
	StatusLexError                  // first error was a *LexError pulled from the scanner
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSyntaxError:
		return "syntax error"
	case StatusLexError:
		return "lex error"
	}
	return fmt.Sprintf("Status(%d)", s)
}
