// Package syntax implements lexical and syntactic analysis for the Quill
// scripting language.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	_Error Kind = iota // lexical error
	_EOF               // end of file

	// Arithmetic operators
	_Plus         // +
	_PlusEqual    // +=
	_Minus        // -
	_MinusEqual   // -=
	_Star         // *
	_ForwardSlash // /

	// Assignment and comparison
	_Equal        // =
	_EqualEqual   // ==
	_Bang         // !
	_BangEqual    // !=
	_Less         // <
	_LessEqual    // <=
	_Greater      // >
	_GreaterEqual // >=

	// Colon forms
	_Colon      // : inside brackets
	_ColonColon // ::
	_ColonEqual // :=

	// Delimiters
	_Comma        // ,
	_LeftBracket  // (
	_RightBracket // )
	_LeftSquare   // [
	_RightSquare  // ]

	// Literals
	_Int        // 123
	_Float      // 1.5
	_String     // "text" or 'text'
	_Identifier // foo

	// Keywords
	_Proc
	_If
	_Else
	_For
	_While
	_Return
	_Struct
	_True
	_False
	_Nil
	_In
	_Pass

	// Indentation
	_ScopeStart // : opening an indented block
	_ScopeEnd   // synthetic end of an indented block

	kindCount
)

// kindNames maps kinds to the names used in token dumps.
var kindNames = [...]string{
	_Error: "Error",
	_EOF:   "EOF",

	_Plus:         "Plus",
	_PlusEqual:    "PlusEqual",
	_Minus:        "Minus",
	_MinusEqual:   "MinusEqual",
	_Star:         "Star",
	_ForwardSlash: "ForwardSlash",

	_Equal:        "Equal",
	_EqualEqual:   "EqualEqual",
	_Bang:         "Bang",
	_BangEqual:    "BangEqual",
	_Less:         "Less",
	_LessEqual:    "LessEqual",
	_Greater:      "Greater",
	_GreaterEqual: "GreaterEqual",

	_Colon:      "Colon",
	_ColonColon: "ColonColon",
	_ColonEqual: "ColonEqual",

	_Comma:        "Comma",
	_LeftBracket:  "LeftBracket",
	_RightBracket: "RightBracket",
	_LeftSquare:   "LeftSquare",
	_RightSquare:  "RightSquare",

	_Int:        "Int",
	_Float:      "Float",
	_String:     "String",
	_Identifier: "Identifier",

	_Proc:   "Proc",
	_If:     "If",
	_Else:   "Else",
	_For:    "For",
	_While:  "While",
	_Return: "Return",
	_Struct: "Struct",
	_True:   "True",
	_False:  "False",
	_Nil:    "Nil",
	_In:     "In",
	_Pass:   "Pass",

	_ScopeStart: "ScopeStart",
	_ScopeEnd:   "ScopeEnd",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Precedence returns the binding strength of a binary operator.
// Returns 0 for kinds that are not binary operators.
//
//	1: == !=
//	2: < <= > >=
//	3: + -
//	4: * /
func (k Kind) Precedence() int {
	switch k {
	case _EqualEqual, _BangEqual:
		return 1
	case _Less, _LessEqual, _Greater, _GreaterEqual:
		return 2
	case _Plus, _Minus:
		return 3
	case _Star, _ForwardSlash:
		return 4
	}
	return 0
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= _Proc && k <= _Pass
}

// IsLiteral reports whether k carries a literal value.
func (k Kind) IsLiteral() bool {
	return k == _Int || k == _Float || k == _String
}

// IsEOF reports whether k is the end-of-file kind.
func (k Kind) IsEOF() bool {
	return k == _EOF
}

// IsError reports whether k is the error kind.
func (k Kind) IsError() bool {
	return k == _Error
}

// IsScopeStart reports whether k opens an indented block.
func (k Kind) IsScopeStart() bool {
	return k == _ScopeStart
}

// IsScopeEnd reports whether k closes an indented block.
func (k Kind) IsScopeEnd() bool {
	return k == _ScopeEnd
}

// Token is one lexical unit. Tokens are values and are never modified
// after the scanner returns them.
type Token struct {
	Kind Kind
	Text string // lexeme; literal content for strings; message for errors
	Pos  Pos    // position of the first character of the lexeme
	Err  *LexError
}

// String formats the token as Kind(value: V, line:column).
func (t Token) String() string {
	return fmt.Sprintf("%s(value: %s, %d:%d)", t.Kind, t.Text, t.Pos.Line(), t.Pos.Col())
}
