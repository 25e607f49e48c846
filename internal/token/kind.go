package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal (decimal, 0x, 0o or 0b).
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a double-quoted string literal.
	StringLit

	KwImport   // import
	KwExport   // export
	KwFunc     // func
	KwLet      // let
	KwMut      // mut
	KwReturn   // return
	KwIf       // if
	KwElse     // else
	KwWhile    // while
	KwBreak    // break
	KwContinue // continue
	KwTrue     // true
	KwFalse    // false

	// Reserved for declarations the parser does not support yet.
	KwType     // type
	KwEnum     // enum
	KwRecord   // record
	KwVariant  // variant
	KwResource // resource

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	EqEq          // ==
	Bang          // !
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Amp           // &
	Pipe          // |
	Caret         // ^
	AndAnd        // &&
	OrOr          // ||
	Colon         // :
	Semicolon     // ;
	Comma         // ,
	Arrow         // ->
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:   "invalid",
	EOF:       "end of input",
	Ident:     "identifier",
	IntLit:    "integer literal",
	FloatLit:  "float literal",
	StringLit: "string literal",

	KwImport:   "import",
	KwExport:   "export",
	KwFunc:     "func",
	KwLet:      "let",
	KwMut:      "mut",
	KwReturn:   "return",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwBreak:    "break",
	KwContinue: "continue",
	KwTrue:     "true",
	KwFalse:    "false",
	KwType:     "type",
	KwEnum:     "enum",
	KwRecord:   "record",
	KwVariant:  "variant",
	KwResource: "resource",

	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Shl:           "<<",
	Shr:           ">>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	AndAnd:        "&&",
	OrOr:          "||",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	Arrow:         "->",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
}

// String returns the spelling of punctuation and keywords, and a short
// description for the other kinds.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsAssignOp reports whether k is "=" or one of the compound assignments.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}

// IsReservedDecl reports whether k starts a declaration that is lexed but
// not parsed yet.
func (k Kind) IsReservedDecl() bool {
	return k >= KwType && k <= KwResource
}
