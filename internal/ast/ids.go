package ast

import "strconv"

type (
	// верхнеуровневые элементы
	ImportID   uint32
	GlobalID   uint32
	FunctionID uint32
	// внутренние узлы
	TypeID       uint32
	StatementID  uint32
	ExpressionID uint32
	NameID       uint32
	// индекс в per-kind payload арене
	PayloadID uint32
)

const (
	NoImportID     ImportID     = ^ImportID(0)
	NoGlobalID     GlobalID     = ^GlobalID(0)
	NoFunctionID   FunctionID   = ^FunctionID(0)
	NoTypeID       TypeID       = ^TypeID(0)
	NoStatementID  StatementID  = ^StatementID(0)
	NoExpressionID ExpressionID = ^ExpressionID(0)
	NoNameID       NameID       = ^NameID(0)
	NoPayloadID    PayloadID    = ^PayloadID(0)
)

func (id ImportID) IsValid() bool     { return id != NoImportID }
func (id GlobalID) IsValid() bool     { return id != NoGlobalID }
func (id FunctionID) IsValid() bool   { return id != NoFunctionID }
func (id TypeID) IsValid() bool       { return id != NoTypeID }
func (id StatementID) IsValid() bool  { return id != NoStatementID }
func (id ExpressionID) IsValid() bool { return id != NoExpressionID }
func (id NameID) IsValid() bool       { return id != NoNameID }
func (id PayloadID) IsValid() bool    { return id != NoPayloadID }

func (id ImportID) String() string     { return formatID("import", uint32(id)) }
func (id GlobalID) String() string     { return formatID("global", uint32(id)) }
func (id FunctionID) String() string   { return formatID("func", uint32(id)) }
func (id TypeID) String() string       { return formatID("type", uint32(id)) }
func (id StatementID) String() string  { return formatID("stmt", uint32(id)) }
func (id ExpressionID) String() string { return formatID("expr", uint32(id)) }
func (id NameID) String() string       { return formatID("name", uint32(id)) }

func formatID(prefix string, v uint32) string {
	if v == ^uint32(0) {
		return prefix + "<none>"
	}
	return prefix + strconv.FormatUint(uint64(v), 10)
}
