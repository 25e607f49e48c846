package ast

// ExternalKind enumerates what an import can bring in.
type ExternalKind uint8

const (
	ExternalFunction ExternalKind = iota
)

// ExternalType describes the shape of an imported item.
type ExternalType struct {
	Kind ExternalKind
	Fn   FnType
}

// Import is `import name: func(...) -> T;`.
type Import struct {
	Ident    NameID
	External ExternalType
}

// Global is a component-level `let`.
type Global struct {
	Exported bool
	Mutable  bool
	Ident    NameID
	Type     TypeID
	Init     ExpressionID
}

// FunctionSignature is the header of a function declaration.
type FunctionSignature struct {
	Ident      NameID
	Arguments  []Param
	ReturnType TypeID // NoTypeID: ничего не возвращает
}

func (s FunctionSignature) Args() []Param  { return s.Arguments }
func (s FunctionSignature) Return() TypeID { return s.ReturnType }

// Function is a declared function with its body in source order.
type Function struct {
	Exported  bool
	Signature FunctionSignature
	Body      []StatementID
}
