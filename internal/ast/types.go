package ast

// ValTypeKind enumerates the families of value types.
type ValTypeKind uint8

const (
	ValPrimitive ValTypeKind = iota
)

// PrimitiveType enumerates the built-in value types.
type PrimitiveType uint8

const (
	PrimBool PrimitiveType = iota
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimF32
	PrimF64
	PrimString
)

var primitiveNames = [...]string{
	PrimBool:   "bool",
	PrimU8:     "u8",
	PrimU16:    "u16",
	PrimU32:    "u32",
	PrimU64:    "u64",
	PrimI8:     "i8",
	PrimI16:    "i16",
	PrimI32:    "i32",
	PrimI64:    "i64",
	PrimF32:    "f32",
	PrimF64:    "f64",
	PrimString: "string",
}

var primitiveByName = func() map[string]PrimitiveType {
	m := make(map[string]PrimitiveType, len(primitiveNames))
	for i, n := range primitiveNames {
		m[n] = PrimitiveType(i)
	}
	return m
}()

func (p PrimitiveType) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "?"
}

// LookupPrimitive maps a type name such as "i32" to its PrimitiveType.
func LookupPrimitive(name string) (PrimitiveType, bool) {
	p, ok := primitiveByName[name]
	return p, ok
}

// ValType is a type that a value, argument or global can have.
type ValType struct {
	Kind      ValTypeKind
	Primitive PrimitiveType
}

// PrimitiveValType is shorthand for a ValPrimitive ValType.
func PrimitiveValType(p PrimitiveType) ValType {
	return ValType{Kind: ValPrimitive, Primitive: p}
}

func (v ValType) String() string {
	return v.Primitive.String()
}

// Param is one named argument of a function or function type.
type Param struct {
	Name NameID
	Type TypeID
}

// FnTypeInfo is implemented by anything that describes a callable shape.
type FnTypeInfo interface {
	Args() []Param
	// Return is NoTypeID when the function returns nothing.
	Return() TypeID
}

// FnType is the type of an imported function.
type FnType struct {
	Arguments  []Param
	ReturnType TypeID
}

func (f FnType) Args() []Param  { return f.Arguments }
func (f FnType) Return() TypeID { return f.ReturnType }
