package output

// TypeModifier represents type modifiers
type TypeModifier int

const (
	TypeModifierNone  TypeModifier = 0
	TypeModifierConst TypeModifier = 1 << 0
)

// Type is the base interface for all types
type Type interface {
	VisitType(visitor TypeVisitor, context interface{}) interface{}
	HasModifier(modifier TypeModifier) bool
}

// BuiltinTypeName represents builtin type names
type BuiltinTypeName int

const (
	BuiltinTypeNameDynamic BuiltinTypeName = iota
	BuiltinTypeNameBool
	BuiltinTypeNameString
	BuiltinTypeNameInt
	BuiltinTypeNameNumber
	BuiltinTypeNameFunction
	BuiltinTypeNameInferred
	BuiltinTypeNameNone
)

// BuiltinType represents a builtin type
type BuiltinType struct {
	Name      BuiltinTypeName
	Modifiers TypeModifier
}

// NewBuiltinType creates a new BuiltinType
func NewBuiltinType(name BuiltinTypeName, modifiers TypeModifier) *BuiltinType {
	return &BuiltinType{
		Name:      name,
		Modifiers: modifiers,
	}
}

// VisitType implements Type interface
func (b *BuiltinType) VisitType(visitor TypeVisitor, context interface{}) interface{} {
	return visitor.VisitBuiltinType(b, context)
}

// HasModifier checks if the type has a modifier
func (b *BuiltinType) HasModifier(modifier TypeModifier) bool {
	return (b.Modifiers & modifier) != 0
}

// ExpressionType represents an expression type
type ExpressionType struct {
	Value      OutputExpression
	Modifiers  TypeModifier
	TypeParams []Type
}

// NewExpressionType creates a new ExpressionType
func NewExpressionType(value OutputExpression, modifiers TypeModifier, typeParams []Type) *ExpressionType {
	return &ExpressionType{
		Value:      value,
		Modifiers:  modifiers,
		TypeParams: typeParams,
	}
}

// VisitType implements Type interface
func (e *ExpressionType) VisitType(visitor TypeVisitor, context interface{}) interface{} {
	return visitor.VisitExpressionType(e, context)
}

// HasModifier checks if the type has a modifier
func (e *ExpressionType) HasModifier(modifier TypeModifier) bool {
	return (e.Modifiers & modifier) != 0
}

// ArrayType represents an array type
type ArrayType struct {
	Of        Type
	Modifiers TypeModifier
}

// NewArrayType creates a new ArrayType
func NewArrayType(of Type, modifiers TypeModifier) *ArrayType {
	return &ArrayType{
		Of:        of,
		Modifiers: modifiers,
	}
}

// VisitType implements Type interface
func (a *ArrayType) VisitType(visitor TypeVisitor, context interface{}) interface{} {
	return visitor.VisitArrayType(a, context)
}

// HasModifier checks if the type has a modifier
func (a *ArrayType) HasModifier(modifier TypeModifier) bool {
	return (a.Modifiers & modifier) != 0
}

// MapType represents a map type
type MapType struct {
	ValueType *Type
	Modifiers TypeModifier
}

// NewMapType creates a new MapType
func NewMapType(valueType *Type, modifiers TypeModifier) *MapType {
	return &MapType{
		ValueType: valueType,
		Modifiers: modifiers,
	}
}

// VisitType implements Type interface
func (m *MapType) VisitType(visitor TypeVisitor, context interface{}) interface{} {
	return visitor.VisitMapType(m, context)
}

// HasModifier checks if the type has a modifier
func (m *MapType) HasModifier(modifier TypeModifier) bool {
	return (m.Modifiers & modifier) != 0
}

// TransplantedType wraps a type borrowed from elsewhere (e.g. a TypeScript type
// reference) that the emitter treats opaquely.
type TransplantedType struct {
	Type      interface{}
	Modifiers TypeModifier
}

// NewTransplantedType creates a new TransplantedType
func NewTransplantedType(typ interface{}, modifiers TypeModifier) *TransplantedType {
	return &TransplantedType{
		Type:      typ,
		Modifiers: modifiers,
	}
}

// VisitType implements Type interface
func (t *TransplantedType) VisitType(visitor TypeVisitor, context interface{}) interface{} {
	return visitor.VisitTransplantedType(t, context)
}

// HasModifier checks if the type has a modifier
func (t *TransplantedType) HasModifier(modifier TypeModifier) bool {
	return (t.Modifiers & modifier) != 0
}

// TypeVisitor is the interface for visiting types
type TypeVisitor interface {
	VisitBuiltinType(typ *BuiltinType, context interface{}) interface{}
	VisitExpressionType(typ *ExpressionType, context interface{}) interface{}
	VisitArrayType(typ *ArrayType, context interface{}) interface{}
	VisitMapType(typ *MapType, context interface{}) interface{}
	VisitTransplantedType(typ *TransplantedType, context interface{}) interface{}
}

// Predefined type constants
var (
	DynamicType  = NewBuiltinType(BuiltinTypeNameDynamic, TypeModifierNone)
	InferredType = NewBuiltinType(BuiltinTypeNameInferred, TypeModifierNone)
	BoolType     = NewBuiltinType(BuiltinTypeNameBool, TypeModifierNone)
	IntType      = NewBuiltinType(BuiltinTypeNameInt, TypeModifierNone)
	NumberType   = NewBuiltinType(BuiltinTypeNameNumber, TypeModifierNone)
	StringType   = NewBuiltinType(BuiltinTypeNameString, TypeModifierNone)
	FunctionType = NewBuiltinType(BuiltinTypeNameFunction, TypeModifierNone)
	NoneType     = NewBuiltinType(BuiltinTypeNameNone, TypeModifierNone)
)

// UnaryOperator represents unary operators
type UnaryOperator int

const (
	UnaryOperatorMinus UnaryOperator = iota
	UnaryOperatorPlus
)

// BinaryOperator represents binary operators
type BinaryOperator int

const (
	BinaryOperatorEquals BinaryOperator = iota
	BinaryOperatorNotEquals
	BinaryOperatorAssign
	BinaryOperatorIdentical
	BinaryOperatorNotIdentical
	BinaryOperatorMinus
	BinaryOperatorPlus
	BinaryOperatorDivide
	BinaryOperatorMultiply
	BinaryOperatorModulo
	BinaryOperatorAnd
	BinaryOperatorOr
	BinaryOperatorBitwiseOr
	BinaryOperatorBitwiseAnd
	BinaryOperatorLower
	BinaryOperatorLowerEquals
	BinaryOperatorBigger
	BinaryOperatorBiggerEquals
	BinaryOperatorNullishCoalesce
	BinaryOperatorExponentiation
	BinaryOperatorIn
	BinaryOperatorAdditionAssignment
	BinaryOperatorSubtractionAssignment
	BinaryOperatorMultiplicationAssignment
	BinaryOperatorDivisionAssignment
	BinaryOperatorRemainderAssignment
	BinaryOperatorExponentiationAssignment
	BinaryOperatorAndAssignment
	BinaryOperatorOrAssignment
	BinaryOperatorNullishCoalesceAssignment
)
