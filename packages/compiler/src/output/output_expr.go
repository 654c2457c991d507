package output

import (
	"github.com/ngcompiler/ngc-go/packages/compiler/src/util"
)

// OutputExpression represents an expression in the output AST
// This interface extends the placeholder from constant_pool.go
type OutputExpression interface {
	GetType() Type
	GetSourceSpan() *util.ParseSourceSpan
	VisitExpression(visitor ExpressionVisitor, context interface{}) interface{}
	IsEquivalent(e OutputExpression) bool
	IsConstant() bool
	Clone() OutputExpression
}

// ExpressionVisitor is the interface for visiting expressions
type ExpressionVisitor interface {
	VisitReadVarExpr(ast *ReadVarExpr, context interface{}) interface{}
	VisitInvokeFunctionExpr(ast *InvokeFunctionExpr, context interface{}) interface{}
	VisitTaggedTemplateLiteralExpr(ast *TaggedTemplateLiteralExpr, context interface{}) interface{}
	VisitTemplateLiteralExpr(ast *TemplateLiteralExpr, context interface{}) interface{}
	VisitTemplateLiteralElementExpr(ast *TemplateLiteralElementExpr, context interface{}) interface{}
	VisitInstantiateExpr(ast *InstantiateExpr, context interface{}) interface{}
	VisitLiteralExpr(ast *LiteralExpr, context interface{}) interface{}
	VisitLocalizedString(ast *LocalizedString, context interface{}) interface{}
	VisitExternalExpr(ast *ExternalExpr, context interface{}) interface{}
	VisitConditionalExpr(ast *ConditionalExpr, context interface{}) interface{}
	VisitDynamicImportExpr(ast *DynamicImportExpr, context interface{}) interface{}
	VisitNotExpr(ast *NotExpr, context interface{}) interface{}
	VisitFunctionExpr(ast *FunctionExpr, context interface{}) interface{}
	VisitUnaryOperatorExpr(ast *UnaryOperatorExpr, context interface{}) interface{}
	VisitBinaryOperatorExpr(ast *BinaryOperatorExpr, context interface{}) interface{}
	VisitReadPropExpr(ast *ReadPropExpr, context interface{}) interface{}
	VisitReadKeyExpr(ast *ReadKeyExpr, context interface{}) interface{}
	VisitLiteralArrayExpr(ast *LiteralArrayExpr, context interface{}) interface{}
	VisitLiteralMapExpr(ast *LiteralMapExpr, context interface{}) interface{}
	VisitCommaExpr(ast *CommaExpr, context interface{}) interface{}
	VisitWrappedNodeExpr(ast *WrappedNodeExpr, context interface{}) interface{}
	VisitTypeofExpr(ast *TypeofExpr, context interface{}) interface{}
	VisitVoidExpr(ast *VoidExpr, context interface{}) interface{}
	VisitArrowFunctionExpr(ast *ArrowFunctionExpr, context interface{}) interface{}
	VisitParenthesizedExpr(ast *ParenthesizedExpr, context interface{}) interface{}
	VisitRegularExpressionLiteral(ast *RegularExpressionLiteralExpr, context interface{}) interface{}
}

// ExpressionBase is the base struct for all expressions
type ExpressionBase struct {
	Type       Type
	SourceSpan *util.ParseSourceSpan
}

// GetType returns the type of the expression
func (e *ExpressionBase) GetType() Type {
	return e.Type
}

// GetSourceSpan returns the source span
func (e *ExpressionBase) GetSourceSpan() *util.ParseSourceSpan {
	return e.SourceSpan
}

// NullSafeIsEquivalent compares two values that may be nil, deferring to their
// IsEquivalent method when both are present.
func NullSafeIsEquivalent(base, other interface{}) bool {
	if base == nil || other == nil {
		return base == other
	}
	if baseEq, ok := base.(interface{ IsEquivalent(interface{}) bool }); ok {
		return baseEq.IsEquivalent(other)
	}
	return false
}

// AreAllEquivalent reports whether two slices have the same length and pairwise
// equivalent elements.
func AreAllEquivalent(base, other []interface{}) bool {
	if len(base) != len(other) {
		return false
	}
	for i := 0; i < len(base); i++ {
		if !NullSafeIsEquivalent(base[i], other[i]) {
			return false
		}
	}
	return true
}

func areAllEquivalentExprs(base, other []OutputExpression) bool {
	if len(base) != len(other) {
		return false
	}
	for i := 0; i < len(base); i++ {
		if !base[i].IsEquivalent(other[i]) {
			return false
		}
	}
	return true
}

// ReadVarExpr represents a variable read expression
type ReadVarExpr struct {
	ExpressionBase
	Name string
}

// NewReadVarExpr creates a new ReadVarExpr
func NewReadVarExpr(name string, typ Type, sourceSpan *util.ParseSourceSpan) *ReadVarExpr {
	return &ReadVarExpr{
		ExpressionBase: ExpressionBase{
			Type:       typ,
			SourceSpan: sourceSpan,
		},
		Name: name,
	}
}

// VisitExpression implements OutputExpression interface
func (r *ReadVarExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadVarExpr(r, context)
}

// IsEquivalent checks if two expressions are equivalent
func (r *ReadVarExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadVarExpr); ok {
		return r.Name == other.Name
	}
	return false
}

// IsConstant returns false for variable reads
func (r *ReadVarExpr) IsConstant() bool {
	return false
}

// Clone clones the expression
func (r *ReadVarExpr) Clone() OutputExpression {
	return NewReadVarExpr(r.Name, r.Type, r.SourceSpan)
}

// Set creates an assignment expression
func (r *ReadVarExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(
		BinaryOperatorAssign,
		r,
		value,
		r.Type,
		r.SourceSpan,
	)
}

// LiteralExpr represents a literal expression
type LiteralExpr struct {
	ExpressionBase
	Value interface{} // number | string | bool | nil
}

// NewLiteralExpr creates a new LiteralExpr
func NewLiteralExpr(value interface{}, typ Type, sourceSpan *util.ParseSourceSpan) *LiteralExpr {
	return &LiteralExpr{
		ExpressionBase: ExpressionBase{
			Type:       typ,
			SourceSpan: sourceSpan,
		},
		Value: value,
	}
}

// VisitExpression implements OutputExpression interface
func (l *LiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralExpr(l, context)
}

// IsEquivalent checks if two expressions are equivalent
func (l *LiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralExpr); ok {
		return l.Value == other.Value
	}
	return false
}

// IsConstant returns true for literals
func (l *LiteralExpr) IsConstant() bool {
	return true
}

// Clone clones the expression
func (l *LiteralExpr) Clone() OutputExpression {
	return NewLiteralExpr(l.Value, l.Type, l.SourceSpan)
}

// Predefined expressions
var (
	NullExpr      = NewLiteralExpr(nil, nil, nil)
	TypedNullExpr = NewLiteralExpr(nil, InferredType, nil)
)

// BinaryOperatorExpr represents a binary operator expression
type BinaryOperatorExpr struct {
	ExpressionBase
	Operator BinaryOperator
	Lhs      OutputExpression
	Rhs      OutputExpression
}

// NewBinaryOperatorExpr creates a new BinaryOperatorExpr
func NewBinaryOperatorExpr(operator BinaryOperator, lhs, rhs OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *BinaryOperatorExpr {
	exprType := typ
	if exprType == nil && lhs != nil {
		exprType = lhs.GetType()
	}
	return &BinaryOperatorExpr{
		ExpressionBase: ExpressionBase{
			Type:       exprType,
			SourceSpan: sourceSpan,
		},
		Operator: operator,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}

// VisitExpression implements OutputExpression interface
func (b *BinaryOperatorExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitBinaryOperatorExpr(b, context)
}

// IsEquivalent checks if two expressions are equivalent
func (b *BinaryOperatorExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*BinaryOperatorExpr); ok {
		return b.Operator == other.Operator &&
			b.Lhs.IsEquivalent(other.Lhs) &&
			b.Rhs.IsEquivalent(other.Rhs)
	}
	return false
}

// IsConstant returns false for binary operators
func (b *BinaryOperatorExpr) IsConstant() bool {
	return false
}

// Clone clones the expression
func (b *BinaryOperatorExpr) Clone() OutputExpression {
	return NewBinaryOperatorExpr(
		b.Operator,
		b.Lhs.Clone(),
		b.Rhs.Clone(),
		b.Type,
		b.SourceSpan,
	)
}

// IsAssignment checks if the operator is an assignment operator
func (b *BinaryOperatorExpr) IsAssignment() bool {
	return b.Operator == BinaryOperatorAssign ||
		b.Operator == BinaryOperatorAdditionAssignment ||
		b.Operator == BinaryOperatorSubtractionAssignment ||
		b.Operator == BinaryOperatorMultiplicationAssignment ||
		b.Operator == BinaryOperatorDivisionAssignment ||
		b.Operator == BinaryOperatorRemainderAssignment ||
		b.Operator == BinaryOperatorExponentiationAssignment ||
		b.Operator == BinaryOperatorAndAssignment ||
		b.Operator == BinaryOperatorOrAssignment ||
		b.Operator == BinaryOperatorNullishCoalesceAssignment
}

type InvokeFunctionExpr struct {
	ExpressionBase
	Fn   OutputExpression
	Args []OutputExpression
	Pure bool
}

func NewInvokeFunctionExpr(fn OutputExpression, args []OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan, pure bool) *InvokeFunctionExpr {
	return &InvokeFunctionExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Fn:             fn,
		Args:           args,
		Pure:           pure,
	}
}

func (i *InvokeFunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInvokeFunctionExpr(i, context)
}

func (i *InvokeFunctionExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*InvokeFunctionExpr); ok {
		return i.Fn.IsEquivalent(other.Fn) && areAllEquivalentExprs(i.Args, other.Args) && i.Pure == other.Pure
	}
	return false
}

func (i *InvokeFunctionExpr) IsConstant() bool {
	return false
}

func (i *InvokeFunctionExpr) Clone() OutputExpression {
	args := make([]OutputExpression, len(i.Args))
	for j, arg := range i.Args {
		args[j] = arg.Clone()
	}
	return NewInvokeFunctionExpr(i.Fn.Clone(), args, i.Type, i.SourceSpan, i.Pure)
}

type TaggedTemplateLiteralExpr struct {
	ExpressionBase
	Tag      OutputExpression
	Template *TemplateLiteralExpr
}

func NewTaggedTemplateLiteralExpr(tag OutputExpression, template *TemplateLiteralExpr, typ Type, sourceSpan *util.ParseSourceSpan) *TaggedTemplateLiteralExpr {
	return &TaggedTemplateLiteralExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Tag:            tag,
		Template:       template,
	}
}

func (t *TaggedTemplateLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTaggedTemplateLiteralExpr(t, context)
}

func (t *TaggedTemplateLiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TaggedTemplateLiteralExpr); ok {
		return t.Tag.IsEquivalent(other.Tag) && t.Template.IsEquivalent(other.Template)
	}
	return false
}

func (t *TaggedTemplateLiteralExpr) IsConstant() bool {
	return false
}

func (t *TaggedTemplateLiteralExpr) Clone() OutputExpression {
	return NewTaggedTemplateLiteralExpr(t.Tag.Clone(), t.Template.Clone().(*TemplateLiteralExpr), t.Type, t.SourceSpan)
}

type TemplateLiteralExpr struct {
	ExpressionBase
	Elements    []*TemplateLiteralElementExpr
	Expressions []OutputExpression
}

func NewTemplateLiteralExpr(elements []*TemplateLiteralElementExpr, expressions []OutputExpression, sourceSpan *util.ParseSourceSpan) *TemplateLiteralExpr {
	return &TemplateLiteralExpr{
		ExpressionBase: ExpressionBase{Type: nil, SourceSpan: sourceSpan},
		Elements:       elements,
		Expressions:    expressions,
	}
}

func (t *TemplateLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTemplateLiteralExpr(t, context)
}

func (t *TemplateLiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TemplateLiteralExpr); ok {
		if len(t.Elements) != len(other.Elements) || len(t.Expressions) != len(other.Expressions) {
			return false
		}
		for i := range t.Elements {
			if t.Elements[i].Text != other.Elements[i].Text {
				return false
			}
		}
		return areAllEquivalentExprs(t.Expressions, other.Expressions)
	}
	return false
}

func (t *TemplateLiteralExpr) IsConstant() bool {
	return false
}

func (t *TemplateLiteralExpr) Clone() OutputExpression {
	elements := make([]*TemplateLiteralElementExpr, len(t.Elements))
	for i, el := range t.Elements {
		elements[i] = el.Clone().(*TemplateLiteralElementExpr)
	}
	expressions := make([]OutputExpression, len(t.Expressions))
	for i, expr := range t.Expressions {
		expressions[i] = expr.Clone()
	}
	return NewTemplateLiteralExpr(elements, expressions, t.SourceSpan)
}

type TemplateLiteralElementExpr struct {
	ExpressionBase
	Text    string
	RawText string
}

func NewTemplateLiteralElementExpr(text string, sourceSpan *util.ParseSourceSpan, rawText string) *TemplateLiteralElementExpr {
	return &TemplateLiteralElementExpr{
		ExpressionBase: ExpressionBase{Type: StringType, SourceSpan: sourceSpan},
		Text:           text,
		RawText:        rawText,
	}
}

func (t *TemplateLiteralElementExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTemplateLiteralElementExpr(t, context)
}

func (t *TemplateLiteralElementExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TemplateLiteralElementExpr); ok {
		return t.Text == other.Text && t.RawText == other.RawText
	}
	return false
}

func (t *TemplateLiteralElementExpr) IsConstant() bool {
	return true
}

func (t *TemplateLiteralElementExpr) Clone() OutputExpression {
	return NewTemplateLiteralElementExpr(t.Text, t.SourceSpan, t.RawText)
}

type InstantiateExpr struct {
	ExpressionBase
	ClassExpr OutputExpression
	Args      []OutputExpression
}

func NewInstantiateExpr(classExpr OutputExpression, args []OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *InstantiateExpr {
	return &InstantiateExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		ClassExpr:      classExpr,
		Args:           args,
	}
}

func (i *InstantiateExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInstantiateExpr(i, context)
}

func (i *InstantiateExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*InstantiateExpr); ok {
		return i.ClassExpr.IsEquivalent(other.ClassExpr) && areAllEquivalentExprs(i.Args, other.Args)
	}
	return false
}

func (i *InstantiateExpr) IsConstant() bool {
	return false
}

func (i *InstantiateExpr) Clone() OutputExpression {
	args := make([]OutputExpression, len(i.Args))
	for j, arg := range i.Args {
		args[j] = arg.Clone()
	}
	return NewInstantiateExpr(i.ClassExpr.Clone(), args, i.Type, i.SourceSpan)
}

type LocalizedString struct {
	ExpressionBase
	MetaBlock        *I18nMeta
	MessageParts     []*LiteralPiece
	PlaceholderNames []*PlaceholderPiece
	Expressions      []OutputExpression
}

func NewLocalizedString(
	metaBlock *I18nMeta,
	messageParts []*LiteralPiece,
	placeholderNames []*PlaceholderPiece,
	expressions []OutputExpression,
	sourceSpan *util.ParseSourceSpan,
) *LocalizedString {
	return &LocalizedString{
		ExpressionBase:   ExpressionBase{Type: StringType, SourceSpan: sourceSpan},
		MetaBlock:        metaBlock,
		MessageParts:     messageParts,
		PlaceholderNames: placeholderNames,
		Expressions:      expressions,
	}
}

func (l *LocalizedString) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLocalizedString(l, context)
}

func (l *LocalizedString) IsEquivalent(e OutputExpression) bool {
	return false // TODO: compare message parts and placeholders once i18n merging lands
}

func (l *LocalizedString) IsConstant() bool {
	return false
}

func (l *LocalizedString) Clone() OutputExpression {
	clonedExpressions := make([]OutputExpression, len(l.Expressions))
	for i, expr := range l.Expressions {
		clonedExpressions[i] = expr.Clone()
	}
	return NewLocalizedString(
		l.MetaBlock,
		l.MessageParts,
		l.PlaceholderNames,
		clonedExpressions,
		l.SourceSpan,
	)
}

type ExternalExpr struct {
	ExpressionBase
	Value      *ExternalReference
	TypeParams []Type
}

type ExternalReference struct {
	ModuleName *string
	Name       *string
}

func NewExternalExpr(value *ExternalReference, typ Type, typeParams []Type, sourceSpan *util.ParseSourceSpan) *ExternalExpr {
	return &ExternalExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Value:          value,
		TypeParams:     typeParams,
	}
}

func (e *ExternalExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitExternalExpr(e, context)
}

func (e *ExternalExpr) IsEquivalent(other OutputExpression) bool {
	if o, ok := other.(*ExternalExpr); ok {
		return (e.Value.Name == o.Value.Name || (e.Value.Name != nil && o.Value.Name != nil && *e.Value.Name == *o.Value.Name)) &&
			(e.Value.ModuleName == o.Value.ModuleName || (e.Value.ModuleName != nil && o.Value.ModuleName != nil && *e.Value.ModuleName == *o.Value.ModuleName))
	}
	return false
}

func (e *ExternalExpr) IsConstant() bool {
	return false
}

func (e *ExternalExpr) Clone() OutputExpression {
	return NewExternalExpr(e.Value, e.Type, e.TypeParams, e.SourceSpan)
}

type ConditionalExpr struct {
	ExpressionBase
	Condition OutputExpression
	TrueCase  OutputExpression
	FalseCase OutputExpression
}

func NewConditionalExpr(condition, trueCase, falseCase OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *ConditionalExpr {
	exprType := typ
	if exprType == nil && trueCase != nil {
		exprType = trueCase.GetType()
	}
	return &ConditionalExpr{
		ExpressionBase: ExpressionBase{Type: exprType, SourceSpan: sourceSpan},
		Condition:      condition,
		TrueCase:       trueCase,
		FalseCase:      falseCase,
	}
}

func (c *ConditionalExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitConditionalExpr(c, context)
}

func (c *ConditionalExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ConditionalExpr); ok {
		return c.Condition.IsEquivalent(other.Condition) &&
			c.TrueCase.IsEquivalent(other.TrueCase) &&
			NullSafeIsEquivalent(c.FalseCase, other.FalseCase)
	}
	return false
}

func (c *ConditionalExpr) IsConstant() bool {
	return false
}

func (c *ConditionalExpr) Clone() OutputExpression {
	var falseCase OutputExpression
	if c.FalseCase != nil {
		falseCase = c.FalseCase.Clone()
	}
	return NewConditionalExpr(c.Condition.Clone(), c.TrueCase.Clone(), falseCase, c.Type, c.SourceSpan)
}

type DynamicImportExpr struct {
	ExpressionBase
	URL        interface{} // string | OutputExpression
	URLComment *string
}

func NewDynamicImportExpr(url interface{}, sourceSpan *util.ParseSourceSpan, urlComment *string) *DynamicImportExpr {
	return &DynamicImportExpr{
		ExpressionBase: ExpressionBase{Type: nil, SourceSpan: sourceSpan},
		URL:            url,
		URLComment:     urlComment,
	}
}

func (d *DynamicImportExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitDynamicImportExpr(d, context)
}

func (d *DynamicImportExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*DynamicImportExpr); ok {
		return d.URL == other.URL && (d.URLComment == other.URLComment || (d.URLComment != nil && other.URLComment != nil && *d.URLComment == *other.URLComment))
	}
	return false
}

func (d *DynamicImportExpr) IsConstant() bool {
	return false
}

func (d *DynamicImportExpr) Clone() OutputExpression {
	var url interface{}
	if str, ok := d.URL.(string); ok {
		url = str
	} else if expr, ok := d.URL.(OutputExpression); ok {
		url = expr.Clone()
	}
	return NewDynamicImportExpr(url, d.SourceSpan, d.URLComment)
}

type NotExpr struct {
	ExpressionBase
	Condition OutputExpression
}

func NewNotExpr(condition OutputExpression, sourceSpan *util.ParseSourceSpan) *NotExpr {
	return &NotExpr{
		ExpressionBase: ExpressionBase{Type: BoolType, SourceSpan: sourceSpan},
		Condition:      condition,
	}
}

func (n *NotExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitNotExpr(n, context)
}

func (n *NotExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*NotExpr); ok {
		return n.Condition.IsEquivalent(other.Condition)
	}
	return false
}

func (n *NotExpr) IsConstant() bool {
	return false
}

func (n *NotExpr) Clone() OutputExpression {
	return NewNotExpr(n.Condition.Clone(), n.SourceSpan)
}

type FunctionExpr struct {
	ExpressionBase
	Params     []*FnParam
	Statements []OutputStatement
	Name       *string
}

type FnParam struct {
	Name string
	Type Type
}

func NewFnParam(name string, typ Type) *FnParam {
	return &FnParam{Name: name, Type: typ}
}

func NewFunctionExpr(params []*FnParam, statements []OutputStatement, typ Type, sourceSpan *util.ParseSourceSpan, name *string) *FunctionExpr {
	return &FunctionExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Params:         params,
		Statements:     statements,
		Name:           name,
	}
}

func (f *FunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitFunctionExpr(f, context)
}

func (f *FunctionExpr) IsEquivalent(e OutputExpression) bool {
	if fn, ok := e.(*FunctionExpr); ok {
		if len(f.Params) != len(fn.Params) || len(f.Statements) != len(fn.Statements) {
			return false
		}
		for i := range f.Params {
			if f.Params[i].Name != fn.Params[i].Name {
				return false
			}
		}
		// TODO: compare statement bodies once statement equivalence is implemented
		return true
	}
	return false
}

// IsEquivalentToStmt checks if this FunctionExpr is equivalent to a DeclareFunctionStmt
func (f *FunctionExpr) IsEquivalentToStmt(stmt *DeclareFunctionStmt) bool {
	if len(f.Params) != len(stmt.Params) || len(f.Statements) != len(stmt.Statements) {
		return false
	}
	for i := range f.Params {
		if f.Params[i].Name != stmt.Params[i].Name {
			return false
		}
	}
	// TODO: compare statement bodies once statement equivalence is implemented
	return true
}

func (f *FunctionExpr) IsConstant() bool {
	return false
}

func (f *FunctionExpr) Clone() OutputExpression {
	params := make([]*FnParam, len(f.Params))
	for i, p := range f.Params {
		params[i] = &FnParam{Name: p.Name, Type: p.Type}
	}
	return NewFunctionExpr(params, f.Statements, f.Type, f.SourceSpan, f.Name)
}

// ToDeclStmt converts a FunctionExpr to a DeclareFunctionStmt
func (f *FunctionExpr) ToDeclStmt(name string, modifiers StmtModifier) *DeclareFunctionStmt {
	return NewDeclareFunctionStmt(
		name,
		f.Params,
		f.Statements,
		f.Type,
		modifiers,
		f.SourceSpan,
		nil,
	)
}

type UnaryOperatorExpr struct {
	ExpressionBase
	Operator UnaryOperator
	Expr     OutputExpression
	Parens   bool
}

func NewUnaryOperatorExpr(operator UnaryOperator, expr OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan, parens bool) *UnaryOperatorExpr {
	exprType := typ
	if exprType == nil {
		exprType = NumberType
	}
	return &UnaryOperatorExpr{
		ExpressionBase: ExpressionBase{Type: exprType, SourceSpan: sourceSpan},
		Operator:       operator,
		Expr:           expr,
		Parens:         parens,
	}
}

func (u *UnaryOperatorExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitUnaryOperatorExpr(u, context)
}

func (u *UnaryOperatorExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*UnaryOperatorExpr); ok {
		return u.Operator == other.Operator && u.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (u *UnaryOperatorExpr) IsConstant() bool {
	return false
}

func (u *UnaryOperatorExpr) Clone() OutputExpression {
	return NewUnaryOperatorExpr(u.Operator, u.Expr.Clone(), u.Type, u.SourceSpan, u.Parens)
}

type ReadPropExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Name     string
}

func NewReadPropExpr(receiver OutputExpression, name string, typ Type, sourceSpan *util.ParseSourceSpan) *ReadPropExpr {
	return &ReadPropExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Receiver:       receiver,
		Name:           name,
	}
}

func (r *ReadPropExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadPropExpr(r, context)
}

func (r *ReadPropExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadPropExpr); ok {
		return r.Receiver.IsEquivalent(other.Receiver) && r.Name == other.Name
	}
	return false
}

func (r *ReadPropExpr) IsConstant() bool {
	return false
}

func (r *ReadPropExpr) Clone() OutputExpression {
	return NewReadPropExpr(r.Receiver.Clone(), r.Name, r.Type, r.SourceSpan)
}

func (r *ReadPropExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value, nil, r.SourceSpan)
}

type ReadKeyExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Index    OutputExpression
}

func NewReadKeyExpr(receiver, index OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *ReadKeyExpr {
	return &ReadKeyExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Receiver:       receiver,
		Index:          index,
	}
}

func (r *ReadKeyExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadKeyExpr(r, context)
}

func (r *ReadKeyExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadKeyExpr); ok {
		return r.Receiver.IsEquivalent(other.Receiver) && r.Index.IsEquivalent(other.Index)
	}
	return false
}

func (r *ReadKeyExpr) IsConstant() bool {
	return false
}

func (r *ReadKeyExpr) Clone() OutputExpression {
	return NewReadKeyExpr(r.Receiver.Clone(), r.Index.Clone(), r.Type, r.SourceSpan)
}

func (r *ReadKeyExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value, nil, r.SourceSpan)
}

type LiteralArrayExpr struct {
	ExpressionBase
	Entries []OutputExpression
}

func NewLiteralArrayExpr(entries []OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *LiteralArrayExpr {
	return &LiteralArrayExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Entries:        entries,
	}
}

func (l *LiteralArrayExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralArrayExpr(l, context)
}

func (l *LiteralArrayExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralArrayExpr); ok {
		return areAllEquivalentExprs(l.Entries, other.Entries)
	}
	return false
}

func (l *LiteralArrayExpr) IsConstant() bool {
	for _, entry := range l.Entries {
		if !entry.IsConstant() {
			return false
		}
	}
	return true
}

func (l *LiteralArrayExpr) Clone() OutputExpression {
	entries := make([]OutputExpression, len(l.Entries))
	for i, entry := range l.Entries {
		entries[i] = entry.Clone()
	}
	return NewLiteralArrayExpr(entries, l.Type, l.SourceSpan)
}

type LiteralMapEntry struct {
	Key    string
	Value  OutputExpression
	Quoted bool
}

func NewLiteralMapEntry(key string, value OutputExpression, quoted bool) *LiteralMapEntry {
	return &LiteralMapEntry{Key: key, Value: value, Quoted: quoted}
}

func (l *LiteralMapEntry) IsEquivalent(e *LiteralMapEntry) bool {
	return l.Key == e.Key && l.Value.IsEquivalent(e.Value)
}

func (l *LiteralMapEntry) Clone() *LiteralMapEntry {
	return NewLiteralMapEntry(l.Key, l.Value.Clone(), l.Quoted)
}

type LiteralMapExpr struct {
	ExpressionBase
	Entries   []*LiteralMapEntry
	ValueType *Type
}

func NewLiteralMapExpr(entries []*LiteralMapEntry, typ *MapType, sourceSpan *util.ParseSourceSpan) *LiteralMapExpr {
	var valueType *Type
	if typ != nil {
		valueType = typ.ValueType
	}
	return &LiteralMapExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Entries:        entries,
		ValueType:      valueType,
	}
}

func (l *LiteralMapExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralMapExpr(l, context)
}

func (l *LiteralMapExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralMapExpr); ok {
		if len(l.Entries) != len(other.Entries) {
			return false
		}
		for i := range l.Entries {
			if !l.Entries[i].IsEquivalent(other.Entries[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (l *LiteralMapExpr) IsConstant() bool {
	for _, entry := range l.Entries {
		if !entry.Value.IsConstant() {
			return false
		}
	}
	return true
}

func (l *LiteralMapExpr) Clone() OutputExpression {
	entries := make([]*LiteralMapEntry, len(l.Entries))
	for i, entry := range l.Entries {
		entries[i] = entry.Clone()
	}
	var mapType *MapType
	if l.Type != nil {
		if mt, ok := l.Type.(*MapType); ok {
			mapType = mt
		}
	}
	return NewLiteralMapExpr(entries, mapType, l.SourceSpan)
}

type CommaExpr struct {
	ExpressionBase
	Parts []OutputExpression
}

func NewCommaExpr(parts []OutputExpression, sourceSpan *util.ParseSourceSpan) *CommaExpr {
	var typ Type
	if len(parts) > 0 {
		typ = parts[len(parts)-1].GetType()
	}
	return &CommaExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Parts:          parts,
	}
}

func (c *CommaExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitCommaExpr(c, context)
}

func (c *CommaExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*CommaExpr); ok {
		return areAllEquivalentExprs(c.Parts, other.Parts)
	}
	return false
}

func (c *CommaExpr) IsConstant() bool {
	return false
}

func (c *CommaExpr) Clone() OutputExpression {
	parts := make([]OutputExpression, len(c.Parts))
	for i, part := range c.Parts {
		parts[i] = part.Clone()
	}
	return NewCommaExpr(parts, c.SourceSpan)
}

type WrappedNodeExpr struct {
	ExpressionBase
	Node interface{}
}

func NewWrappedNodeExpr(node interface{}, typ Type, sourceSpan *util.ParseSourceSpan) *WrappedNodeExpr {
	return &WrappedNodeExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Node:           node,
	}
}

func (w *WrappedNodeExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitWrappedNodeExpr(w, context)
}

func (w *WrappedNodeExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*WrappedNodeExpr); ok {
		return w.Node == other.Node
	}
	return false
}

func (w *WrappedNodeExpr) IsConstant() bool {
	return false
}

func (w *WrappedNodeExpr) Clone() OutputExpression {
	return NewWrappedNodeExpr(w.Node, w.Type, w.SourceSpan)
}

type TypeofExpr struct {
	ExpressionBase
	Expr OutputExpression
}

func NewTypeofExpr(expr OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *TypeofExpr {
	return &TypeofExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Expr:           expr,
	}
}

func (t *TypeofExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitTypeofExpr(t, context)
}

func (t *TypeofExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*TypeofExpr); ok {
		return t.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (t *TypeofExpr) IsConstant() bool {
	return t.Expr.IsConstant()
}

func (t *TypeofExpr) Clone() OutputExpression {
	return NewTypeofExpr(t.Expr.Clone(), t.Type, t.SourceSpan)
}

type VoidExpr struct {
	ExpressionBase
	Expr OutputExpression
}

func NewVoidExpr(expr OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *VoidExpr {
	return &VoidExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Expr:           expr,
	}
}

func (v *VoidExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitVoidExpr(v, context)
}

func (v *VoidExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*VoidExpr); ok {
		return v.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (v *VoidExpr) IsConstant() bool {
	return v.Expr.IsConstant()
}

func (v *VoidExpr) Clone() OutputExpression {
	return NewVoidExpr(v.Expr.Clone(), v.Type, v.SourceSpan)
}

type ArrowFunctionExpr struct {
	ExpressionBase
	Params []*FnParam
	Body   interface{} // OutputExpression | []OutputStatement
}

func NewArrowFunctionExpr(params []*FnParam, body interface{}, typ Type, sourceSpan *util.ParseSourceSpan) *ArrowFunctionExpr {
	return &ArrowFunctionExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Params:         params,
		Body:           body,
	}
}

func (a *ArrowFunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitArrowFunctionExpr(a, context)
}

func (a *ArrowFunctionExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ArrowFunctionExpr); ok {
		if len(a.Params) != len(other.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i].Name != other.Params[i].Name {
				return false
			}
		}
		// TODO: compare body once arrow body equivalence is implemented
		return true
	}
	return false
}

func (a *ArrowFunctionExpr) IsConstant() bool {
	return false
}

func (a *ArrowFunctionExpr) Clone() OutputExpression {
	params := make([]*FnParam, len(a.Params))
	for i, p := range a.Params {
		params[i] = &FnParam{Name: p.Name, Type: p.Type}
	}
	var body interface{}
	if expr, ok := a.Body.(OutputExpression); ok {
		body = expr.Clone()
	} else if stmts, ok := a.Body.([]OutputStatement); ok {
		body = stmts // TODO: deep clone statement bodies
	}
	return NewArrowFunctionExpr(params, body, a.Type, a.SourceSpan)
}

type ParenthesizedExpr struct {
	ExpressionBase
	Expr OutputExpression
}

func NewParenthesizedExpr(expr OutputExpression, typ Type, sourceSpan *util.ParseSourceSpan) *ParenthesizedExpr {
	return &ParenthesizedExpr{
		ExpressionBase: ExpressionBase{Type: typ, SourceSpan: sourceSpan},
		Expr:           expr,
	}
}

func (p *ParenthesizedExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitParenthesizedExpr(p, context)
}

func (p *ParenthesizedExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ParenthesizedExpr); ok {
		return p.Expr.IsEquivalent(other.Expr)
	}
	return false
}

func (p *ParenthesizedExpr) IsConstant() bool {
	return p.Expr.IsConstant()
}

func (p *ParenthesizedExpr) Clone() OutputExpression {
	return NewParenthesizedExpr(p.Expr.Clone(), p.Type, p.SourceSpan)
}

type RegularExpressionLiteralExpr struct {
	ExpressionBase
	Body  string
	Flags *string
}

func NewRegularExpressionLiteralExpr(body string, flags *string, sourceSpan *util.ParseSourceSpan) *RegularExpressionLiteralExpr {
	return &RegularExpressionLiteralExpr{
		ExpressionBase: ExpressionBase{Type: nil, SourceSpan: sourceSpan},
		Body:           body,
		Flags:          flags,
	}
}

func (r *RegularExpressionLiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitRegularExpressionLiteral(r, context)
}

func (r *RegularExpressionLiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*RegularExpressionLiteralExpr); ok {
		return r.Body == other.Body && (r.Flags == other.Flags || (r.Flags != nil && other.Flags != nil && *r.Flags == *other.Flags))
	}
	return false
}

func (r *RegularExpressionLiteralExpr) IsConstant() bool {
	return true
}

func (r *RegularExpressionLiteralExpr) Clone() OutputExpression {
	return NewRegularExpressionLiteralExpr(r.Body, r.Flags, r.SourceSpan)
}
