package output

import (
	"strings"

	"github.com/ngcompiler/ngc-go/packages/compiler/src/util"
)

// StmtModifier represents statement modifiers
type StmtModifier int

const (
	StmtModifierNone     StmtModifier = 0
	StmtModifierFinal    StmtModifier = 1 << 0
	StmtModifierPrivate  StmtModifier = 1 << 1
	StmtModifierExported StmtModifier = 1 << 2
	StmtModifierStatic   StmtModifier = 1 << 3
)

// StatementVisitor is the interface for visiting statements
type StatementVisitor interface {
	VisitDeclareVarStmt(stmt *DeclareVarStmt, context interface{}) interface{}
	VisitDeclareFunctionStmt(stmt *DeclareFunctionStmt, context interface{}) interface{}
	VisitExpressionStmt(stmt *ExpressionStatement, context interface{}) interface{}
	VisitReturnStmt(stmt *ReturnStatement, context interface{}) interface{}
	VisitIfStmt(stmt *IfStmt, context interface{}) interface{}
}

// OutputStatement is a placeholder interface for statements
type OutputStatement interface {
	GetModifiers() StmtModifier
	GetSourceSpan() *util.ParseSourceSpan
	VisitStatement(visitor StatementVisitor, context interface{}) interface{}
	IsEquivalent(stmt OutputStatement) bool
}

// StatementBase is the base struct for all statements
type StatementBase struct {
	Modifiers       StmtModifier
	SourceSpan      *util.ParseSourceSpan
	LeadingComments []*LeadingComment
}

// GetModifiers returns the modifiers
func (s *StatementBase) GetModifiers() StmtModifier {
	return s.Modifiers
}

// GetSourceSpan returns the source span
func (s *StatementBase) GetSourceSpan() *util.ParseSourceSpan {
	return s.SourceSpan
}

// I18nMeta represents i18n metadata
type I18nMeta struct {
	ID          *string
	CustomID    *string
	LegacyIDs   []string
	Description *string
	Meaning     *string
}

// MessagePiece is a union type for message pieces
type MessagePiece interface {
	GetText() string
	GetSourceSpan() *util.ParseSourceSpan
}

// LiteralPiece represents a literal piece of text in a message
type LiteralPiece struct {
	Text       string
	SourceSpan *util.ParseSourceSpan
}

// NewLiteralPiece creates a new LiteralPiece
func NewLiteralPiece(text string, sourceSpan *util.ParseSourceSpan) *LiteralPiece {
	return &LiteralPiece{
		Text:       text,
		SourceSpan: sourceSpan,
	}
}

// GetText returns the text
func (l *LiteralPiece) GetText() string {
	return l.Text
}

// GetSourceSpan returns the source span
func (l *LiteralPiece) GetSourceSpan() *util.ParseSourceSpan {
	return l.SourceSpan
}

// PlaceholderPiece represents a placeholder piece in a message
type PlaceholderPiece struct {
	Text              string
	SourceSpan        *util.ParseSourceSpan
	AssociatedMessage interface{} // *i18n.Message
}

// NewPlaceholderPiece creates a new PlaceholderPiece
func NewPlaceholderPiece(text string, sourceSpan *util.ParseSourceSpan, associatedMessage interface{}) *PlaceholderPiece {
	return &PlaceholderPiece{
		Text:              text,
		SourceSpan:        sourceSpan,
		AssociatedMessage: associatedMessage,
	}
}

// GetText returns the text
func (p *PlaceholderPiece) GetText() string {
	return p.Text
}

// GetSourceSpan returns the source span
func (p *PlaceholderPiece) GetSourceSpan() *util.ParseSourceSpan {
	return p.SourceSpan
}

// JSDocTagName represents JSDoc tag names
type JSDocTagName int

const (
	JSDocTagNameDesc JSDocTagName = iota
	JSDocTagNameId
	JSDocTagNameMeaning
	JSDocTagNameSuppress
)

// JSDocTag represents a JSDoc tag
type JSDocTag struct {
	TagName *string // JSDocTagName as string or custom tag name
	Text    *string
}

// JSDocComment represents a JSDoc comment
type JSDocComment struct {
	Tags []JSDocTag
}

// NewJSDocComment creates a new JSDocComment
func NewJSDocComment(tags []JSDocTag) *JSDocComment {
	return &JSDocComment{
		Tags: tags,
	}
}

// String returns the string representation of the JSDoc comment
func (j *JSDocComment) String() string {
	if len(j.Tags) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, tag := range j.Tags {
		if tag.TagName != nil {
			b.WriteString(" * @")
			b.WriteString(*tag.TagName)
		}
		if tag.Text != nil {
			b.WriteByte(' ')
			b.WriteString(strings.ReplaceAll(*tag.Text, "@", "\\@"))
		}
		b.WriteByte('\n')
	}
	b.WriteString(" */")
	return b.String()
}

// LeadingComment represents a leading comment
type LeadingComment struct {
	Text            string
	Multiline       bool
	TrailingNewline bool
}

// DeclareVarStmt represents a variable declaration statement
type DeclareVarStmt struct {
	StatementBase
	Name  string
	Value OutputExpression
	Type  Type
}

func NewDeclareVarStmt(name string, value OutputExpression, typ Type, modifiers StmtModifier, sourceSpan *util.ParseSourceSpan, leadingComments []*LeadingComment) *DeclareVarStmt {
	stmtType := typ
	if stmtType == nil && value != nil {
		stmtType = value.GetType()
	}
	return &DeclareVarStmt{
		StatementBase: StatementBase{
			Modifiers:       modifiers,
			SourceSpan:      sourceSpan,
			LeadingComments: leadingComments,
		},
		Name:  name,
		Value: value,
		Type:  stmtType,
	}
}

func (d *DeclareVarStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDeclareVarStmt(d, context)
}

func (d *DeclareVarStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*DeclareVarStmt); ok {
		return d.Name == other.Name && (d.Value != nil && other.Value != nil && d.Value.IsEquivalent(other.Value) || d.Value == nil && other.Value == nil)
	}
	return false
}

// DeclareFunctionStmt represents a function declaration statement
type DeclareFunctionStmt struct {
	StatementBase
	Name       string
	Params     []*FnParam
	Statements []OutputStatement
	Type       Type
}

func NewDeclareFunctionStmt(name string, params []*FnParam, statements []OutputStatement, typ Type, modifiers StmtModifier, sourceSpan *util.ParseSourceSpan, leadingComments []*LeadingComment) *DeclareFunctionStmt {
	return &DeclareFunctionStmt{
		StatementBase: StatementBase{
			Modifiers:       modifiers,
			SourceSpan:      sourceSpan,
			LeadingComments: leadingComments,
		},
		Name:       name,
		Params:     params,
		Statements: statements,
		Type:       typ,
	}
}

func (d *DeclareFunctionStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDeclareFunctionStmt(d, context)
}

func (d *DeclareFunctionStmt) IsEquivalent(stmt OutputStatement) bool {
	// TODO: compare params/body once function-statement equivalence is implemented
	return false
}

// ExpressionStatement represents an expression statement
type ExpressionStatement struct {
	StatementBase
	Expr OutputExpression
}

func NewExpressionStatement(expr OutputExpression, sourceSpan *util.ParseSourceSpan, leadingComments []*LeadingComment) *ExpressionStatement {
	return &ExpressionStatement{
		StatementBase: StatementBase{
			Modifiers:       StmtModifierNone,
			SourceSpan:      sourceSpan,
			LeadingComments: leadingComments,
		},
		Expr: expr,
	}
}

func (e *ExpressionStatement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitExpressionStmt(e, context)
}

func (e *ExpressionStatement) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ExpressionStatement); ok {
		return e.Expr.IsEquivalent(other.Expr)
	}
	return false
}

// ReturnStatement represents a return statement
type ReturnStatement struct {
	StatementBase
	Value OutputExpression
}

func NewReturnStatement(value OutputExpression, sourceSpan *util.ParseSourceSpan, leadingComments []*LeadingComment) *ReturnStatement {
	return &ReturnStatement{
		StatementBase: StatementBase{
			Modifiers:       StmtModifierNone,
			SourceSpan:      sourceSpan,
			LeadingComments: leadingComments,
		},
		Value: value,
	}
}

func (r *ReturnStatement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitReturnStmt(r, context)
}

func (r *ReturnStatement) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ReturnStatement); ok {
		return r.Value.IsEquivalent(other.Value)
	}
	return false
}

// IfStmt represents an if statement
type IfStmt struct {
	StatementBase
	Condition OutputExpression
	TrueCase  []OutputStatement
	FalseCase []OutputStatement
}

func NewIfStmt(condition OutputExpression, trueCase, falseCase []OutputStatement, sourceSpan *util.ParseSourceSpan, leadingComments []*LeadingComment) *IfStmt {
	return &IfStmt{
		StatementBase: StatementBase{
			Modifiers:       StmtModifierNone,
			SourceSpan:      sourceSpan,
			LeadingComments: leadingComments,
		},
		Condition: condition,
		TrueCase:  trueCase,
		FalseCase: falseCase,
	}
}

func (i *IfStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitIfStmt(i, context)
}

func (i *IfStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*IfStmt); ok {
		// TODO: compare TrueCase/FalseCase bodies once statement-list equivalence lands
		return i.Condition.IsEquivalent(other.Condition)
	}
	return false
}
