// Package compiler implements the ahead-of-time compilation entry points: compiling a
// source file's decorated classes into runtime definitions, linking a partial
// declaration back into a concrete definition, and a project driver that walks a
// tsconfig's source graph and runs both across every file it finds.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/ngcompiler/ngc-go/packages/compiler/src/config"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/facade"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/jsobject"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/metadata"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/output"
	constant "github.com/ngcompiler/ngc-go/packages/compiler/src/pool"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/render3"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/render3/view"
	viewcompiler "github.com/ngcompiler/ngc-go/packages/compiler/src/render3/view/compiler"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/util"
)

// DiagnosticCategory distinguishes fatal diagnostics from advisory ones.
type DiagnosticCategory int

const (
	DiagnosticCategoryWarning DiagnosticCategory = iota
	DiagnosticCategoryError
)

// Diagnostic is a single compile-time finding, with a UTF-8 byte-offset span relative to
// the start of File.
type Diagnostic struct {
	Code     int
	Message  string
	File     string
	Start    int
	Length   int
	Category DiagnosticCategory
}

const (
	codeUnusedDependency      = 8113
	codeInternalCompilerError = 8900
	codeUnresolvableTemplate  = 8901
)

// CompileResult is the output of compiling a single file.
type CompileResult struct {
	Code        string
	Diagnostics []Diagnostic
}

// Compile reads a source file's decorated classes and emits their runtime definitions,
// concatenated as one code string. A recovered panic is reported as an
// internal-compiler-error diagnostic, with the returned code beginning with "/* Error ".
func Compile(filename, source string) (result *CompileResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &CompileResult{
				Code: fmt.Sprintf("/* Error: internal compiler error: %v */", r),
				Diagnostics: []Diagnostic{{
					Code:     codeInternalCompilerError,
					Message:  fmt.Sprintf("internal compiler error: %v", r),
					File:     filename,
					Category: DiagnosticCategoryError,
				}},
			}
		}
	}()

	records := metadata.ExtractAll(source)
	if len(records) == 0 {
		return &CompileResult{Code: ""}
	}

	var diagnostics []Diagnostic
	var statements []output.OutputStatement

	for _, rec := range records {
		if rec.Kind == metadata.KindPipe {
			continue
		}
		unit, unitDiags := compileRecord(filename, rec)
		diagnostics = append(diagnostics, unitDiags...)
		for _, d := range unitDiags {
			if d.Category == DiagnosticCategoryError {
				return &CompileResult{
					Code:        fmt.Sprintf("/* Error: %s */", d.Message),
					Diagnostics: diagnostics,
				}
			}
		}
		statements = append(statements, unit...)
	}

	ctx := output.CreateRootEmitterVisitorContext()
	emitter := output.NewAbstractJsEmitterVisitor()
	emitter.VisitAllStatements(statements, ctx)

	return &CompileResult{Code: ctx.ToSource(), Diagnostics: diagnostics}
}

// LinkFile rewrites a pre-compiled library file's `ɵɵngDeclareComponent`/
// `ɵɵngDeclareDirective` calls into concrete `ɵɵdefineComponent`/`ɵɵdefineDirective`
// calls, by parsing each declare call's object-literal argument back into directive
// metadata and routing it through the same back end used by Compile. Returns a string
// beginning with "/* Linker Error" on failure.
func LinkFile(filename, source string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("/* Linker Error: %v */", r)
		}
	}()

	out := source
	for _, call := range []string{"ɵɵngDeclareComponent", "ɵɵngDeclareDirective"} {
		for {
			argText, end, ok := jsobject.ExtractBalancedCall(out, call, 0)
			if !ok {
				break
			}
			obj, _, err := jsobject.Parse(argText)
			if err != nil {
				return fmt.Sprintf("/* Linker Error: %s */", err)
			}
			start := strings.Index(out, call+"(")
			rec := declareObjectToRecord(obj)
			statements, diags := compileRecord(filename, rec)
			for _, d := range diags {
				if d.Category == DiagnosticCategoryError {
					return fmt.Sprintf("/* Linker Error: %s */", d.Message)
				}
			}
			ctx := output.CreateRootEmitterVisitorContext()
			output.NewAbstractJsEmitterVisitor().VisitAllStatements(statements, ctx)
			replacement := strings.TrimSuffix(strings.TrimSpace(ctx.ToSource()), ";")
			out = out[:start] + replacement + out[end:]
		}
	}
	return out
}

// identifierText reads a value that may be a bare identifier (jsobject.KindRaw, as
// "type: MyComponent" always is in a real declare call) or a quoted string.
func identifierText(v *jsobject.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case jsobject.KindString:
		return v.Str
	case jsobject.KindRaw:
		return strings.TrimSpace(v.Raw)
	default:
		return ""
	}
}

// declareObjectToRecord maps the object literal passed to ɵɵngDeclareComponent /
// ɵɵngDeclareDirective into the same Record shape decorator extraction produces.
func declareObjectToRecord(obj *jsobject.Value) *metadata.Record {
	rec := &metadata.Record{
		ClassName:  identifierText(obj.Get("type")),
		Selector:   obj.Get("selector").String(),
		Standalone: obj.Get("isStandalone").IsTrue(),
		Inputs:     map[string]metadata.InputRecord{},
		Outputs:    map[string]string{},
	}
	if rec.ClassName == "" {
		rec.ClassName = "LinkedType"
	}
	if tmpl := obj.Get("template"); tmpl != nil {
		rec.Template = tmpl.String()
		rec.Kind = metadata.KindComponent
	} else {
		rec.Kind = metadata.KindDirective
	}
	if inputs := obj.Get("inputs"); inputs != nil && inputs.Kind == jsobject.KindObject {
		for _, key := range inputs.Keys {
			rec.Inputs[key] = metadata.InputRecord{ClassPropertyName: key, BindingPropertyName: key}
		}
	}
	if outputs := obj.Get("outputs"); outputs != nil && outputs.Kind == jsobject.KindObject {
		for _, key := range outputs.Keys {
			rec.Outputs[key] = key
		}
	}
	return rec
}

// BatchInput is one file submitted to CompileBatch.
type BatchInput struct {
	Filename string
	Content  string
}

// BatchResult is the outcome of compiling one BatchInput.
type BatchResult struct {
	Filename    string
	Code        string
	Diagnostics []Diagnostic
}

// CompileBatch compiles a set of files independently and returns one result per input,
// in the same order.
func CompileBatch(inputs []BatchInput) []BatchResult {
	results := make([]BatchResult, len(inputs))
	for i, in := range inputs {
		r := Compile(in.Filename, in.Content)
		results[i] = BatchResult{Filename: in.Filename, Code: r.Code, Diagnostics: r.Diagnostics}
	}
	return results
}

// compileRecord compiles one decorated class into a sequence of output statements: its
// definition assignment (ɵcmp/ɵdir) followed by its factory assignment (ɵfac).
func compileRecord(filename string, rec *metadata.Record) ([]output.OutputStatement, []Diagnostic) {
	sourceFile := util.NewParseSourceFile(rec.Template, filename)
	typeSpan := util.NewParseSourceSpan(
		util.NewParseLocation(sourceFile, 0, 0, 0),
		util.NewParseLocation(sourceFile, len(rec.Template), 0, 0),
		nil, nil,
	)

	directiveMeta := view.R3DirectiveMetadata{
		Name:              rec.ClassName,
		Type:              classReference(rec.ClassName),
		TypeArgumentCount: 0,
		TypeSourceSpan:    typeSpan,
		Deps:              nil,
		Host: view.R3HostMetadata{
			Attributes: map[string]output.OutputExpression{},
			Listeners:  map[string]string{},
			Properties: map[string]string{},
		},
		Inputs:       toR3Inputs(rec.Inputs),
		Outputs:      rec.Outputs,
		IsStandalone: rec.Standalone,
	}
	if rec.Selector != "" {
		selector := rec.Selector
		directiveMeta.Selector = &selector
	}

	constantPool := constant.NewConstantPool(false)
	bindingParser := view.MakeBindingParser(false)

	var compiled render3.R3CompiledExpression
	var diagnostics []Diagnostic

	if rec.Kind == metadata.KindDirective {
		compiled = viewcompiler.CompileDirectiveFromMetadata(&directiveMeta, constantPool, bindingParser)
	} else {
		templateURL := filename
		if rec.TemplateURL != "" {
			templateURL = rec.TemplateURL
		}
		parsed := view.ParseTemplate(rec.Template, templateURL, nil)
		for _, e := range parsed.Errors {
			diagnostics = append(diagnostics, Diagnostic{
				Code:     codeUnresolvableTemplate,
				Message:  e.Error(),
				File:     filename,
				Category: DiagnosticCategoryError,
			})
		}
		if len(parsed.Errors) > 0 {
			return nil, diagnostics
		}

		componentMeta := &view.R3ComponentMetadata{
			R3DirectiveMetadata: directiveMeta,
			Template: view.R3ComponentTemplateMetadata{
				Nodes:              parsed.Nodes,
				NgContentSelectors: parsed.NgContentSelectors,
			},
			Styles:                  append(append([]string{}, rec.Styles...), parsed.Styles...),
			ExternalStyles:          rec.StyleURLs,
			Encapsulation:           rec.Encapsulation,
			ChangeDetection:         rec.ChangeDetection,
			DeclarationListEmitMode: view.DeclarationListEmitModeDirect,
		}
		compiled = viewcompiler.CompileComponentFromMetadata(componentMeta, constantPool, bindingParser)
	}

	target := facade.FactoryTargetDirective
	if rec.Kind == metadata.KindComponent {
		target = facade.FactoryTargetComponent
	}
	factory := render3.CompileFactoryFunction(&render3.R3ConstructorFactoryMetadata{
		Name:              rec.ClassName,
		Type:              classReference(rec.ClassName),
		TypeArgumentCount: 0,
		Deps:              nil,
		Target:            target,
	})

	statements := append([]output.OutputStatement{}, constantPool.GetStatements()...)

	fieldName := "ɵdir"
	if rec.Kind == metadata.KindComponent {
		fieldName = "ɵcmp"
	}
	statements = append(statements,
		output.NewDeclareVarStmt(rec.ClassName+"_"+fieldName, compiled.Expression, nil, output.StmtModifierFinal, nil, nil),
		output.NewDeclareVarStmt(rec.ClassName+"_ɵfac", factory.Expression, nil, output.StmtModifierFinal, nil, nil),
	)
	return statements, diagnostics
}

// classReference builds an R3Reference pointing at a plain JS identifier, for classes
// whose declaration lives in the same emitted file scope.
func classReference(name string) render3.R3Reference {
	read := output.NewReadVarExpr(name, output.DynamicType, nil)
	return render3.R3Reference{Value: read, Type: read}
}

func toR3Inputs(inputs map[string]metadata.InputRecord) map[string]view.R3InputMetadata {
	out := make(map[string]view.R3InputMetadata, len(inputs))
	for k, v := range inputs {
		out[k] = view.R3InputMetadata{
			ClassPropertyName:   v.ClassPropertyName,
			BindingPropertyName: v.BindingPropertyName,
			Required:            v.Required,
		}
	}
	return out
}

// ProjectCompiler drives compilation across an entire tsconfig project: it discovers
// source files, reads each one, and writes its compiled output next to it. All file
// access goes through fs, so a project can be compiled against an in-memory filesystem
// in tests without touching disk.
type ProjectCompiler struct {
	tsConfig     *config.TsConfig
	projectRoot  string
	tsconfigPath string
	fs           afero.Fs
}

// NewProjectCompiler loads a tsconfig from the OS filesystem and prepares a driver
// rooted at its directory.
func NewProjectCompiler(tsconfigPath string) (*ProjectCompiler, error) {
	return NewProjectCompilerFS(afero.NewOsFs(), tsconfigPath)
}

// NewProjectCompilerFS loads a tsconfig through fs and prepares a driver rooted at its
// directory.
func NewProjectCompilerFS(fs afero.Fs, tsconfigPath string) (*ProjectCompiler, error) {
	cfg, err := config.ParseTsConfigFS(fs, tsconfigPath)
	if err != nil {
		return nil, err
	}

	absPath, _ := filepath.Abs(tsconfigPath)
	projectRoot := filepath.Dir(absPath)

	return &ProjectCompiler{
		tsConfig:     cfg,
		projectRoot:  projectRoot,
		tsconfigPath: absPath,
		fs:           fs,
	}, nil
}

// Run compiles every discovered .ts file and writes the generated code alongside it
// (suffixed with .js). The returned error, when non-nil, is a *multierror.Error holding
// one entry per file that failed to read, compile, or write.
func (c *ProjectCompiler) Run() error {
	files, err := c.discoverFiles()
	if err != nil {
		return errors.Errorf("failed to discover files: %w", err)
	}

	var result *multierror.Error
	for _, file := range files {
		if !strings.HasSuffix(file, ".ts") {
			continue
		}
		content, err := afero.ReadFile(c.fs, file)
		if err != nil {
			result = multierror.Append(result, errors.Errorf("reading %s: %w", file, err))
			continue
		}
		compiled := Compile(file, string(content))
		if strings.HasPrefix(compiled.Code, "/* Error") {
			result = multierror.Append(result, errors.Errorf("compiling %s: %s", file, compiled.Code))
			continue
		}
		outPath := strings.TrimSuffix(file, ".ts") + ".js"
		if err := afero.WriteFile(c.fs, outPath, []byte(compiled.Code), 0o644); err != nil {
			result = multierror.Append(result, errors.Errorf("writing %s: %w", outPath, err))
		}
	}

	return result.ErrorOrNil()
}

// discoverFiles finds all files that need compilation.
func (c *ProjectCompiler) discoverFiles() ([]string, error) {
	var files []string

	if len(c.tsConfig.Files) > 0 {
		for _, f := range c.tsConfig.Files {
			absPath := filepath.Join(c.projectRoot, f)
			files = append(files, absPath)
		}
		return files, nil
	}

	err := afero.Walk(c.fs, c.projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".ts") && !strings.HasSuffix(path, ".spec.ts") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
