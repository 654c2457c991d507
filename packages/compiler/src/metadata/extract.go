// Package metadata extracts component, directive, and pipe records from decorator
// metadata in source files. It is the decorator-metadata-extraction collaborator: the
// compiler's core pipeline never looks at TypeScript syntax directly, it only consumes
// the Record values this package produces.
package metadata

import (
	"regexp"
	"strings"

	"github.com/ngcompiler/ngc-go/packages/compiler/src/core"
	"github.com/ngcompiler/ngc-go/packages/compiler/src/jsobject"
)

// Kind identifies which decorator a Record came from.
type Kind int

const (
	KindComponent Kind = iota
	KindDirective
	KindPipe
)

// InputRecord describes one entry of a component's `inputs` map.
type InputRecord struct {
	ClassPropertyName   string
	BindingPropertyName string
	Required            bool
}

// Record is the decorator-derived metadata for one class, matching the Component Record
// shape consumed by the template compiler.
type Record struct {
	Kind Kind

	ClassName  string
	Selector   string
	Standalone bool

	// ChangeDetection: core.ChangeDetectionStrategyOnPush or core.ChangeDetectionStrategyDefault.
	ChangeDetection core.ChangeDetectionStrategy

	Template    string
	TemplateURL string
	Styles      []string
	StyleURLs   []string

	Inputs  map[string]InputRecord
	Outputs map[string]string

	Encapsulation core.ViewEncapsulation

	// PipeName and PipePure are set only when Kind == KindPipe.
	PipeName string
	PipePure bool
}

var (
	decoratorRe = regexp.MustCompile(`@(Component|Directive|Pipe)\s*\(`)
	classRe     = regexp.MustCompile(`export\s+(?:default\s+)?class\s+(\w+)`)
)

// ExtractAll scans TypeScript source text and returns one Record per decorated class found.
func ExtractAll(source string) []*Record {
	var records []*Record
	pos := 0
	for {
		loc := decoratorRe.FindStringSubmatchIndex(source[pos:])
		if loc == nil {
			break
		}
		kindName := source[pos+loc[2] : pos+loc[3]]
		callOpen := pos + loc[1] - 1 // index of the '(' that opened the call

		argText, end, ok := jsobject.ExtractBalancedCall(source, "@"+kindName, pos+loc[0])
		if !ok {
			pos = callOpen + 1
			continue
		}

		className := findClassNameAfter(source, end)
		if className == "" {
			pos = end
			continue
		}

		obj, _, err := jsobject.Parse(argText)
		if err != nil || obj == nil {
			pos = end
			continue
		}

		rec := &Record{ClassName: className}
		switch kindName {
		case "Component":
			rec.Kind = KindComponent
			populateDirectiveFields(rec, obj)
			populateComponentFields(rec, obj)
		case "Directive":
			rec.Kind = KindDirective
			populateDirectiveFields(rec, obj)
		case "Pipe":
			rec.Kind = KindPipe
			rec.PipeName = obj.Get("name").String()
			rec.PipePure = true
			if pure := obj.Get("pure"); pure != nil && pure.Kind == jsobject.KindBool {
				rec.PipePure = pure.Bool
			}
			if standalone := obj.Get("standalone"); standalone.IsTrue() {
				rec.Standalone = true
			}
		}
		records = append(records, rec)
		pos = end
	}
	return records
}

func findClassNameAfter(source string, from int) string {
	tail := source[from:]
	m := classRe.FindStringSubmatchIndex(tail)
	if m == nil {
		return ""
	}
	// Require the class declaration to be the next non-trivial statement: reject if an
	// unrelated decorator call appears first.
	between := tail[:m[0]]
	if strings.Count(between, "@") > 3 {
		return ""
	}
	return tail[m[2]:m[3]]
}

func populateDirectiveFields(rec *Record, obj *jsobject.Value) {
	rec.Selector = obj.Get("selector").String()
	if standalone := obj.Get("standalone"); standalone != nil {
		rec.Standalone = standalone.IsTrue()
	} else {
		rec.Standalone = true
	}
	rec.ChangeDetection = core.ChangeDetectionStrategyDefault
	if cd := obj.Get("changeDetection"); cd != nil {
		if strings.Contains(cd.Raw, "OnPush") {
			rec.ChangeDetection = core.ChangeDetectionStrategyOnPush
		}
	}

	rec.Inputs = map[string]InputRecord{}
	if inputs := obj.Get("inputs"); inputs != nil {
		switch inputs.Kind {
		case jsobject.KindArray:
			for _, item := range inputs.Array {
				name := strings.TrimSpace(strings.SplitN(item.String(), ":", 2)[0])
				if name == "" {
					continue
				}
				rec.Inputs[name] = InputRecord{ClassPropertyName: name, BindingPropertyName: name}
			}
		case jsobject.KindObject:
			for _, key := range inputs.Keys {
				v := inputs.Object[key]
				input := InputRecord{ClassPropertyName: key, BindingPropertyName: key}
				if required := v.Get("required"); required.IsTrue() {
					input.Required = true
				}
				if alias := v.Get("alias"); alias != nil && alias.Kind == jsobject.KindString {
					input.BindingPropertyName = alias.String()
				}
				rec.Inputs[key] = input
			}
		}
	}

	rec.Outputs = map[string]string{}
	if outputs := obj.Get("outputs"); outputs != nil && outputs.Kind == jsobject.KindArray {
		for _, item := range outputs.Array {
			name := strings.TrimSpace(strings.SplitN(item.String(), ":", 2)[0])
			if name != "" {
				rec.Outputs[name] = name
			}
		}
	}
}

func populateComponentFields(rec *Record, obj *jsobject.Value) {
	if tmpl := obj.Get("template"); tmpl != nil {
		rec.Template = tmpl.String()
	}
	if tmplURL := obj.Get("templateUrl"); tmplURL != nil {
		rec.TemplateURL = tmplURL.String()
	}
	if styles := obj.Get("styles"); styles != nil {
		switch styles.Kind {
		case jsobject.KindArray:
			for _, s := range styles.Array {
				rec.Styles = append(rec.Styles, s.String())
			}
		case jsobject.KindString:
			rec.Styles = append(rec.Styles, styles.String())
		}
	}
	if styleURLs := obj.Get("styleUrls"); styleURLs != nil && styleURLs.Kind == jsobject.KindArray {
		for _, s := range styleURLs.Array {
			rec.StyleURLs = append(rec.StyleURLs, s.String())
		}
	}
	rec.Encapsulation = core.ViewEncapsulationEmulated
	if enc := obj.Get("encapsulation"); enc != nil {
		if strings.Contains(enc.Raw, "None") {
			rec.Encapsulation = core.ViewEncapsulationNone
		} else if strings.Contains(enc.Raw, "ShadowDom") {
			rec.Encapsulation = core.ViewEncapsulationShadowDom
		}
	}
}
