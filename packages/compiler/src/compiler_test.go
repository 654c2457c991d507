package compiler

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileNoDecoratorsReturnsEmpty(t *testing.T) {
	result := Compile("plain.ts", `export class PlainClass {}`)
	require.NotNil(t, result)
	assert.Equal(t, "", result.Code)
	assert.Empty(t, result.Diagnostics)
}

func TestCompileSimpleComponent(t *testing.T) {
	source := `
@Component({
  selector: 'app-greeting',
  template: '<p>{{ title }}</p>',
  standalone: true,
})
export class GreetingComponent {
  title = 'hi';
}
`
	result := Compile("greeting.ts", source)
	require.NotNil(t, result)
	require.False(t, strings.HasPrefix(result.Code, "/* Error"), "unexpected compile error: %s", result.Code)
	assert.Contains(t, result.Code, "GreetingComponent_ɵcmp")
	assert.Contains(t, result.Code, "GreetingComponent_ɵfac")
}

func TestCompileBatchPreservesOrder(t *testing.T) {
	inputs := []BatchInput{
		{Filename: "a.ts", Content: `export class A {}`},
		{Filename: "b.ts", Content: `
@Directive({selector: '[b]'})
export class B {}
`},
	}
	results := CompileBatch(inputs)
	require.Len(t, results, 2)
	assert.Equal(t, "a.ts", results[0].Filename)
	assert.Equal(t, "b.ts", results[1].Filename)
	assert.Equal(t, "", results[0].Code)
	assert.Contains(t, results[1].Code, "B_ɵdir")
}

func TestProjectCompilerRunWritesOutputForEachFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/tsconfig.json", []byte(`{
		"files": ["a.ts", "b.ts"]
	}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/a.ts", []byte(`
@Component({selector: 'app-a', template: '<p>a</p>', standalone: true})
export class AComponent {}
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/b.ts", []byte(`export class Plain {}`), 0o644))

	proj, err := NewProjectCompilerFS(fs, "/proj/tsconfig.json")
	require.NoError(t, err)
	require.NoError(t, proj.Run())

	out, err := afero.ReadFile(fs, "/proj/a.js")
	require.NoError(t, err)
	assert.Contains(t, string(out), "AComponent_ɵcmp")

	_, err = afero.ReadFile(fs, "/proj/b.js")
	assert.NoError(t, err)
}

func TestProjectCompilerRunAggregatesFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/tsconfig.json", []byte(`{
		"files": ["missing.ts", "present.ts"]
	}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/present.ts", []byte(`export class Plain {}`), 0o644))

	proj, err := NewProjectCompilerFS(fs, "/proj/tsconfig.json")
	require.NoError(t, err)

	err = proj.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.ts")

	_, statErr := fs.Stat("/proj/present.js")
	assert.NoError(t, statErr, "the file that did succeed should still have been written")
}

func TestLinkFileRewritesDeclareComponent(t *testing.T) {
	source := `export const def = ɵɵngDeclareComponent({ type: Widget, selector: 'app-widget', template: '<span>ok</span>' });`
	out := LinkFile("widget.js", source)
	require.False(t, strings.HasPrefix(out, "/* Linker Error"), "unexpected linker error: %s", out)
	assert.NotContains(t, out, "ɵɵngDeclareComponent")
	assert.Contains(t, out, "Widget_ɵcmp")
}
