package jsobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectLiteral(t *testing.T) {
	v, _, err := Parse(`{selector: 'app-foo', standalone: true, inputs: ['a', 'b'], count: 3}`)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)

	assert.Equal(t, "app-foo", v.Get("selector").String())
	assert.True(t, v.Get("standalone").IsTrue())
	assert.Equal(t, []string{"selector", "standalone", "inputs", "count"}, v.Keys)

	inputs := v.Get("inputs")
	require.Equal(t, KindArray, inputs.Kind)
	require.Len(t, inputs.Array, 2)
	assert.Equal(t, "a", inputs.Array[0].String())

	assert.Equal(t, float64(3), v.Get("count").Number)
}

func TestParseNestedObject(t *testing.T) {
	v, _, err := Parse(`{inputs: {name: {alias: 'label', required: true}}}`)
	require.NoError(t, err)

	name := v.Get("inputs").Get("name")
	require.NotNil(t, name)
	assert.Equal(t, "label", name.Get("alias").String())
	assert.True(t, name.Get("required").IsTrue())
}

func TestParseIdentifierLikeFallsBackToRaw(t *testing.T) {
	v, _, err := Parse(`{changeDetection: ChangeDetectionStrategy.OnPush, track: (i, item) => item.id}`)
	require.NoError(t, err)

	cd := v.Get("changeDetection")
	require.Equal(t, KindRaw, cd.Kind)
	assert.Contains(t, cd.Raw, "OnPush")

	track := v.Get("track")
	require.Equal(t, KindRaw, track.Kind)
	assert.Contains(t, track.Raw, "item.id")
}

func TestExtractBalancedCall(t *testing.T) {
	src := `@Component({selector: 'x', template: '<p>{{a(b)}}</p>'})\nexport class X {}`
	argText, end, ok := ExtractBalancedCall(src, "@Component", 0)
	require.True(t, ok)
	assert.Contains(t, argText, "selector: 'x'")
	assert.Less(t, end, len(src))
}

func TestExtractBalancedCallNotFound(t *testing.T) {
	_, _, ok := ExtractBalancedCall("export class X {}", "@Component", 0)
	assert.False(t, ok)
}
