package output

import "sort"

// MapLiteralFromObject builds a LiteralMapExpr from a Go map, sorting keys so the
// emitted object literal has a stable property order across runs.
func MapLiteralFromObject(obj map[string]OutputExpression, quoted bool) OutputExpression {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]*LiteralMapEntry, len(keys))
	for i, k := range keys {
		entries[i] = NewLiteralMapEntry(k, obj[k], quoted)
	}
	return NewLiteralMapExpr(entries, nil, nil)
}
