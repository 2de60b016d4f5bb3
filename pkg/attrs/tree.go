// Package attrs holds the ordered attribute trees that page models build and
// the flattener that turns them into colon-joined key paths.
package attrs

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is an ordered nested mapping. Values are strings, numbers, booleans,
// nil, []any, or nested *Tree. Keys iterate in insertion order. The zero
// value is an empty tree.
type Tree struct {
	m *orderedmap.OrderedMap[string, any]
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{m: orderedmap.New[string, any]()}
}

// Of builds a tree from alternating key/value arguments, preserving their
// order. It panics when a key is not a string or a value is missing.
func Of(kv ...any) *Tree {
	if len(kv)%2 != 0 {
		panic("attrs.Of: odd number of arguments")
	}
	t := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("attrs.Of: key %v is %T, not string", kv[i], kv[i]))
		}
		t.Set(key, kv[i+1])
	}
	return t
}

// Set stores v under key. An existing key keeps its position.
func (t *Tree) Set(key string, v any) {
	if t.m == nil {
		t.m = orderedmap.New[string, any]()
	}
	t.m.Set(key, normalize(v))
}

// Len returns the number of top-level keys. A nil tree has none.
func (t *Tree) Len() int {
	if t == nil || t.m == nil {
		return 0
	}
	return t.m.Len()
}

// Keys returns the top-level keys in order.
func (t *Tree) Keys() []string {
	if t.Len() == 0 {
		return nil
	}
	out := make([]string, 0, t.m.Len())
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Has reports whether key is present at the top level, even with a nil value.
func (t *Tree) Has(key string) bool {
	_, ok := t.get(key)
	return ok
}

// Get returns the top-level value for key, or nil.
func (t *Tree) Get(key string) any {
	v, _ := t.get(key)
	return v
}

func (t *Tree) get(key string) (any, bool) {
	if t == nil || t.m == nil {
		return nil, false
	}
	return t.m.Get(key)
}

// Lookup walks path through nested trees. It never fails: a missing segment,
// a nil tree, or a non-tree intermediate value yields (nil, false).
func (t *Tree) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := t
	for i, seg := range path {
		if cur == nil {
			return nil, false
		}
		v, ok := cur.get(seg)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, isTree := v.(*Tree)
		if !isTree {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// String looks up path and formats the value; absent values give "".
func (t *Tree) String(path ...string) string {
	v, _ := t.Lookup(path...)
	return Format(v)
}

// Each calls fn for every top-level entry in order.
func (t *Tree) Each(fn func(key string, v any)) {
	if t == nil || t.m == nil {
		return
	}
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a deep copy. Nested trees and slices are copied.
func (t *Tree) Clone() *Tree {
	out := New()
	t.Each(func(k string, v any) {
		out.Set(k, cloneValue(v))
	})
	return out
}

// Without returns a copy of t minus the given top-level keys.
func (t *Tree) Without(keys ...string) *Tree {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := New()
	t.Each(func(k string, v any) {
		if _, skip := drop[k]; skip {
			return
		}
		out.Set(k, cloneValue(v))
	})
	return out
}

// Merge returns a new tree holding dst deep-merged with src. Keys from src
// win, nested trees merge recursively, and nil src values are skipped so an
// absent computed value never hides or creates a key. Keys already in dst
// keep their position; new keys are appended in src order. Neither input is
// modified.
func Merge(dst, src *Tree) *Tree {
	out := dst.Clone()
	src.Each(func(k string, v any) {
		if v == nil {
			return
		}
		if srcTree, ok := v.(*Tree); ok {
			dstTree, ok := out.Get(k).(*Tree)
			if !ok {
				dstTree = New()
			}
			out.Set(k, Merge(dstTree, srcTree))
			return
		}
		out.Set(k, cloneValue(v))
	})
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Tree:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = cloneValue(x[i])
		}
		return out
	default:
		return v
	}
}

// normalize turns plain Go maps into trees (sorted keys) and typed string
// slices into []any so the rest of the package sees one shape.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		t := New()
		for _, k := range keys {
			t.Set(k, x[k])
		}
		return t
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case []*Tree:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

// Format renders a leaf value the way tag content is written: strings
// verbatim, integral numbers without a fraction, nil as empty and arrays
// comma-joined.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e21 {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(x, ",")
	case *Tree:
		return "[object Object]"
	default:
		return fmt.Sprint(x)
	}
}
