package attrs

// Separator joins path segments in flattened keys.
const Separator = ":"

// Entry is one flattened key path and its leaf value.
type Entry struct {
	Key   string
	Value any
}

// Flat is an ordered flat attribute mapping.
type Flat []Entry

// Flatten converts a nested tree into flat key paths. Nested trees are
// walked depth first and re-keyed as parent:child; arrays, primitives and nil
// are leaves. A repeated path keeps its first position and takes the last
// value.
func Flatten(t *Tree) Flat {
	var out Flat
	index := make(map[string]int)
	flattenInto(&out, index, "", t)
	return out
}

func flattenInto(out *Flat, index map[string]int, prefix string, t *Tree) {
	t.Each(func(k string, v any) {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if sub, ok := v.(*Tree); ok && sub != nil {
			flattenInto(out, index, key, sub)
			return
		}
		if i, seen := index[key]; seen {
			(*out)[i].Value = v
			return
		}
		index[key] = len(*out)
		*out = append(*out, Entry{Key: key, Value: v})
	})
}

// Get returns the value stored under key.
func (f Flat) Get(key string) (any, bool) {
	for _, e := range f {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys lists the flat keys in order.
func (f Flat) Keys() []string {
	out := make([]string, len(f))
	for i, e := range f {
		out[i] = e.Key
	}
	return out
}

// With returns a copy of f where each override replaces the entry with the
// same key in place, or is appended when the key is new.
func (f Flat) With(overrides ...Entry) Flat {
	out := make(Flat, len(f), len(f)+len(overrides))
	copy(out, f)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Key == o.Key {
				out[i].Value = o.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}
