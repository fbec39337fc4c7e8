package keymap

import "fmt"

// Resolver maps key strings to bindings.
type Resolver struct {
	byKey map[string]Binding
}

// NewResolver indexes bindings. When a key appears twice, the later
// binding wins; Conflicts reports such keys.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byKey: make(map[string]Binding)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[key] = b
		}
	}
	return r
}

// Lookup returns the binding for key.
func (r *Resolver) Lookup(key string) (Binding, bool) {
	b, ok := r.byKey[key]
	return b, ok
}

// Conflicts lists keys bound to more than one action.
func Conflicts(bindings []Binding) []string {
	seen := make(map[string]Action)
	var out []string
	for _, b := range bindings {
		for _, key := range b.Keys {
			prev, ok := seen[key]
			if ok && prev != b.Action {
				out = append(out, fmt.Sprintf("%q: %s, %s", key, prev, b.Action))
			}
			seen[key] = b.Action
		}
	}
	return out
}
