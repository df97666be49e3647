package parser

// Bindings maps variable names to the boolean value they were last assigned.
// The parser fills it from `name := value` statements; after parsing it is
// only ever read.
type Bindings map[string]bool

// Lookup returns the value bound to name and whether a binding exists.
func (b Bindings) Lookup(name string) (bool, bool) {
	value, ok := b[name]
	return value, ok
}
