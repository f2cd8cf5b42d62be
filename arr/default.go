package arr

// Default is the value substituted when a lookup misses.
//
// A Default is either a plain value ([Val]) or a deferred computation
// ([Lazy]) that runs only on the miss path.
type Default interface {
	Resolve() any
}

type valueDefault struct{ v any }

func (d valueDefault) Resolve() any { return d.v }

type lazyDefault func() any

func (d lazyDefault) Resolve() any { return d() }

// Val returns a Default that always resolves to v.
func Val(v any) Default { return valueDefault{v} }

// Lazy returns a Default that calls fn each time it is resolved.
func Lazy(fn func() any) Default { return lazyDefault(fn) }

// DefaultOf turns a caller-supplied default into a [Default]:
// a Default is returned as is, a func() any becomes [Lazy], anything else
// becomes [Val].
func DefaultOf(v any) Default {
	switch d := v.(type) {
	case Default:
		return d
	case func() any:
		return Lazy(d)
	}
	return Val(v)
}

func resolve(def []any) any {
	if len(def) == 0 {
		return nil
	}
	return DefaultOf(def[0]).Resolve()
}
