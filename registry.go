package keyhole

// PendingValueTypeName is the declared type name of the runtime's
// packed handle wrapper. Lookup matches it with exact string equality.
const PendingValueTypeName = "anathema_state::value::PendingValue"

// Renderer produces the display string for one inspected value.
type Renderer interface {
	Render() string
}

// Constructor builds a renderer over an inspected value of a
// registered type. Returning false tells the host to fall back to its
// default rendering.
type Constructor func(Value) (Renderer, bool)

// Registry is a closed dispatch table from declared type names to
// renderer constructors. The host hands it each value it is about to
// display; a miss means the host renders the value itself. Construct
// with NewRegistry and pass it to the session explicitly; there is no
// process-wide registry.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register binds a constructor to an exact declared type name,
// replacing any previous binding for it.
func (r *Registry) Register(typeName string, ctor Constructor) {
	r.ctors[typeName] = ctor
}

// Lookup matches v's declared type name against the table. The second
// result is false when no renderer applies.
func (r *Registry) Lookup(v Value) (Renderer, bool) {
	ctor, ok := r.ctors[v.TypeName()]
	if !ok {
		return nil, false
	}
	return ctor(v)
}

// NewPendingValueRenderer reads the two raw components of a packed
// handle from v: the "owned" word and the "sub" reference.
func NewPendingValueRenderer(v Value) (Renderer, bool) {
	ownedField, ok := v.Field("owned")
	if !ok {
		return nil, false
	}
	owned, ok := ownedField.Uint64()
	if !ok {
		return nil, false
	}
	sub, ok := v.Field("sub")
	if !ok {
		return nil, false
	}
	return DecodePending(owned, sub), true
}

// DefaultRegistry returns a registry with the runtime's known handle
// types bound.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(PendingValueTypeName, NewPendingValueRenderer)
	return r
}
