package value

// Var is an identifier bound to an instance, with a mutability flag fixed
// at declaration. A Var is always fully initialized once visible — there is
// no "declared but unset" state.
type Var struct {
	name     string
	instance *ObjectInstance
	mutable  bool
}

// NewVar binds name to instance with the given mutability.
func NewVar(name string, instance *ObjectInstance, mutable bool) *Var {
	return &Var{name: name, instance: instance, mutable: mutable}
}

// Name returns the variable's identifier.
func (v *Var) Name() string { return v.name }

// Instance returns the variable's currently bound value.
func (v *Var) Instance() *ObjectInstance { return v.instance }

// Mutable reports whether the variable may be reassigned.
func (v *Var) Mutable() bool { return v.mutable }

// Rebind replaces the bound instance in place. Callers are responsible for
// checking Mutable first; Rebind itself does not enforce it.
func (v *Var) Rebind(instance *ObjectInstance) { v.instance = instance }

// Print renders the variable the way it appears in a dump:
// "name = <type name>".
func (v *Var) Print() string {
	if v.instance == nil {
		return v.name + " = <uninitialized>"
	}
	return v.name + " = " + v.instance.TypeName()
}
