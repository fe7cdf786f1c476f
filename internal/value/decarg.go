package value

import "fmt"

// DecArg is a formal parameter or record field declaration: a name paired
// with its declared type.
type DecArg struct {
	Name string
	Type TypeId
}

// NewDecArg builds a DecArg.
func NewDecArg(name string, typ TypeId) DecArg {
	return DecArg{Name: name, Type: typ}
}

// Print renders the DecArg the way it appears in source: "name: TypeId".
func (d DecArg) Print() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Type)
}
