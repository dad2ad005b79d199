package typescript

import (
	"fmt"
	"strings"

	"github.com/dragonfly-lang/dragonfly/ir"
)

// Variant is one member of a string enum. The value may differ from the
// name, although lowering always keeps them equal.
type Variant struct {
	Name  string
	Value string
}

// StringEnum is a TypeScript string enum declaration.
type StringEnum struct {
	Name     string
	Variants []Variant
}

// String renders the declaration, followed by a blank line.
func (e *StringEnum) String() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "enum %s {\n", e.Name)

	for _, variant := range e.Variants {
		fmt.Fprintf(&builder, "%s%s = %q,\n", indent(1), variant.Name, variant.Value)
	}

	builder.WriteString("}\n\n")

	return builder.String()
}

// StringEnumFromIR lowers an IR enum, keeping variant order.
func StringEnumFromIR(irEnum *ir.Enum) *StringEnum {
	declaration := &StringEnum{Name: irEnum.Name}

	for _, value := range irEnum.Values {
		declaration.Variants = append(declaration.Variants, Variant{Name: value, Value: value})
	}

	return declaration
}
