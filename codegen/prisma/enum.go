package prisma

import (
	"fmt"
	"strings"

	"github.com/dragonfly-lang/dragonfly/ir"
)

// Enum is a Prisma enum block.
type Enum struct {
	Name       string
	Values     []string
	Attributes []BlockAttribute
}

func (e *Enum) write(builder *strings.Builder, level int) {
	indentOuter := indent(level)
	indentInner := indent(level + 1)

	fmt.Fprintf(builder, "%senum %s {\n", indentOuter, e.Name)

	for _, value := range e.Values {
		fmt.Fprintf(builder, "%s%s\n", indentInner, value)
	}

	if len(e.Attributes) > 0 {
		builder.WriteString("\n")

		for _, attribute := range e.Attributes {
			attribute.write(builder, level+1)
		}
	}

	fmt.Fprintf(builder, "%s}\n", indentOuter)
}

// EnumFromIR lowers an IR enum.
func EnumFromIR(irEnum *ir.Enum) *Enum {
	return &Enum{Name: irEnum.Name, Values: irEnum.Values}
}
