package typescript

import (
	"fmt"
	"strings"

	"github.com/dragonfly-lang/dragonfly/ir"
)

// Property is one property of an interface.
type Property struct {
	Name     string
	Type     string
	Optional bool
}

func (p Property) write(builder *strings.Builder, level int) {
	builder.WriteString(indent(level))
	builder.WriteString(p.Name)

	if p.Optional {
		builder.WriteString("?")
	}

	fmt.Fprintf(builder, ": %s;\n", p.Type)
}

// Interface is a TypeScript interface declaration.
type Interface struct {
	Name       string
	Properties []Property
}

// String renders the declaration, followed by a blank line.
func (i *Interface) String() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "interface %s {\n", i.Name)

	for _, property := range i.Properties {
		property.write(&builder, 1)
	}

	builder.WriteString("}\n\n")

	return builder.String()
}

// InterfaceFromIR lowers an IR model. Properties follow the model's
// insertion order: data fields, enum relations, then model relations.
func InterfaceFromIR(model *ir.Model) *Interface {
	declaration := &Interface{Name: model.Name}

	for _, entry := range model.Fields.Entries() {
		field := entry.Value

		propertyType := scalarType(field.Type)
		if field.Cardinality == ir.Many {
			propertyType = arrayOf(propertyType)
		}

		declaration.Properties = append(declaration.Properties, Property{
			Name: field.Name,
			Type: propertyType,
		})
	}

	for _, entry := range model.Enums.Entries() {
		relation := entry.Value

		propertyType := relation.EnumName
		if relation.Cardinality == ir.Many {
			propertyType = arrayOf(propertyType)
		}

		declaration.Properties = append(declaration.Properties, Property{
			Name: relation.Name,
			Type: propertyType,
		})
	}

	for _, entry := range model.Relations.Entries() {
		relation := entry.Value

		switch relation.Kind {
		case ir.OneToOne:
			declaration.Properties = append(declaration.Properties, Property{
				Name:     relation.Name,
				Type:     relation.ModelName,
				Optional: true,
			})
		case ir.ManyToOne:
			declaration.Properties = append(declaration.Properties, Property{
				Name: relation.Name,
				Type: relation.ModelName,
			})
		case ir.OneToMany, ir.ManyToMany:
			declaration.Properties = append(declaration.Properties, Property{
				Name: relation.Name,
				Type: arrayOf(relation.ModelName),
			})
		}
	}

	return declaration
}
