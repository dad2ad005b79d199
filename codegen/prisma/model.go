package prisma

import (
	"fmt"
	"strings"

	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
	"github.com/dragonfly-lang/dragonfly/ir"
)

// Model is a Prisma model block.
type Model struct {
	Name       string
	Fields     *ordmap.Map[Field]
	Attributes []BlockAttribute
}

// NewModel returns a model holding only the implicit `id` and `createdAt`
// fields.
func NewModel(name string) *Model {
	fields := ordmap.New[Field]()
	fields.Insert("id", IDField())
	fields.Insert("createdAt", CreatedAtField())

	return &Model{Name: name, Fields: fields}
}

// InsertField inserts a field, rejecting name collisions.
func (m *Model) InsertField(field Field) *SchemaError {
	if m.Fields.ContainsKey(field.Name) {
		return DuplicateModelField(m.Name, field.Name)
	}

	m.Fields.Insert(field.Name, field)

	return nil
}

// write renders the model block. Field names and types are aligned into two
// columns; the type column is only padded when attributes follow it.
func (m *Model) write(builder *strings.Builder, level int) {
	indentOuter := indent(level)
	indentInner := indent(level + 1)

	fmt.Fprintf(builder, "%smodel %s {\n", indentOuter, m.Name)

	maxNameLength := 0
	maxTypeLength := 0

	for _, field := range m.Fields.Values() {
		maxNameLength = max(maxNameLength, len(field.Name))
		maxTypeLength = max(maxTypeLength, len(field.TypeString()))
	}

	maxNameLength++

	for _, field := range m.Fields.Values() {
		fmt.Fprintf(builder, "%s%-*s", indentInner, maxNameLength, field.Name)

		if len(field.Attributes) == 0 {
			builder.WriteString(field.TypeString())
		} else {
			fmt.Fprintf(builder, "%-*s", maxTypeLength, field.TypeString())

			for _, attribute := range field.Attributes {
				builder.WriteString(attribute.String())
			}
		}

		builder.WriteString("\n")
	}

	if len(m.Attributes) > 0 {
		builder.WriteString("\n")

		for _, attribute := range m.Attributes {
			attribute.write(builder, level+1)
		}
	}

	fmt.Fprintf(builder, "%s}\n", indentOuter)
}

func relationName(relation, model string) string {
	return fmt.Sprintf("%sOn%s", relation, model)
}

func relationAttribute(relation, model string) FieldAttribute {
	return FieldAttribute{
		Name: "relation",
		Arguments: []Argument{
			{Name: "name", Value: Text(relationName(relation, model))},
		},
	}
}

func relationAttributeWithKeys(relation, model, keyField string) FieldAttribute {
	return FieldAttribute{
		Name: "relation",
		Arguments: []Argument{
			{Name: "name", Value: Text(relationName(relation, model))},
			{Name: "fields", Value: Array(Keyword(keyField))},
			{Name: "references", Value: Array(Keyword("id"))},
		},
	}
}

// ModelFromIR lowers an IR model into a Prisma model: the implicit fields,
// the data fields, the enum relations, and the forward side of every model
// relation. Reverse sides are added later, once every model exists.
func ModelFromIR(irModel *ir.Model) (*Model, *SchemaError) {
	model := NewModel(irModel.Name)

	for _, entry := range irModel.Fields.Entries() {
		if err := model.InsertField(fieldFromIR(entry.Value)); err != nil {
			return nil, err
		}
	}

	for _, entry := range irModel.Enums.Entries() {
		relation := entry.Value

		modifier := ModifierRequired
		if relation.Cardinality == ir.Many {
			modifier = ModifierList
		}

		if err := model.InsertField(Field{
			Name:     relation.Name,
			Type:     relation.EnumName,
			Modifier: modifier,
		}); err != nil {
			return nil, err
		}
	}

	for _, entry := range irModel.Relations.Entries() {
		relation := entry.Value

		switch relation.Kind {
		case ir.OneToOne:
			if err := model.InsertField(Field{
				Name:     relation.Name,
				Type:     relation.ModelName,
				Modifier: ModifierOptional,
				Attributes: []FieldAttribute{
					relationAttribute(relation.Name, irModel.Name),
				},
			}); err != nil {
				return nil, err
			}
		case ir.OneToMany, ir.ManyToMany:
			if err := model.InsertField(Field{
				Name:     relation.Name,
				Type:     relation.ModelName,
				Modifier: ModifierList,
				Attributes: []FieldAttribute{
					relationAttribute(relation.Name, irModel.Name),
				},
			}); err != nil {
				return nil, err
			}
		case ir.ManyToOne:
			keyField := relation.Name + "Id"

			if err := model.InsertField(Field{
				Name:     relation.Name,
				Type:     relation.ModelName,
				Modifier: ModifierOptional,
				Attributes: []FieldAttribute{
					relationAttributeWithKeys(relation.Name, irModel.Name, keyField),
				},
			}); err != nil {
				return nil, err
			}

			if err := model.InsertField(Field{
				Name:       keyField,
				Type:       "Int",
				Modifier:   ModifierOptional,
				Attributes: []FieldAttribute{AttributeUnique()},
			}); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}
