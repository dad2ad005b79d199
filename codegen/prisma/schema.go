// Package prisma renders a checked Dragonfly program as a Prisma schema.
// Every model receives implicit `id` and `createdAt` fields, forward
// relation fields carry `@relation` attributes, and the matching reverse
// fields are inferred onto the target models.
package prisma

import (
	"strings"

	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
	"github.com/dragonfly-lang/dragonfly/ir"
)

// tabSize is the indentation width of nested blocks.
const tabSize = 2

func indent(level int) string {
	return strings.Repeat(" ", level*tabSize)
}

// Schema is a complete Prisma schema.
type Schema struct {
	Generators []*Generator
	DataSource *DataSource
	Enums      *ordmap.Map[*Enum]
	Models     *ordmap.Map[*Model]
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{
		Enums:  ordmap.New[*Enum](),
		Models: ordmap.New[*Model](),
	}
}

// InsertEnum inserts an enum, rejecting duplicates.
func (s *Schema) InsertEnum(declaration *Enum) *SchemaError {
	if _, exists := s.Enums.Insert(declaration.Name, declaration); exists {
		return DuplicateEnum(declaration.Name)
	}

	return nil
}

// InsertModel inserts a model, rejecting duplicates.
func (s *Schema) InsertModel(model *Model) *SchemaError {
	if _, exists := s.Models.Insert(model.Name, model); exists {
		return DuplicateModel(model.Name)
	}

	return nil
}

// addForeignKeys mutates the target of each of the source model's relations
// to carry the reverse side: a back-reference field and, for owned
// relations, the foreign key column.
func (s *Schema) addForeignKeys(source *ir.Model) *SchemaError {
	reverseName := strings.ToLower(source.Name)

	for _, entry := range source.Relations.Entries() {
		relation := entry.Value

		target, ok := s.Models.Get(relation.ModelName)
		if !ok {
			return UnknownModel(relation.ModelName)
		}

		switch relation.Kind {
		case ir.OneToOne:
			if err := target.InsertField(Field{
				Name:     reverseName,
				Type:     source.Name,
				Modifier: ModifierRequired,
				Attributes: []FieldAttribute{
					relationAttributeWithKeys(relation.Name, source.Name, reverseName+"Id"),
				},
			}); err != nil {
				return err
			}

			if err := target.InsertField(Field{
				Name:       reverseName + "Id",
				Type:       "Int",
				Modifier:   ModifierRequired,
				Attributes: []FieldAttribute{AttributeUnique()},
			}); err != nil {
				return err
			}
		case ir.OneToMany:
			if err := target.InsertField(Field{
				Name:     reverseName,
				Type:     source.Name,
				Modifier: ModifierOptional,
				Attributes: []FieldAttribute{
					relationAttributeWithKeys(relation.Name, source.Name, reverseName+"Id"),
				},
			}); err != nil {
				return err
			}

			if err := target.InsertField(Field{
				Name:       reverseName + "Id",
				Type:       "Int",
				Modifier:   ModifierOptional,
				Attributes: []FieldAttribute{AttributeUnique()},
			}); err != nil {
				return err
			}
		case ir.ManyToMany:
			if err := target.InsertField(Field{
				Name:     reverseName,
				Type:     source.Name,
				Modifier: ModifierList,
				Attributes: []FieldAttribute{
					relationAttribute(relation.Name, source.Name),
				},
			}); err != nil {
				return err
			}
		case ir.ManyToOne:
			// The forward side already carries the foreign key.
		}
	}

	return nil
}

// FromIR lowers a checked program into a Prisma schema. All models are
// lowered before reverse relations are inferred, so inference sees every
// target regardless of declaration order.
func FromIR(program *ir.Ir) (*Schema, *SchemaError) {
	schema := New()

	for _, entry := range program.Models.Entries() {
		model, err := ModelFromIR(entry.Value)
		if err != nil {
			return nil, err
		}

		if err := schema.InsertModel(model); err != nil {
			return nil, err
		}
	}

	for _, entry := range program.Models.Entries() {
		if err := schema.addForeignKeys(entry.Value); err != nil {
			return nil, err
		}
	}

	for _, entry := range program.Enums.Entries() {
		if err := schema.InsertEnum(EnumFromIR(entry.Value)); err != nil {
			return nil, err
		}
	}

	return schema, nil
}

// String renders the whole schema: generators, then the datasource, then
// enums, then models, each block followed by a blank line.
func (s *Schema) String() string {
	var builder strings.Builder

	for _, generator := range s.Generators {
		generator.write(&builder, 0)
		builder.WriteString("\n")
	}

	if s.DataSource != nil {
		s.DataSource.write(&builder, 0)
		builder.WriteString("\n")
	}

	for _, entry := range s.Enums.Entries() {
		entry.Value.write(&builder, 0)
		builder.WriteString("\n")
	}

	for _, entry := range s.Models.Entries() {
		entry.Value.write(&builder, 0)
		builder.WriteString("\n")
	}

	return builder.String()
}
