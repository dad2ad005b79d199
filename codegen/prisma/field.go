package prisma

import "github.com/dragonfly-lang/dragonfly/ir"

// Modifier marks a field as required, optional, or a list.
type Modifier int

const (
	// ModifierRequired renders nothing.
	ModifierRequired Modifier = iota
	// ModifierOptional renders `?`.
	ModifierOptional
	// ModifierList renders `[]`.
	ModifierList
)

func (m Modifier) String() string {
	switch m {
	case ModifierOptional:
		return "?"
	case ModifierList:
		return "[]"
	default:
		return ""
	}
}

// Field is one field of a Prisma model.
type Field struct {
	Name       string
	Type       string
	Modifier   Modifier
	Attributes []FieldAttribute
}

// TypeString renders the field's type with its modifier.
func (f Field) TypeString() string {
	return f.Type + f.Modifier.String()
}

// IDField is the implicit `id Int @id @default(autoincrement())` field
// every model receives.
func IDField() Field {
	return Field{
		Name: "id",
		Type: "Int",
		Attributes: []FieldAttribute{
			AttributeID(),
			AttributeDefaultAutoincrement(),
		},
	}
}

// CreatedAtField is the implicit `createdAt DateTime @default(now())` field
// every model receives.
func CreatedAtField() Field {
	return Field{
		Name:       "createdAt",
		Type:       "DateTime",
		Attributes: []FieldAttribute{AttributeDefaultNow()},
	}
}

func fieldFromIR(field ir.Field) Field {
	modifier := ModifierRequired
	if field.Cardinality == ir.Many {
		modifier = ModifierList
	}

	return Field{
		Name:     field.Name,
		Type:     field.Type.String(),
		Modifier: modifier,
	}
}
