package prisma

import "fmt"

// SchemaErrorKind identifies what went wrong while building a schema.
type SchemaErrorKind int

const (
	// ErrDuplicateEnum reports a redeclared enum.
	ErrDuplicateEnum SchemaErrorKind = iota
	// ErrDuplicateModel reports a redeclared model.
	ErrDuplicateModel
	// ErrDuplicateModelField reports a field name collision, including
	// collisions with the implicit `id` and `createdAt` fields and with
	// inferred reverse-relation fields.
	ErrDuplicateModelField
	// ErrUnknownModel reports a relation to a model the schema does not
	// contain.
	ErrUnknownModel
)

// SchemaError is an error raised while lowering an IR into a Prisma schema.
type SchemaError struct {
	Kind  SchemaErrorKind
	Enum  string
	Model string
	Field string
}

// DuplicateEnum reports a redeclared enum.
func DuplicateEnum(name string) *SchemaError {
	return &SchemaError{Kind: ErrDuplicateEnum, Enum: name}
}

// DuplicateModel reports a redeclared model.
func DuplicateModel(name string) *SchemaError {
	return &SchemaError{Kind: ErrDuplicateModel, Model: name}
}

// DuplicateModelField reports a field name collision within a model.
func DuplicateModelField(model, field string) *SchemaError {
	return &SchemaError{Kind: ErrDuplicateModelField, Model: model, Field: field}
}

// UnknownModel reports a relation to an unknown model.
func UnknownModel(name string) *SchemaError {
	return &SchemaError{Kind: ErrUnknownModel, Model: name}
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case ErrDuplicateEnum:
		return fmt.Sprintf("enum `%s` already exists", e.Enum)
	case ErrDuplicateModel:
		return fmt.Sprintf("model `%s` already exists", e.Model)
	case ErrDuplicateModelField:
		return fmt.Sprintf("model `%s` contains duplicate field `%s`", e.Model, e.Field)
	case ErrUnknownModel:
		return fmt.Sprintf("model `%s` does not exist", e.Model)
	default:
		return ""
	}
}
