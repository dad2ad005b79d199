package ir

import "fmt"

// TypeErrorKind identifies the specific rule a declaration broke.
type TypeErrorKind int

const (
	// ErrDuplicateEnum reports a redeclared enum name.
	ErrDuplicateEnum TypeErrorKind = iota
	// ErrDuplicateModel reports a redeclared model name.
	ErrDuplicateModel
	// ErrDuplicateModelField reports a field name used twice within one
	// model, counting data fields, enum relations, and model relations
	// against the same namespace.
	ErrDuplicateModelField
	// ErrEmptyModel reports a model without fields.
	ErrEmptyModel
	// ErrUnknownModelFieldType reports a field whose type names neither a
	// primitive, a declared enum, nor a declared model.
	ErrUnknownModelFieldType
	// ErrDuplicateQuery reports a redeclared query name.
	ErrDuplicateQuery
	// ErrEmptyQuerySchema reports a query whose schema selects nothing.
	ErrEmptyQuerySchema
	// ErrInvalidQueryArgumentType reports an argument with a type that
	// cannot be an argument type.
	ErrInvalidQueryArgumentType
	// ErrInvalidQueryCondition reports a condition whose field and argument
	// do not line up.
	ErrInvalidQueryCondition
	// ErrInvalidQueryWhereName reports a where root that does not match the
	// schema root.
	ErrInvalidQueryWhereName
	// ErrUndefinedQueryArgument reports a condition referring to an
	// argument the query does not declare.
	ErrUndefinedQueryArgument
	// ErrUndefinedQueryField reports a schema selection that does not
	// resolve to a field.
	ErrUndefinedQueryField
	// ErrUndefinedQueryReturnType reports a return type naming an
	// undeclared model.
	ErrUndefinedQueryReturnType
	// ErrUnusedQueryArgument reports an argument no condition refers to.
	ErrUnusedQueryArgument
)

// TypeError is a semantic error found while lowering a syntax tree. It
// carries the enclosing declaration and enough detail to render a message.
type TypeError struct {
	Kind TypeErrorKind

	// Enum is the enclosing enum name, for enum errors.
	Enum string
	// Model is the enclosing model name, for model errors.
	Model string
	// Query is the enclosing query name, for query errors.
	Query string

	Field        string
	FieldType    string
	Argument     string
	ArgumentType string
	ReturnType   string
	WhereRoot    string
	SchemaRoot   string
	Operator     string
}

// DuplicateEnum reports a redeclared enum.
func DuplicateEnum(name string) *TypeError {
	return &TypeError{Kind: ErrDuplicateEnum, Enum: name}
}

// DuplicateModel reports a redeclared model.
func DuplicateModel(name string) *TypeError {
	return &TypeError{Kind: ErrDuplicateModel, Model: name}
}

// DuplicateModelField reports a field name used twice in a model.
func DuplicateModelField(model, field string) *TypeError {
	return &TypeError{Kind: ErrDuplicateModelField, Model: model, Field: field}
}

// EmptyModel reports a model without fields.
func EmptyModel(name string) *TypeError {
	return &TypeError{Kind: ErrEmptyModel, Model: name}
}

// UnknownModelFieldType reports a field with an unresolvable type.
func UnknownModelFieldType(model, field, fieldType string) *TypeError {
	return &TypeError{
		Kind:      ErrUnknownModelFieldType,
		Model:     model,
		Field:     field,
		FieldType: fieldType,
	}
}

// DuplicateQuery reports a redeclared query.
func DuplicateQuery(name string) *TypeError {
	return &TypeError{Kind: ErrDuplicateQuery, Query: name}
}

// EmptyQuerySchema reports a query schema that selects nothing.
func EmptyQuerySchema(name string) *TypeError {
	return &TypeError{Kind: ErrEmptyQuerySchema, Query: name}
}

// InvalidQueryArgumentType reports an argument with an invalid type.
func InvalidQueryArgumentType(query, argument, argumentType string) *TypeError {
	return &TypeError{
		Kind:         ErrInvalidQueryArgumentType,
		Query:        query,
		Argument:     argument,
		ArgumentType: argumentType,
	}
}

// InvalidQueryCondition reports a condition whose field and argument types do
// not line up.
func InvalidQueryCondition(query, field, argument, operator string) *TypeError {
	return &TypeError{
		Kind:     ErrInvalidQueryCondition,
		Query:    query,
		Field:    field,
		Argument: argument,
		Operator: operator,
	}
}

// InvalidQueryWhereName reports a where root that does not match the schema
// root.
func InvalidQueryWhereName(query, whereRoot, schemaRoot string) *TypeError {
	return &TypeError{
		Kind:       ErrInvalidQueryWhereName,
		Query:      query,
		WhereRoot:  whereRoot,
		SchemaRoot: schemaRoot,
	}
}

// UndefinedQueryArgument reports a condition referring to an undeclared
// argument.
func UndefinedQueryArgument(query, argument string) *TypeError {
	return &TypeError{Kind: ErrUndefinedQueryArgument, Query: query, Argument: argument}
}

// UndefinedQueryField reports a schema selection that does not resolve.
func UndefinedQueryField(query, field string) *TypeError {
	return &TypeError{Kind: ErrUndefinedQueryField, Query: query, Field: field}
}

// UndefinedQueryReturnType reports a return type naming an undeclared model.
func UndefinedQueryReturnType(query, returnType string) *TypeError {
	return &TypeError{Kind: ErrUndefinedQueryReturnType, Query: query, ReturnType: returnType}
}

// UnusedQueryArgument reports an argument no condition refers to.
func UnusedQueryArgument(query, argument string) *TypeError {
	return &TypeError{Kind: ErrUnusedQueryArgument, Query: query, Argument: argument}
}

func (e *TypeError) message() string {
	switch e.Kind {
	case ErrDuplicateEnum:
		return "enum already exists"
	case ErrDuplicateModel:
		return "model already exists"
	case ErrDuplicateModelField:
		return fmt.Sprintf("field `%s` already exists", e.Field)
	case ErrEmptyModel:
		return "model has no fields"
	case ErrUnknownModelFieldType:
		return fmt.Sprintf("field `%s` has unknown type `%s`", e.Field, e.FieldType)
	case ErrDuplicateQuery:
		return "query already exists"
	case ErrEmptyQuerySchema:
		return "query schema is empty"
	case ErrInvalidQueryArgumentType:
		return fmt.Sprintf("argument `$%s` has invalid type `%s`", e.Argument, e.ArgumentType)
	case ErrInvalidQueryCondition:
		return fmt.Sprintf("condition `%s %s %s` is invalid", e.Field, e.Operator, e.Argument)
	case ErrInvalidQueryWhereName:
		return fmt.Sprintf(
			"name of where root `%s` does not match name of schema root `%s`",
			e.WhereRoot,
			e.SchemaRoot,
		)
	case ErrUndefinedQueryArgument:
		return fmt.Sprintf("argument `$%s` is undefined", e.Argument)
	case ErrUndefinedQueryField:
		return fmt.Sprintf("field `%s` is undefined", e.Field)
	case ErrUndefinedQueryReturnType:
		return fmt.Sprintf("return type `%s` is undefined", e.ReturnType)
	case ErrUnusedQueryArgument:
		return fmt.Sprintf("argument `$%s` is unused", e.Argument)
	default:
		return ""
	}
}

func (e *TypeError) Error() string {
	switch {
	case e.Enum != "":
		return fmt.Sprintf("Error in enum `%s`: %s.", e.Enum, e.message())
	case e.Model != "":
		return fmt.Sprintf("Error in model `%s`: %s.", e.Model, e.message())
	default:
		return fmt.Sprintf("Error in query `%s`: %s.", e.Query, e.message())
	}
}
