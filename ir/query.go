package ir

import (
	"fmt"

	"github.com/dragonfly-lang/dragonfly/ast"
	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
)

// ArgumentTypeKind distinguishes enum-valued arguments from primitive ones.
type ArgumentTypeKind int

const (
	// ArgumentEnum is an argument holding a value of a declared enum.
	ArgumentEnum ArgumentTypeKind = iota
	// ArgumentPrimitive is an argument holding a primitive value.
	ArgumentPrimitive
)

// QueryArgumentType is the checked type of a query argument.
type QueryArgumentType struct {
	Kind ArgumentTypeKind
	// EnumName is set for enum arguments.
	EnumName string
	// Type is set for primitive arguments.
	Type Type
}

func (t QueryArgumentType) String() string {
	if t.Kind == ArgumentEnum {
		return t.EnumName
	}

	return t.Type.String()
}

// QueryArgument is a checked query argument.
type QueryArgument struct {
	Name        string
	Type        QueryArgumentType
	Cardinality Cardinality
}

// argumentTypeFromAst converts an AST argument type into a checked argument
// type. Owned references and references to undeclared enums have no argument
// form.
func argumentTypeFromAst(tree *ast.Ast, astType ast.Type) (QueryArgumentType, Cardinality, bool) {
	cardinality := One
	if astType.Array {
		cardinality = Many
	}

	switch astType.Scalar.Kind {
	case ast.ScalarBoolean:
		return QueryArgumentType{Kind: ArgumentPrimitive, Type: Boolean}, cardinality, true
	case ast.ScalarDateTime:
		return QueryArgumentType{Kind: ArgumentPrimitive, Type: DateTime}, cardinality, true
	case ast.ScalarFloat:
		return QueryArgumentType{Kind: ArgumentPrimitive, Type: Float}, cardinality, true
	case ast.ScalarInt:
		return QueryArgumentType{Kind: ArgumentPrimitive, Type: Int}, cardinality, true
	case ast.ScalarString:
		return QueryArgumentType{Kind: ArgumentPrimitive, Type: String}, cardinality, true
	case ast.ScalarReference:
		if tree.Enums.ContainsKey(astType.Scalar.Name) {
			return QueryArgumentType{Kind: ArgumentEnum, EnumName: astType.Scalar.Name}, cardinality, true
		}

		return QueryArgumentType{}, 0, false
	default:
		return QueryArgumentType{}, 0, false
	}
}

// QueryOperator is a checked condition operator.
type QueryOperator int

const (
	// OperatorContains requires the field to contain the argument value.
	OperatorContains QueryOperator = iota
	// OperatorEquals requires the field to equal the argument value.
	OperatorEquals
)

func (o QueryOperator) String() string {
	if o == OperatorEquals {
		return "equals"
	}

	return "contains"
}

func operatorFromAst(operator ast.Operator) QueryOperator {
	if operator == ast.OperatorEquals {
		return OperatorEquals
	}

	return OperatorContains
}

// QueryCondition restricts a field, addressed by its path from the schema
// root, through an operator and a query argument.
type QueryCondition struct {
	Path     []string
	Operator QueryOperator
	Argument string
}

// QueryWhere is a checked where clause.
type QueryWhere struct {
	Alias      string
	Conditions []QueryCondition
}

// QuerySchemaNode is a node of a checked schema: a field leaf or a relation
// with nested nodes.
type QuerySchemaNode struct {
	Name  string
	Nodes []QuerySchemaNode
}

// QuerySchema is a checked schema projection.
type QuerySchema struct {
	Alias string
	Nodes []QuerySchemaNode
}

// QueryReturnType is a checked return type.
type QueryReturnType struct {
	ModelName   string
	Cardinality Cardinality
}

func (t QueryReturnType) String() string {
	if t.Cardinality == Many {
		return fmt.Sprintf("[%s]", t.ModelName)
	}

	return t.ModelName
}

// Query is a checked query.
type Query struct {
	Name       string
	Arguments  *ordmap.Map[QueryArgument]
	Schema     QuerySchema
	ReturnType QueryReturnType
	Where      *QueryWhere
}
