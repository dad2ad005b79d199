// Package ir holds the checked intermediate representation of a Dragonfly
// program. Lowering a syntax tree resolves every name, classifies model
// fields into data fields, enum relations, and model relations, and
// type-checks query schemas and conditions. Code generators consume the IR
// and never see the syntax tree.
package ir

import (
	"strings"

	"github.com/dragonfly-lang/dragonfly/ast"
	"github.com/dragonfly-lang/dragonfly/internal/ordmap"
)

// Ir is a checked Dragonfly program.
type Ir struct {
	Models  *ordmap.Map[*Model]
	Enums   *ordmap.Map[*Enum]
	Queries *ordmap.Map[*Query]
}

// New returns an empty Ir.
func New() *Ir {
	return &Ir{
		Models:  ordmap.New[*Model](),
		Enums:   ordmap.New[*Enum](),
		Queries: ordmap.New[*Query](),
	}
}

// FromAst lowers a syntax tree into a checked program. Models are lowered
// first, then enums, then queries, so query checking sees every model and
// enum regardless of declaration order.
func FromAst(tree *ast.Ast) (*Ir, *TypeError) {
	result := New()

	for _, entry := range tree.Models.Entries() {
		if err := result.addModel(tree, entry.Value); err != nil {
			return nil, err
		}
	}

	for _, entry := range tree.Enums.Entries() {
		declaration := entry.Value

		if err := result.InsertEnum(&Enum{
			Name:   declaration.Name,
			Values: declaration.Variants,
		}); err != nil {
			return nil, err
		}
	}

	for _, entry := range tree.Queries.Entries() {
		if err := result.addQuery(tree, entry.Value); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// addModel classifies each field of an AST model and inserts the result.
// Primitives become data fields; references become enum or model relations
// depending on what the name resolves to; owned references become one-to-one
// or one-to-many relations.
func (i *Ir) addModel(tree *ast.Ast, astModel *ast.Model) *TypeError {
	model := NewModel(astModel.Name)

	for _, entry := range astModel.Fields.Entries() {
		field := entry.Value

		cardinality := One
		if field.Type.Array {
			cardinality = Many
		}

		var err *TypeError

		switch scalar := field.Type.Scalar; scalar.Kind {
		case ast.ScalarBoolean:
			err = model.InsertField(Field{Name: field.Name, Type: Boolean, Cardinality: cardinality})
		case ast.ScalarDateTime:
			err = model.InsertField(Field{Name: field.Name, Type: DateTime, Cardinality: cardinality})
		case ast.ScalarFloat:
			err = model.InsertField(Field{Name: field.Name, Type: Float, Cardinality: cardinality})
		case ast.ScalarInt:
			err = model.InsertField(Field{Name: field.Name, Type: Int, Cardinality: cardinality})
		case ast.ScalarString:
			err = model.InsertField(Field{Name: field.Name, Type: String, Cardinality: cardinality})
		case ast.ScalarReference:
			switch {
			case tree.Enums.ContainsKey(scalar.Name):
				if cardinality == Many {
					err = model.InsertEnumsRelation(field.Name, scalar.Name)
				} else {
					err = model.InsertEnumRelation(field.Name, scalar.Name)
				}
			case tree.Models.ContainsKey(scalar.Name):
				if cardinality == Many {
					err = model.InsertManyToMany(field.Name, scalar.Name)
				} else {
					err = model.InsertManyToOne(field.Name, scalar.Name)
				}
			default:
				err = UnknownModelFieldType(astModel.Name, field.Name, field.Type.String())
			}
		case ast.ScalarOwned:
			if tree.Models.ContainsKey(scalar.Name) {
				if cardinality == Many {
					err = model.InsertOneToMany(field.Name, scalar.Name)
				} else {
					err = model.InsertOneToOne(field.Name, scalar.Name)
				}
			} else {
				err = UnknownModelFieldType(astModel.Name, field.Name, field.Type.String())
			}
		default:
			err = UnknownModelFieldType(astModel.Name, field.Name, field.Type.String())
		}

		if err != nil {
			return err
		}
	}

	return i.InsertModel(model)
}

// InsertModel inserts a model, rejecting duplicates.
func (i *Ir) InsertModel(model *Model) *TypeError {
	if _, exists := i.Models.Insert(model.Name, model); exists {
		return DuplicateModel(model.Name)
	}

	return nil
}

// InsertEnum inserts an enum, rejecting duplicates.
func (i *Ir) InsertEnum(declaration *Enum) *TypeError {
	if _, exists := i.Enums.Insert(declaration.Name, declaration); exists {
		return DuplicateEnum(declaration.Name)
	}

	return nil
}

// InsertQuery inserts a query, rejecting duplicates.
func (i *Ir) InsertQuery(query *Query) *TypeError {
	if _, exists := i.Queries.Insert(query.Name, query); exists {
		return DuplicateQuery(query.Name)
	}

	return nil
}

// FieldType resolves a field path against a model. Every segment but the
// last must be a model relation; the last must be a data field.
func (i *Ir) FieldType(modelName string, path []string) (Type, bool) {
	current, ok := i.Models.Get(modelName)
	if !ok {
		return 0, false
	}

	for index, segment := range path {
		if index == len(path)-1 {
			field, ok := current.Field(segment)
			if !ok {
				return 0, false
			}

			return field.Type, true
		}

		relation, ok := current.ModelRelation(segment)
		if !ok {
			return 0, false
		}

		current, ok = i.Models.Get(relation.ModelName)
		if !ok {
			return 0, false
		}
	}

	return 0, false
}

// EnumType resolves a field path against a model, requiring the last segment
// to be an enum relation. It returns the enum's name.
func (i *Ir) EnumType(modelName string, path []string) (string, bool) {
	current, ok := i.Models.Get(modelName)
	if !ok {
		return "", false
	}

	for index, segment := range path {
		if index == len(path)-1 {
			relation, ok := current.EnumRelation(segment)
			if !ok {
				return "", false
			}

			return relation.EnumName, true
		}

		relation, ok := current.ModelRelation(segment)
		if !ok {
			return "", false
		}

		current, ok = i.Models.Get(relation.ModelName)
		if !ok {
			return "", false
		}
	}

	return "", false
}

// CheckArgumentType reports whether the field at path has the argument's
// type: enum arguments must meet an enum relation of the same enum,
// primitive arguments a data field of the same type.
func (i *Ir) CheckArgumentType(modelName string, path []string, argumentType QueryArgumentType) bool {
	if argumentType.Kind == ArgumentEnum {
		name, ok := i.EnumType(modelName, path)

		return ok && name == argumentType.EnumName
	}

	fieldType, ok := i.FieldType(modelName, path)

	return ok && fieldType == argumentType.Type
}

// querySchemaNode resolves one schema node against the current model. Leaves
// must name a data field or enum relation; relations must name a model
// relation, whose target model scopes the nested nodes.
func (i *Ir) querySchemaNode(
	queryName string,
	astNode ast.SchemaNode,
	model *Model,
	path []string,
) (QuerySchemaNode, *TypeError) {
	path = append(path, astNode.Name)

	if astNode.IsField() {
		if _, ok := model.Field(astNode.Name); ok {
			return QuerySchemaNode{Name: astNode.Name}, nil
		}

		if _, ok := model.EnumRelation(astNode.Name); ok {
			return QuerySchemaNode{Name: astNode.Name}, nil
		}

		return QuerySchemaNode{}, UndefinedQueryField(queryName, strings.Join(path, "."))
	}

	relation, ok := model.ModelRelation(astNode.Name)
	if !ok {
		return QuerySchemaNode{}, UndefinedQueryField(queryName, strings.Join(path, "."))
	}

	target, ok := i.Models.Get(relation.ModelName)
	if !ok {
		return QuerySchemaNode{}, UndefinedQueryField(queryName, strings.Join(path, "."))
	}

	nodes := make([]QuerySchemaNode, 0, len(astNode.Nodes))

	for _, child := range astNode.Nodes {
		node, err := i.querySchemaNode(queryName, child, target, path)
		if err != nil {
			return QuerySchemaNode{}, err
		}

		nodes = append(nodes, node)
	}

	return QuerySchemaNode{Name: astNode.Name, Nodes: nodes}, nil
}

// querySchema resolves a whole schema projection against the return model.
func (i *Ir) querySchema(
	queryName string,
	astSchema ast.Schema,
	model *Model,
) (QuerySchema, *TypeError) {
	nodes := make([]QuerySchemaNode, 0, len(astSchema.Nodes))

	for _, astNode := range astSchema.Nodes {
		node, err := i.querySchemaNode(queryName, astNode, model, nil)
		if err != nil {
			return QuerySchema{}, err
		}

		nodes = append(nodes, node)
	}

	return QuerySchema{Alias: astSchema.Name, Nodes: nodes}, nil
}

// addQuery checks an AST query and inserts the result. The where root must
// match the schema root, the return type must name a model, the schema must
// resolve, and each condition must connect a field to an argument of the
// same type.
func (i *Ir) addQuery(tree *ast.Ast, astQuery *ast.Query) *TypeError {
	if astQuery.Where != nil && astQuery.Where.Name != astQuery.Schema.Name {
		return InvalidQueryWhereName(astQuery.Name, astQuery.Where.Name, astQuery.Schema.Name)
	}

	model, ok := i.Models.Get(astQuery.ReturnType.Name)
	if !ok {
		return UndefinedQueryReturnType(astQuery.Name, astQuery.ReturnType.Name)
	}

	returnType := QueryReturnType{ModelName: astQuery.ReturnType.Name, Cardinality: One}
	if astQuery.ReturnType.Kind == ast.ReturnArray {
		returnType.Cardinality = Many
	}

	arguments := ordmap.New[QueryArgument]()

	for _, entry := range astQuery.Arguments.Entries() {
		astArgument := entry.Value

		argumentType, cardinality, ok := argumentTypeFromAst(tree, astArgument.Type)
		if !ok {
			continue
		}

		arguments.Insert(astArgument.Name, QueryArgument{
			Name:        astArgument.Name,
			Type:        argumentType,
			Cardinality: cardinality,
		})
	}

	schema, err := i.querySchema(astQuery.Name, astQuery.Schema, model)
	if err != nil {
		return err
	}

	var where *QueryWhere

	if astQuery.Where != nil {
		conditions := make([]QueryCondition, 0, len(astQuery.Where.Conditions))

		for _, astCondition := range astQuery.Where.Conditions {
			matched := false

			for _, argument := range arguments.Values() {
				if argument.Name == astCondition.Argument &&
					i.CheckArgumentType(model.Name, astCondition.Path, argument.Type) {
					matched = true

					break
				}
			}

			if !matched {
				return InvalidQueryCondition(
					astQuery.Name,
					astCondition.Path.String(),
					astCondition.Argument,
					astCondition.Operator.String(),
				)
			}

			conditions = append(conditions, QueryCondition{
				Path:     astCondition.Path,
				Operator: operatorFromAst(astCondition.Operator),
				Argument: astCondition.Argument,
			})
		}

		where = &QueryWhere{Alias: astQuery.Where.Name, Conditions: conditions}
	}

	return i.InsertQuery(&Query{
		Name:       astQuery.Name,
		Arguments:  arguments,
		Schema:     schema,
		ReturnType: returnType,
		Where:      where,
	})
}
