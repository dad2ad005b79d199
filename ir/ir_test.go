package ir

import (
	"reflect"
	"testing"

	"github.com/dragonfly-lang/dragonfly/ast"
)

func lower(t *testing.T, input string) *Ir {
	t.Helper()

	tree, _, err := ast.Parse(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	result, typeError := FromAst(tree)
	if typeError != nil {
		t.Fatalf("unexpected type error: %v", typeError)
	}

	return result
}

func lowerError(t *testing.T, input string) *TypeError {
	t.Helper()

	tree, _, err := ast.Parse(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	_, typeError := FromAst(tree)
	if typeError == nil {
		t.Fatal("expected a type error")
	}

	return typeError
}

const program = `enum Role {
  Admin
  User
}

model User {
  name: String
  age: Int
  role: Role
  friends: [User]
  profile: @Profile
  posts: [@Post]
}

model Profile {
  bio: String
}

model Post {
  title: String
  tags: [String]
}`

func TestFieldClassification(t *testing.T) {
	result := lower(t, program)

	user, ok := result.Models.Get("User")
	if !ok {
		t.Fatal("missing model User")
	}

	wantFields := []Field{
		{Name: "name", Type: String, Cardinality: One},
		{Name: "age", Type: Int, Cardinality: One},
	}

	if !reflect.DeepEqual(user.Fields.Values(), wantFields) {
		t.Fatalf("unexpected fields: %+v", user.Fields.Values())
	}

	wantEnums := []EnumRelation{
		{Name: "role", EnumName: "Role", Cardinality: One},
	}

	if !reflect.DeepEqual(user.Enums.Values(), wantEnums) {
		t.Fatalf("unexpected enum relations: %+v", user.Enums.Values())
	}

	wantRelations := []ModelRelation{
		{Name: "friends", ModelName: "User", Kind: ManyToMany},
		{Name: "profile", ModelName: "Profile", Kind: OneToOne},
		{Name: "posts", ModelName: "Post", Kind: OneToMany},
	}

	if !reflect.DeepEqual(user.Relations.Values(), wantRelations) {
		t.Fatalf("unexpected model relations: %+v", user.Relations.Values())
	}

	post, ok := result.Models.Get("Post")
	if !ok {
		t.Fatal("missing model Post")
	}

	if tags, ok := post.Field("tags"); !ok || tags.Cardinality != Many {
		t.Fatalf("unexpected tags field: %+v", tags)
	}
}

func TestManyToOneClassification(t *testing.T) {
	result := lower(t, `model Post {
	  author: User
	}

	model User {
	  name: String
	}`)

	post, _ := result.Models.Get("Post")

	relation, ok := post.ModelRelation("author")
	if !ok || relation.Kind != ManyToOne || relation.ModelName != "User" {
		t.Fatalf("unexpected relation: %+v", relation)
	}
}

func TestUnknownFieldType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "reference",
			input: "model A { b: Missing }",
			want:  "Error in model `A`: field `b` has unknown type `Missing`.",
		},
		{
			name:  "owned",
			input: "model A { b: @Missing }",
			want:  "Error in model `A`: field `b` has unknown type `@Missing`.",
		},
		{
			name:  "owned array",
			input: "model A { b: [@Missing] }",
			want:  "Error in model `A`: field `b` has unknown type `[@Missing]`.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := lowerError(t, test.input)
			if err.Error() != test.want {
				t.Fatalf("got %q, want %q", err.Error(), test.want)
			}
		})
	}
}

func TestDuplicateModelFieldNamespace(t *testing.T) {
	model := NewModel("User")

	if err := model.InsertField(Field{Name: "role", Type: String, Cardinality: One}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := model.InsertEnumRelation("role", "Role")
	if err == nil || err.Error() != "Error in model `User`: field `role` already exists." {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
}

func TestQueryLowering(t *testing.T) {
	result := lower(t, program+`

	query users($name: String, $role: Role): [User] {
	  user {
	    name
	    role
	    profile {
	      bio
	    }
	  }
	  where {
	    user {
	      name {
	        equals: $name
	      }
	      role {
	        equals: $role
	      }
	    }
	  }
	}`)

	query, ok := result.Queries.Get("users")
	if !ok {
		t.Fatal("missing query users")
	}

	if query.ReturnType != (QueryReturnType{ModelName: "User", Cardinality: Many}) {
		t.Fatalf("unexpected return type: %+v", query.ReturnType)
	}

	wantArguments := []QueryArgument{
		{Name: "name", Type: QueryArgumentType{Kind: ArgumentPrimitive, Type: String}, Cardinality: One},
		{Name: "role", Type: QueryArgumentType{Kind: ArgumentEnum, EnumName: "Role"}, Cardinality: One},
	}

	if !reflect.DeepEqual(query.Arguments.Values(), wantArguments) {
		t.Fatalf("unexpected arguments: %+v", query.Arguments.Values())
	}

	wantSchema := QuerySchema{
		Alias: "user",
		Nodes: []QuerySchemaNode{
			{Name: "name"},
			{Name: "role"},
			{Name: "profile", Nodes: []QuerySchemaNode{{Name: "bio"}}},
		},
	}

	if !reflect.DeepEqual(query.Schema, wantSchema) {
		t.Fatalf("unexpected schema: %+v", query.Schema)
	}

	wantWhere := &QueryWhere{
		Alias: "user",
		Conditions: []QueryCondition{
			{Path: []string{"name"}, Operator: OperatorEquals, Argument: "name"},
			{Path: []string{"role"}, Operator: OperatorEquals, Argument: "role"},
		},
	}

	if !reflect.DeepEqual(query.Where, wantWhere) {
		t.Fatalf("unexpected where clause: %+v", query.Where)
	}
}

func TestConditionThroughRelation(t *testing.T) {
	result := lower(t, program+`

	query users($bio: String): [User] {
	  user {
	    name
	  }
	  where {
	    user {
	      profile {
	        bio {
	          equals: $bio
	        }
	      }
	    }
	  }
	}`)

	query, _ := result.Queries.Get("users")

	want := []QueryCondition{
		{Path: []string{"profile", "bio"}, Operator: OperatorEquals, Argument: "bio"},
	}

	if !reflect.DeepEqual(query.Where.Conditions, want) {
		t.Fatalf("unexpected conditions: %+v", query.Where.Conditions)
	}
}

func TestInvalidWhereName(t *testing.T) {
	err := lowerError(t, program+`

	query users: [User] {
	  user {
	    name
	  }
	  where {
	    foo {
	      name {
	        equals: $name
	      }
	    }
	  }
	}`)

	want := "Error in query `users`: name of where root `foo` does not match name of schema root `user`."
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestUndefinedReturnType(t *testing.T) {
	err := lowerError(t, `query things: [Thing] {
	  thing {
	    name
	  }
	}`)

	want := "Error in query `things`: return type `Thing` is undefined."
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestUndefinedQueryField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "top level",
			input: program + `

			query users: [User] {
			  user {
			    nope
			  }
			}`,
			want: "Error in query `users`: field `nope` is undefined.",
		},
		{
			name: "nested",
			input: program + `

			query users: [User] {
			  user {
			    profile {
			      nah
			    }
			  }
			}`,
			want: "Error in query `users`: field `profile.nah` is undefined.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := lowerError(t, test.input)
			if err.Error() != test.want {
				t.Fatalf("got %q, want %q", err.Error(), test.want)
			}
		})
	}
}

func TestInvalidCondition(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name: "type mismatch",
			query: `query users($age: String): [User] {
			  user {
			    name
			  }
			  where {
			    user {
			      age {
			        equals: $age
			      }
			    }
			  }
			}`,
			want: "Error in query `users`: condition `age equals age` is invalid.",
		},
		{
			name: "undeclared argument",
			query: `query users: [User] {
			  user {
			    name
			  }
			  where {
			    user {
			      name {
			        contains: $name
			      }
			    }
			  }
			}`,
			want: "Error in query `users`: condition `name contains name` is invalid.",
		},
		{
			name: "nested mismatch",
			query: `query users($bio: Int): [User] {
			  user {
			    name
			  }
			  where {
			    user {
			      profile {
			        bio {
			          equals: $bio
			        }
			      }
			    }
			  }
			}`,
			want: "Error in query `users`: condition `profile.bio equals bio` is invalid.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := lowerError(t, program+"\n\n"+test.query)
			if err.Error() != test.want {
				t.Fatalf("got %q, want %q", err.Error(), test.want)
			}
		})
	}
}

func TestFieldTypeResolution(t *testing.T) {
	result := lower(t, program)

	if fieldType, ok := result.FieldType("User", []string{"profile", "bio"}); !ok || fieldType != String {
		t.Fatalf("unexpected resolution: %v %v", fieldType, ok)
	}

	if _, ok := result.FieldType("User", []string{"role"}); ok {
		t.Fatal("enum relation resolved as data field")
	}

	if name, ok := result.EnumType("User", []string{"role"}); !ok || name != "Role" {
		t.Fatalf("unexpected enum resolution: %v %v", name, ok)
	}
}

func TestOwnedArgumentSkipped(t *testing.T) {
	result := lower(t, program+`

	query users($profile: @Profile): [User] {
	  user {
	    name
	  }
	}`)

	query, _ := result.Queries.Get("users")
	if query.Arguments.Len() != 0 {
		t.Fatalf("unexpected arguments: %+v", query.Arguments.Values())
	}
}
