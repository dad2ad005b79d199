package compiler

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const source = `enum Role {
  User
  Admin
}

model User {
  name: String
  role: Role
  posts: [@Post]
}

model Post {
  title: String
}

query users($name: String): [User] {
  user {
    name
    role
  }
  where {
    user {
      name {
        equals: $name
      }
    }
  }
}`

func writeSource(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()

	if err := afero.WriteFile(fs, path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "app.dfly", source)

	if err := Check(fs, "app.dfly"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Check(fs, "missing.dfly")
	if err == nil || !strings.HasPrefix(err.Error(), "Could not read input file.") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestCheckParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "app.dfly", "data Image { title: String }")

	err := Check(fs, "app.dfly")
	if err == nil || err.Error() != "Could not parse input file. Expected an enum, model, or query." {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCheckTypeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "app.dfly", "model A { b: Missing }")

	err := Check(fs, "app.dfly")
	want := "Could not generate intermediate representation. " +
		"Error in model `A`: field `b` has unknown type `Missing`."

	if err == nil || err.Error() != want {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "app.dfly", source)

	if err := Build(fs, "app.dfly", "out"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schema, err := afero.ReadFile(fs, "out/prisma/schema.prisma")
	if err != nil {
		t.Fatalf("missing prisma schema: %v", err)
	}

	wantPrefix := `generator client {
  provider = "prisma-client-js"
}

enum Role {
  User
  Admin
}

model User {
`

	if !strings.HasPrefix(string(schema), wantPrefix) {
		t.Fatalf("unexpected schema:\n%s", schema)
	}

	if !strings.Contains(string(schema), `posts     Post[]   @relation(name: "postsOnUser")`) {
		t.Fatalf("missing forward relation:\n%s", schema)
	}

	if !strings.Contains(string(schema), `user      User?    @relation(name: "postsOnUser", fields: [userId], references: [id])`) {
		t.Fatalf("missing reverse relation:\n%s", schema)
	}

	user, err := afero.ReadFile(fs, "out/typescript/User.ts")
	if err != nil {
		t.Fatalf("missing interface file: %v", err)
	}

	wantUser := `interface User {
    name: string;
    role: Role;
    posts: Array<Post>;
}

`

	if string(user) != wantUser {
		t.Fatalf("unexpected interface:\n%s", user)
	}

	role, err := afero.ReadFile(fs, "out/typescript/Role.ts")
	if err != nil {
		t.Fatalf("missing enum file: %v", err)
	}

	wantRole := `enum Role {
    User = "User",
    Admin = "Admin",
}

`

	if string(role) != wantRole {
		t.Fatalf("unexpected enum:\n%s", role)
	}
}

func TestBuildOverwritesExistingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "app.dfly", source)
	writeSource(t, fs, "out/typescript/User.ts", "stale")

	if err := Build(fs, "app.dfly", "out"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := afero.ReadFile(fs, "out/typescript/User.ts")
	if err != nil {
		t.Fatalf("missing interface file: %v", err)
	}

	if string(user) == "stale" {
		t.Fatal("existing file was not overwritten")
	}
}
