// Package compiler drives the whole pipeline: read a source file, parse it,
// lower it, and emit Prisma and TypeScript artefacts. All file access goes
// through an afero filesystem so the pipeline can run against memory in
// tests.
package compiler

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dragonfly-lang/dragonfly/ast"
	"github.com/dragonfly-lang/dragonfly/codegen/prisma"
	"github.com/dragonfly-lang/dragonfly/codegen/typescript"
	"github.com/dragonfly-lang/dragonfly/ir"
)

const (
	// PrismaDir is the output sub-directory for the Prisma schema.
	PrismaDir = "prisma"
	// TypeScriptDir is the output sub-directory for TypeScript files.
	TypeScriptDir = "typescript"
	// SchemaFileName is the name of the generated Prisma schema file.
	SchemaFileName = "schema.prisma"
	// DefaultOutputDir is the output directory used when none is given.
	DefaultOutputDir = "./out"
)

// Load reads and checks a source file, returning the checked program.
func Load(fs afero.Fs, path string) (*ir.Ir, error) {
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("Could not read input file. %v", err)
	}

	tree, _, parseError := ast.Parse(string(source))
	if parseError != nil {
		return nil, fmt.Errorf("Could not parse input file. %v", parseError)
	}

	program, typeError := ir.FromAst(tree)
	if typeError != nil {
		return nil, fmt.Errorf(
			"Could not generate intermediate representation. %v",
			typeError,
		)
	}

	return program, nil
}

// Check parses and type-checks a source file without emitting anything.
func Check(fs afero.Fs, path string) error {
	_, err := Load(fs, path)

	return err
}

// Build runs the whole pipeline and writes the generated artefacts below
// outputDir: `prisma/schema.prisma` plus one TypeScript file per model and
// per enum. Existing files are overwritten.
func Build(fs afero.Fs, path, outputDir string) error {
	program, err := Load(fs, path)
	if err != nil {
		return err
	}

	if err := generateTypeScript(fs, program, outputDir); err != nil {
		return err
	}

	return generatePrisma(fs, program, outputDir)
}

// generatePrisma writes the Prisma schema, prefixed with a default
// `generator client` block.
func generatePrisma(fs afero.Fs, program *ir.Ir, outputDir string) error {
	directory := filepath.Join(outputDir, PrismaDir)

	if err := fs.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("Could not create prisma output directory. %v", err)
	}

	schema, schemaError := prisma.FromIR(program)
	if schemaError != nil {
		return fmt.Errorf("Could not generate prisma schema. %v", schemaError)
	}

	schema.Generators = []*prisma.Generator{{
		Name:     "client",
		Provider: "prisma-client-js",
	}}

	path := filepath.Join(directory, SchemaFileName)

	if err := afero.WriteFile(fs, path, []byte(schema.String()), 0o644); err != nil {
		return fmt.Errorf("Could not write prisma schema. %v", err)
	}

	return nil
}

// generateTypeScript writes one interface file per model and one string
// enum file per enum.
func generateTypeScript(fs afero.Fs, program *ir.Ir, outputDir string) error {
	directory := filepath.Join(outputDir, TypeScriptDir)

	if err := fs.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("Could not create typescript output directory. %v", err)
	}

	for _, entry := range program.Models.Entries() {
		model := entry.Value
		path := filepath.Join(directory, model.Name+".ts")
		source := typescript.InterfaceFromIR(model).String()

		if err := afero.WriteFile(fs, path, []byte(source), 0o644); err != nil {
			return fmt.Errorf(
				"Could not write typescript interface for model `%s`. %v",
				model.Name,
				err,
			)
		}
	}

	for _, entry := range program.Enums.Entries() {
		declaration := entry.Value
		path := filepath.Join(directory, declaration.Name+".ts")
		source := typescript.StringEnumFromIR(declaration).String()

		if err := afero.WriteFile(fs, path, []byte(source), 0o644); err != nil {
			return fmt.Errorf(
				"Could not write typescript enum for enum `%s`. %v",
				declaration.Name,
				err,
			)
		}
	}

	return nil
}
