package domain_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/robotkit/robotkit-sdk/"

// TestDomainHasNoExternalDependencies verifies that the domain layer imports
// nothing from the module but other domain packages.
func TestDomainHasNoExternalDependencies(t *testing.T) {
	fset := token.NewFileSet()
	for _, pkg := range []string{"entities", "errors", "ports"} {
		files, err := filepath.Glob(filepath.Join(".", pkg, "*.go"))
		require.NoError(t, err, "failed to glob %s files", pkg)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			for _, importPath := range imports(t, fset, file) {
				if !strings.HasPrefix(importPath, modulePath) {
					continue
				}
				assert.True(t, strings.HasPrefix(importPath, modulePath+"domain/"),
					"domain/%s package (%s) imports non-domain package: %s",
					pkg, filepath.Base(file), importPath)
			}
		}
	}
}

// TestCoreDoesNotImportAdapters verifies that the object model layers never
// depend on a concrete host, the loaders or the CLI.
func TestCoreDoesNotImportAdapters(t *testing.T) {
	forbidden := []string{
		modulePath + "infrastructure",
		modulePath + "application",
		modulePath + "cmd",
	}
	fset := token.NewFileSet()
	for _, pkg := range []string{"alias", "bridge", "capsule", "contract", "labels", "registry", "robot", "robotom"} {
		files, err := filepath.Glob(filepath.Join("..", pkg, "*.go"))
		require.NoError(t, err, "failed to glob %s files", pkg)
		require.NotEmpty(t, files, "%s should contain Go files", pkg)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			for _, importPath := range imports(t, fset, file) {
				for _, f := range forbidden {
					assert.False(t, strings.HasPrefix(importPath, f),
						"%s package (%s) must not import %s", pkg, filepath.Base(file), importPath)
				}
			}
		}
	}
}

// TestDomainEntitiesPortsErrorsExist verifies that required domain packages exist
func TestDomainEntitiesPortsErrorsExist(t *testing.T) {
	for _, dir := range []string{"entities", "errors", "ports"} {
		files, err := filepath.Glob(filepath.Join(".", dir, "*.go"))
		require.NoError(t, err, "failed to check %s directory", dir)
		assert.NotEmpty(t, files, "domain/%s should contain Go files", dir)
	}
}

func imports(t *testing.T, fset *token.FileSet, filename string) []string {
	t.Helper()
	f, err := parser.ParseFile(fset, filename, nil, parser.ImportsOnly)
	require.NoError(t, err, "failed to parse %s", filename)

	paths := make([]string, 0, len(f.Imports))
	for _, imp := range f.Imports {
		paths = append(paths, strings.Trim(imp.Path.Value, `"`))
	}
	return paths
}
