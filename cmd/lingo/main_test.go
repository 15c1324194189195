package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enCatalog = `{
	"greeting": "Hello, {{name}}!",
	"books": {
		"translation": "{{count}} {{books}}",
		"placeholders": {
			"books": {
				"value": "count",
				"translations": {"CARDINALITY_ONE": "book", "CARDINALITY_OTHER": "books"}
			}
		},
		"alternatives": [{"count == 0": "no books"}]
	},
	"invite": {
		"translation": "{{host}} invited you to {{their}} party.",
		"placeholders": {
			"their": {
				"value": "gender",
				"translations": {"MASCULINE": "his", "FEMININE": "her", "NEUTER": "their"}
			}
		}
	}
}`

const plCatalog = `{
	"books": {
		"translation": "{{count}} {{books}}",
		"placeholders": {
			"books": {
				"value": "count",
				"translations": {
					"CARDINALITY_ONE": "książka",
					"CARDINALITY_FEW": "książki",
					"CARDINALITY_MANY": "książek",
					"CARDINALITY_OTHER": "książki"
				}
			}
		}
	}
}`

const jaCatalog = `{
	"books": {
		"translation": "{{count}} {{books}}",
		"placeholders": {
			"books": {
				"value": "count",
				"translations": {"CARDINALITY_ONE": "冊", "CARDINALITY_OTHER": "冊"}
			}
		}
	}
}`

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600))
	}
	return dir
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCheck(t *testing.T) {
	t.Run("clean catalog", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{"en.json": enCatalog, "pl.json": plCatalog, "README.md": "docs"})

		code, out, _ := runCLI("check", "-d", dir)
		assert.Equal(t, exitOK, code)
		assert.Contains(t, out, "2 locales, 4 entries, 0 issues")
	})

	t.Run("unreachable translation", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{"en.json": enCatalog, "ja.json": jaCatalog})

		code, out, _ := runCLI("check", "-d", dir)
		assert.Equal(t, exitOK, code)
		assert.Contains(t, out, `ja: key "books": placeholder "books": CARDINALITY_ONE is never selected`)

		code, _, _ = runCLI("check", "--strict", "-d", dir)
		assert.Equal(t, exitIssues, code)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{"en.json": `{"greeting": `})

		code, _, errOut := runCLI("check", "-d", dir)
		assert.Equal(t, exitError, code)
		assert.Contains(t, errOut, "en.json")
	})

	t.Run("bad expression", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{"en.json": `{"x": {"translation": "x", "alternatives": [{"n = 1": "one"}]}}`})

		code, _, errOut := runCLI("check", "-d", dir)
		assert.Equal(t, exitError, code)
		assert.Contains(t, errOut, `did you mean "=="?`)
	})

	t.Run("merged directories", func(t *testing.T) {
		base := writeCatalog(t, map[string]string{"en.json": enCatalog})
		extra := writeCatalog(t, map[string]string{"en.json": `{"farewell": "Bye"}`, "pl.json": plCatalog})

		code, out, _ := runCLI("check", "-d", base, "-d", extra)
		assert.Equal(t, exitOK, code)
		assert.Contains(t, out, "2 locales, 5 entries, 0 issues")
	})
}

func TestLocales(t *testing.T) {
	dir := writeCatalog(t, map[string]string{"en.json": enCatalog, "pl.json": plCatalog, "pt_BR.json": `{"greeting": "Olá"}`})

	code, out, _ := runCLI("locales", "-d", dir)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "en\t3\npl\t1\npt-BR\t1\n", out)
}

func TestGet(t *testing.T) {
	dir := writeCatalog(t, map[string]string{"en.json": enCatalog, "pl.json": plCatalog})

	tests := []struct {
		name     string
		args     []string
		code     int
		expected string
	}{
		{name: "plain", args: []string{"greeting", "name=Ann"}, expected: "Hello, Ann!\n"},
		{name: "cardinal", args: []string{"books", "count=1"}, expected: "1 book\n"},
		{name: "alternative", args: []string{"books", "count=0"}, expected: "no books\n"},
		{name: "polish many", args: []string{"-l", "pl", "books", "count=5"}, expected: "5 książek\n"},
		{name: "polish few", args: []string{"-l", "pl-PL", "books", "count=22"}, expected: "22 książki\n"},
		{name: "gender", args: []string{"invite", "host=Anna", "gender=FEMININE"}, expected: "Anna invited you to her party.\n"},
		{name: "fallback to default", args: []string{"-l", "pl", "greeting", "name=Ann"}, expected: "Hello, Ann!\n"},
		{name: "fail fast", args: []string{"-l", "pl", "--fail-fast", "greeting"}, code: exitError},
		{name: "bad placeholder", args: []string{"greeting", "name"}, code: exitError},
		{name: "bad locale", args: []string{"-l", "!!", "greeting"}, code: exitError},
		{name: "missing key", args: []string{}, code: exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"get", "-d", dir, "--default-locale", "en"}, tt.args...)
			code, out, _ := runCLI(args...)
			assert.Equal(t, tt.code, code)
			if tt.code == exitOK {
				assert.Equal(t, tt.expected, out)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	code, out, _ := runCLI("--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "get")

	code, _, errOut := runCLI()
	assert.Equal(t, exitError, code)
	assert.NotEmpty(t, errOut)

	code, _, _ = runCLI("check", "-d", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, exitError, code)
}
