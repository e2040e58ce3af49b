package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/oraexpr/parser"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "", "parse", "1 + 2 * 3")
	require.NoError(t, err)
	require.Equal(t, `BinaryExpr + (children 2)
 Literal Number 1
 BinaryExpr * (children 2)
  Literal Number 2
  Literal Number 3
`, out)
}

func TestParseCommandStdin(t *testing.T) {
	out, err := run(t, "a IS NOT NULL\n", "parse")
	require.NoError(t, err)
	require.Equal(t, "IsExpr IS NOT NULL (children 1)\n ColumnRef a\n", out)
}

func TestParseCommandJSON(t *testing.T) {
	out, err := run(t, "", "parse", "--json", "x = 1")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	require.Equal(t, "=", tree["op"])
	require.Equal(t, "CompareExpr", tree["type"])

	left := tree["left"].(map[string]any)
	require.Equal(t, "ColumnRef", left["type"])
	name := left["column"].(map[string]any)["name"].(map[string]any)
	require.Equal(t, "x", name["name"])
	require.Equal(t, "X", name["normalized"])
}

func TestParseCommandError(t *testing.T) {
	_, err := run(t, "", "parse", "a +")
	require.Error(t, err)
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, parser.NoViableAlternative, se.Kind)
}

func TestMaxDepthFlag(t *testing.T) {
	_, err := run(t, "", "parse", "--max-depth", "2", "((1))")
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, parser.NestingTooDeep, se.Kind)
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "", "format", "a   and not b  in (1,2)")
	require.NoError(t, err)
	require.Equal(t, "a AND NOT b IN (1, 2)\n", out)
}

func TestDataTypeCommand(t *testing.T) {
	out, err := run(t, "", "datatype", "timestamp(6) with local time zone")
	require.NoError(t, err)
	require.Equal(t, "DataType TIMESTAMP(6) WITH LOCAL TIME ZONE\n", out)
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.sql")
	require.NoError(t, os.WriteFile(path, []byte("a = 1;\n-- second\nb LIKE 'x%';\n"), 0644))

	out, err := run(t, "", "batch", "-j", "2", path)
	require.NoError(t, err)
	require.Equal(t, `-- 1
CompareExpr = (children 2)
 ColumnRef a
 Literal Number 1
-- 2
LikeExpr (children 2)
 ColumnRef b
 Literal String 'x%'
`, out)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oraexpr.toml")
	require.NoError(t, os.WriteFile(path, []byte("[parser]\nmax-depth = 2\n"), 0644))

	_, err := run(t, "", "parse", "--config", path, "((1))")
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, parser.NestingTooDeep, se.Kind)

	_, err = run(t, "", "parse", "--config", filepath.Join(t.TempDir(), "missing.toml"), "1")
	require.Error(t, err)
}
