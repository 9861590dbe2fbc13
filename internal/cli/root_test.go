package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pinelint/internal/cli/commands"
	"github.com/leapstack-labs/pinelint/internal/cli/config"
	"github.com/leapstack-labs/pinelint/internal/cli/output"
	"github.com/leapstack-labs/pinelint/internal/cli/testutil"
)

// execute runs a fresh root command inside an empty working directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_SingleFile(t *testing.T) {
	dir := testutil.SetupTestScripts(t)

	tests := []struct {
		name     string
		file     string
		wantErr  bool
		contains string
	}{
		{"well formed", "good.pine", false, "Syntax check passed! (0 warnings)"},
		{"warnings only", "warn.pine", false, "Syntax check passed! (1 warnings)"},
		{"errors", "bad.pine", true, "Syntax check failed!"},
		{"missing", "missing.pine", true, "Cannot check file:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "--output", "text", filepath.Join(dir, tt.file))
			if tt.wantErr {
				require.ErrorIs(t, err, commands.ErrLintFailed)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestRoot_RequiresExactlyOneFile(t *testing.T) {
	dir := testutil.SetupTestScripts(t)

	_, _, err := execute(t)
	require.Error(t, err)

	_, _, err = execute(t, filepath.Join(dir, "good.pine"), filepath.Join(dir, "bad.pine"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrLintFailed)
}

func TestRoot_ConfigFileApplies(t *testing.T) {
	dir := testutil.SetupTestScripts(t)
	cfgPath := testutil.WriteScript(t, dir, "pinelint.yaml", `
output: json
lint:
  disabled: [LX03]
`)

	out, _, err := execute(t, "--config", cfgPath, filepath.Join(dir, "warn.pine"))
	require.NoError(t, err)
	assert.Contains(t, out, `"run_id"`)
	assert.NotContains(t, out, "LX03")
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := testutil.SetupTestScripts(t)
	cfgPath := testutil.WriteScript(t, dir, "pinelint.yaml", "jobs: 0\n")

	_, _, err := execute(t, "--config", cfgPath, filepath.Join(dir, "good.pine"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	dir := testutil.SetupTestScripts(t)

	_, errOut, err := execute(t, "-v", "--output", "text", filepath.Join(dir, "good.pine"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "file checked")
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"check", "watch", "rules", "version", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pinelint v"+Version)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestGetConfigAndRenderer_Defaults(t *testing.T) {
	ctx := context.Background()

	cfg := GetConfig(ctx)
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)

	r := GetRenderer(ctx)
	require.NotNil(t, r)

	stored := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, output.ModeJSON)
	ctx = context.WithValue(ctx, rendererKey{}, stored)
	assert.Same(t, stored, GetRenderer(ctx))
}
