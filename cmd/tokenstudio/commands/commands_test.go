package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()
	require.NotNil(t, cmd)
	assert.Equal(t, "tokenstudio", cmd.Use)

	want := []string{"serve", "launch", "estimate", "preview", "version", "completion"}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestServe_Flags(t *testing.T) {
	cmd := Serve()
	assert.Equal(t, "serve", cmd.Use)

	f := cmd.Flags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "c", f.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("addr"))
}

func TestLaunch_Flags(t *testing.T) {
	cmd := Launch()
	f := cmd.Flags().Lookup("simple")
	require.NotNil(t, f)
	assert.Equal(t, "false", f.DefValue)
}

func TestDraftFlags_Defaults(t *testing.T) {
	cmd := Estimate()
	assert.Equal(t, "9", cmd.Flags().Lookup("decimals").DefValue)
	assert.Equal(t, "true", cmd.Flags().Lookup("freeze").DefValue)
	assert.Equal(t, "true", cmd.Flags().Lookup("mint").DefValue)
	for _, name := range []string{"name", "symbol", "supply", "uri", "json", "yaml", "compact"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestOutputFlags_Format(t *testing.T) {
	tests := []struct {
		name  string
		flags outputFlags
		want  string
	}{
		{"default", outputFlags{}, "box"},
		{"json", outputFlags{json: true}, "json"},
		{"yaml", outputFlags{yaml: true}, "yaml"},
		{"compact", outputFlags{compact: true}, "compact"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(tt.flags.format()))
		})
	}
}

func TestEstimate_Execute(t *testing.T) {
	cmd := Estimate()
	cmd.SetArgs([]string{"--name", "Photon", "--symbol", "pho", "--supply", "1000", "--mint=false", "--compact"})
	require.NoError(t, cmd.Execute())
}

func TestEstimate_MutuallyExclusive(t *testing.T) {
	cmd := Estimate()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--json", "--yaml"})
	assert.Error(t, cmd.Execute())
}

func TestEstimate_InvalidDecimals(t *testing.T) {
	cmd := Estimate()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--decimals", "7"})
	assert.Error(t, cmd.Execute())
}

func TestPreview_Execute(t *testing.T) {
	cmd := Preview()
	cmd.SetArgs([]string{"--name", "Photon", "--symbol", "PHO", "--supply", "5", "--json"})
	require.NoError(t, cmd.Execute())
}

func TestPreview_RejectsArgs(t *testing.T) {
	cmd := Preview()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)

	cmd := Version()
	assert.Equal(t, "version", cmd.Use)
	require.NoError(t, cmd.Execute())
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := Root()
			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs([]string{"completion", shell})
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), "tokenstudio")
		})
	}
}

func TestCompletion_InvalidShell(t *testing.T) {
	root := Root()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, root.Execute())
}
