package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenstudio/tokenstudio/internal/config"
	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/observability"
	"github.com/tokenstudio/tokenstudio/internal/web"
)

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

var photonOpts = DraftOptions{
	Name:            "Photon",
	Symbol:          "pho",
	Supply:          "1,000,000",
	Decimals:        6,
	FreezeAuthority: true,
}

func TestDraftOptions_Draft(t *testing.T) {
	d, err := photonOpts.Draft()
	require.NoError(t, err)
	assert.Equal(t, "PHO", d.Symbol)
	assert.Equal(t, "1000000", d.Supply)
	assert.Equal(t, 6, d.Decimals)

	bad := photonOpts
	bad.Decimals = 7
	_, err = bad.Draft()
	assert.ErrorIs(t, err, errInvalidDecimals)
}

func TestEstimate(t *testing.T) {
	t.Run("box", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Estimate(photonOpts, FormatBox) })
		require.NoError(t, err)
		assert.Contains(t, out, "Solana Token Studio Fee Estimate")
		assert.Contains(t, out, "0.0024")
	})

	t.Run("json", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Estimate(photonOpts, FormatJSON) })
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "0.0024", got["total_sol"])
		assert.Equal(t, "PHO", got["symbol"])
	})

	t.Run("yaml", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Estimate(photonOpts, FormatYAML) })
		require.NoError(t, err)
		assert.Contains(t, out, "total_lamports: 2400000")
	})

	t.Run("compact", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Estimate(photonOpts, FormatCompact) })
		require.NoError(t, err)
		assert.Contains(t, out, "0.0024")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Estimate(photonOpts, OutputFormat("xml"))
		assert.ErrorIs(t, err, errUnknownFormat)
	})
}

func TestPreview(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Preview(photonOpts, FormatBox) })
		require.NoError(t, err)
		assert.Contains(t, out, "Photon (PHO) • 6 dec • 1000000 supply")
		assert.Contains(t, out, "Ready to continue")
	})

	t.Run("not ready", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Preview(DraftOptions{Decimals: 9}, FormatBox) })
		require.NoError(t, err)
		assert.Contains(t, out, "Your Token (SYMB) • 9 dec • — supply")
		assert.Contains(t, out, "Not ready")
	})

	t.Run("json", func(t *testing.T) {
		var err error
		out := captureOutput(func() { err = Preview(photonOpts, FormatJSON) })
		require.NoError(t, err)

		var got previewOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.CanAdvance)
		assert.Equal(t, "0.0024", got.FeeSOL)
	})
}

func saveAndRestoreLaunchFactories(t *testing.T) {
	origTTY := isInteractiveTTY
	origTUI := runTUI
	origPrompts := runPrompts
	t.Cleanup(func() {
		isInteractiveTTY = origTTY
		runTUI = origTUI
		runPrompts = origPrompts
	})
}

func fakeLaunch(used *string, name string) func(context.Context, *launch.Session) (*launch.Result, error) {
	return func(_ context.Context, s *launch.Session) (*launch.Result, error) {
		*used = name
		s.UpdateField(launch.FieldName, "Photon")
		s.UpdateField(launch.FieldSymbol, "PHO")
		s.UpdateField(launch.FieldSupply, "10")
		s.Advance()
		s.Advance()
		res, _ := s.Launch()
		return &res, nil
	}
}

func TestLaunch_Selection(t *testing.T) {
	tests := []struct {
		name   string
		tty    bool
		simple bool
		want   string
	}{
		{"terminal", true, false, "tui"},
		{"simple flag", true, true, "prompts"},
		{"no terminal", false, false, "prompts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveAndRestoreLaunchFactories(t)
			var used string
			isInteractiveTTY = func() bool { return tt.tty }
			runTUI = fakeLaunch(&used, "tui")
			runPrompts = fakeLaunch(&used, "prompts")

			var err error
			out := captureOutput(func() { err = Launch(context.Background(), tt.simple) })
			require.NoError(t, err)
			assert.Equal(t, tt.want, used)
			assert.Contains(t, out, "Token launched (simulated)")
			assert.Contains(t, out, "Address:  PHOPH")
			assert.Contains(t, out, "not an on-chain account")
		})
	}
}

func TestLaunch_Closed(t *testing.T) {
	saveAndRestoreLaunchFactories(t)
	isInteractiveTTY = func() bool { return true }
	runTUI = func(context.Context, *launch.Session) (*launch.Result, error) { return nil, nil }

	var err error
	out := captureOutput(func() { err = Launch(context.Background(), false) })
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing was launched")
}

func TestLaunch_Error(t *testing.T) {
	saveAndRestoreLaunchFactories(t)
	isInteractiveTTY = func() bool { return false }
	wantErr := errors.New("aborted")
	runPrompts = func(context.Context, *launch.Session) (*launch.Result, error) { return nil, wantErr }

	err := Launch(context.Background(), false)
	assert.ErrorIs(t, err, wantErr)
}

func saveAndRestoreServeFactories(t *testing.T) {
	origLoad := loadConfig
	origLogger := newLogger
	origRun := runServer
	t.Cleanup(func() {
		loadConfig = origLoad
		newLogger = origLogger
		runServer = origRun
	})
}

func TestServe(t *testing.T) {
	saveAndRestoreServeFactories(t)

	var gotPath string
	loadConfig = func(path string) (*config.Config, error) {
		gotPath = path
		return config.Default(), nil
	}
	newLogger = func(string, string) (logr.Logger, error) { return observability.NopLogger(), nil }

	var ran bool
	runServer = func(ctx context.Context, srv *web.Server) error {
		ran = true
		assert.NotNil(t, srv.Handler())
		assert.NotNil(t, ctx.Done())
		return nil
	}

	err := Serve(context.Background(), "custom.yaml", ":9999")
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, "custom.yaml", gotPath)
}

func TestServe_Errors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		saveAndRestoreServeFactories(t)
		loadConfig = func(string) (*config.Config, error) { return nil, errors.New("boom") }

		err := Serve(context.Background(), "", "")
		assert.ErrorContains(t, err, "failed to load config")
	})

	t.Run("logger", func(t *testing.T) {
		saveAndRestoreServeFactories(t)
		loadConfig = func(string) (*config.Config, error) { return config.Default(), nil }
		newLogger = func(string, string) (logr.Logger, error) { return logr.Discard(), errors.New("bad level") }

		err := Serve(context.Background(), "", "")
		assert.ErrorContains(t, err, "failed to create logger")
	})

	t.Run("server", func(t *testing.T) {
		saveAndRestoreServeFactories(t)
		loadConfig = func(string) (*config.Config, error) {
			cfg := config.Default()
			cfg.ShutdownTimeout = time.Second
			return cfg, nil
		}
		newLogger = func(string, string) (logr.Logger, error) { return observability.NopLogger(), nil }
		runServer = func(context.Context, *web.Server) error { return errors.New("listen failed") }

		err := Serve(context.Background(), "", "")
		assert.ErrorContains(t, err, "listen failed")
	})
}
