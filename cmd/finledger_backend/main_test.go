package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habilafinance/finledger_backend/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildRepositories_CSVBackend(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.BackendCSV,
		DataDir:        t.TempDir(),
	}

	repos, cleanup, err := buildRepositories(cfg, discardLogger())

	require.NoError(t, err)
	require.NotNil(t, cleanup)
	assert.NotNil(t, repos.Transaction)
	assert.NotNil(t, repos.Employee)
	assert.NotNil(t, repos.Shareholder)
	assert.NotNil(t, repos.User)
	cleanup()
}

func TestBuildRepositories_UnknownBackendFallsBackToCSV(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: "cassette-tape",
		DataDir:        t.TempDir(),
	}

	repos, cleanup, err := buildRepositories(cfg, discardLogger())

	require.NoError(t, err)
	assert.NotNil(t, repos.Transaction)
	cleanup()
}
