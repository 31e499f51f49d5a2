package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrt-closure/qrtrecon/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "http://localhost:5000", "tenant-7"))

	for _, d := range []string{"documents", "exports", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "missing directory %s", d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.Platform.BaseURL)
	assert.Equal(t, "tenant-7", cfg.Platform.TenantID)

	data, err := os.ReadFile(filepath.Join(dir, cfg.Calibrations))
	require.NoError(t, err)
	assert.Equal(t, "calibrations: []\n", string(data))
}

func TestInitCommandRequiresTenant(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"init", t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant")
}
