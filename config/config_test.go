package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BRACK_SYSFS_DIR", "BRACK_DEFAULT_DEVICES", "BRACK_DRY_RUN", "BRACK_VERBOSE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/sys/class/backlight", cfg.SysfsDir)
	assert.Equal(t, []string{"intel_backlight", "radeon_backlight"}, cfg.DefaultDevices)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRACK_SYSFS_DIR", "/tmp/backlight")
	t.Setenv("BRACK_DEFAULT_DEVICES", "amdgpu_bl0, acpi_video0,,intel_backlight")
	t.Setenv("BRACK_DRY_RUN", "true")
	t.Setenv("BRACK_VERBOSE", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/backlight", cfg.SysfsDir)
	assert.Equal(t, []string{"amdgpu_bl0", "acpi_video0", "intel_backlight"}, cfg.DefaultDevices)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyDeviceList(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRACK_DEFAULT_DEVICES", " , ")

	_, err := Load()
	assert.Error(t, err)
}
