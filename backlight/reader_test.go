package backlight

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDevice(t *testing.T) {
	d := readFixture(t)
	assert.Equal(t, "intel_backlight", d.Name)
	assert.Equal(t, int64(1388), d.Max)
	assert.Equal(t, int64(388), d.Current)

	dir := t.TempDir()
	path := writeDevice(t, dir, "acpi_video0", "  15 \n", "\t7\n\n")
	d, err := ReadDevice(path + "/")
	require.NoError(t, err)
	assert.Equal(t, "acpi_video0", d.Name)
	assert.Equal(t, int64(15), d.Max)
	assert.Equal(t, int64(7), d.Current)
}

func TestReadDeviceErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing dir", func(t *testing.T) {
		_, err := ReadDevice(filepath.Join(dir, "nope"))
		assert.True(t, IsKind(err, KindIO))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing brightness", func(t *testing.T) {
		path := filepath.Join(dir, "half")
		require.NoError(t, os.MkdirAll(path, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(path, maxFile), []byte("10"), 0o644))
		_, err := ReadDevice(path)
		assert.True(t, IsKind(err, KindIO))
	})

	for _, tt := range []struct {
		name     string
		max, cur string
	}{
		{"garbage max", "lots", "1"},
		{"garbage brightness", "10", "dim"},
		{"negative", "10", "-1"},
		{"float", "10.5", "1"},
		{"empty", "", "1"},
		{"overflow", "99999999999", "1"},
		{"zero max", "0", "0"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDevice(t, dir, tt.name, tt.max, tt.cur)
			_, err := ReadDevice(path)
			assert.True(t, IsKind(err, KindParse), "err = %v", err)
		})
	}

	t.Run("zero max sentinel", func(t *testing.T) {
		path := writeDevice(t, dir, "zero", "0\n", "0\n")
		_, err := ReadDevice(path)
		assert.ErrorIs(t, err, ErrZeroMax)
	})

	for _, path := range []string{"", ".", "/", ".."} {
		t.Run("no name "+path, func(t *testing.T) {
			_, err := ReadDevice(path)
			assert.True(t, IsKind(err, KindStructural), "err = %v", err)
			assert.ErrorIs(t, err, ErrNoName)
		})
	}
}

func TestDevices(t *testing.T) {
	s := &Sysfs{Dir: fixtureDir}
	devices, err := s.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "intel_backlight", devices[0].Name)
}

func TestDevicesSkipsBroken(t *testing.T) {
	dir := t.TempDir()
	writeDevice(t, dir, "radeon_backlight", "255", "128")
	writeDevice(t, dir, "intel_backlight", "1388", "388")
	writeDevice(t, dir, "broken", "x", "1")
	writeDevice(t, dir, "dark", "0", "0")
	writeDevice(t, dir, ".hidden", "10", "1")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("10"), 0o644))

	// Symlinked devices, as in the real /sys/class/backlight.
	target := writeDevice(t, t.TempDir(), "real", "100", "40")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "acpi_video0")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "file"), filepath.Join(dir, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")))

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	s := &Sysfs{Dir: dir, Logger: logger}
	devices, err := s.Devices()
	require.NoError(t, err)

	var names []string
	for _, d := range devices {
		names = append(names, d.Name)
	}
	// Dot-named device directories are still devices.
	assert.Equal(t, []string{".hidden", "acpi_video0", "intel_backlight", "radeon_backlight"}, names)
	assert.Contains(t, buf.String(), "broken")
	assert.Contains(t, buf.String(), "dark")
}

func TestDevicesMissingDir(t *testing.T) {
	s := &Sysfs{Dir: filepath.Join(t.TempDir(), "nope")}
	_, err := s.Devices()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindIO))
}
