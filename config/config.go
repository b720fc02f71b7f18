// Package config loads brack's settings from the environment.
// There is no config file; every setting is a BRACK_-prefixed variable
// (for example BRACK_SYSFS_DIR).
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/cespare/brack/backlight"
)

const envPrefix = "BRACK"

// DefaultDevices is the preference order used when no device is named.
var DefaultDevices = []string{"intel_backlight", "radeon_backlight"}

// Config holds the runtime settings.
type Config struct {
	// SysfsDir is the backlight class directory to scan.
	SysfsDir string
	// DefaultDevices lists the devices tried, in order, when a change is
	// given without a device name.
	DefaultDevices []string
	// DryRun computes and prints changes without writing them.
	DryRun  bool
	Verbose bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("sysfs_dir", backlight.DefaultDir)
	v.SetDefault("default_devices", strings.Join(DefaultDevices, ","))
	v.SetDefault("dry_run", false)
	v.SetDefault("verbose", false)

	cfg := &Config{
		SysfsDir:       v.GetString("sysfs_dir"),
		DefaultDevices: splitList(v.GetString("default_devices")),
		DryRun:         v.GetBool("dry_run"),
		Verbose:        v.GetBool("verbose"),
	}
	if cfg.SysfsDir == "" {
		return nil, errors.New("BRACK_SYSFS_DIR is empty")
	}
	if len(cfg.DefaultDevices) == 0 {
		return nil, errors.New("BRACK_DEFAULT_DEVICES lists no devices")
	}
	return cfg, nil
}

// splitList splits on commas and whitespace, dropping empty names.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
