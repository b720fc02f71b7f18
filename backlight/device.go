// Package backlight reads and changes the brightness of the backlight devices
// that Linux exposes under /sys/class/backlight.
package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
)

// DefaultDir is where the kernel exposes one directory per backlight device.
const DefaultDir = "/sys/class/backlight"

const (
	maxFile        = "max_brightness"
	brightnessFile = "brightness"
)

// A Device is a single backlight. Current and Max are in device units.
type Device struct {
	Path    string
	Name    string
	Max     int64
	Current int64
}

// Percent returns the current brightness as a percentage of Max.
func (d *Device) Percent() float64 {
	return float64(d.Current) / float64(d.Max) * 100
}

// Set sets the brightness to pct percent of Max. Values above 100 are
// treated as 100; negative values end up at 0.
func (d *Device) Set(pct float64) {
	if pct > 100 {
		pct = 100
	}
	d.Current = d.clamp(pct / 100 * float64(d.Max))
}

// Change moves the brightness by delta percent of Max.
func (d *Device) Change(delta float64) {
	d.Current = d.clamp(float64(d.Current) + delta/100*float64(d.Max))
}

// Apply applies c using Set or Change depending on its kind.
func (d *Device) Apply(c Change) {
	switch c.Kind {
	case Absolute:
		d.Set(c.Percent)
	case Relative:
		d.Change(c.Percent)
	}
}

func (d *Device) clamp(counts float64) int64 {
	switch {
	case counts < 0:
		return 0
	case counts >= float64(d.Max):
		return d.Max
	default:
		return int64(counts)
	}
}

// CheckWritable reports whether this process may write the brightness file.
// The check uses the effective uid, so a setuid brack passes it whenever
// Write would succeed.
func (d *Device) CheckWritable() error {
	name := filepath.Join(d.Path, brightnessFile)
	if err := unix.Faccessat(unix.AT_FDCWD, name, unix.W_OK, unix.AT_EACCESS); err != nil {
		return ioError(name, err, "brightness is not writable")
	}
	return nil
}

// Write stores Current in the device's brightness file.
func (d *Device) Write() error {
	name := filepath.Join(d.Path, brightnessFile)
	f, err := os.OpenFile(name, os.O_TRUNC|os.O_WRONLY, 0)
	if err != nil {
		return ioError(name, err, "open")
	}
	if _, err := f.Write([]byte(strconv.FormatInt(d.Current, 10))); err != nil {
		f.Close()
		return ioError(name, err, "write")
	}
	if err := f.Close(); err != nil {
		return ioError(name, err, "close")
	}
	return nil
}

func (d *Device) String() string {
	return fmt.Sprintf("%-15s %d%% (%d/%d)", d.Name, int(d.Percent()), d.Current, d.Max)
}

// Find returns the device called name. A miss is not an error: callers
// decide what an absent device means (the CLI treats it as a no-op).
func Find(devices []*Device, name string) (*Device, bool) {
	i := slices.IndexFunc(devices, func(d *Device) bool { return d.Name == name })
	if i < 0 {
		return nil, false
	}
	return devices[i], true
}

// FindFirst returns the device matching the earliest entry in names.
// Preference follows names, not the order of devices.
func FindFirst(devices []*Device, names []string) (*Device, bool) {
	for _, name := range names {
		if d, ok := Find(devices, name); ok {
			return d, true
		}
	}
	return nil, false
}
