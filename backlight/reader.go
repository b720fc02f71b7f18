package backlight

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
)

// ReadDevice reads the backlight device in directory path.
// A device whose max_brightness is 0 is rejected, since no percentage can be
// computed for it.
func ReadDevice(path string) (*Device, error) {
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return nil, &Error{Kind: KindStructural, Path: path, Err: ErrNoName}
	}
	max, err := readInt(filepath.Join(path, maxFile))
	if err != nil {
		return nil, err
	}
	if max == 0 {
		return nil, &Error{Kind: KindParse, Path: filepath.Join(path, maxFile), Err: ErrZeroMax}
	}
	cur, err := readInt(filepath.Join(path, brightnessFile))
	if err != nil {
		return nil, err
	}
	return &Device{
		Path:    path,
		Name:    name,
		Max:     max,
		Current: cur,
	}, nil
}

func readInt(name string) (int64, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return 0, ioError(name, err, "read")
	}
	n, err := strconv.ParseUint(string(bytes.TrimSpace(b)), 10, 32)
	if err != nil {
		return 0, parseError(name, err, "parse")
	}
	return int64(n), nil
}

// Sysfs enumerates the devices under a backlight class directory.
type Sysfs struct {
	Dir string
	// Logger receives a debug line for each skipped entry. It may be nil.
	Logger *log.Logger
}

// Devices reads every device directory under s.Dir, in name order.
// Entries that are not directories, or that fail to read, are left out:
// one broken device must not hide the others.
func (s *Sysfs) Devices() ([]*Device, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, ioError(s.Dir, err, "list devices")
	}
	var devices []*Device
	for _, e := range entries {
		path := filepath.Join(s.Dir, e.Name())
		// Devices are usually symlinks into /sys/devices; follow them.
		fi, err := os.Stat(path)
		if err != nil || !fi.IsDir() {
			continue
		}
		d, err := ReadDevice(path)
		if err != nil {
			s.logger().Debug("skipping device", "path", path, "err", err)
			continue
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (s *Sysfs) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}
