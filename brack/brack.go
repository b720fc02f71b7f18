package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/cespare/brack/backlight"
	"github.com/cespare/brack/config"
)

const longUsage = `Change backlight brightness.

device (optional) the device to change backlight on (see /sys/class/backlight)
change (optional) absolute value in percent or change in percent prefixed with +/-.

No change will display the current value.
No device will pick the first available of $BRACK_DEFAULT_DEVICES
(default: intel_backlight, radeon_backlight).

Environment:
  BRACK_SYSFS_DIR        backlight class directory (default /sys/class/backlight)
  BRACK_DEFAULT_DEVICES  comma-separated device preference list
  BRACK_DRY_RUN          compute and print changes without writing them
  BRACK_VERBOSE          log debug output to stderr

Examples:
  brack +10                  # increase brightness by 10%
  brack -10                  # decrease brightness by 10%
  brack 50                   # set brightness to 50%
  brack intel_backlight +10  # increase brightness by 10% on intel_backlight`

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "brack"})
	if err := newRootCmd(config.Load, logger).Execute(); err != nil {
		logger.Fatal(err)
	}
}

// newRootCmd builds the command. The configuration is loaded only after
// help was ruled out, so -h works whatever the environment holds.
func newRootCmd(loadConfig func() (*config.Config, error), logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brack [device] [change]",
		Short: "Change backlight brightness",
		Long:  longUsage,
		// "-10" is a change, not a flag.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if slices.IndexFunc(args, isHelp) >= 0 {
				return cmd.Help()
			}
			inv, ok := parseArgs(args)
			if !ok {
				return cmd.Help()
			}
			cfg, err := loadConfig()
			if err != nil {
				return errors.Wrap(err, "bad configuration")
			}
			if cfg.Verbose {
				logger.SetLevel(log.DebugLevel)
			}
			a := &app{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}
			return a.run(inv)
		},
	}
	return cmd
}

func isHelp(s string) bool { return s == "-h" || s == "--help" }

// invocation is what the positional arguments asked for.
type invocation struct {
	device    string
	hasDevice bool
	change    string
	hasChange bool
}

func parseArgs(args []string) (inv invocation, ok bool) {
	switch len(args) {
	case 0:
	case 1:
		if backlight.LooksLikeChange(args[0]) {
			inv.change, inv.hasChange = args[0], true
		} else {
			inv.device, inv.hasDevice = args[0], true
		}
	case 2:
		inv.device, inv.hasDevice = args[0], true
		inv.change, inv.hasChange = args[1], true
	default:
		return inv, false
	}
	return inv, true
}

type app struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

// run carries out inv. A device that doesn't exist (or no default device)
// is not an error: brack prints nothing and succeeds, which keeps it quiet
// when bound to a brightness key on a machine without that backlight.
func (a *app) run(inv invocation) error {
	sysfs := &backlight.Sysfs{Dir: a.cfg.SysfsDir, Logger: a.logger}
	devices, err := sysfs.Devices()
	if err != nil {
		return err
	}

	if !inv.hasDevice && !inv.hasChange {
		for _, d := range devices {
			fmt.Fprintln(a.out, d)
		}
		return nil
	}

	var (
		d  *backlight.Device
		ok bool
	)
	if inv.hasDevice {
		d, ok = backlight.Find(devices, inv.device)
	} else {
		d, ok = backlight.FindFirst(devices, a.cfg.DefaultDevices)
	}
	if !ok {
		if inv.hasDevice {
			a.logger.Debug("No such device", "name", inv.device)
		} else {
			a.logger.Debug("No default device", "tried", a.cfg.DefaultDevices)
		}
		return nil
	}
	if !inv.hasChange {
		fmt.Fprintln(a.out, d)
		return nil
	}
	return a.change(d, inv.change)
}

func (a *app) change(d *backlight.Device, token string) error {
	c, err := backlight.ParseChange(token)
	if err != nil {
		return err
	}
	if !a.cfg.DryRun {
		if err := d.CheckWritable(); err != nil {
			return err
		}
	}
	old := d.Current
	d.Apply(c)
	a.logger.Debugf("Changing %s %d -> %d (%s)", d.Name, old, d.Current, c)
	if a.cfg.DryRun {
		a.logger.Info("Dry run; not writing", "device", d.Name, "brightness", d.Current)
	} else if err := d.Write(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, d)
	return nil
}
