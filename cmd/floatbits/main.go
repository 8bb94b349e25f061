// floatbits shows how sign, exponent and significand bits of a binary
// floating-point number with configurable field widths make up its value.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avdva/floatbits"
)

type globalOpts struct {
	ConfigFile  string
	LogLevel    string
	Layout      string
	Exponent    int
	Significand int
	JSON        bool
}

// app is the state shared by all the commands.
type app struct {
	opts globalOpts
	cfg  config
	log  *logrus.Logger
	in   io.Reader
	out  io.Writer
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	rootCmd := &cobra.Command{
		Use:           "floatbits",
		Short:         "Decode floating-point bit patterns of configurable width",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.ConfigFile, "config", "c", "", "path to a yaml config file")
	flags.StringVar(&a.opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVarP(&a.opts.Layout, "layout", "l", "", "preset layout, one of: "+strings.Join(floatbits.LayoutNames(), ", "))
	flags.IntVarP(&a.opts.Exponent, "exp", "e", 0, "number of exponent bits, overrides the layout")
	flags.IntVarP(&a.opts.Significand, "sig", "s", 0, "number of significand bits, overrides the layout")
	flags.BoolVarP(&a.opts.JSON, "json", "j", false, "print results as json")

	rootCmd.AddCommand(a.newDecodeCmd(), a.newShowCmd(), a.newLayoutsCmd(), a.newReplCmd())
	return rootCmd
}

// setup reads the config file and overrides its values with the flags set explicitly.
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := loadConfig(a.opts.ConfigFile)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.opts.LogLevel
	}
	if flags.Changed("layout") {
		cfg.Layout = a.opts.Layout
	}
	if flags.Changed("exp") {
		cfg.Exponent = a.opts.Exponent
	}
	if flags.Changed("sig") {
		cfg.Significand = a.opts.Significand
	}
	if flags.Changed("json") {
		cfg.JSON = a.opts.JSON
	}
	a.cfg = cfg
	a.log, err = newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"config": a.opts.ConfigFile,
		"layout": cfg.Layout,
		"exp":    cfg.Exponent,
		"sig":    cfg.Significand,
	}).Debug("configured")
	return nil
}

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode BITS",
		Short: "Decode a bit pattern",
		Long: `Decode a bit pattern, given either as three groups "s eee mmm" separated
with spaces, '_' or '|', or as a run of bits for the configured layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.cfg.fieldLayout(a.log)
			if err != nil {
				return err
			}
			f, err := parseField(args[0], l)
			if err != nil {
				return err
			}
			return writeReport(a.out, newReport(f), a.cfg.JSON)
		},
	}
}

// parseField parses grouped bits, and falls back to the layout for other inputs.
func parseField(s string, l floatbits.Layout) (*floatbits.BitField, error) {
	f, err := floatbits.ParseBits(s)
	if err == nil {
		return f, nil
	}
	f, err = floatbits.ParseBitsLayout(s, l)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %q", s)
	}
	return f, nil
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a zero bit field for the configured layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.cfg.fieldLayout(a.log)
			if err != nil {
				return err
			}
			f, err := floatbits.NewFromLayout(l)
			if err != nil {
				return err
			}
			return writeReport(a.out, newReport(f), a.cfg.JSON)
		},
	}
}

func (a *app) newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List preset layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.out, 0, 1, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEXPONENT\tSIGNIFICAND\tBIAS")
			for _, name := range floatbits.LayoutNames() {
				l, err := floatbits.LayoutByName(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, l.ExponentBits, l.SignificandBits, l.Bias())
			}
			return w.Flush()
		},
	}
}

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit a bit field interactively, reading commands from stdin",
		Long:  "Edit a bit field interactively, reading commands from stdin.\n\n" + replHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.cfg.fieldLayout(a.log)
			if err != nil {
				return err
			}
			s, err := newSession(l, a.log, a.cfg.JSON)
			if err != nil {
				return err
			}
			return s.run(a.in, a.out)
		},
	}
}
