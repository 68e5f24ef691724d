// Command slquickemu prints the QEMU command line for a VM file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KarpelesLab/slquickemu"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logrus.SetOutput(os.Stderr)

	if err := newRootCommand(loadEnv(), os.Stdout).Execute(); err != nil {
		logrus.Error(err.Error())
		logrus.Exit(1)
	}
}

func newRootCommand(defaults env, out io.Writer) *cobra.Command {
	var (
		vmPath       string
		logLevel     string
		overlayDir   string
		strictImages bool
		argv         bool
	)

	cmd := &cobra.Command{
		Use:           "slquickemu --vm <file.toml>",
		Short:         "Print the QEMU invocation for a VM configuration",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.StandardLogger()

			resolver := slquickemu.NewResolver(log)
			resolver.OverlayDir = overlayDir

			cfg, err := resolver.Resolve(vmPath)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", vmPath, err)
			}

			builder := slquickemu.NewBuilder(cfg)
			builder.Log = log
			builder.StrictImages = strictImages

			fragments, err := builder.Build()
			if err != nil {
				return fmt.Errorf("building %s: %w", cfg.VMName, err)
			}

			inv := slquickemu.NewInvocation(cfg, fragments, log)
			if !argv {
				_, err := fmt.Fprintln(out, inv.String())
				return err
			}

			tokens, err := inv.Argv()
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				if _, err := fmt.Fprintln(out, tok); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&vmPath, "vm", "", "VM configuration file (.toml)")
	flags.StringVar(&logLevel, "log-level", defaults.LogLevel, "log verbosity (trace, debug, info, warn, error)")
	flags.StringVar(&overlayDir, "overlay-dir", defaults.OverlayDir, "overlay directory (default <user config dir>/slquickemu)")
	flags.BoolVar(&strictImages, "strict-images", defaults.StrictImages, "fail when a disk image cannot be created")
	flags.BoolVar(&argv, "argv", false, "print one argument per line instead of the joined command")
	_ = cmd.MarkFlagRequired("vm")

	return cmd
}
