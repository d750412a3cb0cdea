package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"fastcat.org/go/linelen/config"
	"fastcat.org/go/linelen/instance"
	"fastcat.org/go/linelen/lines"
)

func Root() *cobra.Command {
	instance.Lockdown()

	var longDesc strings.Builder
	fmt.Fprintln(&longDesc, "Reads lines from standard input and prints the length of each one.")
	fmt.Fprintln(&longDesc)
	fmt.Fprintln(&longDesc, "Lengths are counted in Unicode code points, without the line terminator.")
	fmt.Fprintln(&longDesc, "With --trim, surrounding whitespace is not counted either.")
	fmt.Fprintln(&longDesc)
	vi := instance.VersionInfo()
	fmt.Fprintf(&longDesc, "%s version %s\n", instance.AppName(), vi.Version)
	fmt.Fprintf(&longDesc, "Built from %s (%s)", vi.MainModule, vi.MainRev)
	if vi.GoVersion != "" {
		fmt.Fprintf(&longDesc, " with %s", vi.GoVersion)
	}

	root := &cobra.Command{
		Use:               instance.AppName(),
		Short:             "print the length of each line of input",
		Long:              longDesc.String(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           vi.Version,
		PersistentPreRunE: loadConfig,
		RunE:              Report,
	}
	addTrimFlag(root)
	root.PersistentFlags().String("log-level", "",
		"log level: debug, info, warn or error (default from config)")
	root.AddCommand(instance.Commands()...)
	return root
}

// addTrimFlag registers --trim on a command that measures input. It is never
// persistent: other commands reject it as an unknown flag.
func addTrimFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("trim", false,
		"also strip leading and trailing whitespace before measuring (default from config)")
}

func Report(cmd *cobra.Command, _ []string) error {
	r, err := newReporter(cmd)
	if err != nil {
		return err
	}
	_, err = r.Report(cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

var initConfig = sync.OnceValue(config.Initialize)

func loadConfig(*cobra.Command, []string) error {
	return initConfig()
}

func newReporter(cmd *cobra.Command) (*lines.Reporter, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	trim := config.Get(config.Trim)
	if f := cmd.Flags().Lookup("trim"); f != nil && f.Changed {
		if trim, err = cmd.Flags().GetBool("trim"); err != nil {
			return nil, err
		}
	}
	return lines.New(lines.WithTrim(trim), lines.WithLogger(log)), nil
}

// newLogger logs to the command's stderr, so stdout only ever carries
// records.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name := config.Get(config.LogLevel)
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		name = f.Value.String()
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})), nil
}
