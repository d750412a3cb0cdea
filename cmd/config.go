package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/linelen/config"
	"fastcat.org/go/linelen/instance"
)

func Config() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "show or change persistent settings",
		// just a parent for other commands
	}

	for _, fn := range cfgCmdBuilders {
		cfg.AddCommand(fn())
	}

	return cfg
}

var cfgCmdBuilders []func() *cobra.Command

func AddConfigCommandBuilder(fns ...func() *cobra.Command) {
	instance.CheckCanCustomize()
	cfgCmdBuilders = append(cfgCmdBuilders, fns...)
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "show all settings",
		Args:  cobra.NoArgs,
		RunE:  ConfigShow,
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "change and save one setting",
		Args:  cobra.ExactArgs(2),
		RunE:  ConfigSet,
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "print the config file location",
		Args:  cobra.NoArgs,
		// works even when the file there is broken
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path())
			return nil
		},
	}
}

func ConfigShow(cmd *cobra.Command, _ []string) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"Key", "Value", "Default"})
	for _, e := range config.Entries() {
		tw.AppendRow(table.Row{e.Name, e.Value, e.IsDefault})
	}
	tw.Render()
	return nil
}

func ConfigSet(cmd *cobra.Command, args []string) error {
	if err := config.Set(args[0], args[1]); err != nil {
		return err
	}
	return config.SaveIfDirty()
}

func init() {
	instance.AddCommandBuilders(Config)
	AddConfigCommandBuilder(configShowCmd, configSetCmd, configPathCmd)
}
