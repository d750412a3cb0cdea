package instance

import "github.com/spf13/cobra"

var commandBuilders []func() *cobra.Command

// AddCommandBuilders registers functions that build subcommands of the root
// command. Call it from init; the builders run each time
// [fastcat.org/go/linelen/cmd.Root] builds the command tree.
func AddCommandBuilders(fns ...func() *cobra.Command) {
	CheckCanCustomize()
	commandBuilders = append(commandBuilders, fns...)
}

// Commands builds every registered subcommand.
func Commands() []*cobra.Command {
	CheckLockedDown()
	cmds := make([]*cobra.Command, 0, len(commandBuilders))
	for _, fn := range commandBuilders {
		cmds = append(cmds, fn())
	}
	return cmds
}
