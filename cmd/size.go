package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/dust/internal/output"
	"github.com/tanq16/dust/internal/task"
)

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size [URL]",
		Short: "Show the size the server reports for a URL",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t, err := task.Parse(args[0], task.WithClient(newClient()))
			if err != nil {
				output.PrintError(fmt.Sprintf("failed to create task: %v", err))
				os.Exit(1)
			}
			msg, ok := describeSize(cmd.Context(), t)
			if !ok {
				output.PrintWarning(msg)
				return
			}
			output.PrintInfo(msg)
		},
	}
}

func describeSize(ctx context.Context, t *task.Task) (string, bool) {
	size, ok := t.ContentLength(ctx)
	if !ok {
		return fmt.Sprintf("%s: size unknown", t.Filename()), false
	}
	return fmt.Sprintf("%s: %s (%d bytes)", t.Filename(), output.FormatBytes(uint64(size)), size), true
}
