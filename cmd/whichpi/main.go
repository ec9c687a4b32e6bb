package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nhdewitt/whichpi/internal/board"
	"github.com/nhdewitt/whichpi/internal/hostinfo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var memoryOnly bool

	cmd := &cobra.Command{
		Use:          "whichpi",
		Short:        "Identify the single-board computer this system runs on",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := board.ModeFullName
			if memoryOnly {
				mode = board.ModeMemory
			}
			fmt.Fprintln(cmd.OutOrStdout(), board.Classify(hostinfo.Detect(), mode))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&memoryOnly, "memory", "m", false, "print only the installed memory size")

	cmd.AddCommand(
		infoCommand(),
		recoverCommand(),
	)

	return cmd
}
