package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nhdewitt/whichpi/internal/board"
	"github.com/nhdewitt/whichpi/internal/hostinfo"
)

const labelWidth = 18

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print an extended hardware summary",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	name := board.Classify(hostinfo.Detect(), board.ModeFullName)
	printAligned(out, "Board", color.GreenString(name))

	s := hostinfo.Collect(ctx)
	printAligned(out, "Hostname", s.Hostname)
	printAligned(out, "Platform", s.Platform)
	printAligned(out, "Kernel", s.Kernel)
	printAligned(out, "Uptime", s.Uptime.String())
	printAligned(out, "CPU", fmt.Sprintf("%s (%d cores)", s.CPUModel, s.CPUCores))
	printAligned(out, "Memory", formatBytes(s.RAMTotal))

	if c, err := hostinfo.ReadSoCTemperature(); err == nil {
		printAligned(out, "SoC temperature", fmt.Sprintf("%.1f C", c))
	}

	if ts, err := hostinfo.ReadThrottleState(ctx); err == nil && ts != nil {
		printAligned(out, "Throttled", yesNo(ts.Throttled))
		printAligned(out, "Undervoltage", yesNo(ts.Undervoltage))
		if ts.ThrottledOccurred || ts.UndervoltageOccurred {
			printAligned(out, "Power warnings", color.RedString("yes (since boot)"))
		}
	}

	return nil
}

func printAligned(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-*s: %s\n", labelWidth, label, value)
}

func yesNo(b bool) string {
	if b {
		return color.RedString("yes")
	}
	return "no"
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(n)/float64(div), "KMGTPE"[exp])
}
