package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nhdewitt/whichpi/internal/recovery"
)

func recoverCommand() *cobra.Command {
	var (
		cfgPath string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Repair a companion updater pinned to a stale version",
		Long: "Checks whether the configured updater script is pinned to a stale\n" +
			"version and, if so, stops it, remounts / read-write and hard-resets\n" +
			"its working tree to the git remote. Requires root.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecover(cmd, cfgPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "/etc/whichpi/recover.yaml", "path to recovery config")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report actions without performing them")

	return cmd
}

func runRecover(cmd *cobra.Command, cfgPath string, dryRun bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := recovery.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", cfgPath, err)
	}

	r := recovery.New(cfg)

	version, err := r.PinnedVersion()
	if err != nil {
		return fmt.Errorf("read updater version: %w", err)
	}

	if !r.Stale(version) {
		fmt.Fprintf(out, "updater version %s: %s\n", version, color.GreenString("current"))
		return nil
	}
	fmt.Fprintf(out, "updater version %s: %s\n", version, color.RedString("stale"))

	if dryRun {
		fmt.Fprintf(out, "dry run: would stop %s, remount / read-write and reset %s to %s/%s\n",
			cfg.ScriptPath, cfg.RepoDir, cfg.Remote, cfg.Branch)
		return nil
	}

	if !recovery.IsPrivileged() {
		return fmt.Errorf("recovery requires root, try again with sudo")
	}

	if err := r.StopUpdater(ctx); err != nil {
		return fmt.Errorf("stop updater: %w", err)
	}

	if err := r.RemountRootRW(); err != nil {
		return err
	}

	stop := startProgressSpinner("Resetting " + cfg.RepoDir)
	err = r.ResetTree(ctx)
	stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s reset to %s/%s\n", color.GreenString("done:"), cfg.RepoDir, cfg.Remote, cfg.Branch)
	return nil
}

func startProgressSpinner(prefix string) (stop func()) {
	s := spinner.New(spinner.CharSets[9], time.Millisecond*200)
	s.Prefix = prefix + " "
	s.Start()

	return s.Stop
}
