package recovery

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/process"
)

// StopUpdater kills every running instance of the updater script, whether
// executed directly or through an interpreter. Killing nothing is success.
func (r *Recoverer) StopUpdater(ctx context.Context) error {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	target := filepath.Base(r.cfg.ScriptPath)
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		args, _ := p.CmdlineSliceWithContext(ctx)
		if !matchesUpdater(target, name, args) {
			continue
		}

		if err := p.KillWithContext(ctx); err != nil {
			return fmt.Errorf("kill %s (pid %d): %w", name, p.Pid, err)
		}
	}

	return nil
}

// matchesUpdater reports whether a process is an instance of the updater
// script: its own name matches, or the script path appears on its command
// line (the interpreter case).
func matchesUpdater(target, name string, args []string) bool {
	if name == target {
		return true
	}
	for _, a := range args {
		if filepath.Base(a) == target {
			return true
		}
	}
	return false
}
