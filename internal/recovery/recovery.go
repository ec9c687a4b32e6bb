// Package recovery repairs a companion update tool that has been pinned to
// a stale version: it stops the running updater, remounts the root
// filesystem read-write and force-resets the updater's working tree to its
// remote. Each step fails independently with a wrapped error.
package recovery

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type gitRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Recoverer executes the recovery steps for one configured updater.
type Recoverer struct {
	cfg    Config
	runGit gitRunner
}

func New(cfg Config) *Recoverer {
	return &Recoverer{cfg: cfg, runGit: runGitCommand}
}

// IsPrivileged reports whether the process can perform the kill, remount
// and reset steps.
func IsPrivileged() bool {
	return os.Geteuid() == 0
}

// PinnedVersion reads the version string the updater script carries.
func (r *Recoverer) PinnedVersion() (string, error) {
	f, err := os.Open(r.cfg.ScriptPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return parseScriptVersionFrom(f)
}

// Stale reports whether a version string matches the configured stale pin.
func (r *Recoverer) Stale(version string) bool {
	return version == r.cfg.StaleVersion
}

// RemountRootRW remounts / read-write so the reset can touch a filesystem
// that boots read-only.
func (r *Recoverer) RemountRootRW() error {
	return remountRootRW()
}

// ResetTree fetches the configured remote and hard-resets the working tree
// to it, discarding local modifications.
func (r *Recoverer) ResetTree(ctx context.Context) error {
	if out, err := r.runGit(ctx, r.cfg.RepoDir, "fetch", r.cfg.Remote); err != nil {
		return fmt.Errorf("git fetch %s: %v, output: %s", r.cfg.Remote, err, out)
	}

	ref := r.cfg.Remote + "/" + r.cfg.Branch
	if out, err := r.runGit(ctx, r.cfg.RepoDir, "reset", "--hard", ref); err != nil {
		return fmt.Errorf("git reset --hard %s: %v, output: %s", ref, err, out)
	}

	return nil
}

func runGitCommand(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	return cmd.CombinedOutput()
}

// parseScriptVersionFrom scans a shell script for the first VERSION=
// assignment and returns its unquoted value.
func parseScriptVersionFrom(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "VERSION=") {
			continue
		}

		v := strings.TrimPrefix(line, "VERSION=")
		if idx := strings.Index(v, "#"); idx != -1 {
			v = v[:idx]
		}
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		if v != "" {
			return v, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("no VERSION assignment found")
}
