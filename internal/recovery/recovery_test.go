package recovery

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestParseScriptVersionFrom(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    string
		wantErr bool
	}{
		{
			name:   "DoubleQuoted",
			script: "#!/bin/bash\nVERSION=\"2.5\"\necho hi\n",
			want:   "2.5",
		},
		{
			name:   "SingleQuoted",
			script: "VERSION='3.0.1'\n",
			want:   "3.0.1",
		},
		{
			name:   "Unquoted",
			script: "VERSION=20180601\n",
			want:   "20180601",
		},
		{
			name:   "TrailingComment",
			script: "VERSION=2.5 # pinned\n",
			want:   "2.5",
		},
		{
			name:   "Indented",
			script: "  VERSION=\"1.2\"\n",
			want:   "1.2",
		},
		{
			name:   "FirstAssignmentWins",
			script: "VERSION=\"1.0\"\nVERSION=\"2.0\"\n",
			want:   "1.0",
		},
		{
			name:    "Missing",
			script:  "#!/bin/bash\necho no version here\n",
			wantErr: true,
		},
		{
			name:    "Empty",
			script:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScriptVersionFrom(strings.NewReader(tt.script))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScriptVersionFrom() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("version = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStale(t *testing.T) {
	r := New(Config{StaleVersion: "2.5"})
	if !r.Stale("2.5") {
		t.Error("Stale(2.5) = false, want true")
	}
	if r.Stale("2.6") {
		t.Error("Stale(2.6) = true, want false")
	}
}

func TestMatchesUpdater(t *testing.T) {
	tests := []struct {
		name    string
		process string
		args    []string
		want    bool
	}{
		{"DirectExec", "sbc-update", nil, true},
		{"ViaInterpreter", "bash", []string{"/bin/bash", "/usr/local/sbin/sbc-update"}, true},
		{"RelativePathArg", "sh", []string{"sh", "./sbc-update"}, true},
		{"Unrelated", "sshd", []string{"/usr/sbin/sshd", "-D"}, false},
		{"NameSubstringOnly", "sbc-updater", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesUpdater("sbc-update", tt.process, tt.args)
			if got != tt.want {
				t.Errorf("matchesUpdater(%q, %v) = %v, want %v", tt.process, tt.args, got, tt.want)
			}
		})
	}
}

func TestResetTree_CommandSequence(t *testing.T) {
	var calls [][]string
	r := New(Config{RepoDir: "/opt/files", Remote: "origin", Branch: "master"})
	r.runGit = func(_ context.Context, dir string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{dir}, args...))
		return nil, nil
	}

	if err := r.ResetTree(context.Background()); err != nil {
		t.Fatalf("ResetTree() error: %v", err)
	}

	want := [][]string{
		{"/opt/files", "fetch", "origin"},
		{"/opt/files", "reset", "--hard", "origin/master"},
	}
	if len(calls) != len(want) {
		t.Fatalf("got %d git calls, want %d", len(calls), len(want))
	}
	for i := range want {
		if strings.Join(calls[i], " ") != strings.Join(want[i], " ") {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestResetTree_FetchFailure(t *testing.T) {
	r := New(Config{RepoDir: "/opt/files", Remote: "origin", Branch: "master"})
	r.runGit = func(_ context.Context, _ string, args ...string) ([]byte, error) {
		if args[0] == "fetch" {
			return []byte("fatal: unable to access remote"), fmt.Errorf("exit status 128")
		}
		t.Fatalf("unexpected git call after failed fetch: %v", args)
		return nil, nil
	}

	err := r.ResetTree(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unable to access remote") {
		t.Errorf("error %q should carry git output", err)
	}
}
