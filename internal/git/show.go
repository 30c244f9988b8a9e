package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Show returns the content of path at rev. ok is false when the file
// does not exist at that revision or the call fails; callers treat that
// as an empty file.
func Show(ctx context.Context, dir, rev, path string) (string, bool) {
	cmd := exec.CommandContext(ctx, "git", "show", rev+":"+path)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return string(out), true
}

// WorkingCopy reads path from the working tree.
func WorkingCopy(dir, path string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, path))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// RepoRoot resolves the repository top-level directory containing dir.
func RepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
