// Package git shells out to the git executable for repository data.
// Every lookup is best-effort: a missing revision or a failed call is
// reported as absent content, not as a fatal error, so the diff view
// can degrade to an all-add or all-delete rendering.
package git

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Commit is one history entry for a file.
type Commit struct {
	Hash    string
	Date    time.Time
	Summary string
}

// Short returns the abbreviated hash for display.
func (c Commit) Short() string {
	if len(c.Hash) < 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// Commits lists the commits that touched path, newest first.
func Commits(ctx context.Context, dir, path string) ([]Commit, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "--pretty=format:%H%x09%at%x09%s", "--", path)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return parseLog(string(out)), nil
}

func parseLog(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		unix, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Date:    time.Unix(unix, 0),
			Summary: parts[2],
		})
	}
	return commits
}
