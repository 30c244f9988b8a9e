package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kateleext/lookback/internal/git"
	"github.com/kateleext/lookback/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: lookback <file>")
		os.Exit(1)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(os.Args[1])
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// The file may be deleted in the working tree but still have
	// history, so only directories are rejected outright.
	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		fmt.Printf("Not a file: %s\n", absPath)
		os.Exit(1)
	}

	// Check if it's inside a git repo
	root, err := git.RepoRoot(filepath.Dir(absPath))
	if err != nil {
		fmt.Printf("Not inside a git repository: %s\n", absPath)
		os.Exit(1)
	}

	relPath, err := filepath.Rel(root, absPath)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Check if this is a dev build
	if os.Getenv("LOOKBACK_DEBUG") == "1" {
		ui.DevBuild = true
	}

	p := tea.NewProgram(
		ui.New(root, filepath.ToSlash(relPath)),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
