package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the staffdir home directory.
const HomeEnv = "STAFFDIR_HOME"

// GetHome returns the staffdir home directory
// Priority order:
//  1. STAFFDIR_HOME environment variable (if set)
//  2. .staffdir in the current working directory
//
// The directory is not created; nothing is written there unless file
// logging is enabled.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".staffdir"), nil
}
