package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RuntimeName is the browser runtime binary shipped next to carbonyl.
const RuntimeName = "carbonyl-runtime"

// ErrNoRuntime is returned when no runtime binary can be located.
var ErrNoRuntime = errors.New("browser runtime not found")

// Resolve locates the runtime binary. A configured path must exist;
// otherwise the executable's directory is tried, then $PATH.
func Resolve(configured string) (string, error) {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return resolve(configured, exeDir)
}

func resolve(configured, exeDir string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("runtime %s: %w", configured, ErrNoRuntime)
		}
		return configured, nil
	}

	if exeDir != "" {
		sibling := filepath.Join(exeDir, RuntimeName)
		if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
			return sibling, nil
		}
	}

	if p, err := exec.LookPath(RuntimeName); err == nil {
		return p, nil
	}

	return "", ErrNoRuntime
}
