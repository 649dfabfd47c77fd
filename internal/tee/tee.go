package tee

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Config for debug log files.
type Config struct {
	Enabled     bool
	MaxFiles    int
	MaxFileSize int64
	Dir         string
}

// File is a size-capped log file. Writes past MaxFileSize are discarded
// and reported as written.
type File struct {
	f       *os.File
	path    string
	written int64
	limit   int64
	dir     string
	keep    int
}

// Open creates a new log file named after name. Returns nil, nil when
// logging is disabled.
func Open(cfg Config, name string) (*File, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	filename := fmt.Sprintf("%d-%s.log", time.Now().UnixNano(), sanitize(name))
	path := filepath.Join(cfg.Dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &File{f: f, path: path, limit: cfg.MaxFileSize, dir: cfg.Dir, keep: cfg.MaxFiles}, nil
}

// Path returns the file location.
func (l *File) Path() string {
	return l.path
}

func (l *File) Write(p []byte) (int, error) {
	if l.limit > 0 && l.written >= l.limit {
		return len(p), nil
	}

	data := p
	if l.limit > 0 && l.written+int64(len(data)) > l.limit {
		data = data[:l.limit-l.written]
	}

	n, err := l.f.Write(data)
	l.written += int64(n)
	if err != nil {
		return n, err
	}
	return len(p), nil
}

// Close closes the file and rotates the directory down to MaxFiles.
func (l *File) Close() error {
	err := l.f.Close()
	if l.keep > 0 {
		rotateFiles(l.dir, l.keep)
	}
	return err
}

func sanitize(name string) string {
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
	if safe == "" {
		return "log"
	}
	return safe
}

func rotateFiles(dir string, maxFiles int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".log") {
			logFiles = append(logFiles, e)
		}
	}

	if len(logFiles) <= maxFiles {
		return
	}

	// Sort by name (timestamp prefix = chronological)
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].Name() < logFiles[j].Name()
	})

	toRemove := len(logFiles) - maxFiles
	for i := 0; i < toRemove; i++ {
		os.Remove(filepath.Join(dir, logFiles[i].Name()))
	}
}
