package cli

import (
	"context"
	"io"
	"os"

	"github.com/Aguiaxxx/carbonyl/internal/config"
	"github.com/Aguiaxxx/carbonyl/internal/display"
	"github.com/Aguiaxxx/carbonyl/internal/engine"
	"github.com/Aguiaxxx/carbonyl/internal/logging"
	"github.com/Aguiaxxx/carbonyl/internal/tee"
	"github.com/Aguiaxxx/carbonyl/internal/tracking"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "0.0.3"

type runner struct {
	stdout     io.Writer
	stderr     io.Writer
	styled     bool
	configPath string
}

// Run is the main entry point. args are the full process arguments,
// program path included. Returns exit code.
func Run(args []string) int {
	r := &runner{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		styled:     display.IsTerminal(),
		configPath: config.Path(),
	}
	return r.run(args)
}

func (r *runner) run(args []string) int {
	switch p := Parse(args).(type) {
	case Help:
		display.PrintUsage(r.stdout, version, r.styled)
		return 0
	case Version:
		display.PrintVersion(r.stdout, version)
		return 0
	case Main:
		return r.launch(p.CommandLine)
	}
	return 0
}

func (r *runner) launch(cl CommandLine) int {
	log := logging.New(r.stderr, cl.Debug)
	ctx := logging.WithLogger(context.Background(), log)

	cfg, err := config.LoadFile(r.configPath)
	if err != nil {
		log.Warn("config error, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	runtime, err := engine.Resolve(cfg.Runtime.Path)
	if err != nil {
		display.PrintError(r.stderr, err.Error(), r.styled)
		return 1
	}

	var tracker *tracking.Tracker
	if cfg.History.Enabled {
		tracker, err = tracking.NewTracker(tracking.DBPath(cfg.History.DBPath))
		if err != nil {
			log.Warn("history disabled", "err", err)
		} else {
			defer tracker.Close()
			tracker.SetRetention(cfg.History.RetentionDays)
			if s, err := tracker.GetSummary(); err == nil {
				log.Debug("launch history", "launches", s.TotalLaunches, "failures", s.Failures)
			}
			if recent, err := tracker.GetRecent(1); err == nil && len(recent) > 0 {
				last := recent[0]
				log.Debug("last launch", "at", last.Timestamp, "args", last.Args, "exit", last.ExitCode)
			}
		}
	}

	launcher := &engine.Launcher{
		Runtime:   runtime,
		ExtraArgs: cfg.Runtime.Args,
		Tracker:   tracker,
		Logs: tee.Config{
			Enabled:     cfg.Logs.Enabled,
			MaxFiles:    cfg.Logs.MaxFiles,
			MaxFileSize: cfg.Logs.MaxFileSize,
			Dir:         cfg.Logs.Dir,
		},
		Debug:  cl.Debug,
		Stdout: r.stdout,
		Stderr: r.stderr,
	}

	var runtimeArgs []string
	if len(cl.Args) > 1 {
		runtimeArgs = cl.Args[1:]
	}
	return launcher.Run(ctx, runtimeArgs)
}

// VersionString returns the current version string.
func VersionString() string {
	return version
}
