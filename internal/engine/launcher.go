package engine

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/Aguiaxxx/carbonyl/internal/logging"
	"github.com/Aguiaxxx/carbonyl/internal/tee"
	"github.com/Aguiaxxx/carbonyl/internal/tracking"
)

// DebugArgs are appended to the runtime arguments in debug mode.
var DebugArgs = []string{"--enable-logging=stderr", "--v=1"}

// Launcher runs the browser runtime with inherited stdio.
type Launcher struct {
	Runtime   string
	ExtraArgs []string
	Tracker   *tracking.Tracker
	Logs      tee.Config
	Debug     bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run launches the runtime with args and returns its exit code.
func (l *Launcher) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	runtimeArgs := l.Args(args)
	stdin, stdout, stderr := l.stdio()

	if l.Debug {
		l.probe(ctx)

		logFile, err := tee.Open(l.Logs, RuntimeName)
		if err != nil {
			log.Warn("debug log disabled", "err", err)
		}
		if logFile != nil {
			defer logFile.Close()
			stderr = io.MultiWriter(stderr, logFile)
			log.Debug("runtime stderr copied", "path", logFile.Path())
		}
	}

	log.Debug("launching runtime", "path", l.Runtime, "args", runtimeArgs)

	timed := tracking.Start(l.Tracker)

	code, err := Passthrough(ctx, l.Runtime, runtimeArgs, stdin, stdout, stderr)
	if err != nil {
		log.Error("launch failed", "err", err)
	}

	if err := timed.Track(strings.Join(args, " "), l.Debug, code); err != nil {
		log.Warn("history update failed", "err", err)
	}

	log.Debug("runtime exited", "code", code)
	return code
}

// Args builds the runtime argument list: configured extras, debug
// switches, then the user's arguments unchanged.
func (l *Launcher) Args(args []string) []string {
	out := make([]string, 0, len(l.ExtraArgs)+len(DebugArgs)+len(args))
	out = append(out, l.ExtraArgs...)
	if l.Debug {
		out = append(out, DebugArgs...)
	}
	return append(out, args...)
}

func (l *Launcher) probe(ctx context.Context) {
	log := logging.FromContext(ctx)
	res, err := Execute(ctx, l.Runtime, []string{"--version"})
	if err != nil {
		log.Debug("runtime version probe failed", "err", err)
		return
	}
	log.Debug("runtime version", "version", strings.TrimSpace(res.Stdout), "exit", res.ExitCode, "took", res.Duration)
}

func (l *Launcher) stdio() (io.Reader, io.Writer, io.Writer) {
	var stdin io.Reader = os.Stdin
	var stdout io.Writer = os.Stdout
	var stderr io.Writer = os.Stderr
	if l.Stdin != nil {
		stdin = l.Stdin
	}
	if l.Stdout != nil {
		stdout = l.Stdout
	}
	if l.Stderr != nil {
		stderr = l.Stderr
	}
	return stdin, stdout, stderr
}
