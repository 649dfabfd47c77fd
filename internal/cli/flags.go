package cli

// Program is the outcome of classifying the invocation arguments.
// It is exactly one of Help, Version or Main.
type Program interface {
	isProgram()
}

// Help asks for the usage text.
type Help struct{}

// Version asks for the version string.
type Version struct{}

// Main runs the browser with the retained command line.
type Main struct {
	CommandLine
}

// CommandLine holds the full invocation arguments and the debug switch.
type CommandLine struct {
	Args  []string
	Debug bool
}

func (Help) isProgram() {}
func (Version) isProgram() {}
func (Main) isProgram() {}

// Parse scans args left to right. The first help or version flag wins and
// stops the scan; debug flags accumulate. Unknown tokens are kept as-is.
func Parse(args []string) Program {
	debug := false

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return Help{}
		case "-v", "--version":
			return Version{}
		case "-d", "--debug":
			debug = true
		}
	}

	kept := make([]string, len(args))
	copy(kept, args)

	return Main{CommandLine{Args: kept, Debug: debug}}
}
