package config

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".sim"}

// Version is reported by `sim -v`. Can be set at build time using:
// -ldflags "-X github.com/funvibe/sim/internal/config.Version=..."
var Version = "0.3.0"

// DefaultConfigFile is looked up in the working directory when -c is not given.
const DefaultConfigFile = "sim.yaml"

// REPL
const (
	ReplPrompt      = "λ "
	ReplExitCommand = "exit"
)

// DefaultMaxDepth bounds nested evaluation so deep recursion in a program
// surfaces as a runtime error instead of exhausting the Go stack.
const DefaultMaxDepth = 10000
