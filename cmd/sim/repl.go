package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/evaluator"
)

// runREPL evaluates one line at a time against a single interpreter.
// Failures are reported and the loop goes on; "exit" or end of input stops it.
func runREPL(interp *evaluator.Interpreter, in io.Reader, out, errOut io.Writer, interactive bool) int {
	if interactive {
		fmt.Fprintf(out, "sim %s (session %s)\n", config.Version, interp.Context().ID)
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, config.ReplPrompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == config.ReplExitCommand {
			return 0
		}
		if line == "" {
			continue
		}

		result, err := interp.Run(line)
		if err != nil {
			reportError(errOut, err)
			reportRun(errOut, err)
			continue
		}
		printResult(out, result)
	}

	if interactive {
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		reportError(errOut, err)
		return 1
	}
	return 0
}
