package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/daygrid/internal/app"
)

// ExitError is an error that carries the process exit code to use.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageCode is the exit code for invalid invocations.
const UsageCode = 2

// Parse processes the command-line arguments of the solver for day. It
// returns a populated app.Config, a boolean indicating the program should
// exit cleanly (help was requested), or an *ExitError.
func Parse(program string, day int, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "program", program)
	usageLine := fmt.Sprintf("Usage: ./%s [options] <PART_NO> <INPUT_FILE_PATH>", program)

	flagSet := flag.NewFlagSet(program, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%s - solver for day %d.

%s

Arguments:
  PART_NO
    Which part of the puzzle to solve: 1 or 2.
  INPUT_FILE_PATH
    Path to the puzzle input.

The answer is printed to standard error.

Options:
`, program, day, usageLine)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent classification workers. 0 defers to the settings file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: UsageCode, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() != 2 {
		return nil, false, &ExitError{Code: UsageCode, Message: usageLine}
	}

	partArg := flagSet.Arg(0)
	part, err := parsePart(partArg)
	if err != nil {
		return nil, false, &ExitError{Code: UsageCode, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: UsageCode, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: UsageCode, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Day:        day,
		Part:       part,
		InputPath:  flagSet.Arg(1),
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Workers:    *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: UsageCode, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parsePart accepts exactly "1" or "2".
func parsePart(arg string) (int, error) {
	switch arg {
	case "1", "2":
		return strconv.Atoi(arg)
	default:
		return 0, fmt.Errorf("'%s' is not a valid part number", arg)
	}
}
