// Command d02 counts safe reports.
//
//	d02 [options] <PART_NO> <INPUT_FILE_PATH>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/daygrid/internal/app"
	"github.com/specialistvlad/daygrid/internal/cli"
	"github.com/specialistvlad/daygrid/modules/d02"
)

const program = "d02"

func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, solves the requested part and writes the answer to errW.
func run(ctx context.Context, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(program, d02.Day, args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	answer, err := app.NewApp(errW, cfg).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(errW, answer)
	return nil
}
