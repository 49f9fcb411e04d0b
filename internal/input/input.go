package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/daygrid/internal/ctxlog"
	"github.com/specialistvlad/daygrid/internal/report"
)

// MaxLineSize is the longest input line accepted, in bytes.
const MaxLineSize = 1 << 21

// ReadColumns reads a file in which every line holds exactly two integers and
// returns the first and second columns.
func ReadColumns(ctx context.Context, path string) (left, right []int, err error) {
	err = withFile(path, func(r io.Reader) error {
		left, right, err = ParseColumns(ctx, r)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	ctxlog.FromContext(ctx).Debug("Columns read.", "path", path, "rows", len(left))
	return left, right, nil
}

// ReadReports reads a file with one report per line. A blank line is an
// empty report.
func ReadReports(ctx context.Context, path string) ([]report.Report, error) {
	var reports []report.Report
	err := withFile(path, func(r io.Reader) error {
		var err error
		reports, err = ParseReports(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Reports read.", "path", path, "reports", len(reports))
	return reports, nil
}

// ParseColumns is ReadColumns over an arbitrary reader.
func ParseColumns(ctx context.Context, r io.Reader) (left, right []int, err error) {
	err = scanLines(ctx, r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return &ParseError{Line: line, Err: fmt.Errorf("%w: expected 2 integers, found %d", ErrMissingToken, len(fields))}
		}
		if len(fields) > 2 {
			return &ParseError{Line: line, Index: 3, Token: fields[2], Err: ErrExtraToken}
		}
		l, err := parseInt(line, 1, fields[0])
		if err != nil {
			return err
		}
		rt, err := parseInt(line, 2, fields[1])
		if err != nil {
			return err
		}
		left = append(left, l)
		right = append(right, rt)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// ParseReports is ReadReports over an arbitrary reader.
func ParseReports(ctx context.Context, r io.Reader) ([]report.Report, error) {
	var reports []report.Report
	err := scanLines(ctx, r, func(line int, fields []string) error {
		levels := make(report.Report, 0, len(fields))
		for i, f := range fields {
			v, err := parseInt(line, i+1, f)
			if err != nil {
				return err
			}
			levels = append(levels, v)
		}
		reports = append(reports, levels)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func parseInt(line, index int, token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Line: line, Index: index, Token: token, Err: fmt.Errorf("%w: %w", ErrInvalidInteger, err)}
	}
	return int(v), nil
}

// scanLines calls fn with the 1-based number and whitespace-separated fields
// of every line in r, stopping at the first error.
func scanLines(ctx context.Context, r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(line, strings.Fields(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", line+1, err)
	}
	return nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if err := fn(f); err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &IOError{Op: "read", Path: path, Err: err}
	}
	return nil
}
