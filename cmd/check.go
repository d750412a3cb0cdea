package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/linelen/instance"
	"fastcat.org/go/linelen/lines"
)

func checkCmd() *cobra.Command {
	check := &cobra.Command{
		Use:   "check {--expected <file> | --dir <dir>}",
		Short: "compare the lengths of stdin against expected output",
		Long: "Measures every line of standard input and compares each length, " +
			"as text, with the matching line of the expected file. " +
			"Fails on the first line that differs.\n\n" +
			"With --dir, every file in dir whose name contains \"input\" is checked " +
			"against the file named the same way with \"output\" in its place, " +
			"and a table of results is printed.",
		Args: cobra.NoArgs,
		RunE: Check,
	}
	check.Flags().StringP("expected", "e", "", "file holding the expected output, one length per line")
	check.Flags().StringP("dir", "d", "", "directory of input/output file pairs to check")
	check.MarkFlagsOneRequired("expected", "dir")
	check.MarkFlagsMutuallyExclusive("expected", "dir")
	addTrimFlag(check)
	return check
}

// casesFailedErr reports how many cases of a --dir run failed. The per-case
// details have already been printed.
type casesFailedErr struct {
	failed, total int
}

func (e casesFailedErr) Error() string {
	return fmt.Sprintf("%d of %d cases failed", e.failed, e.total)
}

func (casesFailedErr) ExitCode() int { return 1 }

func Check(cmd *cobra.Command, _ []string) error {
	if dir, err := cmd.Flags().GetString("dir"); err != nil {
		return err
	} else if dir != "" {
		return CheckDir(cmd, dir)
	}
	fn, err := cmd.Flags().GetString("expected")
	if err != nil {
		return err
	}
	expected, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("opening expected output: %w", err)
	}
	defer expected.Close() //nolint:errcheck

	r, err := newReporter(cmd)
	if err != nil {
		return err
	}
	stats, err := r.Check(cmd.InOrStdin(), expected)
	var me *lines.MismatchError
	if errors.As(err, &me) {
		PrettyMismatch(me, cmd.OutOrStdout())
		return err
	} else if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d lines\n", stats.Lines)
	return nil
}

func CheckDir(cmd *cobra.Command, dir string) error {
	r, err := newReporter(cmd)
	if err != nil {
		return err
	}
	results, err := r.CheckDir(dir)
	if err != nil {
		return err
	}
	failed := PrettyResults(results, cmd.OutOrStdout())
	if failed > 0 {
		return casesFailedErr{failed, len(results)}
	}
	return nil
}

// PrettyResults renders one table row per case and returns how many failed.
func PrettyResults(results []lines.CaseResult, out io.Writer) int {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Case", "Status", "Lines", "Details"})
	failed := 0
	for _, res := range results {
		status := "pass"
		var details string
		if res.Err != nil {
			failed++
			status = "fail"
			details = res.Err.Error()
			var me *lines.MismatchError
			if errors.As(res.Err, &me) {
				status = "mismatch"
			}
		}
		tw.AppendRow(table.Row{res.Case.Name, status, res.Stats.Lines, details})
	}
	tw.Render()
	return failed
}

func PrettyMismatch(me *lines.MismatchError, out io.Writer) {
	l := list.NewWriter()
	l.SetOutputMirror(out)
	l.SetStyle(list.StyleConnectedLight)
	l.AppendItem("Line: " + strconv.Itoa(me.Line))
	l.AppendItem("Expected: " + recordOrEnd(me.Want))
	l.AppendItem("Got: " + recordOrEnd(me.Got))
	l.Render()
}

func recordOrEnd(s *string) string {
	if s == nil {
		return "(end of output)"
	}
	return strconv.Quote(*s)
}

func init() {
	instance.AddCommandBuilders(checkCmd)
}
