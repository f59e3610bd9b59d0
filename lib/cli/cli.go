package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DBC-Works/swiki/lib/diff"
	swikiIO "github.com/DBC-Works/swiki/lib/io"
	pageManager "github.com/DBC-Works/swiki/lib/page"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

var errMissingFiles = errors.New("two files are required")

type DiffOptions struct {
	From      string
	To        string
	NoColor   bool
	StatsOnly bool
}

func parseDiffArgs(args []string) (DiffOptions, error) {
	var options DiffOptions
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&options.StatsOnly, "stat", false, "Only print the number of kept, added and deleted lines")

	if err := fs.Parse(args); err != nil {
		return options, err
	}
	if fs.NArg() != 2 {
		return options, errMissingFiles
	}
	options.From = fs.Arg(0)
	options.To = fs.Arg(1)
	return options, nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return diff.SplitLines(strings.TrimSuffix(string(content), "\n")), nil
}

// RenderDiff prints every line of subsequences prefixed with "+", "-" or " ".
func RenderDiff(w io.Writer, subsequences []diff.Subsequence, noColor bool) {
	added := color.New(color.FgGreen)
	deleted := color.New(color.FgRed)
	kept := color.New(color.Reset)
	if noColor {
		added.DisableColor()
		deleted.DisableColor()
		kept.DisableColor()
	}

	for _, subsequence := range subsequences {
		printer, prefix := kept, " "
		switch subsequence.Type {
		case diff.Added:
			printer, prefix = added, "+"
		case diff.Deleted:
			printer, prefix = deleted, "-"
		}
		for _, line := range subsequence.Sequence {
			_, _ = printer.Fprintf(w, "%s %s\n", prefix, line)
		}
	}
}

func RenderStats(w io.Writer, stats diff.DiffStats) {
	_, _ = fmt.Fprintf(w, "%d added, %d deleted, %d kept\n", stats.Added, stats.Deleted, stats.Kept)
}

// RunDiff compares two text files line by line.
func RunDiff(logger *zap.SugaredLogger, args []string, out io.Writer) error {
	options, err := parseDiffArgs(args)
	if err != nil {
		printDiffHelp(out)
		return err
	}

	previous, err := readLines(options.From)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", options.From, err)
	}
	current, err := readLines(options.To)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", options.To, err)
	}

	subsequences := diff.GenerateDiffSequence(previous, current)
	logger.Debugf("Compared %d with %d lines", len(previous), len(current))
	if !options.StatsOnly {
		RenderDiff(out, subsequences, options.NoColor)
	}
	RenderStats(out, diff.Stats(subsequences))
	return nil
}

type MergeOptions struct {
	File   string
	DryRun bool
}

func parseMergeArgs(args []string) (MergeOptions, error) {
	var options MergeOptions
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&options.DryRun, "dry-run", false, "Report the result without storing it")

	if err := fs.Parse(args); err != nil {
		return options, err
	}
	if fs.NArg() != 1 {
		return options, errors.New("an import file is required")
	}
	options.File = fs.Arg(0)
	return options, nil
}

// RunMerge merges an exported page list file into the configured store.
func RunMerge(logger *zap.SugaredLogger, args []string, manager *pageManager.Manager, importer *swikiIO.Importer, out io.Writer) error {
	options, err := parseMergeArgs(args)
	if err != nil {
		printMergeHelp(out)
		return err
	}

	content, err := os.ReadFile(options.File)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", options.File, err)
	}
	pageList, err := importer.Parse(content)
	if err != nil {
		return err
	}

	var result *pageManager.ImportResult
	if options.DryRun {
		result, err = manager.PreviewImport(*pageList)
	} else {
		result, err = manager.Import(*pageList)
	}
	if err != nil {
		return err
	}

	logger.Debugf("Merged %s", options.File)
	_, _ = fmt.Fprintf(out, "%d content pages, %d revisions (%d new)\n",
		len(result.PageSet.Pages), result.RevisionsAfter, result.NewRevisions())
	if options.DryRun {
		_, _ = fmt.Fprintln(out, "Dry run, nothing was stored")
	}
	return nil
}

func printDiffHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, `Usage: swiki diff [-no-color] [-stat] <from-file> <to-file>`)
}

func printMergeHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, `Usage: swiki merge [-dry-run] <import.json>`)
}
