package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/renderer"
	"github.com/atharva/siptrack/statement"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	window string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the investment report for one or more schemes" }
func (*reportCmd) Usage() string {
	return `mfsip report [-window <range>] <scheme name>...

  Displays the per-scheme report: the resolved registry identity, the
  invested/current/profit summary, the statement transactions and the
  recent NAV points. A scheme that cannot be resolved or fetched still
  shows its transactions, with a note explaining the gap.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "window", "all", "NAV display window: 6m, 1y, 2y, 3y or all.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one scheme name expected")
		return subcommands.ExitUsageError
	}
	w, err := siptrack.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	st, err := LoadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	provider := newProvider()
	resolver, catalog, err := OpenResolver(provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cache, err := OpenNavCache(provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, name := range f.Args() {
		if !slices.Contains(st.Schemes(), name) {
			fmt.Fprintf(os.Stderr, "scheme %q is not in the statement; known schemes:\n", name)
			for _, s := range st.Schemes() {
				fmt.Fprintf(os.Stderr, "  %s\n", s)
			}
			return subcommands.ExitUsageError
		}
		report := buildSchemeReport(st, resolver, cache, catalog, name)
		printMarkdown(renderer.RenderSchemeReport(renderer.NewSchemeReport(report, w)))
	}
	return subcommands.ExitSuccess
}

// buildSchemeReport assembles the report data for one scheme: resolution,
// NAV series and summary. Resolution and fetch failures are carried in the
// report instead of aborting, so the transactions stay visible.
func buildSchemeReport(st *statement.Statement, resolver *siptrack.Resolver, cache *siptrack.NavCache, catalog siptrack.Catalog, name string) *siptrack.SchemeReport {
	report := &siptrack.SchemeReport{
		Scheme:       name,
		Transactions: st.Transactions(name),
	}

	code, err := resolver.Resolve(name)
	if err != nil {
		report.Err = err
		return report
	}
	report.Code = code
	report.CatalogName = catalog.Name(code)

	series, err := cache.Get(code)
	if err != nil {
		report.Err = err
		return report
	}
	report.Series = series
	report.Summary = siptrack.Summarize(report.Transactions, &report.Series)
	return report
}
