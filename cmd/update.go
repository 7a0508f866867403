package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh the NAV cache for every resolved scheme in the statement"
}
func (*updateCmd) Usage() string              { return "mfsip update\n" }
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}

	st, err := LoadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	provider := newProvider()
	resolver, _, err := OpenResolver(provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cache, err := OpenNavCache(provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var failures int
	for _, name := range st.Schemes() {
		code, err := resolver.Resolve(name)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "skip %q: %v\n", name, err)
			continue
		}
		series, err := cache.Get(code)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "skip %q: %v\n", name, err)
			continue
		}
		on, nav := series.Latest()
		fmt.Printf("%s: %d points, latest %s on %s\n", name, series.Len(), nav, on)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d scheme(s) could not be refreshed\n", failures)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
