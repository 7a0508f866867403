package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/renderer"
	"github.com/google/subcommands"
)

// schemesCmd holds the flags for the 'schemes' subcommand.
type schemesCmd struct {
	active bool
	date   string
}

func (*schemesCmd) Name() string     { return "schemes" }
func (*schemesCmd) Synopsis() string { return "list the schemes found in the statement" }
func (*schemesCmd) Usage() string {
	return `mfsip schemes [-active] [-d <date>]

  Lists the schemes of the statement with their SIP activity, transaction
  count and invested amount. With -active only schemes with a purchase in
  the last 45 days are shown.
`
}

func (c *schemesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.active, "active", false, "Only list active SIPs.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date against which SIP activity is judged.")
}

func (c *schemesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, err := LoadStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSchemeList(renderer.NewSchemeList(st, asOf, c.active)))
	return subcommands.ExitSuccess
}
