package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atharva/siptrack"
	"github.com/google/subcommands"
)

// resolveCmd holds the flags for the 'resolve' subcommand.
type resolveCmd struct {
	confirm string
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "resolve statement scheme names to registry codes" }
func (*resolveCmd) Usage() string {
	return `mfsip resolve [<scheme name>...]
mfsip resolve -confirm <code> <scheme name>

  Resolves statement scheme names against the AMFI registry and records
  the accepted matches in the mapping store. Without arguments, every
  scheme of the statement is resolved.

  With -confirm, the given name is mapped to the given code directly,
  bypassing fuzzy matching. Use it for schemes the matcher rejects.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.confirm, "confirm", "", "Registry scheme code to map the name to, bypassing matching.")
}

func (c *resolveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	provider := newProvider()
	resolver, catalog, err := OpenResolver(provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.confirm != "" {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "-confirm expects exactly one scheme name")
			return subcommands.ExitUsageError
		}
		name := f.Arg(0)
		if catalog.Name(c.confirm) == "" {
			fmt.Fprintf(os.Stderr, "code %q is not in the registry\n", c.confirm)
			return subcommands.ExitUsageError
		}
		resolver.Confirm(name, c.confirm)
		fmt.Printf("Mapped %q to %s (%s)\n", name, c.confirm, catalog.Name(c.confirm))
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		st, err := LoadStatement()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		names = st.Schemes()
	}

	var b strings.Builder
	b.WriteString("# Resolution\n\n| Scheme | Code | Registry Name |\n|:---|:---|:---|\n")
	var misses int
	for _, name := range names {
		code, err := resolver.Resolve(name)
		switch {
		case errors.Is(err, siptrack.ErrNotFound):
			misses++
			fmt.Fprintf(&b, "| %s | — | no confident match, use -confirm |\n", name)
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		default:
			fmt.Fprintf(&b, "| %s | %s | %s |\n", name, code, catalog.Name(code))
		}
	}
	printMarkdown(b.String())

	if misses > 0 {
		fmt.Fprintf(os.Stderr, "%d scheme(s) left unresolved\n", misses)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
