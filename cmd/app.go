// Package cmd implements the CLI application to track SIP investments.
package cmd

import (
	"flag"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/amfi"
	"github.com/atharva/siptrack/statement"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&schemesCmd{}, "statement")
	c.Register(&reportCmd{}, "statement")

	c.Register(&resolveCmd{}, "registry")
	c.Register(&updateCmd{}, "registry")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statementFile = flag.String("statement", "cas.xlsx", "Path to the CAS Excel statement")
var mappingsFile = flag.String("mappings", "scheme_mapping.json", "Path to the scheme mapping store (JSON)")
var navcacheFile = flag.String("navcache", "nav_cache.json", "Path to the NAV cache store (JSON)")

// newProvider returns the registry provider. Swappable in tests.
var newProvider = func() siptrack.Provider { return amfi.New() }

// LoadStatement loads the CAS statement from the app statement file.
func LoadStatement() (*statement.Statement, error) {
	return statement.Load(*statementFile)
}

// OpenResolver fetches the registry catalog and opens the resolver over
// the app mapping store.
func OpenResolver(p siptrack.Provider) (*siptrack.Resolver, siptrack.Catalog, error) {
	catalog, err := p.Catalog()
	if err != nil {
		return nil, nil, err
	}
	r, err := siptrack.NewResolver(*mappingsFile, catalog, nil)
	return r, catalog, err
}

// OpenNavCache opens the NAV cache over the app cache store.
func OpenNavCache(p siptrack.Provider) (*siptrack.NavCache, error) {
	return siptrack.NewNavCache(*navcacheFile, p)
}
