package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/agent"
	"github.com/atharva/siptrack/date"
	"github.com/atharva/siptrack/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `assist [<initial prompt>]:
  Start an interactive session with the AI assistant. It can read the
  statement and the fetched NAV data, and research fund news.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	researcher := agent.NewResearcher()
	analyst := agent.NewAnalyst(analystTools())
	a := agent.New(os.Stdout, os.Stdin, researcher, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// analystTools exposes the schemes list and the scheme report as callable
// tools. Data is loaded on each call so the assistant always sees the
// current statement and cache.
func analystTools() []agent.Function {
	schemes := &agent.Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Schemes",
			Description: `Schemes lists every scheme in the user's SIP statement with its
			activity status, transaction count, first and last transaction dates and invested amount.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the user's schemes.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			st, err := LoadStatement()
			if err != nil {
				return toolError(id, "Schemes", err)
			}
			md := renderer.RenderSchemeList(renderer.NewSchemeList(st, date.Today(), false))
			return toolOutput(id, "Schemes", md)
		},
	}

	report := &agent.Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SchemeReport",
			Description: `SchemeReport renders the full report for one scheme of the statement:
			resolved registry identity, invested/current/profit summary, transactions and recent NAVs.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scheme": {
						Type:        genai.TypeString,
						Description: "The scheme name exactly as listed by the Schemes tool.",
					},
					"window": {
						Type:        genai.TypeString,
						Description: "NAV display window: 6m, 1y, 2y, 3y or all. Default all.",
					},
				},
				Required: []string{"scheme"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report for the scheme.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, ok := args["scheme"].(string)
			if !ok {
				return toolError(id, "SchemeReport", fmt.Errorf("argument 'scheme' is not a string but %T", args["scheme"]))
			}
			w := siptrack.WindowAll
			if s, ok := args["window"].(string); ok && s != "" {
				var err error
				if w, err = siptrack.ParseWindow(s); err != nil {
					return toolError(id, "SchemeReport", err)
				}
			}

			st, err := LoadStatement()
			if err != nil {
				return toolError(id, "SchemeReport", err)
			}
			provider := newProvider()
			resolver, catalog, err := OpenResolver(provider)
			if err != nil {
				return toolError(id, "SchemeReport", err)
			}
			cache, err := OpenNavCache(provider)
			if err != nil {
				return toolError(id, "SchemeReport", err)
			}

			r := buildSchemeReport(st, resolver, cache, catalog, name)
			md := renderer.RenderSchemeReport(renderer.NewSchemeReport(r, w))
			return toolOutput(id, "SchemeReport", md)
		},
	}

	return []agent.Function{schemes, report}
}

func toolOutput(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func toolError(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}
