package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that owns the conversation and
// delegates to the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his mutual fund SIP investments:
			which schemes he holds, what they are worth, and how they performed.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his schemes, check the statement first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded on Google Search for fund house
// and market news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher on Indian mutual funds,
		well aware of fund houses, scheme categories, expense ratios and
		the latest news about AMCs and markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on Indian mutual funds. You can search and find anything related to
			fund houses, schemes, categories, regulations and markets. You leverage Google Search to
			ground your assertions in solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the user's own SIP data through
// the given tools (scheme list, scheme report).
func NewAnalyst(tools []Function) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's SIP statement
		and the fetched NAV data. He can list the user's schemes and compute the relevant
		figures about invested capital, current value and profit.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's SIP statement.
				You know how to use the Tools to extract relevant information about the user's investments.
				You are part of a team of experts; yours is everything in the user's own data. They might ask
				you questions about the user's schemes, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's investments:
				  - list of schemes, with their SIP activity
				  - per-scheme reports with invested, current value and profit
			`}}},
		},
		Library: NewLibrary(tools),
	}
}

// Func implements Function from a declaration and a callback, so command
// code can hand domain operations to an expert as tools.
type Func struct {
	// Decl declares this function.
	Decl *genai.FunctionDeclaration
	// Call implements it.
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}
