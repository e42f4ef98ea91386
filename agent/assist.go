package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sectorhunter/hunter"
	"google.golang.org/genai"
)

// newFacilitator creates the expert in charge of the conversation.
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

			The user is a momentum trader tracking sector watchlists of Taiwan and US stocks.
			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user will assume you know his watchlist, check it with the Keeper first
			before answering anything about his sectors or stocks.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout creates the expert with access to live information.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is a market scout,
		very well aware of the Taiwan and US stock markets and the latest
		news about listed companies. Ask the Scout whenever you need recent
		or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market scout. You can search and find anything related to
			listed companies, sectors and markets. You leverage Google Search to
			ground your assertions in a solid truth, and you know how to relate
			the latest news to the user's request.
				`}}},
		},
	}
}

// NewKeeper creates the expert in charge of reading the user's watchlist.
func NewKeeper(store *hunter.Store) *Expert {
	lib := []Function{newWatchlistFunc(store)}
	return &Expert{
		Name: "Keeper",
		Description: `This is the Keeper. He is in charge of reading the user's
		sector watchlists: sectors, phases, stocks, scores and live quotes.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the keeper of the user's sector watchlists.
				You know how to use the Tools to extract sectors, stocks, scores
				and quotes from the watchlist. Other experts might ask you
				questions with approximative wording, figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// newWatchlistFunc exposes the watchlist to the model as a jsonpath lookup
// over the array of sectors.
func newWatchlistFunc(store *hunter.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Watchlist",
			Description: `Watchlist reads the user's sector watchlists.

			It evaluates a jsonpath expression against the JSON array of sectors.
			Each sector has: id, name, phase, rotationRisk, marketCorrelation,
			totalChangePercent and stocks. Each stock has: id (the symbol), name,
			price, change, changePercent, volume, isLeader, hunterScore and more.
			Use "$" to read everything.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {
						Type:        genai.TypeString,
						Description: `The jsonpath to evaluate, e.g. "$[0].stocks[?(@.isLeader)].id". Defaults to "$".`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The JSON value found at that path.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "Watchlist"}
			path := "$"
			if p, ok := args["path"].(string); ok && p != "" {
				path = p
			}
			out, err := watchlistLookup(store, path)
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": out}
			return fresp
		},
	}
}

func watchlistLookup(store *hunter.Store, path string) (string, error) {
	raw, err := json.Marshal(store.Sectors())
	if err != nil {
		return "", fmt.Errorf("cannot read watchlist: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return "", fmt.Errorf("cannot read watchlist: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	out, err := json.Marshal(jval)
	if err != nil {
		return "", fmt.Errorf("cannot render %q: %w", path, err)
	}
	return string(out), nil
}
