package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/novapay/fraudscore/internal/features"
	"github.com/novapay/fraudscore/internal/model"
	"github.com/novapay/fraudscore/internal/scoring"
)

// Handlers holds the handler functions for each MCP tool.
type Handlers struct {
	encoder *features.Encoder
	pkg     *model.Package
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(encoder *features.Encoder, pkg *model.Package) *Handlers {
	return &Handlers{encoder: encoder, pkg: pkg}
}

// HandleScoreTransaction encodes and scores a single transaction.
func (h *Handlers) HandleScoreTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["transaction"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("transaction must be a JSON object of attribute values"), nil
	}

	vector, err := h.encoder.Encode(raw)
	if err != nil {
		var invalid *features.InvalidFieldError
		var unknown *features.UnknownTokenError
		switch {
		case errors.As(err, &invalid):
			return mcp.NewToolResultError(fmt.Sprintf("Invalid numeric value for field '%s'", invalid.Field)), nil
		case errors.As(err, &unknown):
			return mcp.NewToolResultError(fmt.Sprintf(
				"Unrecognized value %q for field '%s'. Use list_field_options to see accepted values.",
				unknown.Token, unknown.Field)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode transaction: %v", err)), nil
		}
	}

	result, err := scoring.Score(vector, h.pkg)
	if err != nil {
		if errors.Is(err, model.ErrNotLoaded) {
			return mcp.NewToolResultError("No classifier is loaded; the scoring service is running degraded"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Scoring failed: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Risk level: %s\n", result.Recommendation.Icon, result.Tier)
	fmt.Fprintf(&sb, "Fraud probability: %.2f%%\n", result.ProbabilityPct)
	if result.IsFraudBest {
		sb.WriteString("Verdict: flagged as fraud (probability at or above the operating threshold)\n")
	} else {
		sb.WriteString("Verdict: not flagged as fraud\n")
	}
	fmt.Fprintf(&sb, "Thresholds: best %.2f%%, default %.2f%%\n", result.BestThresholdPct, result.DefaultThresholdPct)
	fmt.Fprintf(&sb, "\nRecommended action: %s\n%s", result.Recommendation.Action, result.Recommendation.Details)

	return mcp.NewToolResultText(sb.String()), nil
}

// HandleListFieldOptions lists the accepted categorical tokens.
func (h *Handlers) HandleListFieldOptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := features.Options()

	var sb strings.Builder
	sb.WriteString("Accepted categorical values:\n\n")
	writeList(&sb, "home_country", opts.HomeCountries)
	writeList(&sb, "source_currency", opts.SourceCurrencies)
	writeList(&sb, "dest_currency", opts.DestCurrencies)
	writeList(&sb, "channel", opts.Channels)
	writeList(&sb, "ip_country", opts.IPCountries)
	writeList(&sb, "kyc_tier", opts.KYCTiers)
	writeList(&sb, "days_only", opts.Days)
	writeList(&sb, "period_of_the_day", opts.Periods)
	sb.WriteString("new_device: true, false\nlocation_mismatch: true, false\n")

	return mcp.NewToolResultText(sb.String()), nil
}

func writeList(sb *strings.Builder, field string, values []string) {
	fmt.Fprintf(sb, "%s: %s\n", field, strings.Join(values, ", "))
}
