package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the fraudscore MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolScoreTransaction = mcp.NewTool("score_transaction",
	mcp.WithDescription(
		"Score a cross-border payment transaction for fraud risk. "+
			"Returns the fraud probability, a risk tier (CRITICAL/HIGH/MEDIUM/LOW/MINIMAL), "+
			"and a recommended action such as blocking or holding the transaction. "+
			"Use list_field_options first to see the accepted categorical values."),
	mcp.WithObject("transaction",
		mcp.Required(),
		mcp.Description("Raw transaction attributes as a flat JSON object. "+
			"Categorical fields (home_country, source_currency, dest_currency, channel, "+
			"ip_country, kyc_tier, days_only, period_of_the_day, new_device) take string tokens; "+
			"numeric fields (amount_src, amount_usd, fee, exchange_rate_src_to_dest, "+
			"ip_risk_score, account_age_days, device_trust_score, chargeback_history_count, "+
			"risk_score_internal, txn_velocity_1h, txn_velocity_24h, corridor_risk) take numbers. "+
			"Missing fields default to safe values.")),
)

var ToolListFieldOptions = mcp.NewTool("list_field_options",
	mcp.WithDescription(
		"List the accepted values for every categorical transaction field "+
			"(countries, currencies, channels, KYC tiers, days, day periods). "+
			"Values outside these enumerations are treated as unknown by the scorer."),
)
