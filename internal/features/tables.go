package features

// Categorical token tables. Index position in each slice is the ordinal
// code the model was trained with, so ordering here is part of the model
// contract and must not change without retraining.
var categoricalTokens = map[string][]string{
	"home_country":          {"CA", "UK", "US"},
	"source_currency":       {"CAD", "GBP", "USD"},
	"dest_currency":         {"CAD", "CNY", "EUR", "GBP", "INR", "MXN", "NGN", "PHP", "USD"},
	"channel":               {"ATM", "MOBILE", "WEB"},
	"ip_country":            {"CA", "UK", "US"},
	"kyc_tier":              {"ENHANCED", "LOW", "STANDARD"},
	"new_device":            {"false", "true"},
	"days_only":             {"Friday", "Monday", "Saturday", "Sunday", "Thursday", "Tuesday", "Wednesday"},
	"period_of_the_day":     {"Day", "Evening", "Late Night", "Night"},
	"fee_bracket":           {"high risk", "no risk"},
	"ip_risk_score_bracket": {"high risk", "no risk"},
}

// categoricalCodes is derived once from categoricalTokens at init.
var categoricalCodes = func() map[string]map[string]int {
	codes := make(map[string]map[string]int, len(categoricalTokens))
	for field, tokens := range categoricalTokens {
		m := make(map[string]int, len(tokens))
		for code, token := range tokens {
			m[token] = code
		}
		codes[field] = m
	}
	return codes
}()

// FeatureOrder is the exact input order the classifier was trained with.
var FeatureOrder = []string{
	"home_country", "source_currency", "dest_currency", "channel",
	"amount_src", "amount_usd", "fee", "exchange_rate_src_to_dest",
	"new_device", "ip_country", "location_mismatch", "ip_risk_score",
	"kyc_tier", "account_age_days", "device_trust_score",
	"chargeback_history_count", "risk_score_internal", "txn_velocity_1h",
	"txn_velocity_24h", "corridor_risk", "days_only",
	"period_of_the_day", "fee_bracket", "ip_risk_score_bracket",
}

// VectorSize is the fixed length of every encoded feature vector.
const VectorSize = 24

// numericFields are coerced to float64 before scaling. Missing fields
// default to 0.
var numericFields = []string{
	"amount_src", "amount_usd", "fee", "exchange_rate_src_to_dest",
	"ip_risk_score", "account_age_days", "device_trust_score",
	"chargeback_history_count", "risk_score_internal",
	"txn_velocity_1h", "txn_velocity_24h", "corridor_risk",
}

// robustParams holds (median, IQR) pairs approximated from the training
// data distribution.
type robustParams struct {
	Median float64
	IQR    float64
}

var robustScale = map[string]robustParams{
	"amount_src":                {Median: 200.0, IQR: 300.0},
	"amount_usd":                {Median: 180.0, IQR: 280.0},
	"fee":                       {Median: 4.0, IQR: 5.0},
	"exchange_rate_src_to_dest": {Median: 1.0, IQR: 10.0},
	"chargeback_history_count":  {Median: 0.0, IQR: 1.0},
}

// standardParams holds (mean, stddev) pairs approximated from the training
// data distribution.
type standardParams struct {
	Mean float64
	Std  float64
}

var standardScale = map[string]standardParams{
	"ip_risk_score":      {Mean: 0.5, Std: 0.25},
	"account_age_days":   {Mean: 500.0, Std: 300.0},
	"device_trust_score": {Mean: 0.65, Std: 0.25},
}

// FieldOptions is the fixed enumeration of valid tokens per form field,
// served by GET /api/options. Precomputed once from categoricalTokens so
// the dropdowns can never drift from the encoding tables.
type FieldOptions struct {
	HomeCountries    []string `json:"home_countries"`
	SourceCurrencies []string `json:"source_currencies"`
	DestCurrencies   []string `json:"dest_currencies"`
	Channels         []string `json:"channels"`
	IPCountries      []string `json:"ip_countries"`
	KYCTiers         []string `json:"kyc_tiers"`
	Days             []string `json:"days"`
	Periods          []string `json:"periods"`
}

var fieldOptions = FieldOptions{
	HomeCountries:    categoricalTokens["home_country"],
	SourceCurrencies: categoricalTokens["source_currency"],
	DestCurrencies:   categoricalTokens["dest_currency"],
	Channels:         categoricalTokens["channel"],
	IPCountries:      categoricalTokens["ip_country"],
	KYCTiers:         categoricalTokens["kyc_tier"],
	Days:             categoricalTokens["days_only"],
	Periods:          categoricalTokens["period_of_the_day"],
}

// Options returns the static field enumerations.
func Options() FieldOptions {
	return fieldOptions
}
