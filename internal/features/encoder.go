// Package features encodes raw transaction attributes into the fixed-order
// numeric vector the fraud classifier was trained on.
//
// Encoding is a pure function of the input: categorical tokens become
// ordinal codes, twelve numeric fields are coerced and a subset of them
// robust- or standard-scaled with constants frozen at training time. The
// same input always produces the same 24-element vector.
package features

import (
	"fmt"
	"strconv"
)

// InvalidFieldError reports a numeric field whose value could not be
// coerced to a number.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid numeric value for field %q", e.Field)
}

// UnknownTokenError reports an unrecognized categorical token. Only
// returned by strict-mode encoders; the default behavior maps unknown
// tokens to code 0.
type UnknownTokenError struct {
	Field string
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q for field %q", e.Token, e.Field)
}

// Encoder transforms a raw attribute map into a feature vector.
// The zero value is the permissive encoder the trained model expects:
// unrecognized categorical tokens silently fall back to code 0.
type Encoder struct {
	// Strict surfaces UnknownTokenError instead of the code-0 fallback.
	// Off by default for compatibility with the training-time behavior.
	Strict bool
}

// Encode maps raw request attributes to the model's 24-element vector.
// It fails only on numeric fields that cannot be coerced (and, in strict
// mode, on unknown categorical tokens); everything else degrades to safe
// defaults.
func (e *Encoder) Encode(raw map[string]any) ([]float64, error) {
	processed := make(map[string]float64, VectorSize)

	for field, codes := range categoricalCodes {
		value, ok := raw[field]
		if !ok {
			continue // absent feature reads as 0 during assembly
		}
		token := tokenString(field, value)
		code, known := codes[token]
		if !known {
			if e.Strict {
				return nil, &UnknownTokenError{Field: field, Token: token}
			}
			code = 0
		}
		processed[field] = float64(code)
	}

	processed["location_mismatch"] = boolFlag(raw["location_mismatch"])

	for _, field := range numericFields {
		v, err := coerceFloat(raw[field])
		if err != nil {
			return nil, &InvalidFieldError{Field: field}
		}
		processed[field] = v
	}

	for field, p := range robustScale {
		if p.IQR == 0 {
			processed[field] = 0
			continue
		}
		processed[field] = (processed[field] - p.Median) / p.IQR
	}

	for field, p := range standardScale {
		if p.Std == 0 {
			processed[field] = 0
			continue
		}
		processed[field] = (processed[field] - p.Mean) / p.Std
	}

	vector := make([]float64, VectorSize)
	for i, name := range FeatureOrder {
		vector[i] = processed[name]
	}
	return vector, nil
}

// tokenString normalizes a raw categorical value to its table key.
// new_device accepts truthy string/bool input; other fields match string
// tokens only.
func tokenString(field string, value any) string {
	if field == "new_device" {
		if value == "true" || value == true {
			return "true"
		}
		return "false"
	}
	s, _ := value.(string)
	return s
}

// boolFlag implements the location_mismatch truth set:
// "true", true, 1 and "1" count as set, everything else (including a
// missing field) as clear.
func boolFlag(value any) float64 {
	switch v := value.(type) {
	case bool:
		if v {
			return 1
		}
	case string:
		if v == "true" || v == "1" {
			return 1
		}
	case float64:
		if v == 1 {
			return 1
		}
	case int:
		if v == 1 {
			return 1
		}
	}
	return 0
}

// coerceFloat converts a raw JSON value to float64. Missing (nil) values
// default to 0; booleans count as 1/0; numeric strings are parsed.
func coerceFloat(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
