package resource

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// Helpers de extracción tipada. Se usan después de Validate, así que las
// conversiones no pueden fallar para entradas que pasaron sus reglas.

func inString(in validate.Input, field string) string {
	s, _ := in[field].(string)
	return s
}

func inNullString(in validate.Input, field string) *string {
	v, ok := in[field]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func inInt64(in validate.Input, field string) int64 {
	switch v := in[field].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func inDecimal(in validate.Input, field string) decimal.Decimal {
	switch v := in[field].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err == nil {
			return d
		}
	case string:
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	}
	return decimal.Zero
}
