package mysql

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/elliotchance/phpserialize"

	"corrispettivi/internal/domain"
)

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseTaxAmounts decodes the PHP-serialized per-rate tax map stored in
// `_line_tax_data` (and the shipping `taxes` meta). Both shapes nest the
// amounts under a "total" key; amounts are stored as strings.
func parseTaxAmounts(raw string) map[int64]float64 {
	if raw == "" {
		return nil
	}
	var decoded map[interface{}]interface{}
	if err := phpserialize.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}
	totals, ok := decoded["total"].(map[interface{}]interface{})
	if !ok {
		totals = decoded
	}

	taxes := make(map[int64]float64, len(totals))
	for key, value := range totals {
		rateID, ok := toInt64(key)
		if !ok {
			continue
		}
		taxes[rateID] = toFloat64(value)
	}
	if len(taxes) == 0 {
		return nil
	}
	return taxes
}

// parseStoredDocumentData decodes structured numbering metadata. Newer
// plugin versions store JSON, older ones a PHP-serialized array.
func parseStoredDocumentData(raw string) *domain.StoredDocumentData {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "{") {
		var data domain.StoredDocumentData
		if err := json.Unmarshal([]byte(raw), &data); err == nil && data.NumberFormatted != "" {
			return &data
		}
		return nil
	}

	var decoded map[interface{}]interface{}
	if err := phpserialize.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}
	data := &domain.StoredDocumentData{
		NumberFormatted: firstString(decoded, "number_formatted", "formatted_number", "number"),
		Date:            firstString(decoded, "date"),
	}
	if data.NumberFormatted == "" {
		return nil
	}
	return data
}

func firstString(decoded map[interface{}]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := decoded[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func toInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case string:
		return parseAmount(t)
	default:
		return 0
	}
}
