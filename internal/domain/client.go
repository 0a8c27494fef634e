package domain

import "encoding/json"

// ClientData is the flat mapping of named client attributes supplied with a
// generation request. Values arrive from JSON, so numbers may be float64,
// json.Number or native ints depending on the caller.
type ClientData map[string]any

// Int reads a numeric attribute. The second return is false when the key is
// absent or not a number.
func (d ClientData) Int(key string) (int64, bool) {
	switch v := d[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String reads a string attribute.
func (d ClientData) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// ClientRecord is one entry of the product-classification output: the
// client's identity plus their top spending aggregates and the product
// matched for them. The batch path consumes a JSON array of these.
type ClientRecord struct {
	ClientCode        int              `json:"client_code"`
	Name              string           `json:"name"`
	Status            string           `json:"status"`
	Age               int              `json:"age"`
	City              string           `json:"city"`
	AvgMonthlyBalance int64            `json:"avg_monthly_balance"`
	Currencies        []string         `json:"currencies"`
	CategorySpending  map[string]int64 `json:"top_5_category_spending"`
	TypeSpending      map[string]int64 `json:"top_5_type_spending"`
	ProductType       string           `json:"product_type"`
}
