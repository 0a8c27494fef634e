package recommendproduct

// RecommendProductInputDTO is the client financial profile the recommendation
// is computed from. Spending maps are keyed by transaction category and
// transfer type, amounts in KZT.
type RecommendProductInputDTO struct {
	Age               int              `json:"age"`
	Status            string           `json:"status"`
	City              string           `json:"city"`
	AvgMonthlyBalance int64            `json:"avg_monthly_balance_KZT"`
	Currencies        []string         `json:"currencies"`
	CategorySpending  map[string]int64 `json:"category_spending"`
	TypeSpending      map[string]int64 `json:"type_spending"`
	// Threshold overrides the configured minimum confidence score when set
	// to a value in (0, 1].
	Threshold float64 `json:"threshold,omitempty"`
}

type RecommendProductOutputDTO struct {
	ProductType          string           `json:"product_type"`
	Top5CategorySpending map[string]int64 `json:"top_5_category_spending"`
	Top5TypeSpending     map[string]int64 `json:"top_5_type_spending"`
	AvgMonthlyBalance    int64            `json:"avg_monthly_balance"`
}
