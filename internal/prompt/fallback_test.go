package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

func TestFallback_TravelCardWithHighSpending(t *testing.T) {
	data := domain.ClientData{
		"name":                "Алия",
		"taxi_spent_amount":   float64(120_000),
		"travel_spent_amount": float64(30_000),
		"hotels_spent_amount": float64(10_000),
		"month":               "августе",
		"currencies":          []string{"KZT"},
	}

	text := Fallback(ProductTravelCard, data)

	assert.Contains(t, text, "Алия")
	assert.Contains(t, text, "августе")
	assert.Contains(t, text, "120,000")
	// 4% of 160,000
	assert.Contains(t, text, "6,400")
	assert.Contains(t, text, "₸")
}

func TestFallback_TravelCardWithLowSpending(t *testing.T) {
	data := domain.ClientData{
		"name":              "Айдар",
		"taxi_spent_amount": float64(15_000),
	}

	text := Fallback(ProductTravelCard, data)

	assert.Contains(t, text, "Айдар")
	assert.Contains(t, text, "путешеств")
	assert.NotContains(t, text, "15,000")
}

func TestFallback_PremiumCardBranches(t *testing.T) {
	tests := []struct {
		name     string
		data     domain.ClientData
		expected string
	}{
		{
			name: "high balance with luxury spending",
			data: domain.ClientData{
				"name":                    "Елена",
				"avg_monthly_balance_KZT": float64(2_000_000),
				"jewelry_spent":           float64(200_000),
			},
			expected: "до 5% кешбэка",
		},
		{
			name: "high balance without luxury spending",
			data: domain.ClientData{
				"name":                    "Елена",
				"avg_monthly_balance_KZT": float64(2_000_000),
			},
			expected: "до 4% кешбэка",
		},
		{
			name: "regular balance",
			data: domain.ClientData{
				"name":                    "Елена",
				"avg_monthly_balance_KZT": float64(300_000),
			},
			expected: "ресторанах",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text := Fallback(ProductPremiumCard, tc.data)
			assert.Contains(t, text, "Елена")
			assert.Contains(t, text, tc.expected)
		})
	}
}

func TestFallback_CreditCardUsesTopCategories(t *testing.T) {
	data := domain.ClientData{
		"name":           "Данияр",
		"top_category_1": "Продукты питания",
		"top_category_2": "Такси",
		"top_category_3": "Кино",
	}

	text := Fallback(ProductCreditCard, data)

	assert.Contains(t, text, "продукты питания")
	assert.Contains(t, text, "такси")
	assert.Contains(t, text, "кино")
}

func TestFallback_CreditCardDefaultsWhenCategoriesMissing(t *testing.T) {
	text := Fallback(ProductCreditCard, domain.ClientData{"name": "Данияр"})

	assert.Contains(t, text, "продукты питания")
	assert.Contains(t, text, "кафе и рестораны")
}

func TestFallback_MissingNameUsesPlaceholder(t *testing.T) {
	text := Fallback(ProductInvestments, domain.ClientData{})

	assert.Contains(t, text, "Уважаемый клиент")
}

func TestFallback_UnknownProductStillAnswers(t *testing.T) {
	text := Fallback("Ипотека", domain.ClientData{"name": "Тимур"})

	assert.Contains(t, text, "Тимур")
	assert.Contains(t, text, "специальное предложение")
}

func TestFallback_NeverEmptyForCatalog(t *testing.T) {
	for _, name := range Products() {
		assert.NotEmpty(t, Fallback(name, domain.ClientData{}), name)
	}
}

func TestFallback_AliasNormalized(t *testing.T) {
	text := Fallback("Депозит Сберегательный", domain.ClientData{"name": "Мадина"})

	assert.Contains(t, text, "Сберегательный депозит")
}
