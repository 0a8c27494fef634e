package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

func fullTravelData() domain.ClientData {
	return domain.ClientData{
		"client_code":             123,
		"name":                    "Алия",
		"status":                  domain.StatusSalaried,
		"age":                     28,
		"city":                    "Алматы",
		"avg_monthly_balance_KZT": 450_000,
		"taxi_rides_count":        12,
		"taxi_spent_amount":       27_400,
		"travel_spent_amount":     150_000,
		"hotels_spent_amount":     80_000,
		"month":                   "августе",
	}
}

func sampleTone() domain.ToneInstruction {
	return domain.ToneInstruction{
		AgeTone:    "Обращайся к клиенту на «ты».",
		StatusTone: "Держи дружелюбный тон.",
	}
}

func TestProducts(t *testing.T) {
	products := Products()

	assert.Len(t, products, 10)
	assert.Contains(t, products, ProductTravelCard)
	assert.Contains(t, products, ProductGoldBars)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "canonical name unchanged", input: ProductTravelCard, expected: ProductTravelCard},
		{name: "capitalized deposit alias", input: "Депозит Сберегательный", expected: ProductSavingsDeposit},
		{name: "capitalized multicurrency alias", input: "Депозит Мультивалютный", expected: ProductMultiCurrencyDeposit},
		{name: "capitalized accumulative alias", input: "Депозит Накопительный", expected: ProductAccumulativeDeposit},
		{name: "surrounding whitespace", input: "  Инвестиции  ", expected: ProductInvestments},
		{name: "unknown passes through", input: "Ипотека", expected: "Ипотека"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestKnown(t *testing.T) {
	for _, name := range Products() {
		assert.True(t, Known(name), name)
	}
	assert.True(t, Known("Депозит Сберегательный"))
	assert.False(t, Known("Ипотека"))
	assert.False(t, Known(""))
}

func TestAssemble(t *testing.T) {
	result, err := Assemble(ProductTravelCard, fullTravelData(), sampleTone())

	require.NoError(t, err)
	assert.Contains(t, result, "Карта для путешествий")
	assert.Contains(t, result, "Алия")
	assert.Contains(t, result, "августе")
	assert.Contains(t, result, "27400")
	assert.Contains(t, result, "Обращайся к клиенту на «ты».")
	assert.Contains(t, result, "Держи дружелюбный тон.")
	// Humanization and format instructions are always appended.
	assert.Contains(t, result, "Сделай уведомление живым и персональным!")
	assert.Contains(t, result, `"push_notification"`)
}

func TestAssemble_UnknownProduct(t *testing.T) {
	_, err := Assemble("Ипотека", fullTravelData(), sampleTone())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
	assert.Contains(t, err.Error(), "Ипотека")
}

func TestAssemble_MissingFieldFails(t *testing.T) {
	data := fullTravelData()
	delete(data, "taxi_spent_amount")

	_, err := Assemble(ProductTravelCard, data, sampleTone())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnknownProduct)
	assert.Contains(t, err.Error(), "taxi_spent_amount")
}

func TestAssemble_AliasResolves(t *testing.T) {
	data := domain.ClientData{
		"client_code":             105,
		"name":                    "Мадина",
		"status":                  domain.StatusSalaried,
		"age":                     33,
		"city":                    "Астана",
		"avg_monthly_balance_KZT": 1_200_000,
		"stable_balance":          800_000,
		"spending_volatility":     3,
		"deposit_topup_count":     1,
		"deposit_withdraw_count":  0,
		"balance_stability_score": 9,
	}

	result, err := Assemble("Депозит Сберегательный", data, sampleTone())

	require.NoError(t, err)
	assert.Contains(t, result, "Мадина")
}

func TestAssemble_EveryProductHasTemplate(t *testing.T) {
	for _, name := range Products() {
		_, err := Assemble(name, domain.ClientData{}, sampleTone())
		// Empty data fails on missing fields, never on a missing template.
		require.Error(t, err, name)
		assert.NotErrorIs(t, err, domain.ErrUnknownProduct, name)
	}
}
