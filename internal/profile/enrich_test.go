package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	"github.com/aidyn-dev/banking-notification-service/internal/prompt"
)

func sampleRecord() domain.ClientRecord {
	return domain.ClientRecord{
		ClientCode:        1,
		Name:              "Айгерим",
		Status:            domain.StatusSalaried,
		Age:               29,
		City:              "Алматы",
		AvgMonthlyBalance: 850_000,
		Currencies:        []string{"KZT", "USD"},
		CategorySpending: map[string]int64{
			"Такси":            120_000,
			"Путешествия":      250_000,
			"Отели":            90_000,
			"Кафе и рестораны": 180_000,
			"Продукты питания": 210_000,
			"Едим дома":        30_000,
		},
		TypeSpending: map[string]int64{
			"salary_in":      600_000,
			"card_out":       500_000,
			"atm_withdrawal": 150_000,
			"p2p_out":        300_000,
			"fx_buy":         2_000_000,
		},
	}
}

func TestTemplateDataBaseFields(t *testing.T) {
	data := TemplateData(sampleRecord(), "неизвестный продукт", time.Now())

	assert.Equal(t, 1, data["client_code"])
	assert.Equal(t, "Айгерим", data["name"])
	assert.Equal(t, 29, data["age"])
	assert.Equal(t, int64(850_000), data["avg_monthly_balance_KZT"])
	assert.NotContains(t, data, "taxi_rides_count")
}

func TestTemplateDataTravelCard(t *testing.T) {
	august := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	data := TemplateData(sampleRecord(), prompt.ProductTravelCard, august)

	assert.Equal(t, int64(60), data["taxi_rides_count"])
	assert.Equal(t, int64(120_000), data["taxi_spent_amount"])
	assert.Equal(t, int64(250_000), data["travel_spent_amount"])
	assert.Equal(t, "августе", data["month"])
}

func TestTemplateDataPremiumCardEstimatesCounts(t *testing.T) {
	data := TemplateData(sampleRecord(), prompt.ProductPremiumCard, time.Now())

	assert.Equal(t, int64(3), data["atm_withdrawals_count"])
	assert.Equal(t, int64(3), data["transfers_count"])
	assert.Equal(t, int64(180_000), data["restaurants_spent"])
}

func TestTemplateDataCreditCardTopCategories(t *testing.T) {
	data := TemplateData(sampleRecord(), prompt.ProductCreditCard, time.Now())

	assert.Equal(t, "Путешествия", data["top_category_1"])
	assert.Equal(t, "Продукты питания", data["top_category_2"])
	assert.Equal(t, "Кафе и рестораны", data["top_category_3"])
	assert.Equal(t, int64(30_000), data["online_services_spent"])
	assert.Equal(t, false, data["installment_payments"])
}

func TestTemplateDataCreditCardDefaultsWhenSparse(t *testing.T) {
	record := sampleRecord()
	record.CategorySpending = map[string]int64{"Такси": 10_000}

	data := TemplateData(record, prompt.ProductCreditCard, time.Now())

	assert.Equal(t, "Такси", data["top_category_1"])
	assert.Equal(t, "Кафе и рестораны", data["top_category_2"])
	assert.Equal(t, "Такси", data["top_category_3"])
}

func TestTemplateDataFXExchange(t *testing.T) {
	data := TemplateData(sampleRecord(), prompt.ProductFXExchange, time.Now())

	assert.Equal(t, int64(2), data["fx_buy_count"])
	assert.Equal(t, "USD", data["main_foreign_currency"])
}

func TestTemplateDataFXExchangeTengeOnly(t *testing.T) {
	record := sampleRecord()
	record.Currencies = []string{"KZT"}

	data := TemplateData(record, prompt.ProductFXExchange, time.Now())

	assert.Equal(t, "иностранной валюте", data["main_foreign_currency"])
}

func TestTemplateDataCashLoanIndicators(t *testing.T) {
	record := sampleRecord()
	record.TypeSpending["card_out"] = 900_000

	data := TemplateData(record, prompt.ProductCashLoan, time.Now())

	assert.Equal(t, 15, data["low_balance_days"])
	assert.Equal(t, true, data["cash_need_indicators"])
}

func TestTemplateDataSavingsDepositStableBalance(t *testing.T) {
	data := TemplateData(sampleRecord(), prompt.ProductSavingsDeposit, time.Now())

	assert.Equal(t, int64(850_000), data["stable_balance"])
	assert.Equal(t, 3, data["spending_volatility"])
	assert.Equal(t, 9, data["balance_stability_score"])
}

func TestTemplateDataInvestmentsRiskByAge(t *testing.T) {
	young := sampleRecord()
	older := sampleRecord()
	older.Age = 48

	assert.Equal(t, 7, TemplateData(young, prompt.ProductInvestments, time.Now())["risk_tolerance"])
	assert.Equal(t, 5, TemplateData(older, prompt.ProductInvestments, time.Now())["risk_tolerance"])
}

func TestTemplateDataAssemblesEveryProduct(t *testing.T) {
	tone := domain.ToneInstruction{
		AgeTone:    "энергичный тон",
		StatusTone: "уважительный тон",
	}
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range prompt.Products() {
		data := TemplateData(sampleRecord(), name, now)

		result, err := prompt.Assemble(name, data, tone)

		require.NoError(t, err, name)
		assert.Contains(t, result, "Айгерим", name)
		assert.Contains(t, result, "энергичный тон", name)
	}
}

func TestTemplateDataAliasNormalized(t *testing.T) {
	data := TemplateData(sampleRecord(), "Депозит Сберегательный", time.Now())

	assert.Contains(t, data, "stable_balance")
}
