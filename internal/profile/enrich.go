// Package profile derives the product-specific template fields from a
// client's raw spending aggregates. Counts that are not present in the
// aggregates directly (rides, withdrawals, exchange operations) are
// estimated from the spent amounts with fixed average tickets.
package profile

import (
	"sort"
	"time"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	"github.com/aidyn-dev/banking-notification-service/internal/prompt"
)

// TemplateData builds the flat attribute mapping the prompt template of
// productName expects, from the structured classification record. Unknown
// products get the base attributes only.
func TemplateData(record domain.ClientRecord, productName string, now time.Time) domain.ClientData {
	data := domain.ClientData{
		"client_code":             record.ClientCode,
		"name":                    record.Name,
		"status":                  record.Status,
		"age":                     record.Age,
		"city":                    record.City,
		"avg_monthly_balance_KZT": record.AvgMonthlyBalance,
		"currencies":              currenciesOrDefault(record.Currencies),
	}

	cat := record.CategorySpending
	typ := record.TypeSpending
	balance := record.AvgMonthlyBalance

	switch prompt.Normalize(productName) {
	case prompt.ProductTravelCard:
		data["taxi_rides_count"] = cat["Такси"] / 2_000
		data["taxi_spent_amount"] = cat["Такси"]
		data["travel_spent_amount"] = cat["Путешествия"]
		data["hotels_spent_amount"] = cat["Отели"]
		data["month"] = prompt.MonthLocative(now.Month())

	case prompt.ProductPremiumCard:
		data["restaurants_spent"] = cat["Кафе и рестораны"]
		data["cosmetics_spent"] = cat["Косметика и Парфюмерия"]
		data["jewelry_spent"] = cat["Ювелирные украшения"]
		data["atm_withdrawals_count"] = typ["atm_withdrawal"] / 50_000
		data["transfers_count"] = typ["p2p_out"] / 100_000

	case prompt.ProductCreditCard:
		top := topCategories(cat, 3)
		data["top_category_1"] = pick(top, 0, "Продукты питания")
		data["top_category_2"] = pick(top, 1, "Кафе и рестораны")
		data["top_category_3"] = pick(top, 2, "Такси")
		data["online_services_spent"] = cat["Едим дома"] + cat["Смотрим дома"] + cat["Играем дома"]
		_, hasInstallments := typ["installment_payment_out"]
		_, hasRepayments := typ["cc_repayment_out"]
		data["installment_payments"] = hasInstallments
		data["cc_repayments"] = hasRepayments

	case prompt.ProductFXExchange:
		data["fx_buy_count"] = typ["fx_buy"] / 1_000_000
		data["fx_sell_count"] = typ["fx_sell"] / 1_000_000
		data["main_foreign_currency"] = mainForeignCurrency(record.Currencies)

	case prompt.ProductCashLoan:
		inflow := typ["salary_in"]
		outflow := typ["card_out"]
		data["monthly_inflow"] = inflow
		data["monthly_outflow"] = outflow
		data["loan_payments_count"] = typ["loan_payment_out"] / 100_000
		if float64(outflow) > float64(inflow)*1.2 {
			data["low_balance_days"] = 15
		} else {
			data["low_balance_days"] = 5
		}
		data["cash_need_indicators"] = float64(outflow) > float64(inflow)*1.1

	case prompt.ProductMultiCurrencyDeposit:
		data["free_balance"] = max(int64(0), balance-50_000)
		data["fx_activity_score"] = min(int64(10), typ["fx_buy"]/500_000)
		data["foreign_spending"] = cat["Путешествия"] + cat["Отели"]
		data["deposit_fx_topup_count"] = typ["deposit_fx_topup_out"] / 200_000
		data["deposit_fx_withdraw_count"] = typ["deposit_fx_withdraw_in"] / 200_000

	case prompt.ProductSavingsDeposit:
		data["stable_balance"] = balance
		if balance > 500_000 {
			data["spending_volatility"] = 3
			data["balance_stability_score"] = 9
		} else {
			data["spending_volatility"] = 7
			data["balance_stability_score"] = 5
		}
		data["deposit_topup_count"] = typ["deposit_topup_out"] / 200_000
		// No withdrawals by product design
		data["deposit_withdraw_count"] = 0

	case prompt.ProductAccumulativeDeposit:
		topups := typ["deposit_topup_out"]
		data["regular_balance"] = balance
		data["periodic_topups"] = topups > 0
		data["topup_frequency"] = topups / 100_000
		if topups > 500_000 {
			data["savings_behavior_score"] = 8
		} else {
			data["savings_behavior_score"] = 4
		}
		data["small_regular_amounts"] = topups < 500_000

	case prompt.ProductInvestments:
		data["available_funds"] = max(int64(0), balance-100_000)
		data["invest_in_count"] = typ["invest_in"] / 200_000
		data["invest_out_count"] = typ["invest_out"] / 200_000
		if typ["invest_in"] > 0 {
			data["investment_interest_score"] = 8
		} else {
			data["investment_interest_score"] = 3
		}
		if record.Age < 35 {
			data["risk_tolerance"] = 7
		} else {
			data["risk_tolerance"] = 5
		}

	case prompt.ProductGoldBars:
		data["high_liquidity"] = balance > 1_000_000
		data["gold_buy_count"] = typ["gold_buy_out"] / 500_000
		data["gold_sell_count"] = typ["gold_sell_in"] / 500_000
		data["jewelry_spent"] = cat["Ювелирные украшения"]
		if typ["gold_buy_out"] > 0 {
			data["value_preservation_interest"] = 8
		} else {
			data["value_preservation_interest"] = 5
		}
	}

	return data
}

// topCategories returns up to n category names ordered by amount descending.
// Ties break alphabetically so the output is deterministic.
func topCategories(spending map[string]int64, n int) []string {
	names := make([]string, 0, len(spending))
	for name := range spending {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if spending[names[i]] != spending[names[j]] {
			return spending[names[i]] > spending[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func pick(items []string, i int, fallback string) string {
	if i < len(items) {
		return items[i]
	}
	return fallback
}

// mainForeignCurrency returns the client's first non-KZT currency, or a
// neutral placeholder when they only hold tenge.
func mainForeignCurrency(currencies []string) string {
	for _, c := range currencies {
		if c != "KZT" {
			return c
		}
	}
	return "иностранной валюте"
}

func currenciesOrDefault(currencies []string) []string {
	if len(currencies) == 0 {
		return []string{"KZT"}
	}
	return currencies
}
