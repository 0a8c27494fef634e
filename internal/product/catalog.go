// Package product holds the fixed catalog of banking offerings the service
// recommends and writes notifications for.
package product

// Product describes one banking offering.
type Product struct {
	Name           string
	Description    string
	KeyFeatures    []string
	TargetAudience []string
}

var catalog = map[string]Product{
	"Карта для путешествий": {
		Name:           "Карта для путешествий",
		Description:    "4% кешбэк на категорию «Путешествия», 4% кешбэк на такси, поезда, самолеты. Привилегии Visa Signature.",
		KeyFeatures:    []string{"travel_cashback", "transport_cashback", "visa_signature"},
		TargetAudience: []string{"frequent_traveler", "hotel_booker", "high_transport_spending"},
	},
	"Премиальная карта": {
		Name:           "Премиальная карта",
		Description:    "2-4% кешбэк в зависимости от депозита. Повышенный кэшбэк на ювелирные изделия, парфюмерию и рестораны.",
		KeyFeatures:    []string{"high_balance_benefits", "luxury_cashback", "free_transfers"},
		TargetAudience: []string{"high_balance", "luxury_spending", "frequent_transfers"},
	},
	"Кредитная карта": {
		Name:           "Кредитная карта",
		Description:    "Кредитный лимит до 2 млн ₸, до 10% кешбэк в выбранных категориях, рассрочка 3-24 мес.",
		KeyFeatures:    []string{"credit_line", "category_cashback", "installments"},
		TargetAudience: []string{"credit_user", "category_optimizer", "installment_buyer"},
	},
	"Обмен валют": {
		Name:           "Обмен валют",
		Description:    "Выгодный курс в приложении без комиссии 24/7, автоматическая покупка при целевом курсе.",
		KeyFeatures:    []string{"multi_currency", "no_commission", "auto_exchange"},
		TargetAudience: []string{"multi_currency_user", "forex_trader", "international_business"},
	},
	"Кредит наличными": {
		Name:           "Кредит наличными",
		Description:    "Без залога и справок, онлайн оформление, ставка 12-21%, досрочное погашение без штрафов.",
		KeyFeatures:    []string{"no_collateral", "quick_approval", "flexible_repayment"},
		TargetAudience: []string{"quick_cash_need", "no_collateral_available", "online_preferring"},
	},
	"Депозит Мультивалютный": {
		Name:           "Депозит Мультивалютный",
		Description:    "Ставка 14,50%, поддержка KZT/USD/RUB/EUR, свободное пополнение и снятие.",
		KeyFeatures:    []string{"multi_currency_deposit", "flexible_access", "currency_rebalancing"},
		TargetAudience: []string{"multi_currency_saver", "flexible_access_need", "currency_diversifier"},
	},
	"Депозит Сберегательный": {
		Name:           "Депозит Сберегательный",
		Description:    "Ставка 16,50%, защита KDIF, без пополнения и снятия до конца срока.",
		KeyFeatures:    []string{"highest_rate", "deposit_protection", "fixed_term"},
		TargetAudience: []string{"long_term_saver", "maximum_yield_seeker", "capital_preserver"},
	},
	"Депозит Накопительный": {
		Name:           "Депозит Накопительный",
		Description:    "Ставка 15,50%, возможность пополнения, без снятия.",
		KeyFeatures:    []string{"accumulation", "regular_deposits", "good_rate"},
		TargetAudience: []string{"regular_saver", "goal_oriented_saver", "discipline_builder"},
	},
	"Инвестиции": {
		Name:           "Инвестиции",
		Description:    "0% комиссии на сделки, порог входа от 6 ₸, без комиссий в первый год.",
		KeyFeatures:    []string{"zero_commission", "low_entry", "beginner_friendly"},
		TargetAudience: []string{"investor", "small_investor", "investment_beginner"},
	},
	"Золотые слитки": {
		Name:           "Золотые слитки",
		Description:    "Слитки 999,9 пробы, покупка/продажа в отделениях, хранение в сейфовых ячейках.",
		KeyFeatures:    []string{"physical_gold", "value_preservation", "bank_storage"},
		TargetAudience: []string{"gold_investor", "diversification_seeker", "long_term_preserver"},
	},
}

// Catalog returns the full product catalog keyed by product name.
func Catalog() map[string]Product {
	return catalog
}

// Known reports whether name is a catalog product.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}
