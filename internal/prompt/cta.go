package prompt

import "time"

var ctaVariants = map[string][]string{
	ProductTravelCard:           {"Оформить карту", "Открыть карту в приложении"},
	ProductPremiumCard:          {"Подключить карту", "Оформить сейчас"},
	ProductCreditCard:           {"Оформить карту", "Выбрать категории"},
	ProductFXExchange:           {"Настроить обмен", "Открыть обмен валют"},
	ProductCashLoan:             {"Узнать доступный лимит", "Оформить онлайн"},
	ProductMultiCurrencyDeposit: {"Открыть вклад", "Открыть депозит"},
	ProductSavingsDeposit:       {"Открыть вклад", "Разместить средства"},
	ProductAccumulativeDeposit:  {"Начать копить", "Открыть депозит"},
	ProductInvestments:          {"Открыть счёт", "Попробовать"},
	ProductGoldBars:             {"Узнать подробнее", "Посмотреть в приложении"},
}

var genericCTA = []string{"Посмотреть в приложении"}

// CTAVariants returns the call-to-action options for a product. Unknown
// products get the generic variant so the fallback generator never emits an
// empty call to action.
func CTAVariants(productName string) []string {
	if variants, ok := ctaVariants[Normalize(productName)]; ok {
		return variants
	}
	return genericCTA
}

var currencySymbols = map[string]string{
	"KZT": "₸",
	"USD": "$",
	"EUR": "€",
	"RUB": "₽",
	"GBP": "£",
}

// CurrencySymbol returns the display symbol for a currency code, defaulting
// to the tenge symbol.
func CurrencySymbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return "₸"
}

// Russian month names in the locative case, as used inside notifications
// ("в августе").
var monthNames = map[time.Month]string{
	time.January:   "январе",
	time.February:  "феврале",
	time.March:     "марте",
	time.April:     "апреле",
	time.May:       "мае",
	time.June:      "июне",
	time.July:      "июле",
	time.August:    "августе",
	time.September: "сентябре",
	time.October:   "октябре",
	time.November:  "ноябре",
	time.December:  "декабре",
}

// MonthLocative returns the locative Russian name for m.
func MonthLocative(m time.Month) string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return "августе"
}

// observationPhrases open the fallback notifications with a personal touch.
var observationPhrases = []string{
	"заметили, что",
	"видим, что",
	"видно, что",
	"обратили внимание, что",
	"видно по вашим тратам, что",
}
