package prompt

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

// Fallback builds a template-based notification from the client attributes
// alone. It is used whenever the generation service is unavailable or its
// response cannot be parsed, and it works for any catalog product. For an
// unknown product it still returns a generic offer text.
func Fallback(productName string, data domain.ClientData) string {
	name := Normalize(productName)

	clientName, _ := data.String("name")
	if clientName == "" {
		clientName = "Уважаемый клиент"
	}
	observation := observationPhrases[rand.Intn(len(observationPhrases))]
	variants := CTAVariants(name)
	cta := variants[rand.Intn(len(variants))]
	symbol := currencyFor(data)

	switch name {
	case ProductTravelCard:
		taxi, _ := data.Int("taxi_spent_amount")
		travel, _ := data.Int("travel_spent_amount")
		hotels, _ := data.Int("hotels_spent_amount")
		if taxi > 100_000 || travel > 100_000 {
			month, ok := data.String("month")
			if !ok {
				month = "этом месяце"
			}
			cashback := (taxi + travel + hotels) * 4 / 100
			return fmt.Sprintf("%s, %s в %s вы очень активно пользовались такси — %s %s. С картой для путешествий вернули бы около %s %s кешбэка. %s.",
				clientName, observation, month, groupDigits(taxi), symbol, groupDigits(cashback), symbol, cta)
		}
		return fmt.Sprintf("%s, %s вы часто путешествуете и пользуетесь такси. С картой для путешествий получили бы кешбэк с каждой поездки. %s.",
			clientName, observation, cta)

	case ProductPremiumCard:
		balance, _ := data.Int("avg_monthly_balance_KZT")
		cosmetics, _ := data.Int("cosmetics_spent")
		jewelry, _ := data.Int("jewelry_spent")
		if balance > 1_000_000 {
			if cosmetics > 100_000 || jewelry > 100_000 {
				return fmt.Sprintf("%s, %s у вас высокий остаток и активные траты на косметику и ювелирку. Премиальная карта даст до 5%% кешбэка в этих категориях. %s.",
					clientName, observation, cta)
			}
			return fmt.Sprintf("%s, %s у вас стабильно высокий остаток. Премиальная карта даст до 4%% кешбэка на все покупки и бесплатные снятия. %s.",
				clientName, observation, cta)
		}
		return fmt.Sprintf("%s, %s вы часто тратите в ресторанах. С премиальной картой получили бы повышенный кешбэк и бесплатные снятия. %s.",
			clientName, observation, cta)

	case ProductCreditCard:
		cat1 := stringOr(data, "top_category_1", "Продукты питания")
		cat2 := stringOr(data, "top_category_2", "Кафе и рестораны")
		cat3 := stringOr(data, "top_category_3", "Такси")
		return fmt.Sprintf("%s, %s вы часто тратите на %s, %s и %s. Кредитная карта даст до 10%% кешбэка именно в ваших любимых категориях. %s.",
			clientName, observation, strings.ToLower(cat1), strings.ToLower(cat2), strings.ToLower(cat3), cta)

	case ProductFXExchange:
		return fmt.Sprintf("%s, %s вы часто работаете с валютой. В приложении выгодный обмен и авто-покупка по целевому курсу. %s.",
			clientName, observation, cta)

	case ProductCashLoan:
		return fmt.Sprintf("%s, %s у вас могут быть крупные траты. Если нужен запас — можно оформить кредит наличными с гибкими выплатами. %s.",
			clientName, observation, cta)

	case ProductMultiCurrencyDeposit:
		return fmt.Sprintf("%s, %s у вас остаются свободные средства. Мультивалютный депозит даст проценты и удобство хранения в разных валютах. %s.",
			clientName, observation, cta)

	case ProductSavingsDeposit:
		return fmt.Sprintf("%s, %s у вас стабильный остаток. Сберегательный депозит даст максимальную ставку за счёт отсутствия снятий. %s.",
			clientName, observation, cta)

	case ProductAccumulativeDeposit:
		return fmt.Sprintf("%s, %s вы регулярно откладываете средства. Накопительный депозит поможет эффективно копить с повышенной ставкой. %s.",
			clientName, observation, cta)

	case ProductInvestments:
		return fmt.Sprintf("%s, %s у вас есть свободные средства. Инвестиции дадут возможность роста с низким порогом входа. %s.",
			clientName, observation, cta)

	case ProductGoldBars:
		return fmt.Sprintf("%s, %s у вас высокая ликвидность средств. Золотые слитки — надёжный защитный актив для диверсификации. %s.",
			clientName, observation, cta)

	default:
		return fmt.Sprintf("%s, %s у нас есть специальное предложение для вас. %s.",
			clientName, observation, cta)
	}
}

func stringOr(data domain.ClientData, key, fallback string) string {
	if s, ok := data.String(key); ok && s != "" {
		return s
	}
	return fallback
}

// currencyFor picks the symbol of the client's first currency, tenge when
// none is listed.
func currencyFor(data domain.ClientData) string {
	raw, ok := data["currencies"]
	if !ok {
		return CurrencySymbol("KZT")
	}
	switch currencies := raw.(type) {
	case []string:
		if len(currencies) > 0 {
			return CurrencySymbol(currencies[0])
		}
	case []any:
		if len(currencies) > 0 {
			if code, ok := currencies[0].(string); ok {
				return CurrencySymbol(code)
			}
		}
	}
	return CurrencySymbol("KZT")
}

// groupDigits renders n with comma thousand separators ("27,400").
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
