// Package prompt builds the request payloads sent to the text-generation
// service: a fixed catalog of ten product templates, tone-of-voice
// injection, and the template-based fallback used when generation fails.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/aidyn-dev/banking-notification-service/internal/domain"
)

// Canonical product names of the notification catalog.
const (
	ProductTravelCard           = "Карта для путешествий"
	ProductPremiumCard          = "Премиальная карта"
	ProductCreditCard           = "Кредитная карта"
	ProductFXExchange           = "Обмен валют"
	ProductCashLoan             = "Кредит наличными"
	ProductMultiCurrencyDeposit = "Депозит мультивалютный"
	ProductSavingsDeposit       = "Депозит сберегательный"
	ProductAccumulativeDeposit  = "Депозит накопительный"
	ProductInvestments          = "Инвестиции"
	ProductGoldBars             = "Золотые слитки"
)

// productNames lists the catalog in its presentation order.
var productNames = []string{
	ProductTravelCard,
	ProductPremiumCard,
	ProductCreditCard,
	ProductFXExchange,
	ProductCashLoan,
	ProductMultiCurrencyDeposit,
	ProductSavingsDeposit,
	ProductAccumulativeDeposit,
	ProductInvestments,
	ProductGoldBars,
}

var templateTexts = map[string]string{
	ProductTravelCard:           promptTravelCard,
	ProductPremiumCard:          promptPremiumCard,
	ProductCreditCard:           promptCreditCard,
	ProductFXExchange:           promptFXExchange,
	ProductCashLoan:             promptCashLoan,
	ProductMultiCurrencyDeposit: promptMultiCurrencyDeposit,
	ProductSavingsDeposit:       promptSavingsDeposit,
	ProductAccumulativeDeposit:  promptAccumulativeDeposit,
	ProductInvestments:          promptInvestments,
	ProductGoldBars:             promptGoldBars,
}

// The classifier emits the deposit products with a capitalized second word;
// the catalog keys use the lowercase form.
var productAliases = map[string]string{
	"Депозит Мультивалютный": ProductMultiCurrencyDeposit,
	"Депозит Сберегательный": ProductSavingsDeposit,
	"Депозит Накопительный":  ProductAccumulativeDeposit,
}

var templates = map[string]*template.Template{}

func init() {
	for name, text := range templateTexts {
		// missingkey=error makes an absent required field an assembly
		// error instead of a silently malformed prompt.
		templates[name] = template.Must(
			template.New(name).
				Option("missingkey=error").
				Parse(text + humanizationInstructions + responseFormatInstructions),
		)
	}
}

// Products returns the ten catalog product names in presentation order.
func Products() []string {
	out := make([]string, len(productNames))
	copy(out, productNames)
	return out
}

// Normalize maps classifier spellings onto catalog keys. Unknown names pass
// through unchanged and fail later in Assemble.
func Normalize(productName string) string {
	name := strings.TrimSpace(productName)
	if canonical, ok := productAliases[name]; ok {
		return canonical
	}
	return name
}

// Known reports whether productName (after normalization) is in the catalog.
func Known(productName string) bool {
	_, ok := templates[Normalize(productName)]
	return ok
}

// Assemble fills the product template with the client attributes and tone
// fragments and returns the complete prompt text. It returns
// domain.ErrUnknownProduct for names outside the catalog and an execution
// error when a required field is missing from data.
func Assemble(productName string, data domain.ClientData, tone domain.ToneInstruction) (string, error) {
	name := Normalize(productName)
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownProduct, productName)
	}

	fields := make(map[string]any, len(data)+2)
	for k, v := range data {
		fields[k] = v
	}
	fields["age_tone"] = tone.AgeTone
	fields["status_tone"] = tone.StatusTone

	var sb strings.Builder
	if err := tmpl.Execute(&sb, fields); err != nil {
		return "", fmt.Errorf("assemble prompt for %q: %w", name, err)
	}
	return sb.String(), nil
}
