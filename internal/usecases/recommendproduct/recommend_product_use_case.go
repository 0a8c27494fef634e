package recommendproduct

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/configs"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/metrics"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/internal/product"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

const systemPrompt = `You are a banking product recommendation expert. Based on client financial behavior,
recommend suitable banking products. Return recommendations as JSON with product names as keys
and confidence scores (0-1) as values. Consider client's spending patterns, balance, currencies used,
and transaction behavior. Be precise and base recommendations on actual client data.`

// RecommendProductUseCase defines the contract for the recommend product use case.
type RecommendProductUseCase interface {
	Execute(ctx context.Context, input RecommendProductInputDTO) (RecommendProductOutputDTO, error)
}

// recommendProductUseCase implements the RecommendProductUseCase interface.
type recommendProductUseCase struct {
	// completer is nil when Azure OpenAI credentials are absent. Scoring then
	// comes from the rule set only.
	completer portllm.ChatCompleter
}

func NewRecommendProductUseCase(completer portllm.ChatCompleter) RecommendProductUseCase {
	return &recommendProductUseCase{
		completer: completer,
	}
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

func (u *recommendProductUseCase) Execute(ctx context.Context, input RecommendProductInputDTO) (RecommendProductOutputDTO, error) {
	ctx, span := tracing.Tracer.Start(ctx, "RecommendProductUseCase.Execute")
	defer span.End()

	scores := u.classify(ctx, input)

	threshold := configs.GetConfig().RecommendationThreshold
	if input.Threshold > 0 && input.Threshold <= 1 {
		threshold = input.Threshold
	}
	filtered := make(map[string]float64, len(scores))
	for name, score := range scores {
		if score >= threshold {
			filtered[name] = score
		}
	}

	productType := bestProduct(filtered)
	if productType == "" {
		// Nothing cleared the threshold, fall back to the best overall score.
		productType = bestProduct(scores)
	}

	return RecommendProductOutputDTO{
		ProductType:          productType,
		Top5CategorySpending: topN(input.CategorySpending, 5),
		Top5TypeSpending:     topN(input.TypeSpending, 5),
		AvgMonthlyBalance:    input.AvgMonthlyBalance,
	}, nil
}

// classify scores the catalog against the profile, via the model when one is
// configured and via the rule set otherwise.
func (u *recommendProductUseCase) classify(ctx context.Context, input RecommendProductInputDTO) map[string]float64 {
	if u.completer == nil {
		metrics.RecommendationsTotal.WithLabelValues("rules").Inc()
		return ruleBasedScores(input)
	}

	start := time.Now()
	raw, err := u.completer.Complete(ctx, systemPrompt, classificationPrompt(input))
	metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.L().Warn("Classification via chat completion failed, using rule set",
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		metrics.LLMRequestsTotal.WithLabelValues("failure").Inc()
		metrics.RecommendationsTotal.WithLabelValues("rules").Inc()
		return ruleBasedScores(input)
	}
	metrics.LLMRequestsTotal.WithLabelValues("success").Inc()

	scores := parseScores(raw)
	if len(scores) == 0 {
		logger.L().Warn("No usable scores in chat completion response, using rule set",
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
		)
		metrics.ErrorTotal.WithLabelValues("parse_scores").Inc()
		metrics.RecommendationsTotal.WithLabelValues("rules").Inc()
		return ruleBasedScores(input)
	}
	metrics.RecommendationsTotal.WithLabelValues("llm").Inc()
	return scores
}

// classificationPrompt renders the client profile and the product catalog into
// the scoring request.
func classificationPrompt(input RecommendProductInputDTO) string {
	var sb strings.Builder

	sb.WriteString("Based on the following client profile, recommend suitable banking products.\n\n")
	sb.WriteString("Client Profile:\n")
	fmt.Fprintf(&sb, "Age: %d\n", input.Age)
	fmt.Fprintf(&sb, "Status: %s\n", input.Status)
	fmt.Fprintf(&sb, "City: %s\n", input.City)
	fmt.Fprintf(&sb, "Average monthly balance: %d KZT\n", input.AvgMonthlyBalance)

	if len(input.CategorySpending) > 0 {
		fmt.Fprintf(&sb, "Top spending categories: %s\n", formatTop(input.CategorySpending, 3))
	}
	if len(input.TypeSpending) > 0 {
		fmt.Fprintf(&sb, "Top transfer types: %s\n", formatTop(input.TypeSpending, 3))
	}
	if len(input.Currencies) > 0 {
		fmt.Fprintf(&sb, "Currencies used: %s\n", strings.Join(input.Currencies, ", "))
	}
	fmt.Fprintf(&sb, "Total spending: %d\n", totalSpending(input.CategorySpending))
	fmt.Fprintf(&sb, "Category diversity: %d\n", len(input.CategorySpending))

	sb.WriteString("\nAvailable Products:\n")
	catalog := product.Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "%s: %s\n\n", name, catalog[name].Description)
	}

	sb.WriteString("Return a JSON object with product names as keys and recommendation confidence scores (0-1) as values.\n")
	sb.WriteString("Consider only products that match the client's actual behavior and needs.\n")
	sb.WriteString(`Example format: {"Карта для путешествий": 0.85, "Депозит Накопительный": 0.65}` + "\n\n")
	sb.WriteString("Recommendations:")

	return sb.String()
}

// parseScores extracts the score object from the response text. Unknown
// products are dropped and scores clamped to the 0-1 range.
func parseScores(raw string) map[string]float64 {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil
	}

	var parsed map[string]float64
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return nil
	}

	scores := make(map[string]float64, len(parsed))
	for name, score := range parsed {
		if !product.Known(name) {
			continue
		}
		scores[name] = clamp(score, 0, 1)
	}
	return scores
}

// ruleBasedScores mirrors the behavioral heuristics the recommendation model
// is prompted with, so the endpoint keeps answering without it.
func ruleBasedScores(input RecommendProductInputDTO) map[string]float64 {
	scores := map[string]float64{}

	balance := input.AvgMonthlyBalance
	if balance > 6_000_000 {
		scores["Премиальная карта"] = 0.9
		scores["Депозит Сберегательный"] = 0.8
	} else if balance > 1_000_000 {
		scores["Премиальная карта"] = 0.7
		scores["Депозит Накопительный"] = 0.75
	}

	if len(input.Currencies) > 2 {
		scores["Обмен валют"] = 0.85
		scores["Депозит Мультивалютный"] = 0.8
	}

	if hasAny(input.CategorySpending, "Путешествия", "Такси", "Отели") {
		scores["Карта для путешествий"] = 0.85
	}

	if len(input.CategorySpending) > 5 {
		scores["Кредитная карта"] = 0.7
	}

	if balance < 500_000 && totalSpending(input.CategorySpending) > balance*2 {
		scores["Кредит наличными"] = 0.6
		scores["Кредитная карта"] = 0.75
	}

	if balance > 2_000_000 {
		scores["Инвестиции"] = 0.7
		scores["Золотые слитки"] = 0.6
	}

	return scores
}

// bestProduct returns the highest scoring product name, ties broken
// alphabetically so the result is deterministic.
func bestProduct(scores map[string]float64) string {
	best := ""
	bestScore := -1.0
	for name, score := range scores {
		if score > bestScore || (score == bestScore && name < best) {
			best = name
			bestScore = score
		}
	}
	return best
}

func topN(spending map[string]int64, n int) map[string]int64 {
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

	top := make(map[string]int64, len(names))
	for _, name := range names {
		top[name] = spending[name]
	}
	return top
}

func formatTop(spending map[string]int64, n int) string {
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

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%d)", name, spending[name]))
	}
	return strings.Join(parts, ", ")
}

func totalSpending(spending map[string]int64) int64 {
	var total int64
	for _, amount := range spending {
		total += amount
	}
	return total
}

func hasAny(spending map[string]int64, keys ...string) bool {
	for _, key := range keys {
		if _, ok := spending[key]; ok {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
