// Command demo runs the generator against the example client set and prints
// the results. Without Azure OpenAI credentials every notification comes from
// the template fallback, which makes the command useful offline.
package main

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/configs"
	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/infrastructure/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/metrics"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/internal/tone"
	"github.com/aidyn-dev/banking-notification-service/internal/usecases/generatenotification"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

type demoClient struct {
	product string
	data    domain.ClientData
}

func main() {
	if err := logger.InitializeLogger(true); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := configs.NewConfig(".")
	if err != nil {
		logger.L().Fatal("Failed to load config", zap.Error(err))
	}

	// No exporter needed for a one-shot run.
	tracing.Tracer = otel.Tracer(cfg.OtelServiceName)
	metrics.InitMetrics()

	var completer portllm.ChatCompleter
	if cfg.LLMConfigured() {
		completer = llm.NewAzureClient(cfg)
		fmt.Println("Azure OpenAI configured, generating with the model.")
	} else {
		fmt.Println("Azure OpenAI not configured, generating template fallbacks.")
	}

	toneSelector := tone.NewSelector(tone.Config{
		YouthMaxAge:  cfg.ToneYouthMaxAge,
		SeniorMinAge: cfg.ToneSeniorMinAge,
	})
	useCase := generatenotification.NewGenerateNotificationUseCase(completer, nil, toneSelector)

	ctx := context.Background()
	for _, client := range demoClients() {
		output, err := useCase.Execute(ctx, generatenotification.GenerateNotificationInputDTO{
			Product:    client.product,
			ClientData: client.data,
		})
		if err != nil {
			logger.L().Error("Generation failed",
				zap.String("product", client.product),
				zap.Error(err),
			)
			continue
		}

		name, _ := client.data.String("name")
		fmt.Printf("\n[%s] %s (client %d, source=%s)\n%s\n",
			output.Product, name, output.ClientCode, output.Source, output.PushNotification)
	}
}

func demoClients() []demoClient {
	return []demoClient{
		{
			product: "Карта для путешествий",
			data: domain.ClientData{
				"client_code": 123, "name": "Алия", "status": domain.StatusSalaried,
				"age": 28, "city": "Алматы", "avg_monthly_balance_KZT": 450_000,
				"taxi_rides_count": 12, "taxi_spent_amount": 27_400,
				"travel_spent_amount": 150_000, "hotels_spent_amount": 80_000,
				"month": "августе",
			},
		},
		{
			product: "Премиальная карта",
			data: domain.ClientData{
				"client_code": 456, "name": "Елена", "status": domain.StatusPremium,
				"age": 45, "city": "Нур-Султан", "avg_monthly_balance_KZT": 2_000_000,
				"restaurants_spent": 100_000, "cosmetics_spent": 50_000,
				"jewelry_spent": 200_000, "atm_withdrawals_count": 2, "transfers_count": 25,
			},
		},
		{
			product: "Карта для путешествий",
			data: domain.ClientData{
				"client_code": 789, "name": "Айдар", "status": domain.StatusStudent,
				"age": 22, "city": "Алматы", "avg_monthly_balance_KZT": 50_000,
				"taxi_rides_count": 8, "taxi_spent_amount": 15_000,
				"travel_spent_amount": 30_000, "hotels_spent_amount": 0,
				"month": "сентябре",
			},
		},
		{
			product: "Кредитная карта",
			data: domain.ClientData{
				"client_code": 101, "name": "Данияр", "status": domain.StatusSalaried,
				"age": 35, "city": "Астана", "avg_monthly_balance_KZT": 200_000,
				"top_category_1": "Продукты питания", "top_category_2": "Такси",
				"top_category_3": "Кино", "online_services_spent": 25_000,
				"installment_payments": true, "cc_repayments": false,
			},
		},
		{
			product: "Обмен валют",
			data: domain.ClientData{
				"client_code": 102, "name": "Руслан", "status": domain.StatusPremium,
				"age": 48, "city": "Алматы", "avg_monthly_balance_KZT": 3_000_000,
				"fx_buy_count": 5, "fx_sell_count": 2, "main_foreign_currency": "USD",
			},
		},
		{
			product: "Кредит наличными",
			data: domain.ClientData{
				"client_code": 103, "name": "Тимур", "status": domain.StatusSalaried,
				"age": 36, "city": "Караганда", "avg_monthly_balance_KZT": 150_000,
				"monthly_inflow": 200_000, "monthly_outflow": 180_000,
				"loan_payments_count": 2, "low_balance_days": 5,
				"cash_need_indicators": "high_outflow",
			},
		},
		{
			product: "Депозит мультивалютный",
			data: domain.ClientData{
				"client_code": 104, "name": "Елена", "status": domain.StatusPremium,
				"age": 45, "city": "Алматы", "avg_monthly_balance_KZT": 2_500_000,
				"free_balance": 500_000, "fx_activity_score": 8, "foreign_spending": 100_000,
				"deposit_fx_topup_count": 3, "deposit_fx_withdraw_count": 1,
			},
		},
		{
			product: "Депозит сберегательный",
			data: domain.ClientData{
				"client_code": 105, "name": "Мадина", "status": domain.StatusSalaried,
				"age": 33, "city": "Астана", "avg_monthly_balance_KZT": 1_200_000,
				"stable_balance": 800_000, "spending_volatility": 3,
				"deposit_topup_count": 1, "deposit_withdraw_count": 0,
				"balance_stability_score": 9,
			},
		},
		{
			product: "Депозит накопительный",
			data: domain.ClientData{
				"client_code": 106, "name": "Сабина", "status": domain.StatusStudent,
				"age": 22, "city": "Алматы", "avg_monthly_balance_KZT": 80_000,
				"regular_balance": 50_000, "periodic_topups": true, "topup_frequency": 4,
				"savings_behavior_score": 7, "small_regular_amounts": 10_000,
			},
		},
		{
			product: "Инвестиции",
			data: domain.ClientData{
				"client_code": 107, "name": "Арман", "status": domain.StatusPremium,
				"age": 55, "city": "Алматы", "avg_monthly_balance_KZT": 4_000_000,
				"available_funds": 300_000, "invest_in_count": 2, "invest_out_count": 0,
				"investment_interest_score": 8, "risk_tolerance": 6,
			},
		},
		{
			product: "Золотые слитки",
			data: domain.ClientData{
				"client_code": 108, "name": "Камилла", "status": domain.StatusPremium,
				"age": 45, "city": "Алматы", "avg_monthly_balance_KZT": 2_000_000,
				"high_liquidity": true, "gold_buy_count": 1, "gold_sell_count": 0,
				"jewelry_spent": 150_000, "value_preservation_interest": 9,
			},
		},
	}
}
