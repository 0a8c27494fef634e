// Command batch reads classified client records from a JSON file, generates a
// push notification for each and writes the results to CSV.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/configs"
	"github.com/aidyn-dev/banking-notification-service/internal/domain"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/infrastructure/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/metrics"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/internal/profile"
	"github.com/aidyn-dev/banking-notification-service/internal/tone"
	"github.com/aidyn-dev/banking-notification-service/internal/usecases/generatenotification"
	"github.com/aidyn-dev/banking-notification-service/internal/usecases/recommendproduct"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

func main() {
	inputPath := flag.String("input", "clients.json", "path to the JSON file with client records")
	outputPath := flag.String("output", "notifications.csv", "path to the CSV file to write")
	flag.Parse()

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
	} else {
		logger.L().Warn("Azure OpenAI not configured, writing template fallbacks")
	}

	records, err := readRecords(*inputPath)
	if err != nil {
		logger.L().Fatal("Failed to read client records", zap.String("path", *inputPath), zap.Error(err))
	}

	toneSelector := tone.NewSelector(tone.Config{
		YouthMaxAge:  cfg.ToneYouthMaxAge,
		SeniorMinAge: cfg.ToneSeniorMinAge,
	})
	generateUseCase := generatenotification.NewGenerateNotificationUseCase(completer, nil, toneSelector)
	recommendUseCase := recommendproduct.NewRecommendProductUseCase(completer)

	out, err := os.Create(*outputPath)
	if err != nil {
		logger.L().Fatal("Failed to create output file", zap.String("path", *outputPath), zap.Error(err))
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"client_code", "product", "push_notification", "source"}); err != nil {
		logger.L().Fatal("Failed to write CSV header", zap.Error(err))
	}

	ctx := context.Background()
	written := 0
	for _, record := range records {
		product := record.ProductType
		if product == "" {
			product = recommendFor(ctx, recommendUseCase, record)
		}
		if product == "" {
			logger.L().Warn("No product for client, skipping",
				zap.Int("clientCode", record.ClientCode),
			)
			continue
		}

		data := profile.TemplateData(record, product, time.Now())
		output, err := generateUseCase.Execute(ctx, generatenotification.GenerateNotificationInputDTO{
			Product:    product,
			ClientData: data,
		})
		if err != nil {
			logger.L().Error("Generation failed, skipping client",
				zap.Int("clientCode", record.ClientCode),
				zap.String("product", product),
				zap.Error(err),
			)
			continue
		}

		row := []string{
			strconv.FormatInt(output.ClientCode, 10),
			output.Product,
			output.PushNotification,
			output.Source,
		}
		if err := writer.Write(row); err != nil {
			logger.L().Fatal("Failed to write CSV row", zap.Error(err))
		}
		written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.L().Fatal("Failed to flush CSV", zap.Error(err))
	}

	fmt.Printf("Wrote %d notifications to %s\n", written, *outputPath)
}

func readRecords(path string) ([]domain.ClientRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []domain.ClientRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// recommendFor derives a product for records that come without one.
func recommendFor(ctx context.Context, useCase recommendproduct.RecommendProductUseCase, record domain.ClientRecord) string {
	output, err := useCase.Execute(ctx, recommendproduct.RecommendProductInputDTO{
		Age:               record.Age,
		Status:            record.Status,
		City:              record.City,
		AvgMonthlyBalance: record.AvgMonthlyBalance,
		Currencies:        record.Currencies,
		CategorySpending:  record.CategorySpending,
		TypeSpending:      record.TypeSpending,
	})
	if err != nil {
		logger.L().Warn("Recommendation failed",
			zap.Int("clientCode", record.ClientCode),
			zap.Error(err),
		)
		return ""
	}
	return output.ProductType
}
