package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/aidyn-dev/banking-notification-service/configs"
	_ "github.com/aidyn-dev/banking-notification-service/docs" // Import generated docs
	"github.com/aidyn-dev/banking-notification-service/internal/domain/port/broker"
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
	infrabroker "github.com/aidyn-dev/banking-notification-service/internal/infrastructure/broker"
	"github.com/aidyn-dev/banking-notification-service/internal/infrastructure/llm"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/metrics"
	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/internal/tone"
	"github.com/aidyn-dev/banking-notification-service/internal/usecases/generatenotification"
	"github.com/aidyn-dev/banking-notification-service/internal/usecases/recommendproduct"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

func main() {
	if err := logger.InitializeLogger(false); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	cfg, err := configs.NewConfig(".")
	if err != nil {
		logger.L().Fatal("Failed to load config", zap.Error(err))
	}

	shutdown, err := tracing.InitTracer(cfg)
	if err != nil {
		logger.L().Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := shutdown(nil); err != nil {
			logger.L().Error("Error shutting down tracer", zap.Error(err))
		}
	}()

	var completer portllm.ChatCompleter
	if cfg.LLMConfigured() {
		completer = llm.NewAzureClient(cfg)
		logger.L().Info("Azure OpenAI client initialized",
			zap.String("deployment", cfg.AzureOpenAIDeployment),
		)
	} else {
		logger.L().Warn("Azure OpenAI is not fully configured, serving template fallbacks only")
	}

	var messageBroker broker.MessageBroker
	if len(cfg.KafkaBrokers) > 0 {
		kafkaBroker, err := infrabroker.NewKafkaBroker(infrabroker.Config{
			Brokers: cfg.KafkaBrokers,
		})
		if err != nil {
			logger.L().Fatal("Failed to initialize Kafka broker", zap.Error(err))
		}
		defer func() {
			if err := kafkaBroker.Close(); err != nil {
				logger.L().Error("Error closing Kafka broker", zap.Error(err))
			}
		}()
		messageBroker = kafkaBroker
	} else {
		logger.L().Info("Kafka delivery disabled, notifications are returned to callers only")
	}

	toneSelector := tone.NewSelector(tone.Config{
		YouthMaxAge:  cfg.ToneYouthMaxAge,
		SeniorMinAge: cfg.ToneSeniorMinAge,
	})

	generateNotificationHandler := generatenotification.NewGenerateNotification(completer, messageBroker, toneSelector)
	recommendProductHandler := recommendproduct.NewRecommendProduct(completer)

	metrics.InitMetrics()

	srv := gin.Default()
	srv.Use(otelgin.Middleware(cfg.OtelServiceName))

	// Swagger endpoint
	srv.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv.Use(func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		if endpoint == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		metrics.HttpRequestsTotal.WithLabelValues(endpoint, http.StatusText(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})

	srv.POST("/generate-notification", generateNotificationHandler.Handle)
	srv.POST("/recommend-product", recommendProductHandler.Handle)

	srv.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	logger.L().Info("Server starting", zap.String("address", cfg.ServerAddress))
	if err := srv.Run(cfg.ServerAddress); err != nil {
		logger.L().Fatal("Failed to start server", zap.Error(err))
	}
}
