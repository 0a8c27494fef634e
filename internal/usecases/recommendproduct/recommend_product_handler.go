package recommendproduct

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidyn-dev/banking-notification-service/internal/observability/tracing"
	"github.com/aidyn-dev/banking-notification-service/pkg/logger"
)

type RecommendProductHandler struct {
	useCase RecommendProductUseCase
}

func NewRecommendProductHandler(useCase RecommendProductUseCase) *RecommendProductHandler {
	return &RecommendProductHandler{
		useCase: useCase,
	}
}

func (h *RecommendProductHandler) Handle(c *gin.Context) {
	var input RecommendProductInputDTO

	ctx, span := tracing.Tracer.Start(c.Request.Context(), "RecommendProductHandler.Handle")
	defer span.End()

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	output, err := h.useCase.Execute(ctx, input)
	if err != nil {
		logger.L().Error("Error recommending product via use case",
			zap.String("traceID", logger.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recommend product"})
		return
	}

	c.JSON(http.StatusOK, output)
}
