package recommendproduct

import (
	portllm "github.com/aidyn-dev/banking-notification-service/internal/domain/port/llm"
)

func NewRecommendProduct(completer portllm.ChatCompleter) *RecommendProductHandler {
	useCase := NewRecommendProductUseCase(completer)
	return NewRecommendProductHandler(useCase)
}
