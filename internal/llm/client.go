package llm

import "context"

// Client минимальный публичный интерфейс клиента генерации текста.
// Ответ отдаётся как есть: разбор кандидатов остаётся за вызывающим.
type Client interface {
	Complete(ctx context.Context, prompt string) (*CompletionResponse, error)
}
