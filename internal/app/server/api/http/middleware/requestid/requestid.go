package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request-id"

// Middleware переиспользует X-Request-ID клиента или генерирует новый UUID
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.New().String()
		}

		ctx.SetHeader(Header, id)
		next(huma.WithValue(ctx, requestIDKey, id))
	}
}

// FromContext возвращает ID запроса или пустую строку
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
