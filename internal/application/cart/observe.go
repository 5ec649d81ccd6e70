package cart

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// startOperation 打开Span并开始计时，返回的done在操作结束时调用
//
//	ctx, done := startOperation(ctx, "add_book", "cart.AddBookToCart")
//	defer func() { done(err) }()
func startOperation(ctx context.Context, operation, spanName string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, spanName)
	span.SetAttributes(attrs...)

	return ctx, func(err error) {
		code := 0
		if err != nil {
			code = apperrors.GetAppError(err).Code
			span.SetAttributes(attribute.Int("error.code", code))
		}
		metrics.ObserveCartOperation(operation, start, code)
		tracing.EndSpan(span, err)
	}
}
