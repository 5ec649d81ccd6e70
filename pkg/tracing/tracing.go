// Package tracing 基于OpenTelemetry的链路追踪
//
// 使用方式：
//
//	shutdown, err := tracing.Init(ctx, tracing.Options{
//	    ServiceName: "bookshop-api",
//	    Endpoint:    "localhost:4317",
//	    SampleRatio: 0.1,
//	})
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "cart.AddBookToCart")
//	defer span.End()
//
// 未调用Init时otel使用全局noop Provider，StartSpan仍然可以安全调用
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName 本服务所有Span使用的instrumentation名称
const TracerName = "github.com/xiebiao/bookshop"

// Options 追踪配置
type Options struct {
	ServiceName string
	// Endpoint OTLP gRPC地址，如 localhost:4317
	Endpoint string
	// SampleRatio 采样率，<=0按1处理
	SampleRatio float64
}

// ShutdownFunc 退出前调用，刷新未发送的Span
type ShutdownFunc func(context.Context) error

// Init 创建OTLP exporter并设置全局TracerProvider
func Init(ctx context.Context, opts Options) (ShutdownFunc, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		dialCtx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	return Install(ctx, opts, sdktrace.WithBatcher(exporter))
}

// Install 用给定的SpanProcessor设置全局TracerProvider
// 测试里传入tracetest.InMemoryExporter的SyncProcessor
func Install(ctx context.Context, opts Options, processor sdktrace.TracerProviderOption) (ShutdownFunc, error) {
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(opts.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	ratio := opts.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		processor,
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}, nil
}

// StartSpan 以ctx中的Span为父创建新Span
func StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, spanName, opts...)
}

// EndSpan 记录错误并结束Span，配合defer使用
//
//	ctx, span := tracing.StartSpan(ctx, "cart.GetCart")
//	defer func() { tracing.EndSpan(span, err) }()
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TraceID 当前Span的TraceID，没有有效Span时返回空串
// 写日志时带上，方便从日志跳到追踪
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// SpanID 当前Span的SpanID
func SpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}
