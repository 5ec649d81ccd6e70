package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestObserveCartOperation 成功和失败分别计数
func TestObserveCartOperation(t *testing.T) {
	before := getCounterVecValue(t, CartOperationsTotal, prometheus.Labels{"operation": "add_book", "result": "success"})
	failedBefore := getCounterVecValue(t, CartOperationsTotal, prometheus.Labels{"operation": "add_book", "result": "40405"})
	countBefore := getHistogramVecCount(t, CartOperationDuration, prometheus.Labels{"operation": "add_book"})

	start := time.Now()
	ObserveCartOperation("add_book", start, 0)
	ObserveCartOperation("add_book", start, 0)
	ObserveCartOperation("add_book", start, 40405)

	if v := getCounterVecValue(t, CartOperationsTotal, prometheus.Labels{"operation": "add_book", "result": "success"}); v-before != 2 {
		t.Errorf("成功次数错误: expected=2, got=%f", v-before)
	}
	if v := getCounterVecValue(t, CartOperationsTotal, prometheus.Labels{"operation": "add_book", "result": "40405"}); v-failedBefore != 1 {
		t.Errorf("失败次数错误: expected=1, got=%f", v-failedBefore)
	}
	if c := getHistogramVecCount(t, CartOperationDuration, prometheus.Labels{"operation": "add_book"}); c-countBefore != 3 {
		t.Errorf("耗时观测次数错误: expected=3, got=%d", c-countBefore)
	}
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	before := getCounterValue(t, OrdersCreatedTotal)

	OrdersCreatedTotal.Inc()
	OrdersCreatedTotal.Inc()
	OrdersCreatedTotal.Inc()

	if v := getCounterValue(t, OrdersCreatedTotal); v-before != 3 {
		t.Errorf("Counter值错误: expected=3, got=%f", v-before)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	HTTPRequestsInProgress.Set(0)

	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Inc()
	if v := getGaugeValue(t, HTTPRequestsInProgress); v != 2 {
		t.Errorf("Gauge递增后值错误: expected=2, got=%f", v)
	}

	HTTPRequestsInProgress.Dec()
	if v := getGaugeValue(t, HTTPRequestsInProgress); v != 1 {
		t.Errorf("Gauge递减后值错误: expected=1, got=%f", v)
	}
	HTTPRequestsInProgress.Set(0)
}

// TestGaugeVec 不同熔断器的状态互不影响
func TestGaugeVec(t *testing.T) {
	CircuitBreakerState.WithLabelValues("book-cache").Set(0)
	CircuitBreakerState.WithLabelValues("session-store").Set(1)

	if v := getGaugeVecValue(t, CircuitBreakerState, prometheus.Labels{"name": "book-cache"}); v != 0 {
		t.Errorf("GaugeVec值错误: expected=0, got=%f", v)
	}
	if v := getGaugeVecValue(t, CircuitBreakerState, prometheus.Labels{"name": "session-store"}); v != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", v)
	}
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	labels := prometheus.Labels{"method": "GET", "path": "/api/v1/cart/:id"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	HTTPRequestDuration.With(labels).Observe(0.05)
	HTTPRequestDuration.With(labels).Observe(0.1)
	HTTPRequestDuration.WithLabelValues("POST", "/api/v1/cart").Observe(0.2)

	if c := getHistogramVecCount(t, HTTPRequestDuration, labels); c-before != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", c-before)
	}
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels prometheus.Labels) float64 {
	t.Helper()
	return getCounterValue(t, counterVec.With(labels))
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels prometheus.Labels) float64 {
	t.Helper()
	return getGaugeValue(t, gaugeVec.With(labels))
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels prometheus.Labels) uint64 {
	t.Helper()
	var metric dto.Metric
	if err := histogramVec.With(labels).(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
