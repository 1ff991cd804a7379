// Package metrics 基于Prometheus的指标收集
//
// 指标类型:
//   - Counter: 只增不减的累计值(请求总数、缓存命中数)
//   - Gauge: 可增可减的瞬时值(处理中的请求数、熔断器状态)
//   - Histogram: 观测值分布(请求耗时)
//
// 所有指标通过promauto注册到默认Registry,由/metrics端点暴露。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

var (
	initOnce sync.Once

	// =========================================
	// HTTP指标
	// =========================================

	// HTTPRequestsTotal HTTP请求总数
	// 标签: method, path(路由模板,避免ID导致高基数), status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时(秒)
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的请求数
	HTTPRequestsInProgress prometheus.Gauge

	// =========================================
	// 缓存指标
	// =========================================

	// CacheRequestsTotal 响应缓存访问次数
	// 标签: namespace(books/tags/...), result(hit/miss/error)
	CacheRequestsTotal *prometheus.CounterVec

	// CacheEvictionsTotal 写操作触发的缓存清理次数
	CacheEvictionsTotal *prometheus.CounterVec

	// =========================================
	// 熔断器指标
	// =========================================

	// CircuitBreakerState 熔断器状态(0=CLOSED, 1=OPEN, 2=HALF_OPEN)
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签: name, result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec

	// =========================================
	// 业务指标
	// =========================================

	// BookLikesTotal 点赞/取消点赞次数
	BookLikesTotal *prometheus.CounterVec

	// BooksCreatedTotal 上架图书数
	BooksCreatedTotal prometheus.Counter
)

// InitMetrics 初始化所有指标(可重复调用)
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP请求耗时（秒）",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "正在处理的HTTP请求数",
			},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "响应缓存访问次数",
			},
			[]string{"namespace", "result"},
		)

		CacheEvictionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_evictions_total",
				Help:      "响应缓存清理次数",
			},
			[]string{"namespace"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		CircuitBreakerRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_requests_total",
				Help:      "熔断器请求总数",
			},
			[]string{"name", "result"},
		)

		BookLikesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "book_likes_total",
				Help:      "图书点赞操作次数",
			},
			[]string{"action"},
		)

		BooksCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "books_created_total",
				Help:      "上架图书总数",
			},
		)
	})
}

// =========================================
// 辅助函数
// =========================================

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGaugeVec 设置带标签的Gauge
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

// CacheResult 记录一次缓存访问结果
func CacheResult(ns, result string) {
	IncCounterVec(CacheRequestsTotal, map[string]string{"namespace": ns, "result": result})
}
