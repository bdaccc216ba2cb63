// Package metrics 提供基于Prometheus的指标收集
//
// 指标分类：
// - Counter（计数器）：只增不减，如HTTP请求总数
// - Gauge（仪表盘）：可增可减，如正在处理的请求数
// - Histogram（直方图）：观测值分布，如请求耗时
//
// 使用方式：
// 1. main中调用InitMetrics()注册指标
// 2. 中间件/业务代码更新指标
// 3. GET /metrics 暴露给Prometheus抓取
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST/PUT/DELETE）、path（路由模板）、status（HTTP状态码）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight 正在处理的HTTP请求数
	HTTPRequestsInFlight prometheus.Gauge

	// BooksTotal 图书总数（列表接口每次查询后更新）
	BooksTotal prometheus.Gauge

	// ReconcileLinkedTotal 关系调和结果计数
	// 标签：entity（book/author）、result（matched/created）
	// matched表示按自然键命中已有记录，created表示新建记录
	ReconcileLinkedTotal *prometheus.CounterVec

	// CommentsCreatedTotal 评论创建总数
	CommentsCreatedTotal prometheus.Counter
)

// InitMetrics 注册所有指标
// 必须在使用任何指标前调用一次；重复调用会被忽略
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "library_http_requests_in_flight",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "library_books_total",
			Help: "图书总数",
		},
	)

	ReconcileLinkedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_reconcile_linked_total",
			Help: "关系调和命中/新建计数",
		},
		[]string{"entity", "result"},
	)

	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_comments_created_total",
			Help: "评论创建总数",
		},
	)
}

// Enabled 指标是否已初始化
// 业务代码更新指标前先判断，避免metrics未启用时空指针
func Enabled() bool {
	return initialized
}
