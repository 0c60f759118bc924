package metrics

import (
	"autograph-openre/domain/openre"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"strconv"
	"time"
)

const namespace = "openre"

/*
Recorder 把抽取统计和 HTTP 请求导出为 prometheus 指标。
*/
type Recorder struct {
	registry *prometheus.Registry

	sentences     *prometheus.CounterVec
	triplets      *prometheus.CounterVec
	batches       prometheus.Counter
	batchDuration prometheus.Histogram
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	ret := &Recorder{
		registry: prometheus.NewRegistry(),
		sentences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentences_total",
			Help:      "Sentences seen by the extraction engine, by outcome.",
		}, []string{"outcome"}),
		triplets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triplets_total",
			Help:      "Extracted triplets, by match kind.",
		}, []string{"match"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Finished extraction batches.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one extraction batch.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status.",
		}, []string{"route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	ret.registry.MustRegister(
		ret.sentences,
		ret.triplets,
		ret.batches,
		ret.batchDuration,
		ret.requests,
		ret.latency,
		prometheus.NewGoCollector(),
	)
	return ret
}

func (r *Recorder) ObserveBatch(stats openre.Stats, elapsed time.Duration) {
	r.batches.Inc()
	r.batchDuration.Observe(elapsed.Seconds())

	r.sentences.WithLabelValues("skipped").Add(float64(stats.Sentences - stats.Masked))
	r.sentences.WithLabelValues("parsed").Add(float64(stats.Parsed))
	r.sentences.WithLabelValues("failed").Add(float64(stats.Failed))
	r.sentences.WithLabelValues("with_triplets").Add(float64(stats.SentencesWithTriplets))

	r.triplets.WithLabelValues("perfect").Add(float64(stats.PerfectTriplets))
	r.triplets.WithLabelValues("partial").Add(float64(stats.Triplets - stats.PerfectTriplets))
}

/*
Middleware 统计每个路由的请求数和耗时，未匹配的路由记为 unknown。
*/
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		route := c.FullPath()
		if len(route) == 0 {
			route = "unknown"
		}
		r.requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		r.latency.WithLabelValues(route).Observe(time.Since(begin).Seconds())
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
