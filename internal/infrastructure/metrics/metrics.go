package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

const namespace = "lms"

// Metrics groups the collectors exposed on /metrics.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	AssetOperations *prometheus.CounterVec
	AssetDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AssetOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_operations_total",
			Help:      "Remote asset host calls by operation, kind and result.",
		}, []string{"operation", "kind", "result"}),
		AssetDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "asset_operation_duration_seconds",
			Help:      "Remote asset host call latency.",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"operation", "kind"}),
	}

	for _, c := range []prometheus.Collector{m.HTTPRequests, m.HTTPDuration, m.AssetOperations, m.AssetDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// InstrumentedAssetStore records every call made to the wrapped asset store.
type InstrumentedAssetStore struct {
	next    contract.IAssetStore
	metrics *Metrics
}

var _ contract.IAssetStore = (*InstrumentedAssetStore)(nil)

func NewInstrumentedAssetStore(next contract.IAssetStore, m *Metrics) *InstrumentedAssetStore {
	return &InstrumentedAssetStore{next: next, metrics: m}
}

func (s *InstrumentedAssetStore) Upload(ctx context.Context, file *entity.StagedFile, opts contract.UploadOptions) (*entity.Asset, error) {
	start := time.Now()
	asset, err := s.next.Upload(ctx, file, opts)
	s.observe("upload", opts.Kind, start, err)
	return asset, err
}

func (s *InstrumentedAssetStore) Destroy(ctx context.Context, publicID string, kind entity.AssetKind) error {
	start := time.Now()
	err := s.next.Destroy(ctx, publicID, kind)
	s.observe("destroy", kind, start, err)
	return err
}

func (s *InstrumentedAssetStore) observe(op string, kind entity.AssetKind, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.AssetOperations.WithLabelValues(op, string(kind), result).Inc()
	s.metrics.AssetDuration.WithLabelValues(op, string(kind)).Observe(time.Since(start).Seconds())
}
