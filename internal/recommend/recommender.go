package recommend

import (
	"context"
	"errors"

	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var fallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "afridesk",
	Subsystem: "recommend",
	Name:      "fallback_total",
	Help:      "Recommendation requests served from the local catalog, by reason.",
}, []string{"reason"})

var remoteTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "afridesk",
	Subsystem: "recommend",
	Name:      "remote_total",
	Help:      "Recommendation requests served by Gemini.",
})

// Recommender produces service recommendations for a citizen profile. It
// always returns a result: when the remote path is unavailable or fails in
// any way it answers from the local catalog instead.
type Recommender struct {
	catalog *catalog.Catalog
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewRecommender wires the catalog and the remote fetcher together. A nil
// fetcher disables the remote path entirely.
func NewRecommender(cat *catalog.Catalog, fetcher *Fetcher, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{catalog: cat, fetcher: fetcher, logger: logger}
}

// Recommend resolves the profile's country and needs, tries the remote path
// once, and falls back to catalog matching on any failure or empty answer.
// It never returns an error.
func (r *Recommender) Recommend(ctx context.Context, country string, needs []string) Result {
	country = r.catalog.ResolveCountry(country)

	if r.fetcher == nil || !r.fetcher.HasCredential() {
		return r.local(country, needs, "no_credential")
	}

	result, err := r.fetcher.Fetch(ctx, country, needs)
	if err != nil {
		reason := classifyFailure(err)
		r.logger.Warn("remote recommendation failed, using local catalog",
			zap.String("country", country),
			zap.String("reason", reason),
			zap.Error(err))
		return r.local(country, needs, reason)
	}

	if len(result.Services) == 0 {
		r.logger.Warn("remote recommendation returned no services, using local catalog",
			zap.String("country", country))
		return r.local(country, needs, "empty")
	}

	remoteTotal.Inc()
	return result
}

func (r *Recommender) local(country string, needs []string, reason string) Result {
	fallbackTotal.WithLabelValues(reason).Inc()
	return Result{
		Services: r.catalog.Match(country, needs),
		Source:   SourceLocal,
	}
}

func classifyFailure(err error) string {
	switch {
	case errors.Is(err, ErrNoCredential):
		return "no_credential"
	case errors.Is(err, ErrSchema):
		return "schema"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	default:
		return "unknown"
	}
}
