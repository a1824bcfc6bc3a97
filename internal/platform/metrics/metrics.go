// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes OpenTelemetry instruments through a Prometheus scrape endpoint.

Usage:

	m, handler, err := metrics.Setup(constants.AppName)
	router.Handle("/metrics", handler)

Each Setup call owns a private Prometheus registry, so tests can build as many
instances as they like. [Noop] returns instruments that discard everything.
*/
package metrics

import (
	"context"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics groups every instrument the API records.
type Metrics struct {
	HTTPRequests     metric.Int64Counter
	HTTPDuration     metric.Float64Histogram
	PostMutations    metric.Int64Counter
	VersionConflicts metric.Int64Counter
	CacheHits        metric.Int64Counter
	CacheMisses      metric.Int64Counter
}

// Setup builds a meter provider backed by a Prometheus exporter and returns
// the instruments together with the scrape handler.
func Setup(serviceName string) (*Metrics, http.Handler, error) {
	registry := prom.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	m, err := newMetrics(provider.Meter(serviceName))
	if err != nil {
		return nil, nil, err
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m, handler, nil
}

// Noop returns instruments that record nothing.
func Noop() *Metrics {
	m, _ := newMetrics(noop.NewMeterProvider().Meter("noop"))
	return m
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	var err error
	m := &Metrics{}

	m.HTTPRequests, err = meter.Int64Counter(
		"lp_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	m.HTTPDuration, err = meter.Float64Histogram(
		"lp_http_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.PostMutations, err = meter.Int64Counter(
		"lp_post_mutations_total",
		metric.WithDescription("Post lifecycle operations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	m.VersionConflicts, err = meter.Int64Counter(
		"lp_post_version_conflicts_total",
		metric.WithDescription("Optimistic write conflicts on post aggregates"),
	)
	if err != nil {
		return nil, err
	}

	m.CacheHits, err = meter.Int64Counter(
		"lp_cache_hits_total",
		metric.WithDescription("Total number of public cache hits"),
	)
	if err != nil {
		return nil, err
	}

	m.CacheMisses, err = meter.Int64Counter(
		"lp_cache_misses_total",
		metric.WithDescription("Total number of public cache misses"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// # Recorders

func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	labels := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)

	m.HTTPRequests.Add(ctx, 1, labels)
	m.HTTPDuration.Record(ctx, duration.Seconds(), labels)
}

// RecordMutation counts one lifecycle operation. outcome is "ok" or an error code.
func (m *Metrics) RecordMutation(ctx context.Context, operation, outcome string) {
	m.PostMutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) RecordVersionConflict(ctx context.Context, operation string) {
	m.VersionConflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *Metrics) RecordCacheHit(ctx context.Context, bucket string) {
	m.CacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("bucket", bucket)))
}

func (m *Metrics) RecordCacheMiss(ctx context.Context, bucket string) {
	m.CacheMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("bucket", bucket)))
}
