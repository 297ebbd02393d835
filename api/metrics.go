package api

import (
	"regexp"
	"strings"
	"sync"
	"time"
)

// RequestTrace tracks timing for a single request
type RequestTrace struct {
	RequestID     string        `json:"requestId"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	Status        int           `json:"status"`
	StartTime     time.Time     `json:"startTime"`
	TotalDuration time.Duration `json:"totalDuration"`
}

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics.
// Collection never blocks request handling: traces are queued on a
// buffered channel and dropped if the channel is full.
type MetricsCollector struct {
	mu             sync.RWMutex
	routeMetrics   map[string]*RouteMetrics
	windowStart    time.Time
	windowDuration time.Duration
	totalRequests  int64
	totalErrors    int64
	traceChan      chan RequestTrace
	stopChan       chan struct{}
}

var globalMetrics *MetricsCollector

// InitMetrics initializes the global metrics collector
func InitMetrics(windowDuration time.Duration) {
	globalMetrics = &MetricsCollector{
		routeMetrics:   make(map[string]*RouteMetrics),
		windowStart:    time.Now(),
		windowDuration: windowDuration,
		traceChan:      make(chan RequestTrace, 1000),
		stopChan:       make(chan struct{}),
	}

	go globalMetrics.processTraces()
}

// GetMetrics returns the global metrics collector
func GetMetrics() *MetricsCollector {
	if globalMetrics == nil {
		InitMetrics(1 * time.Hour)
	}
	return globalMetrics
}

// RecordTrace records a request trace asynchronously. If the channel is
// full the trace is dropped; metrics are best-effort.
func (mc *MetricsCollector) RecordTrace(trace RequestTrace) {
	select {
	case mc.traceChan <- trace:
	default:
	}
}

func (mc *MetricsCollector) processTraces() {
	for {
		select {
		case trace := <-mc.traceChan:
			mc.processTrace(trace)
		case <-mc.stopChan:
			return
		}
	}
}

func (mc *MetricsCollector) processTrace(trace RequestTrace) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	routeKey := trace.Method + " " + normalizeRoutePath(trace.Path)

	metrics, exists := mc.routeMetrics[routeKey]
	if !exists {
		metrics = &RouteMetrics{
			Method:  trace.Method,
			Path:    normalizeRoutePath(trace.Path),
			MinTime: trace.TotalDuration,
		}
		mc.routeMetrics[routeKey] = metrics
	}

	metrics.Count++
	metrics.TotalTime += trace.TotalDuration
	metrics.AvgTime = metrics.TotalTime / time.Duration(metrics.Count)
	metrics.LastRequest = trace.StartTime

	if trace.TotalDuration < metrics.MinTime {
		metrics.MinTime = trace.TotalDuration
	}
	if trace.TotalDuration > metrics.MaxTime {
		metrics.MaxTime = trace.TotalDuration
	}

	if trace.Status >= 400 {
		metrics.ErrorCount++
		mc.totalErrors++
	}

	mc.totalRequests++
}

// GetRouteMetrics returns aggregated metrics for all routes
func (mc *MetricsCollector) GetRouteMetrics() map[string]*RouteMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make(map[string]*RouteMetrics)
	for k, v := range mc.routeMetrics {
		metrics := *v
		result[k] = &metrics
	}
	return result
}

// GetSummary returns overall summary metrics
func (mc *MetricsCollector) GetSummary() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	elapsed := time.Since(mc.windowStart)
	if elapsed > mc.windowDuration {
		elapsed = mc.windowDuration
	}

	var tps float64
	if elapsed.Seconds() > 0 {
		tps = float64(mc.totalRequests) / elapsed.Seconds()
	}

	var errorRate float64
	if mc.totalRequests > 0 {
		errorRate = float64(mc.totalErrors) / float64(mc.totalRequests)
	}

	return map[string]interface{}{
		"totalRequests": mc.totalRequests,
		"totalErrors":   mc.totalErrors,
		"errorRate":     errorRate,
		"tps":           tps,
		"windowStart":   mc.windowStart,
		"routeCount":    len(mc.routeMetrics),
	}
}

var (
	objectIDPattern = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	uuidPattern     = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
)

// normalizeRoutePath replaces dynamic ID segments with a placeholder so
// similar routes aggregate together
func normalizeRoutePath(path string) string {
	path = objectIDPattern.ReplaceAllString(path, "/{id}$1")
	path = uuidPattern.ReplaceAllString(path, "/{id}$1")

	path = strings.ReplaceAll(path, "//", "/")
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
