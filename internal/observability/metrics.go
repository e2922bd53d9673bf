package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	apiRequestsTotal   *prometheus.CounterVec
	apiLatencySeconds  *prometheus.HistogramVec
	apiErrorsTotal     *prometheus.CounterVec
	pipelineResults    *prometheus.CounterVec
	pdfExtractionTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autota_api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "autota_api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autota_api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		pipelineResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autota_pipeline_results_total",
			Help: "Outcomes of the hint and error detection pipelines.",
		}, []string{"flow", "outcome"})

		pdfExtractionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autota_pdf_extractions_total",
			Help: "Outcomes of PDF text extraction requests.",
		}, []string{"outcome"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, pipelineResults, pdfExtractionTotal)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// PipelineResults exposes the counter of hint/detection pipeline outcomes.
func PipelineResults() *prometheus.CounterVec {
	RegisterMetrics()
	return pipelineResults
}

// PDFExtractions exposes the counter of PDF extraction outcomes.
func PDFExtractions() *prometheus.CounterVec {
	RegisterMetrics()
	return pdfExtractionTotal
}
