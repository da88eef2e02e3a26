package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Standard attribute keys
const (
	// Network
	AttrNetworkNodes    = "network.nodes"
	AttrNetworkEdges    = "network.edges"
	AttrNetworkSourceID = "network.source_id"
	AttrNetworkSinkID   = "network.sink_id"

	// Matching
	AttrEmployees          = "matching.employees"
	AttrCustomers          = "matching.customers"
	AttrIterations         = "matching.iterations"
	AttrMatchedPairs       = "matching.matched_pairs"
	AttrUnmatchedCustomers = "matching.unmatched_customers"
	AttrCacheHit           = "matching.cache_hit"

	// Report
	AttrReportFormat = "report.format"
	AttrReportPath   = "report.path"
)

// NetworkAttributes returns attributes describing a flow network.
func NetworkAttributes(nodes, edges int, sourceID, sinkID int64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrNetworkNodes, nodes),
		attribute.Int(AttrNetworkEdges, edges),
		attribute.Int64(AttrNetworkSourceID, sourceID),
		attribute.Int64(AttrNetworkSinkID, sinkID),
	}
}

// MatchingAttributes returns attributes describing a matching run.
func MatchingAttributes(employees, customers, iterations, matched int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrEmployees, employees),
		attribute.Int(AttrCustomers, customers),
		attribute.Int(AttrIterations, iterations),
		attribute.Int(AttrMatchedPairs, matched),
	}
}

// ReportAttributes returns attributes describing a generated report.
func ReportAttributes(format, path string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrReportFormat, format),
		attribute.String(AttrReportPath, path),
	}
}
