// Package metrics collects per-operation statistics about the GraphQL
// queries sent to the backend.
//
// Events flow through a buffered channel into a collector goroutine, so the
// query path never blocks on bookkeeping:
//   - queries sent per operation
//   - response times with percentiles (P50, P95, P99)
//   - HTTP status code distribution
//   - failures and the last failure message
//   - backend health as reported by the health checker
//
// Collector implements graphql.Observer and can be passed straight to the
// client:
//
//	collector := metrics.NewCollector(1000, logger)
//	collector.Start(ctx)
//
//	client := graphql.NewClient(endpoint, graphql.WithObserver(collector))
//
//	snapshot := collector.Snapshot(endpoint.BackendURL())
//
// The collector drains buffered events when its context is cancelled.
package metrics
