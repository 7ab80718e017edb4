// Package backend tracks the commerce backend the GraphQL client talks to:
// its base URL, whether the last probe succeeded, and a moving average of
// probe response times.
package backend
