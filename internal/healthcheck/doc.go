// Package healthcheck periodically probes the commerce backend with a cheap
// GraphQL query and records whether it answered. The probe is the only place
// a deadline is applied to a backend call; regular fetches carry whatever
// context the caller gives them.
package healthcheck
