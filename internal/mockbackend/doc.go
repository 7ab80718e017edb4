// Package mockbackend is a stand-in for a commerce backend's GraphQL
// endpoint. It answers the store config, available stores and schema
// introspection queries with canned data so the CLI can be run and tested
// without a real backend.
package mockbackend
