// Package config loads the backend endpoint, store view, server and logging
// settings from a YAML file and the environment, and validates them.
//
// The backend URL is also available live through LiveEndpoint, which reads
// MAGENTO_BACKEND_URL (or backend.url) on every call instead of once at
// startup.
package config
