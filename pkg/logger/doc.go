// Package logger builds the application's slog logger: text output while
// developing, JSON in production, tagged with the environment name.
package logger
