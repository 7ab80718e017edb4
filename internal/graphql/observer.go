package graphql

import "time"

// Observer is told about every query the client sends.
type Observer interface {
	QuerySent(operation string)
	QueryCompleted(operation string, duration time.Duration, statusCode int)
	QueryFailed(operation string, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) QuerySent(string) {}

func (nopObserver) QueryCompleted(string, time.Duration, int) {}

func (nopObserver) QueryFailed(string, time.Duration, error) {}
