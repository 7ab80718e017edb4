package backend

import (
	"net/url"
	"sync"
	"time"
)

// Endpoint is a fixed backend base URL with health and response time
// tracking. It satisfies graphql.EndpointSource.
type Endpoint struct {
	url              *url.URL
	mutex            sync.Mutex
	isHealthy        bool
	lastError        string
	lastChecked      time.Time
	ewmaResponseTime time.Duration
	hasEWMA          bool
}

const ewmaAlpha = 0.2

// Status is a point-in-time copy of an Endpoint's state.
type Status struct {
	URL          string        `json:"url"`
	Healthy      bool          `json:"healthy"`
	LastError    string        `json:"last_error,omitempty"`
	LastChecked  time.Time     `json:"last_checked"`
	ResponseTime time.Duration `json:"response_time"`
}

// URL returns the backend base URL.
func (e *Endpoint) URL() *url.URL {
	return e.url
}

// BackendURL returns the base URL as a string.
func (e *Endpoint) BackendURL() string {
	return e.url.String()
}

// IsHealthy returns true if the last probe succeeded.
func (e *Endpoint) IsHealthy() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.isHealthy
}

// SetHealthy records a probe outcome. A nil err means healthy.
// Returns true if the health status changed. The first outcome recorded
// always counts as a change.
func (e *Endpoint) SetHealthy(err error) (changed bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	healthy := err == nil
	firstCheck := e.lastChecked.IsZero()
	e.lastChecked = time.Now()
	e.lastError = ""
	if err != nil {
		e.lastError = err.Error()
	}

	if e.isHealthy == healthy && !firstCheck {
		return false
	}

	e.isHealthy = healthy
	return true
}

// RecordResponse updates the exponentially weighted moving average (EWMA)
// response time using the latest probe duration.
func (e *Endpoint) RecordResponse(duration time.Duration) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.hasEWMA {
		e.ewmaResponseTime = duration
		e.hasEWMA = true
		return
	}
	//ewma = (1 - α) * ewma + α * latest
	e.ewmaResponseTime = time.Duration((1-ewmaAlpha)*float64(e.ewmaResponseTime) + ewmaAlpha*float64(duration))
}

// EWMATime returns the exponentially weighted moving average response time.
// Returns 0 if no responses have been recorded yet.
func (e *Endpoint) EWMATime() time.Duration {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.hasEWMA {
		return 0
	}

	return e.ewmaResponseTime
}

func (e *Endpoint) Status() Status {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return Status{
		URL:          e.url.String(),
		Healthy:      e.isHealthy,
		LastError:    e.lastError,
		LastChecked:  e.lastChecked,
		ResponseTime: e.ewmaResponseTime,
	}
}

// New creates an Endpoint for rawURL. The endpoint starts unhealthy until
// the first probe succeeds.
func New(rawURL string) (*Endpoint, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	return &Endpoint{url: u}, nil
}
