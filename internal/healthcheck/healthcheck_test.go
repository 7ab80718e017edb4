package healthcheck_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/storeconfig/internal/backend"
	"github.com/angeloszaimis/storeconfig/internal/graphql"
	"github.com/angeloszaimis/storeconfig/internal/healthcheck"
)

type recordingNotifier struct {
	mutex   sync.Mutex
	changes []bool
}

func (n *recordingNotifier) HealthChanged(healthy bool) {
	n.mutex.Lock()
	n.changes = append(n.changes, healthy)
	n.mutex.Unlock()
}

func (n *recordingNotifier) seen() []bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return append([]bool(nil), n.changes...)
}

type syncBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.String()
}

var _ = Describe("Healthcheck", func() {
	var (
		log      *slog.Logger
		notifier *recordingNotifier
		ctx      context.Context
		cancel   context.CancelFunc
	)

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
		notifier = &recordingNotifier{}
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	Context("against a GraphQL backend", func() {
		var server *httptest.Server

		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/graphql" {
					w.Header().Set("Content-Type", "application/json")
					w.Write([]byte(`{"data":{"storeConfig":{"code":"default"}}}`))
					return
				}
				http.NotFound(w, r)
			}))
		})

		AfterEach(func() {
			server.Close()
		})

		It("should mark a healthy backend as healthy", func() {
			endpoint, err := backend.New(server.URL + "/")
			Expect(err).NotTo(HaveOccurred())

			client := graphql.NewClient(endpoint)
			probe := healthcheck.ProbeFunc(func(ctx context.Context) error {
				_, err := client.StoreConfig(ctx)
				return err
			})

			go healthcheck.HealthCheck(ctx, endpoint, probe, 50*time.Millisecond, notifier, log)

			Eventually(endpoint.IsHealthy).Should(BeTrue())
			Eventually(notifier.seen).Should(Equal([]bool{true}))
			Expect(endpoint.EWMATime()).To(BeNumerically(">", 0))
		})
	})

	It("should mark a failing backend as unhealthy and report recovery", func() {
		endpoint, err := backend.New("http://magento.test/")
		Expect(err).NotTo(HaveOccurred())
		endpoint.SetHealthy(nil)

		var failing atomic.Bool
		failing.Store(true)
		probe := healthcheck.ProbeFunc(func(context.Context) error {
			if failing.Load() {
				return errors.New("connection refused")
			}
			return nil
		})

		go healthcheck.HealthCheck(ctx, endpoint, probe, 20*time.Millisecond, notifier, log)

		Eventually(endpoint.IsHealthy).Should(BeFalse())
		Expect(endpoint.Status().LastError).To(Equal("connection refused"))

		failing.Store(false)
		Eventually(endpoint.IsHealthy).Should(BeTrue())
		Eventually(notifier.seen).Should(Equal([]bool{false, true}))
	})

	It("should report a backend that is down from the start", func() {
		var buf syncBuffer
		log = slog.New(slog.NewTextHandler(&buf, nil))

		endpoint, err := backend.New("http://magento.test/")
		Expect(err).NotTo(HaveOccurred())

		probe := healthcheck.ProbeFunc(func(context.Context) error {
			return errors.New("connection refused")
		})

		go healthcheck.HealthCheck(ctx, endpoint, probe, 20*time.Millisecond, notifier, log)

		Eventually(notifier.seen).Should(Equal([]bool{false}))
		Consistently(notifier.seen, 100*time.Millisecond).Should(Equal([]bool{false}))
		Expect(endpoint.IsHealthy()).To(BeFalse())
		Eventually(buf.String).Should(ContainSubstring("Backend is unreachable"))
	})

	It("should give each probe a deadline", func() {
		endpoint, err := backend.New("http://magento.test/")
		Expect(err).NotTo(HaveOccurred())

		deadlines := make(chan bool, 10)
		probe := healthcheck.ProbeFunc(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			select {
			case deadlines <- ok:
			default:
			}
			return nil
		})

		go healthcheck.HealthCheck(ctx, endpoint, probe, time.Hour, nil, log)

		Eventually(deadlines).Should(Receive(BeTrue()))
	})

	It("should stop when context is cancelled", func() {
		endpoint, err := backend.New("http://magento.test/")
		Expect(err).NotTo(HaveOccurred())

		done := make(chan struct{})
		go func() {
			defer close(done)
			healthcheck.HealthCheck(ctx, endpoint, healthcheck.ProbeFunc(func(context.Context) error { return nil }),
				20*time.Millisecond, notifier, log)
		}()

		cancel()
		Eventually(done).Should(BeClosed())
	})
})
