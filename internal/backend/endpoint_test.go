package backend_test

import (
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/storeconfig/internal/backend"
)

var _ = Describe("Endpoint", func() {
	var e *backend.Endpoint

	BeforeEach(func() {
		var err error
		e, err = backend.New("https://magento.test/")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("should keep the URL", func() {
			Expect(e.URL().Host).To(Equal("magento.test"))
			Expect(e.BackendURL()).To(Equal("https://magento.test/"))
		})

		It("should initialize as unhealthy", func() {
			Expect(e.IsHealthy()).To(BeFalse())
		})

		It("should reject an unparsable URL", func() {
			_, err := backend.New("http://magento.test/%zz")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetHealthy", func() {
		It("should mark healthy on success", func() {
			changed := e.SetHealthy(nil)
			Expect(changed).To(BeTrue())
			Expect(e.IsHealthy()).To(BeTrue())
		})

		It("should remember the last failure", func() {
			e.SetHealthy(nil)
			changed := e.SetHealthy(errors.New("connection refused"))
			Expect(changed).To(BeTrue())
			Expect(e.IsHealthy()).To(BeFalse())
			Expect(e.Status().LastError).To(Equal("connection refused"))
		})

		It("should report the first failure as a change", func() {
			changed := e.SetHealthy(errors.New("connection refused"))
			Expect(changed).To(BeTrue())
			Expect(e.IsHealthy()).To(BeFalse())
		})

		It("should return false when the status does not change", func() {
			e.SetHealthy(nil)
			Expect(e.SetHealthy(nil)).To(BeFalse())
		})

		It("should clear the error after recovery", func() {
			e.SetHealthy(errors.New("boom"))
			e.SetHealthy(nil)
			Expect(e.Status().LastError).To(BeEmpty())
			Expect(e.Status().LastChecked).NotTo(BeZero())
		})

		It("should be thread-safe", func() {
			var wg sync.WaitGroup
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func(fail bool) {
					defer wg.Done()
					if fail {
						e.SetHealthy(errors.New("down"))
					} else {
						e.SetHealthy(nil)
					}
					_ = e.IsHealthy()
				}(i%2 == 0)
			}
			wg.Wait()
		})
	})

	Describe("Response Time Tracking (EWMA)", func() {
		It("should be zero before any response", func() {
			Expect(e.EWMATime()).To(BeZero())
		})

		It("should take the first sample as is", func() {
			e.RecordResponse(100 * time.Millisecond)
			Expect(e.EWMATime()).To(Equal(100 * time.Millisecond))
		})

		It("should smooth later samples", func() {
			e.RecordResponse(100 * time.Millisecond)
			e.RecordResponse(200 * time.Millisecond)
			Expect(e.EWMATime()).To(Equal(120 * time.Millisecond))
			Expect(e.Status().ResponseTime).To(Equal(120 * time.Millisecond))
		})
	})
})
