package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TickScheduler", func() {
	var (
		mockCtrl  *gomock.Controller
		engine    *MockEngine
		handler   *MockHandler
		scheduler *TickScheduler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		handler = NewMockHandler(mockCtrl)
		scheduler = NewTickScheduler(handler, engine, 10*Hz)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule the next tick on the next cycle", func() {
		engine.EXPECT().Now().Return(VTimeInSec(1.0))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Time()).To(BeNumerically("~", 1.1, 1e-9))
				Expect(e.Handler()).To(BeIdenticalTo(handler))
			})

		scheduler.TickLater()
	})

	It("should not schedule twice for the same cycle", func() {
		engine.EXPECT().Now().Return(VTimeInSec(1.0)).Times(2)
		engine.EXPECT().Schedule(gomock.Any()).Times(1)

		scheduler.TickLater()
		scheduler.TickLater()
	})

	It("should stretch the tick under warp", func() {
		scheduler.Warp = NewWarp(5)

		engine.EXPECT().Now().Return(VTimeInSec(1.0))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Time()).To(BeNumerically("~", 1.5, 1e-9))
			})

		scheduler.TickLater()
		Expect(scheduler.TickDuration()).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("should tick now", func() {
		engine.EXPECT().Now().Return(VTimeInSec(0))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e Event) {
				Expect(e.Time()).To(BeNumerically("==", 0))
			})

		scheduler.TickNow()
	})
})
