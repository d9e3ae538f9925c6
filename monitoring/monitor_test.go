package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
	"github.com/sarchlab/fuelsim/sim/timing"
	"github.com/sarchlab/fuelsim/vessel"
)

type switchModule struct {
	on bool
}

func (m *switchModule) Name() string      { return "Switch" }
func (m *switchModule) Part() host.PartID { return "Tank" }
func (m *switchModule) Start()            {}
func (m *switchModule) Tick() bool        { return false }

func (m *switchModule) Toggle() error {
	m.on = !m.on
	return nil
}

var _ = Describe("Monitor", func() {
	var (
		engine *timing.SerialEngine
		warp   *timing.Warp
		v      *vessel.Vessel
		module *switchModule
		m      *Monitor
		server *httptest.Server
	)

	get := func(path string) *http.Response {
		rsp, err := http.Get(server.URL + path)
		Expect(err).NotTo(HaveOccurred())

		return rsp
	}

	BeforeEach(func() {
		lib := resource.NewLibrary()
		fuel := lib.MustDefine("LiquidFuel", 0.005, resource.FlowStackPriority)

		engine = timing.NewSerialEngine()
		warp = timing.NewWarp(1)
		v = vessel.MakeBuilder().
			WithEngine(engine).
			WithWarp(warp).
			WithLibrary(lib).
			Build("Vessel")
		v.MustAddPart("Tank", 0).AddPool(fuel.ID, 5, 10)

		module = &switchModule{}
		v.AddModule(module)

		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterVessel(v)
		m.RegisterWarp(warp)

		server = httptest.NewServer(m.Router())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should report the current time", func() {
		rsp := get("/api/now")
		defer rsp.Body.Close()

		var body map[string]float64
		Expect(json.NewDecoder(rsp.Body).Decode(&body)).To(Succeed())
		Expect(body["now"]).To(Equal(0.0))
	})

	It("should list parts", func() {
		rsp := get("/api/parts")
		defer rsp.Body.Close()

		var parts []vessel.PartSnapshot
		Expect(json.NewDecoder(rsp.Body).Decode(&parts)).To(Succeed())
		Expect(parts).To(HaveLen(1))
		Expect(parts[0].Module).To(Equal("Switch"))
		Expect(parts[0].Pools[0].Resource).To(Equal("LiquidFuel"))
		Expect(parts[0].Pools[0].Amount).To(Equal(5.0))
	})

	It("should describe a part", func() {
		rsp := get("/api/part/Tank")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should answer 404 for unknown parts", func() {
		rsp := get("/api/part/Nope")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("should toggle modules", func() {
		rsp := get("/api/toggle/Switch")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
		Expect(module.on).To(BeTrue())
	})

	It("should refuse to toggle unknown modules", func() {
		rsp := get("/api/toggle/Nope")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should change the warp", func() {
		rsp := get("/api/warp/4")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
		Expect(warp.Factor()).To(Equal(4.0))
		Expect(v.TickDuration()).To(BeNumerically("~", 0.08, 1e-12))
	})

	It("should reject invalid warp factors", func() {
		for _, f := range []string{"0", "-2", "abc", "NaN"} {
			rsp := get("/api/warp/" + f)
			rsp.Body.Close()

			Expect(rsp.StatusCode).To(Equal(http.StatusBadRequest))
		}

		Expect(warp.Factor()).To(Equal(1.0))
	})

	It("should pause and continue the engine", func() {
		rsp := get("/api/pause")
		rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))

		rsp = get("/api/continue")
		rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("Flight", 10)
		bar.SetFinished(2.5)

		rsp := get("/api/progress")
		defer rsp.Body.Close()

		var bars []map[string]any
		Expect(json.NewDecoder(rsp.Body).Decode(&bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0]["name"]).To(Equal("Flight"))
		Expect(bars[0]["finished"]).To(Equal(2.5))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(BeEmpty())
	})

	It("should report process resources", func() {
		rsp := get("/api/resource")
		defer rsp.Body.Close()

		var body resourceRsp
		Expect(json.NewDecoder(rsp.Body).Decode(&body)).To(Succeed())
		Expect(body.MemorySize).To(BeNumerically(">", 0))
	})

	It("should serve the page", func() {
		rsp := get("/")
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should follow the vessel with a progress bar", func() {
		bar := m.CreateProgressBar("Flight", 0)
		v.AcceptHook(NewProgressHook(bar))

		v.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(bar.Total).To(Equal(10.0))
		Expect(bar.Fraction()).To(BeNumerically("~", 1, 1e-9))
	})
})
