// Package monitoring serves a running simulation over HTTP, so that it can be
// watched and steered from a browser.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/go-logr/logr"
	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/monitoring/web"
	"github.com/sarchlab/fuelsim/sim/id"
	"github.com/sarchlab/fuelsim/sim/timing"
	"github.com/sarchlab/fuelsim/vessel"
)

// Monitor can turn a simulation into a server and allows external monitoring
// controlling of the simulation.
type Monitor struct {
	engine     timing.Engine
	vessel     *vessel.Vessel
	warp       *timing.Warp
	portNumber int
	logger     logr.Logger

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{logger: logr.Discard()}
}

// WithPortNumber sets the port number of the monitor. Ports below 1000 are
// replaced by a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithLogger sets the logger.
func (m *Monitor) WithLogger(logger logr.Logger) *Monitor {
	m.logger = logger
	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e timing.Engine) {
	m.engine = e
}

// RegisterVessel registers the vessel being simulated.
func (m *Monitor) RegisterVessel(v *vessel.Vessel) {
	m.vessel = v
}

// RegisterWarp registers the time warp that /api/warp changes.
func (m *Monitor) RegisterWarp(w *timing.Warp) {
	m.warp = w
}

// CreateProgressBar creates a new progress bar over total simulated seconds.
func (m *Monitor) CreateProgressBar(name string, total float64) *ProgressBar {
	bar := &ProgressBar{
		ID:        id.Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Router returns the handler of every monitor route.
func (m *Monitor) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/parts", m.listParts)
	r.HandleFunc("/api/part/{name}", m.partDetails)
	r.HandleFunc("/api/toggle/{name}", m.toggle)
	r.HandleFunc("/api/warp/{factor}", m.setWarp)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() (string, error) {
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(m.portNumber))
	if err != nil {
		return "", fmt.Errorf("starting monitor: %w", err)
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	go func() {
		err := http.Serve(listener, m.Router())
		m.logger.Error(err, "monitor stopped")
	}()

	return url, nil
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", m.engine.Now())
}

func (m *Monitor) listParts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.vessel.Snapshot())
}

func (m *Monitor) partDetails(w http.ResponseWriter, r *http.Request) {
	name := host.PartID(mux.Vars(r)["name"])

	for _, p := range m.vessel.Snapshot() {
		if p.ID != name {
			continue
		}

		serializer := goseth.NewSerializer()
		serializer.SetRoot(&p)
		serializer.SetMaxDepth(2)

		dieOnErr(serializer.Serialize(w))

		return
	}

	http.Error(w, "Part not found", http.StatusNotFound)
}

func (m *Monitor) toggle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := m.vessel.Toggle(name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.logger.Info("module toggled", "module", name)
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) setWarp(w http.ResponseWriter, r *http.Request) {
	factor, err := strconv.ParseFloat(mux.Vars(r)["factor"], 64)
	if err != nil || !(factor > 0) || math.IsInf(factor, 0) {
		http.Error(w, "Warp factor must be a positive number",
			http.StatusBadRequest)

		return
	}

	if m.warp == nil {
		http.Error(w, "Warp is not controllable", http.StatusNotImplemented)
		return
	}

	m.warp.Set(factor)
	m.logger.Info("warp changed", "factor", factor)

	fmt.Fprintf(w, "{\"warp\":%g}", factor)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	writeJSON(w, m.progressBars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	p, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := p.CPUPercent()
	dieOnErr(err)

	memory, err := p.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memory.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
