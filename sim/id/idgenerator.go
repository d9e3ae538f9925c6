// Package id generates identifiers for simulation objects.
package id

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

var (
	defaultGenerator     IDGenerator = &sequentialIDGenerator{}
	defaultGeneratorLock sync.Mutex
	defaultGeneratorUsed atomic.Bool
)

// NewIDGenerator returns a generator that emits "1", "2", ... so that repeated
// runs of the same simulation produce identical IDs.
func NewIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewParallelIDGenerator returns a generator that is safe to share between
// independent simulations. The IDs are not deterministic.
func NewParallelIDGenerator() IDGenerator {
	return parallelIDGenerator{}
}

// UseParallelIDGenerator switches the package-level generator to xid-based IDs.
// It must be called before the first call to Generate.
func UseParallelIDGenerator() {
	defaultGeneratorLock.Lock()
	defer defaultGeneratorLock.Unlock()

	if defaultGeneratorUsed.Load() {
		panic("cannot change id generator type after using it")
	}

	defaultGenerator = parallelIDGenerator{}
}

// Generate returns an ID from the package-level generator.
func Generate() string {
	defaultGeneratorUsed.Store(true)

	defaultGeneratorLock.Lock()
	g := defaultGenerator
	defaultGeneratorLock.Unlock()

	return g.Generate()
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type parallelIDGenerator struct {
}

func (g parallelIDGenerator) Generate() string {
	return xid.New().String()
}
