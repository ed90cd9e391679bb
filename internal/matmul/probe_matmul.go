package matmul

import (
	"sync"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/kernel"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/network"
	"github.com/luxfi/meshsim/internal/probe"
	"github.com/luxfi/meshsim/internal/processor"
	"github.com/luxfi/meshsim/internal/semiring"
	"github.com/luxfi/meshsim/internal/tile"
)

// ProbeMatMul is ParallelMult/ParallelSquare's instrumented twin: each
// worker runs against a Prober instead of a bare Core, and the driver
// exposes the harvested virtual-time statistics of the most recent run.
type ProbeMatMul[E any] struct {
	r, c  int
	fam   semiring.Family[E]
	kern  kernel.Kernel[E]
	model core.CostModel
	log   log.Logger

	mu   sync.Mutex
	last *processor.ProbeProcessor[*matrix.Matrix[E], cellResult[E]]
}

// NewProbe is ProbeMatMul's constructor, identical validation to New.
func NewProbe[E any](r, c int, fam semiring.Family[E], kern kernel.Kernel[E], model core.CostModel, logger log.Logger) (*ProbeMatMul[E], error) {
	if r < 1 || c < 1 {
		return nil, ErrEmptyGrid
	}
	if kern.RequiresSquareGrid() && r != c {
		return nil, ErrNonSquareGrid
	}
	return &ProbeMatMul[E]{r: r, c: c, fam: fam, kern: kern, model: model, log: logger}, nil
}

func (m *ProbeMatMul[E]) ParallelMult(a, b *matrix.Matrix[E]) (*matrix.Matrix[E], error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	aTiles := m.kern.OuterSetupA(m.r, m.c, a)
	bTiles := m.kern.OuterSetupB(m.r, m.c, b)
	cFull := seedC(m.fam, a, b)
	cTiles := m.kern.OuterSetupC(m.r, m.c, cFull)
	dims := tile.BuildTiles(a.Rows(), b.Cols(), m.r, m.c)

	timed := network.BuildTimed[*matrix.Matrix[E]](m.r, m.c, m.model, cloneMatrix[E])
	proc := processor.NewProbe[*matrix.Matrix[E], cellResult[E]](timed, m.log)

	for idx := range timed {
		idx := idx
		aTile, bTile := aTiles[idx], bTiles[idx]
		cTile := cTiles[idx]
		kern := m.kern
		fam := m.fam
		rounds := m.r
		proc.RunCore(func(wk core.Core[*matrix.Matrix[E]]) cellResult[E] {
			res := kern.MatrixMult(fam, aTile, bTile, cTile, rounds, wk)
			return cellResult[E]{idx: idx, c: res}
		})
	}

	out := matrix.New[E](a.Rows(), b.Cols())
	for _, r := range proc.CollectResults() {
		tile.Place(out, dims[r.idx], r.c)
	}

	m.mu.Lock()
	m.last = proc
	m.mu.Unlock()
	return out, nil
}

func (m *ProbeMatMul[E]) ParallelSquare(a *matrix.Matrix[E], outerIters int) (*matrix.Matrix[E], error) {
	if a.Rows() != a.Cols() {
		return nil, ErrNotSquareMatrix
	}

	aTiles := m.kern.OuterSetupA(m.r, m.c, a)
	bTiles := m.kern.OuterSetupB(m.r, m.c, a)
	cFull := seedC(m.fam, a, a)
	cTiles := m.kern.OuterSetupC(m.r, m.c, cFull)
	dims := tile.BuildTiles(a.Rows(), a.Cols(), m.r, m.c)

	timed := network.BuildTimed[*matrix.Matrix[E]](m.r, m.c, m.model, cloneMatrix[E])
	proc := processor.NewProbe[*matrix.Matrix[E], cellResult[E]](timed, m.log)

	for idx := range timed {
		idx := idx
		aTile, bTile := aTiles[idx], bTiles[idx]
		cTile := cTiles[idx]
		kern := m.kern
		fam := m.fam
		rounds := m.r
		proc.RunCore(func(wk core.Core[*matrix.Matrix[E]]) cellResult[E] {
			localA, localB := aTile, bTile
			c := cTile
			for iter := 0; iter < outerIters; iter++ {
				c = kern.MatrixMult(fam, localA, localB, c, rounds, wk)
				localA = kern.InnerSetupA(c, wk)
				localB = kern.InnerSetupB(c, wk)
			}
			return cellResult[E]{idx: idx, c: c}
		})
	}

	out := matrix.New[E](a.Rows(), a.Cols())
	for _, r := range proc.CollectResults() {
		tile.Place(out, dims[r.idx], r.c)
	}

	m.mu.Lock()
	m.last = proc
	m.mu.Unlock()
	return out, nil
}

// DebugStats returns every worker's harvested CoreDebug record from the
// most recent ParallelMult/ParallelSquare call.
func (m *ProbeMatMul[E]) DebugStats() []probe.CoreDebug {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	return m.last.DebugStats()
}

// MaxDebugTime is the slowest worker's virtual clock from the most recent
// run: the processor-wide elapsed time under a synchronous interpretation.
func (m *ProbeMatMul[E]) MaxDebugTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return 0
	}
	return m.last.MaxDebugTime()
}
