package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/parcc/cc"
	"github.com/katalvlaran/parcc/cscmat"
)

// Sentinel errors for the runner.
var (
	// ErrNoTrials is returned when Trials < 1.
	ErrNoTrials = errors.New("bench: trials must be ≥ 1")

	// ErrUnstableCount is returned when trials disagree on the component
	// count. The engine guarantees a deterministic count, so disagreement
	// means the input was mutated between trials.
	ErrUnstableCount = errors.New("bench: component count varied across trials")
)

// Runner configures a measurement run. The zero value runs one sequential
// union-find trial.
type Runner struct {
	// Trials is the number of repetitions; 0 is treated as 1.
	Trials int

	// Workers is passed through to cc.WithWorkers; 0 is treated as 1.
	Workers int

	// Algorithm selects the counting family.
	Algorithm cc.Algorithm

	// ChunkSize overrides cc.DefaultChunkSize when positive.
	ChunkSize int
}

// Run measures r.Trials invocations of the engine over m.
func (r Runner) Run(m *cscmat.CSCBinaryMatrix) (*Report, error) {
	trials := r.Trials
	if trials == 0 {
		trials = 1
	}
	if trials < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoTrials, r.Trials)
	}
	workers := r.Workers
	if workers == 0 {
		workers = 1
	}

	opts := []cc.Option{
		cc.WithAlgorithm(r.Algorithm),
		cc.WithWorkers(workers),
	}
	if r.ChunkSize > 0 {
		opts = append(opts, cc.WithChunkSize(r.ChunkSize))
	}

	rep := &Report{
		Matrix: MatrixInfo{Rows: m.NRows, Cols: m.NCols, Nonzeros: m.NNZ},
		Params: Params{Algorithm: r.Algorithm.String(), Workers: workers, Trials: trials},
	}

	var ms runtime.MemStats
	times := make([]float64, 0, trials)
	for trial := 0; trial < trials; trial++ {
		runtime.ReadMemStats(&ms)
		before := ms.TotalAlloc

		start := time.Now()
		count, err := cc.Count(m, opts...)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}

		runtime.ReadMemStats(&ms)
		if alloc := ms.TotalAlloc - before; alloc > rep.Result.AllocBytes {
			rep.Result.AllocBytes = alloc
		}

		times = append(times, elapsed.Seconds())
		if trial == 0 {
			rep.Result.Components = count
		} else if count != rep.Result.Components {
			return nil, fmt.Errorf("%w: trial %d got %d, want %d",
				ErrUnstableCount, trial, count, rep.Result.Components)
		}
	}

	rep.Result.TrialSeconds = times
	rep.Result.Stats.MeanSeconds = stat.Mean(times, nil)
	if len(times) > 1 {
		rep.Result.Stats.StdDevSeconds = stat.StdDev(times, nil)
	}
	return rep, nil
}
