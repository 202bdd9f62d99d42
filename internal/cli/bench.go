package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kiss3d"
	"kiss3d/m"
)

type BenchOptions struct {
	*GlobalOptions

	Samples    int
	Workers    int
	Seed       uint32
	CPUProfile string
}

// BenchReport summarizes a bench run. MaxDiff is the largest distance seen
// between the sandwich and Rodrigues results for the same input.
type BenchReport struct {
	Samples int          `json:"samples"`
	Workers int          `json:"workers"`
	MaxDiff kiss3d.Float `json:"maxDiff"`
	Seconds float64      `json:"seconds"`
}

func (r BenchReport) String() string {
	return fmt.Sprintf("%d rotations on %d workers, max disagreement %g, %.3f seconds",
		r.Samples, r.Workers, r.MaxDiff, r.Seconds)
}

func NewCmdBench(g *GlobalOptions) *cobra.Command {
	o := &BenchOptions{
		GlobalOptions: g,
		Samples:       100000,
		Workers:       runtime.GOMAXPROCS(0),
		Seed:          123456789,
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Rotate random vectors with both algorithms and compare them",
		Long: `Rotate random vectors by random unit quaternions with the sandwich product
and the Rodrigues form, report the largest disagreement and the time taken.
Fails when the disagreement exceeds --tol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&o.Samples, "samples", "n", o.Samples, "Number of random rotations")
	cmd.Flags().IntVar(&o.Workers, "workers", o.Workers, "Number of goroutines")
	cmd.Flags().Uint32Var(&o.Seed, "seed", o.Seed, "Random seed; worker w uses seed+w")
	cmd.Flags().StringVar(&o.CPUProfile, "cpuprof", "", "File to dump cpu profile")
	return cmd
}

func (o *BenchOptions) Validate() error {
	if o.Samples <= 0 {
		return errors.New("number of samples has to be positive")
	}
	if o.Workers <= 0 {
		return errors.New("number of workers has to be positive")
	}
	return nil
}

func (o *BenchOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.CPUProfile != "" {
		f, err := os.Create(o.CPUProfile)
		if err != nil {
			return errors.Wrapf(err, "could not open cpuprof file %q", o.CPUProfile)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "starting cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	workers := o.Workers
	if workers > o.Samples {
		workers = o.Samples
	}
	maxDiffs := make([]kiss3d.Float, workers)

	t0 := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	chunk := (o.Samples + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go1.22 loopvar semantics on go1.21)
		lo := w * chunk
		hi := lo + chunk
		if hi > o.Samples {
			hi = o.Samples
		}
		// Go does not support thread locals so instead we use a separate
		// state per goroutine.
		rnd := m.NewRand(o.Seed + uint32(w))
		g.Go(func() error {
			d, err := benchChunk(ctx, rnd, hi-lo, o.Tol)
			maxDiffs[w] = d
			return err
		})
	}
	err := g.Wait()
	t1 := time.Since(t0)
	if err != nil {
		return err
	}

	report := BenchReport{Samples: o.Samples, Workers: workers, Seconds: t1.Seconds()}
	for _, d := range maxDiffs {
		if d > report.MaxDiff {
			report.MaxDiff = d
		}
	}
	o.Log.WithFields(logrus.Fields{
		"samples": o.Samples,
		"workers": workers,
	}).Infof("rotating took %.3f seconds", report.Seconds)

	if err := o.Print(report); err != nil {
		return err
	}
	if report.MaxDiff > o.Tol {
		return errors.Errorf("methods disagree by %g, above tolerance %g", report.MaxDiff, o.Tol)
	}
	return nil
}

func benchChunk(ctx context.Context, rnd *m.RandState, n int, tol kiss3d.Float) (kiss3d.Float, error) {
	var maxDiff kiss3d.Float
	for i := 0; i < n; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return maxDiff, err
			}
		}
		q := kiss3d.RandomUnitQuat(rnd)
		v := kiss3d.RandomInUnitBall(rnd)
		direct, ok := kiss3d.RotateByQuat(v, q, tol)
		if !ok {
			return maxDiff, errors.Wrapf(ErrNotUnit, "random draw %v", q)
		}
		fast := kiss3d.RotateByQuatRodrigues(v, q)
		if d := direct.Sub(fast).Norm(); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
