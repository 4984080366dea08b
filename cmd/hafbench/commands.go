// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hafnian/hafnian"
	"github.com/katalvlaran/hafnian/internal/bench"
	"github.com/katalvlaran/hafnian/internal/results"
)

// errVerifyFailed is returned when at least one cross-check misses tolerance.
var errVerifyFailed = errors.New("verification failed")

// Size limits for run (2^n subsets per call) and verify ((2n-1)!! matchings).
const (
	maxRunN    = 24
	maxVerifyN = 7
)

func parseField(s string) (hafnian.Field, error) {
	switch s {
	case "real":
		return hafnian.FieldReal, nil
	case "complex":
		return hafnian.FieldComplex, nil
	default:
		return 0, fmt.Errorf("unknown field %q (want real|complex)", s)
	}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		sizes   []int
		field   string
		workers int
		seed    int64
		repeat  int
		dbPath  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time Hafnian on seeded random symmetric matrices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fld, err := parseField(field)
			if err != nil {
				return err
			}
			if workers < 0 {
				return fmt.Errorf("--workers must be >= 0, got %d", workers)
			}
			for _, n := range sizes {
				if n < 0 || n > maxRunN {
					return fmt.Errorf("--n %d outside [0, %d]", n, maxRunN)
				}
			}

			var store *results.Store
			if dbPath != "" {
				if store, err = results.Open(dbPath); err != nil {
					return err
				}
				defer store.Close()
			}

			ctx := cmd.Context()
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "n\tfield\tworkers\tper-call\tvalue")
			recs := make([]results.Record, 0, len(sizes))
			for _, n := range sizes {
				a.logger.Info("measuring", "n", n, "field", fld.String(), "workers", workers, "repeat", repeat)
				m, err := bench.Measure(ctx, a.logger, a.runID, n, fld, workers, seed, repeat)
				if err != nil {
					return err
				}
				a.logger.Info("measured", "n", n, "per_call", m.PerCall(), "value", fmt.Sprint(m.Value))
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%g\n", n, fld, workers, m.PerCall(), m.Value)
				recs = append(recs, results.Record{
					RunID: m.RunID, Version: hafnian.Version(), Algorithm: hafnian.Algorithm(),
					Field: fld.String(), N: n, Workers: workers, Seed: seed, Repeat: repeat,
					Elapsed: m.Elapsed, Value: m.Value, CreatedAt: time.Now(),
				})
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if store != nil {
				if err := store.Add(ctx, recs...); err != nil {
					return err
				}
				a.logger.Info("stored measurements", "db", dbPath, "count", len(recs))
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&sizes, "n", []int{4, 8, 12}, "block counts to time, at most "+strconv.Itoa(maxRunN)+" (matrix dimension 2n)")
	f.StringVar(&field, "field", "real", "real|complex")
	f.IntVar(&workers, "workers", a.cfg.workers, "worker goroutines, 0 = GOMAXPROCS (env "+envWorkers+")")
	f.Int64Var(&seed, "seed", a.cfg.seed, "fixture seed (env "+envSeed+")")
	f.IntVar(&repeat, "repeat", 3, "evaluations per size")
	f.StringVar(&dbPath, "db", a.cfg.db, "SQLite file to append measurements to (env "+envDB+")")

	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var (
		maxN int
		seed int64
		tol  float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the engine against brute force and (2n-1)!!",
		RunE: func(_ *cobra.Command, _ []string) error {
			if maxN < 1 || maxN > maxVerifyN {
				return fmt.Errorf("--max-n must be in [1, %d], got %d", maxVerifyN, maxN)
			}
			checks, err := bench.Verify(maxN, seed, tol)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "check\tn\trel-err\tstatus")
			failed := 0
			for _, c := range checks {
				status := "ok"
				if !c.OK {
					status = "FAIL"
					failed++
					a.logger.Error("check failed", "check", c.Name, "n", c.N,
						"want", fmt.Sprint(c.Want), "got", fmt.Sprint(c.Got), "rel_err", c.RelErr)
				}
				fmt.Fprintf(tw, "%s\t%d\t%.3g\t%s\n", c.Name, c.N, c.RelErr, status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d checks", errVerifyFailed, failed, len(checks))
			}
			a.logger.Info("all checks passed", "checks", len(checks))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxN, "max-n", 6, "largest block count to check (brute force is (2n-1)!!)")
	f.Int64Var(&seed, "seed", a.cfg.seed, "fixture seed (env "+envSeed+")")
	f.Float64Var(&tol, "tol", bench.DefaultTolerance, "relative tolerance")

	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var (
		dbPath string
		runID  string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored measurements, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required (or set %s)", envDB)
			}
			store, err := results.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			recs, err := store.Recent(cmd.Context(), runID, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "created\trun\tversion\tfield\tn\tworkers\tper-call\tvalue")
			for _, r := range recs {
				perCall := r.Elapsed
				if r.Repeat > 0 {
					perCall /= time.Duration(r.Repeat)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%g\n",
					r.CreatedAt.Format(time.RFC3339), r.RunID, r.Version, r.Field, r.N, r.Workers, perCall, r.Value)
			}

			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&dbPath, "db", a.cfg.db, "SQLite file (env "+envDB+")")
	f.StringVar(&runID, "run", "", "only this run id")
	f.IntVar(&limit, "limit", 20, "maximum rows")

	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print engine version and algorithm",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(a.out, hafnian.BuildInfo())
		},
	}
}
