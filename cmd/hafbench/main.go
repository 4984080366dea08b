// SPDX-License-Identifier: MIT

// Command hafbench times and cross-checks the hafnian engine.
//
//	hafbench run --n 4,8,12 --field real --workers 4 --seed 1 --repeat 3 [--db runs.db]
//	hafbench verify --max-n 6 --seed 1
//	hafbench history --db runs.db [--run <id>] [--limit 20]
//	hafbench version
//
// Flag defaults can be overridden with HAFBENCH_* variables, optionally from a
// .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(loadEnv()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "hafbench:", err)
		stop()
		os.Exit(1)
	}
}
