// Command rcspp runs the BenchmarkDriver against one resource-constrained
// shortest path instance:
//
//	rcspp <edge_file> <s> <e> <R>
//
// edge_file holds one arc per line as "u v cost resource"; s and e are
// vertex indices; R is the resource budget. The driver runs the exact
// solver and all four heuristics against the instance and reports each
// heuristic's approximation ratio against the exact optimum.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"rcspp/internal/bench"
	"rcspp/internal/edgefile"
	"rcspp/pkg/apperror"
	"rcspp/pkg/config"
	"rcspp/pkg/logger"
	"rcspp/pkg/metrics"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: rcspp <edge_file> <s> <e> <R>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.InitWithConfig(logger.Config{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	})
	metrics.Init(cfg.Metrics.Namespace, cfg.Metrics.Subsystem)

	edgePath, sRaw, eRaw, rRaw := args[0], args[1], args[2], args[3]

	f, err := os.Open(edgePath)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInvalidArgument, "cannot open edge file")
	}
	defer f.Close()

	g, verrs, err := edgefile.Parse(f)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternal, "reading edge file")
	}
	if !verrs.IsValid() {
		for _, msg := range verrs.ErrorMessages() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("edge file %s is malformed", edgePath)
	}

	s, err := strconv.Atoi(sRaw)
	if err != nil {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "source must be an integer", "s")
	}
	e, err := strconv.Atoi(eRaw)
	if err != nil {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "sink must be an integer", "e")
	}
	limit, err := strconv.ParseInt(rRaw, 10, 64)
	if err != nil || limit < 0 {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "resource limit must be a nonnegative integer", "R")
	}
	if s < 0 || s >= g.N() {
		return apperror.New(apperror.CodeInvalidSource, "source vertex out of range").WithDetails("s", s).WithDetails("n", g.N())
	}
	if e < 0 || e >= g.N() {
		return apperror.New(apperror.CodeInvalidSink, "sink vertex out of range").WithDetails("e", e).WithDetails("n", g.N())
	}

	bench.Run(context.Background(), os.Stdout, cfg, g, s, e, limit)
	return nil
}
