/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"

	"github.com/voedger/dclass/pkg/dcload"
	imetrics "github.com/voedger/dclass/pkg/metrics"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return runRootCmd(args, ver, os.Stdout)
}

func runRootCmd(args []string, ver string, out io.Writer) error {
	params := &dccParams{
		out:     out,
		metrics: imetrics.Provide(),
	}
	params.loader = dcload.New(osFS{}, dcload.WithMetrics(params.metrics, "dcc"))

	rootCmd := cobrau.PrepareRootCmd(
		"dcc",
		"DC schema compiler",
		args,
		ver,
		newCheckCmd(params),
		newHashCmd(params),
		newValueCmd(params),
		newWatchCmd(params),
	)
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&params.config, "config", "", "YAML config to read DC files from, if no files are given (default "+dcload.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVar(&params.printMetrics, "metrics", false, "Print loader metrics after command")
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if !params.printMetrics {
			return nil
		}
		return params.metrics.List(func(m imetrics.IMetric, value float64) error {
			_, err := params.out.Write(imetrics.ToPrometheus(m, value))
			return err
		})
	}

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
