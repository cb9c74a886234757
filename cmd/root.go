// cmd/root.go
package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/three60abr/abrsim/sim"
	_ "github.com/three60abr/abrsim/sim/allocator"
	_ "github.com/three60abr/abrsim/sim/controller"
	_ "github.com/three60abr/abrsim/sim/throughput"
	_ "github.com/three60abr/abrsim/sim/viewport"
)

var (
	configPath  string
	tracesPath  string
	logLevel    string
	windowSize  int
	stepSeconds float64

	csvTracePath        string
	csvTraceIntervalSec  float64
)

var rootCmd = &cobra.Command{
	Use:   "abrsim",
	Short: "Simulation engine for 360-degree adaptive bitrate streaming",
}

var simulateABRCmd = &cobra.Command{
	Use:   "simulate-abr",
	Short: "Run the per-tile ABR simulation across a set of sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		rf, err := loadRunFile(configPath)
		if err != nil {
			return err
		}
		traces, err := loadTracesFile(tracesPath)
		if err != nil {
			return err
		}

		throughputOpts, err := sim.DecodeThroughputOptions(rf.Throughput)
		if err != nil {
			return err
		}
		viewportOpts, err := sim.DecodeViewportOptions(rf.Viewport)
		if err != nil {
			return err
		}
		controllerOpts, err := sim.DecodeControllerOptions(rf.Controller)
		if err != nil {
			return err
		}
		allocatorOpts, err := sim.DecodeAllocatorOptions(rf.Allocator)
		if err != nil {
			return err
		}

		logrus.Infof("starting ABR simulation: %d sessions, segment=%.2fs, tiles=%d",
			len(traces.NetworkTraces), rf.Streaming.SegmentSeconds, rf.Streaming.TileCount())

		results, err := sim.SimulateABR(rf.Streaming, controllerOpts, allocatorOpts, throughputOpts, viewportOpts,
			traces.NetworkTraces, traces.ViewportTraces, rf.PoolSize)
		if err != nil {
			return err
		}

		logrus.Info("simulation complete")
		return json.NewEncoder(os.Stdout).Encode(results)
	},
}

var simulateViewportCmd = &cobra.Command{
	Use:   "simulate-viewport",
	Short: "Run the standalone viewport-prediction sweep across a set of traces",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		rf, err := loadRunFile(configPath)
		if err != nil {
			return err
		}
		traces, err := loadTracesFile(tracesPath)
		if err != nil {
			return err
		}
		viewportOpts, err := sim.DecodeViewportOptions(rf.Viewport)
		if err != nil {
			return err
		}

		logrus.Infof("starting viewport-prediction sweep: %d sessions, window=%d, step=%.2fs",
			len(traces.ViewportTraces), windowSize, stepSeconds)

		results, err := sim.SimulateViewportPrediction(windowSize, stepSeconds, viewportOpts, traces.ViewportTraces, rf.PoolSize)
		if err != nil {
			return err
		}

		logrus.Info("sweep complete")
		return json.NewEncoder(os.Stdout).Encode(results)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert external trace formats into this engine's traces YAML",
}

var convertCSVTraceCmd = &cobra.Command{
	Use:   "csv-trace",
	Short: "Convert a legacy CSV trace file (time, throughput_mbps, latitude_deg, longitude_deg) to traces YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		traces, err := sim.ConvertCSVTrace(csvTracePath, csvTraceIntervalSec)
		if err != nil {
			return err
		}
		return yaml.NewEncoder(os.Stdout).Encode(traces)
	},
}

func loadRunFile(path string) (sim.RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.RunFile{}, err
	}
	return sim.LoadRunFile(data)
}

func loadTracesFile(path string) (sim.TracesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.TracesFile{}, err
	}
	return sim.LoadTracesFile(data)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the run configuration YAML file")
	rootCmd.PersistentFlags().StringVar(&tracesPath, "traces", "traces.yaml", "Path to the network/viewport traces YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")

	simulateViewportCmd.Flags().IntVar(&windowSize, "window", 2, "Number of predicted poses per sliding position")
	simulateViewportCmd.Flags().Float64Var(&stepSeconds, "step", 1.0, "Seconds between successive predicted poses")

	convertCSVTraceCmd.Flags().StringVar(&csvTracePath, "path", "", "Path to the legacy CSV trace file")
	convertCSVTraceCmd.Flags().Float64Var(&csvTraceIntervalSec, "interval", 1.0, "Fixed sample spacing in seconds")
	_ = convertCSVTraceCmd.MarkFlagRequired("path")
	convertCmd.AddCommand(convertCSVTraceCmd)

	rootCmd.AddCommand(simulateABRCmd)
	rootCmd.AddCommand(simulateViewportCmd)
	rootCmd.AddCommand(convertCmd)
}
