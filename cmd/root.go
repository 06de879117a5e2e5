package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emtriage/emtriage/api"
	"github.com/emtriage/emtriage/roadnet"
	"github.com/emtriage/emtriage/triage"
)

var (
	// Shared CLI flags
	configPath string // Path to the YAML session config
	logLevel   string // Log verbosity level

	// Flags for the one-shot route command
	originLat float64
	originLon float64
	destLat   float64
	destLon   float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "emtriage",
	Short: "Emergency-department triage queue and route engine",
}

// setupLogging applies the --log flag before any command body runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadConfig resolves the session configuration, from file when --config is
// given and from defaults otherwise.
func loadConfig() SessionConfig {
	if configPath == "" {
		return DefaultSessionConfig()
	}
	cfg, err := LoadSessionConfig(configPath)
	if err != nil {
		logrus.Fatalf("unable to load session config: %v", err)
	}
	return cfg
}

// serveCmd runs one operating session behind the HTTP operator surface.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an intake session behind the HTTP operator API",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := loadConfig()

		mode, err := triage.ParseQueueMode(cfg.DefaultMode)
		if err != nil {
			logrus.Fatalf("invalid default mode: %v", err)
		}

		session := triage.NewSession(cfg.Hospital, mode)
		if cfg.GraphPath != "" {
			graph, err := roadnet.LoadRoadGraph(cfg.GraphPath)
			if err != nil {
				// Recoverable: the session runs, route requests report
				// graph-unavailable until a graph is supplied.
				logrus.Warnf("road graph not loaded: %v", err)
			} else {
				session.SetRoadGraph(graph)
			}
		}

		logrus.Infof("session started: hospital=(%.4f, %.4f), mode=%s, listening on %s",
			cfg.Hospital.Lat, cfg.Hospital.Lon, mode, cfg.ListenAddr)

		server := api.NewServer(session)
		if err := server.Run(cfg.ListenAddr); err != nil {
			logrus.Fatalf("operator API server failed: %v", err)
		}
	},
}

// routeCmd answers one shortest-route query from the command line, without
// starting a session. Destination defaults to the configured hospital.
var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Compute the shortest route between two coordinates",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := loadConfig()

		if cfg.GraphPath == "" {
			logrus.Fatalf("no road graph configured; set graph_path in the session config")
		}
		graph, err := roadnet.LoadRoadGraph(cfg.GraphPath)
		if err != nil {
			logrus.Fatalf("unable to load road graph: %v", err)
		}

		dest := roadnet.Coordinates{Lat: destLat, Lon: destLon}
		if !cmd.Flags().Changed("dest-lat") && !cmd.Flags().Changed("dest-lon") {
			dest = cfg.Hospital
		}

		result, err := roadnet.ComputeRoute(context.Background(), graph,
			roadnet.Coordinates{Lat: originLat, Lon: originLon}, dest)
		switch {
		case errors.Is(err, roadnet.ErrNoPath):
			logrus.Fatalf("no drivable path: origin and destination are in disconnected regions")
		case err != nil:
			logrus.Fatalf("route computation failed: %v", err)
		}

		cmd.Printf("route: %d nodes, %.1f meters\n", len(result.NodeIDs), result.LengthMeters)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML session config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	routeCmd.Flags().Float64Var(&originLat, "origin-lat", 0, "Origin latitude")
	routeCmd.Flags().Float64Var(&originLon, "origin-lon", 0, "Origin longitude")
	routeCmd.Flags().Float64Var(&destLat, "dest-lat", 0, "Destination latitude (defaults to hospital)")
	routeCmd.Flags().Float64Var(&destLon, "dest-lon", 0, "Destination longitude (defaults to hospital)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeCmd)
}
