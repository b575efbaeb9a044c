package main

import (
	"os"

	"github.com/spf13/cobra"

	"wordsolver/internal/utils"
)

var (
	// Global flags
	cfgFile string
	version = "dev" // Will be set by build flags
)

var rootCmd = &cobra.Command{
	Use:     "solverd",
	Short:   "Letter-constraint word solver backend",
	Long:    `solverd serves the word solver HTTP API, declares its local-dev service topology, and seeds the dictionary into Postgres.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", utils.ConfigPath, "config file")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topologyCmd)
	rootCmd.AddCommand(seedCmd)
}

// Commands are defined in separate files:
// - serveCmd in serve.go
// - topologyCmd in topology.go
// - seedCmd in seed.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
