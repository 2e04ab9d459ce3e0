package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/peyvand/peyvand_backend/cmd/http"
	systemcmd "github.com/peyvand/peyvand_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "peyvand",
	Short: "Peyvand scheduling and revenue backend for multi-role health clinics.",
	Long: `Peyvand is the backend for a multi-role healthcare scheduling platform.
It manages revenue distribution policies between clinic admins, therapists and
doctors, and exposes a live preview API so forms can show the split as users type.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
