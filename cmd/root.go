package cmd

import (
	"os"

	"github.com/inovacc/routeguided/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A RouteGuide gRPC server",
	Long: `Routeguided serves the RouteGuide gRPC API over a static feature
database: unary feature lookup, server-streamed area queries, client-streamed
route summaries and bidirectional chat between visitors.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
