package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"time"

	"github.com/inovacc/routeguided/internal/application"
	"github.com/inovacc/routeguided/internal/grpcserver"
	"github.com/inovacc/routeguided/internal/process"
	"github.com/spf13/cobra"
)

var (
	stopTimeout time.Duration
	procs       = process.NewInspector()
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running server",
	Long:  `Stop the routeguided server by sending a termination signal to the running process.`,
	RunE:  runStop,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Long:  `Show the current status of the routeguided server.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)

	stopCmd.Flags().DurationVar(&stopTimeout, "timeout", 30*time.Second, "Timeout waiting for server to stop")
}

func runStop(_ *cobra.Command, _ []string) error {
	info := grpcserver.IsServerRunning()
	if info == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Server is not running")
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Stopping server (PID: %d)...\n", info.PID)

	if err := terminateProcess(info.PID); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := waitForProcessExit(info.PID, stopTimeout); err != nil {
		return fmt.Errorf("server did not stop within timeout: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Server stopped successfully")

	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	info := grpcserver.IsServerRunning()
	if info == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Server status: stopped")
		return nil
	}

	procs.Refresh()
	if !procs.Matches(info.PID, application.AppName) {
		_, _ = fmt.Fprintf(os.Stdout, "Server status: unknown (PID %d is not a %s process)\n", info.PID, application.AppName)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, "Server status: running")
	_, _ = fmt.Fprintf(os.Stdout, "  Address: %s\n", info.Address)
	_, _ = fmt.Fprintf(os.Stdout, "  PID: %d\n", info.PID)
	_, _ = fmt.Fprintf(os.Stdout, "  Started: %s\n", info.StartedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(os.Stdout, "  Uptime: %s\n", time.Since(info.StartedAt).Round(time.Second))

	return nil
}

// terminateProcess sends a termination signal to the process with the given PID
func terminateProcess(pid int) error {
	if runtime.GOOS == "windows" {
		// On Windows, use taskkill command
		cmd := exec.Command("taskkill", "/PID", fmt.Sprintf("%d", pid), "/F")
		return cmd.Run()
	}

	// On Unix-like systems, send SIGTERM
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	return proc.Signal(syscall.SIGTERM)
}

// waitForProcessExit polls the process table until the PID disappears
func waitForProcessExit(pid int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	checkInterval := 100 * time.Millisecond

	for time.Now().Before(deadline) {
		procs.Refresh()

		if !procs.IsRunning(pid) {
			return nil
		}

		time.Sleep(checkInterval)
	}

	return fmt.Errorf("process %d still running after %v", pid, timeout)
}
