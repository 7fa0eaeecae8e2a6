// Package cli implements the aadk operator command tree. Commands talk
// to the control plane over gRPC; output is lipgloss-styled on a TTY
// and plain key=value when piped.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aadk-dev/aadk/internal/client"
	"github.com/aadk-dev/aadk/internal/config"
)

// App carries the root command and the resolved configuration.
type App struct {
	rootCmd *cobra.Command
	cfg     *config.Config

	out    io.Writer
	errOut io.Writer

	verbose bool

	// Address overrides; empty means use the environment config.
	jobAddr      string
	observeAddr  string
	workflowAddr string

	version string
	commit  string
	date    string
}

// New creates the CLI application writing to stdout/stderr.
func New() *App {
	app := &App{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the build information for the version command.
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
	a.rootCmd.SetOut(out)
	a.rootCmd.SetErr(errOut)
}

// SetArgs sets the arguments for the next Execute call.
func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "aadk",
		Short: "Operate the aadk control plane",
		Long: `aadk talks to the job, observe, and workflow services of a
running aadkd daemon.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if a.jobAddr != "" {
				cfg.JobAddr = a.jobAddr
			}
			if a.observeAddr != "" {
				cfg.ObserveAddr = a.observeAddr
			}
			if a.workflowAddr != "" {
				cfg.WorkflowAddr = a.workflowAddr
			}
			a.cfg = cfg

			if a.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
			return nil
		},
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")
	a.rootCmd.PersistentFlags().StringVar(&a.jobAddr, "job-addr", "",
		"Job service address (overrides AADK_JOB_ADDR)")
	a.rootCmd.PersistentFlags().StringVar(&a.observeAddr, "observe-addr", "",
		"Observe service address (overrides AADK_OBSERVE_ADDR)")
	a.rootCmd.PersistentFlags().StringVar(&a.workflowAddr, "workflow-addr", "",
		"Workflow service address (overrides AADK_WORKFLOW_ADDR)")

	a.rootCmd.AddCommand(newJobsCmd(a))
	a.rootCmd.AddCommand(newRunsCmd(a))
	a.rootCmd.AddCommand(newObserveCmd(a))
	a.rootCmd.AddCommand(newWorkflowCmd(a))
	a.rootCmd.AddCommand(newVersionCmd(a))
}

// dialJobs connects to the job service.
func (a *App) dialJobs() (*client.Conn, error) {
	return client.Dial(a.cfg.JobAddr)
}

// dialObserve connects to the observe service.
func (a *App) dialObserve() (*client.Conn, error) {
	return client.Dial(a.cfg.ObserveAddr)
}

// dialWorkflow connects to the workflow service.
func (a *App) dialWorkflow() (*client.Conn, error) {
	return client.Dial(a.cfg.WorkflowAddr)
}

func newVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := a.version
			commit := a.commit
			date := a.date
			if version == "" {
				version = "dev"
			}
			if commit == "" {
				commit = "unknown"
			}
			if date == "" {
				date = "unknown"
			}
			fmt.Fprintf(a.out, "aadk version %s\n", version)
			fmt.Fprintf(a.out, "commit: %s\n", commit)
			fmt.Fprintf(a.out, "built: %s\n", date)
			return nil
		},
	}
}
