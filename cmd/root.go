package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/examdist/app"
	"github.com/kilianp07/examdist/config"
	"github.com/kilianp07/examdist/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "examdist",
	Short:         "Distribute examinees over exam centers, labs, rounds and days",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// planFlags are shared by the plan and export commands.
type planFlags struct {
	input string
	sheet string
	out   string
}

func (f *planFlags) register(cmd *cobra.Command, withOut bool) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "examinee workbook (overrides input.path)")
	cmd.Flags().StringVarP(&f.sheet, "sheet", "s", "", "sheet name (overrides input.sheet)")
	if withOut {
		cmd.Flags().StringVarP(&f.out, "out", "o", "", "output directory (overrides export.dir)")
	}
}

func (f *planFlags) apply(cfg *config.Config) {
	if f.input != "" {
		cfg.Input.Path = f.input
	}
	if f.sheet != "" {
		cfg.Input.Sheet = f.sheet
	}
	if f.out != "" {
		cfg.Export.Dir = f.out
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newService loads the configuration, applies flag overrides and sets up logging.
func newService(f *planFlags) (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f.apply(cfg)
	logger.Configure(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	return app.New(cfg)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func closeService(svc *app.Service) {
	if err := svc.Close(); err != nil {
		logger.New("main").Errorf("service close: %v", err)
	}
}
