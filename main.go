package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/andareed/mini-text/config"
	"github.com/andareed/mini-text/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	debugFile     string
	modeFlag      string
	clipboardFlag string
	serializeFlag bool

	logCleanup = func() {}
)

// exitCode ends the process with a status code without printing anything;
// the command already reported the outcome.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logCleanup()

	if err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mini-text",
		Short: "A tiny text panel bridging the clipboard and the active window",
		Long: `mini-text opens a terminal text box. ctrl+s copies its content to the
clipboard; ctrl+g captures text from the focused window (external mode) or
pastes the clipboard into the box (clipboard mode).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE:              runPanel,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file path (optional)")
	flags.StringVar(&debugFile, "debug", "", "Write debug logs to file")
	flags.StringVarP(&modeFlag, "mode", "m", "", "Capture mode (external, clipboard)")
	flags.StringVarP(&clipboardFlag, "clipboard", "c", "", "Clipboard backend (system, secure, command, osc52)")
	flags.BoolVar(&serializeFlag, "serialize", false, "Ignore triggers while an action is still running")

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(captureCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(windowsCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.SetupLogging(debugFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logCleanup = cleanup
	logging.Infof("mini-text %s: started %s", Version, cmd.CommandPath())
	return nil
}

// loadConfig reads the config file (or defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = modeFlag
	}
	if flags.Changed("clipboard") {
		cfg.Clipboard.Backend = clipboardFlag
	}
	if flags.Changed("serialize") {
		cfg.UI.SerializeActions = serializeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func loadServices(cmd *cobra.Command) (*services, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newServices(cfg)
}

func runPanel(cmd *cobra.Command, args []string) error {
	svc, err := loadServices(cmd)
	if err != nil {
		return err
	}

	m, err := newModel(cmd.Context(), svc)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
