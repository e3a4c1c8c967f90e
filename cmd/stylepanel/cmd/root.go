package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/config"
	"github.com/drewhinkson/stylepanel/internal/document"
	"github.com/drewhinkson/stylepanel/internal/styler"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

var (
	verbose      bool
	quiet        bool
	noColor      bool
	cfgFile      string
	projectDir   string
	documentFile string
	logger       *log.Logger
	cfg          *config.Config

	store    *document.Store
	reporter ui.Reporter
	applier  *styler.Applier
	checker  *styler.Checker
)

var rootCmd = &cobra.Command{
	Use:   "stylepanel",
	Short: "Apply font styles to the selected element of a design document",
	Long: `stylepanel is a terminal style panel for a design document: pick a
font size, color, and family, apply them as a generated named style to
whatever element is currently selected, and check whether a combo class
is already attached to the selection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			var err error
			if cfgFile != "" {
				cfg, err = config.Load(cfgFile)
			} else {
				cfg, err = config.LoadFromProject()
			}
			if err != nil {
				logger.Warn("could not load config, using defaults", "error", err)
				cfg = config.DefaultConfig()
			}
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

func runRootTUI() error {
	if err := initPanel(); err != nil {
		return err
	}

	menuItems := []ui.MenuItem{
		{ID: "apply", TitleText: "Apply Styles", Details: "Pick font size, color, and family and style the selected element"},
		{ID: "check", TitleText: "Check Combo Class", Details: "Look up whether a named combo class is attached to the selection"},
		{ID: "select", TitleText: "Select Element", Details: "Change which element of the document is selected"},
		{ID: "status", TitleText: "Status", Details: "Review the document, its elements, styles, and current selection"},
		{ID: "validate", TitleText: "Validate", Details: "Check the config and design document for inconsistencies"},
		{ID: "settings", TitleText: "Settings", Details: "Tune theme, layout, and dropdown presets"},
		{ID: "exit", TitleText: "Exit", Details: "Close the style panel"},
	}

	for {
		choice, err := ui.RunMenu("STYLE PANEL", "Choose an action to continue.", menuItems)
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		if err := waitForEnter("Press enter to return to the Style Panel"); err != nil {
			return err
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "apply":
		return applyCmd.RunE(applyCmd, []string{})
	case "check":
		return checkCmd.RunE(checkCmd, []string{})
	case "select":
		return selectCmd.RunE(selectCmd, []string{})
	case "status":
		return statusCmd.RunE(statusCmd, []string{})
	case "validate":
		return validateCmd.RunE(validateCmd, []string{})
	case "settings":
		return settingsCmd.RunE(settingsCmd, []string{})
	case "exit", ui.MenuActionQuit, ui.MenuActionBack, "":
		return nil
	default:
		return nil
	}
}

func runRootFallback() error {
	ui.StartScreen("STYLE PANEL", "Choose an action to continue.")
	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title("Style Panel").
		Description("What would you like to do?").
		Options(
			huh.NewOption("Apply Styles", "apply"),
			huh.NewOption("Check Combo Class", "check"),
			huh.NewOption("Select Element", "select"),
			huh.NewOption("Status", "status"),
			huh.NewOption("Validate", "validate"),
			huh.NewOption("Settings", "settings"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&fallbackChoice).
		WithTheme(ui.HuhTheme()).
		Run()
	if fallbackErr != nil {
		if errors.Is(fallbackErr, huh.ErrUserAborted) {
			return nil
		}
		return fallbackErr
	}
	return runRootChoice(fallbackChoice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

// initPanel opens the document store and builds the applier and checker
// bound to it. The applier owns the style-name counter for the session, so
// it is created once and reused across actions.
func initPanel() error {
	if store != nil {
		return nil
	}

	path, err := resolveDocumentPath()
	if err != nil {
		return err
	}

	store, err = document.Open(path)
	if err != nil {
		return fmt.Errorf("opening design document: %w", err)
	}
	ui.ActiveDocument = store.Name()

	reporter = ui.NewTerminalReporter(os.Stdout)
	applier = styler.NewApplier(store, reporter)
	checker = styler.NewChecker(store, reporter)

	logger.Debug("panel ready", "document", path)
	return nil
}

func resolveDocumentPath() (string, error) {
	if documentFile != "" {
		return documentFile, nil
	}
	rootDir, err := getProjectRoot()
	if err != nil {
		return "", fmt.Errorf("finding project root: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg.DocumentPath(rootDir), nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: stylepanel.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", "", "Project directory")
	rootCmd.PersistentFlags().StringVarP(&documentFile, "document", "d", "", "Design document file (default from config)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{
			Theme:   "aurora",
			Dense:   false,
			NoColor: noColor,
		})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		Theme:   cfg.UI.Theme,
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}

func getProjectRoot() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	return config.FindProjectRoot()
}
