package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/encore/internal/app"
	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/logging"
	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/state"
)

var (
	cfgFile     string
	catalogFile string
	signInUser  string
	signInRole  string
)

var rootCmd = &cobra.Command{
	Use:   "encore",
	Short: "Browse artists and playlists from the terminal",
	Long: `Encore is a terminal music catalog browser.

Without --catalog (or catalog in config.toml) it opens a built-in demo
catalog. Right-click a song, or press m, for its actions.`,
	Args:         cobra.NoArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "extra config file, read after the default locations")
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "catalog TOML file (overrides config)")
	rootCmd.Flags().StringVarP(&signInUser, "user", "u", "", "sign in as this user before starting")
	rootCmd.Flags().StringVar(&signInRole, "role", session.RoleUser, "role for --user (user or artist)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if catalogFile != "" {
		cfg.Catalog = catalogFile
	}

	logger, logFile, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
		logger = logging.Discard()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	icons.Init(cfg.Icons)

	cat := catalog.Demo()
	if cfg.HasCatalog() {
		cat, err = catalog.Load(cfg.Catalog)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.Catalog, err))
		}
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer stateMgr.Close()

	store := session.NewStore(stateMgr, logger)
	if signInUser != "" {
		if signInRole != session.RoleUser && signInRole != session.RoleArtist {
			return fmt.Errorf("unknown role %q", signInRole)
		}
		if err := store.SignIn(signInRole, signInUser); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
	}

	logger.Info("starting", "catalog", cfg.Catalog, "user", store.Username())

	m := app.New(app.Deps{
		Config:   cfg,
		Catalog:  cat,
		StateMgr: stateMgr,
		Session:  store,
		Logger:   logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
