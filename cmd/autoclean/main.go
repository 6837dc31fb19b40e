package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoclean/internal/common"
	"autoclean/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "autoclean [folders...]",
		Short: "🧹 Fast, friendly file organizer",
		Long: `autoclean scans folders, sorts files into per-category subfolders by
extension, and writes a report of everything it did.

Folders may be paths or shorthands (downloads, desktop, documents, pictures,
videos, music). With no folders, an interactive picker is shown.`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: initConfig,
		RunE:              runOrganize,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/autoclean/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "INFO", "log level (DEBUG, INFO, WARNING, ERROR)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	rootCmd.Flags().BoolVar(&organizeFlags.dryRun, "dry-run", false, "preview changes without moving files")
	rootCmd.Flags().BoolVar(&organizeFlags.autoOrganize, "auto-organize", false, "resolve ambiguous files automatically, no prompts")
	rootCmd.Flags().BoolVar(&organizeFlags.noBackup, "no-backup", false, "skip creating backup archives")
	rootCmd.Flags().BoolVar(&organizeFlags.deleteEmpty, "delete-empty", false, "delete empty folders after organizing")
	rootCmd.Flags().String("resolver", "first-match", "automatic ambiguity policy (first-match, random)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("organize.resolver", rootCmd.Flags().Lookup("resolver"))

	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "autoclean"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AUTOCLEAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	return setupLogging()
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	logDir := ""
	if dataDir, err := config.DataDir(); err == nil {
		logDir = filepath.Join(dataDir, "logs")
	}

	logPath, err := common.SetupLogger(level, viper.GetString("logging.format"), logDir)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	if logPath != "" {
		slog.Debug("Logging initialized", "log_file", logPath)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("autoclean version %s\n", version)
		},
	}
}
