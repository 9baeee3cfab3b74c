package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bankdesk/cmd/account"
	"bankdesk/cmd/card"
	"bankdesk/cmd/customer"
	"bankdesk/cmd/loan"
	"bankdesk/cmd/transaction"
	"bankdesk/internal/app"
	"bankdesk/internal/config"
	"bankdesk/internal/console"
	"bankdesk/internal/errhandler"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "bankdesk",
		Short:         "bankdesk is a terminal back-office console for retail banking",
		Long: `bankdesk is a terminal back-office console for retail banking.

Running it without a subcommand opens the interactive console; the
subcommands expose the same operations for scripting.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := console.New(application.Client).Run(cmd.Context())
			if errhandler.IsCancellation(err) {
				return nil
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(customer.NewCustomerCmd(application.Client))
	rootCmd.AddCommand(account.NewAccountCmd(application.Client))
	rootCmd.AddCommand(card.NewCardCmd(application.Client))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application.Client))
	rootCmd.AddCommand(loan.NewLoanCmd(application.Client))

	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsCancellation(err) {
			pterm.Warning.Println("Operation cancelled")
			return
		}
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Defaults are set before the config file is first materialized so a
	// fresh install gets a usable config.yaml.
	viper.SetDefault("api.base_url", config.NewDefault().API.BaseURL)

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("BANKDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankdesk"), nil
	}

	return filepath.Join(configDir, "bankdesk"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
