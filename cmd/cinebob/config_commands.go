package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinebob/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set telegram.token (or export CINEBOB_TELEGRAM_TOKEN) before running CineBob.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			cfg, resolvedPath, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Config path: %s\n", resolvedPath)
			if !exists {
				fmt.Fprintln(stdout, "Config file did not exist; defaults are shown")
			}
			fmt.Fprintln(stdout)

			rows := [][]string{
				{"paths.data_dir", cfg.Paths.DataDir},
				{"paths.log_dir", cfg.Paths.LogDir},
				{"telegram.token", maskToken(cfg.Telegram.Token)},
				{"telegram.base_url", cfg.Telegram.BaseURL},
				{"telegram.poll_timeout", strconv.Itoa(cfg.Telegram.PollTimeout)},
				{"telegram.request_timeout", strconv.Itoa(cfg.Telegram.RequestTimeout)},
				{"catalog.store_path", cfg.StorePath()},
				{"catalog.raw_csv_path", cfg.Catalog.RawCSVPath},
				{"commands.popular_count", strconv.Itoa(cfg.Commands.PopularCount)},
				{"commands.popular_max", strconv.Itoa(cfg.Commands.PopularMax)},
				{"keepalive.enabled", yesNo(cfg.KeepAlive.Enabled)},
				{"keepalive.bind", cfg.KeepAlive.Bind},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			fmt.Fprintln(stdout, renderTable([]string{"Setting", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}

func maskToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return "(not set)"
	}
	if idx := strings.IndexByte(token, ':'); idx > 0 {
		return token[:idx] + ":" + strings.Repeat("*", 8)
	}
	return strings.Repeat("*", 8)
}
