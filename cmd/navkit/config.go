package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navkit/internal/config"
	"github.com/vango-dev/navkit/internal/errors"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage navkit.json",
	}

	cmd.AddCommand(configInitCmd(), configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var (
		dir   string
		mode  string
		base  string
		serve string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create navkit.json",
		Long: `Create navkit.json with default settings.

Examples:
  navkit config init
  navkit config init --mode hash --base /app/ --serve-dir build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			path := filepath.Join(dir, config.ConfigFileName)

			if config.Exists(dir) && !force {
				return errors.New("N203").
					WithDetail(path + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.New()
			cfg.Routing.Mode = mode
			if base != "" {
				cfg.Routing.BasePath = &base
			}
			if serve != "" {
				cfg.Serve.Dir = serve
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(w, "Created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create navkit.json in")
	cmd.Flags().StringVarP(&mode, "mode", "m", "window", `Routing mode, "window" or "hash"`)
	cmd.Flags().StringVar(&base, "base", "", "Base path the application is mounted under")
	cmd.Flags().StringVar(&serve, "serve-dir", "", "Build output directory to serve")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing navkit.json")

	return cmd
}

func configShowCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			root, err := config.Find(project)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "# %s\n", cfg.Path())
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cfg); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				warn(w, "%s", err.Error())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", ".", "Directory to search for navkit.json")

	return cmd
}
