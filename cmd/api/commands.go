package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"

	"github.com/stapro/nfc-attendance/docs"
	"github.com/stapro/nfc-attendance/internal/bootstrap"
	"github.com/stapro/nfc-attendance/internal/seed"
	"github.com/stapro/nfc-attendance/internal/server"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "attendance",
		Short:         "NFC attendance backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations and start the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert demo employees, cards and commute templates",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context(), configPath)
			},
		},
		newOpenAPICmd(),
	)
	return root
}

func newOpenAPICmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Write the OpenAPI document and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOpenAPI(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "openapi.json", "output file, - for stdout")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

func runMigrate(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	return bootstrap.RunMigrations(ctx, database, lgr)
}

func runSeed(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := bootstrap.RunMigrations(ctx, database, lgr); err != nil {
		return err
	}
	return seed.CreateDefaultData(ctx, database, lgr)
}

func writeOpenAPI(out string) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI document: %w", err)
	}
	if out == "-" {
		_, err = fmt.Fprintln(os.Stdout, doc)
		return err
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write OpenAPI document: %w", err)
	}
	fmt.Fprintf(os.Stderr, "OpenAPI document written to %s\n", out)
	return nil
}
