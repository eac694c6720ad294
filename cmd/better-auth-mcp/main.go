// Command better-auth-mcp serves the Better Auth tool catalog over MCP stdio.
//
// Configuration is read once at startup from an optional TOML file and
// BETTER_AUTH_* environment variables; the protocol runs on stdout/stdin and
// all logging goes to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	authmcp "github.com/wagiedev/better-auth-mcp"
	"github.com/wagiedev/better-auth-mcp/internal/bootstrap"
)

// version is set at build time via -ldflags.
var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "better-auth-mcp:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "better-auth-mcp",
		Short:         "MCP server for Better Auth migration tooling",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve MCP over stdio (the default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "tools",
			Short: "Print the tool catalog",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printTools(cmd)
			},
		},
		&cobra.Command{
			Use:   "resources",
			Short: "Print the resource catalog",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printResources(cmd)
			},
		},
	)

	return root
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := bootstrap.Load(configPath)
	if err != nil {
		return err
	}

	level, err := bootstrap.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	log := bootstrap.NewLogger(os.Stderr, level)

	srv, err := authmcp.New(
		authmcp.WithLogger(log),
		authmcp.WithVersion(version),
		authmcp.WithInitialConfig(authmcp.AuthConfig{
			ProjectID:   cfg.ProjectID,
			APIKey:      cfg.APIKey,
			Environment: cfg.Environment,
		}),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx)
	})

	if err := g.Wait(); err != nil && gCtx.Err() == nil {
		log.Error("server stopped", "error", err)

		return err
	}

	log.Info("server shut down")

	return nil
}

func printTools(cmd *cobra.Command) error {
	srv, err := authmcp.New()
	if err != nil {
		return err
	}

	for _, tool := range srv.Tools() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", tool.Name, tool.Description)
	}

	return nil
}

func printResources(cmd *cobra.Command) error {
	srv, err := authmcp.New()
	if err != nil {
		return err
	}

	for _, res := range srv.Resources() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-18s %s\n", res.URI, res.MIMEType, res.Description)
	}

	return nil
}
