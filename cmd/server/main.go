package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/masfiqurnehal/portfolio-backend/internal/server"
	"github.com/masfiqurnehal/portfolio-backend/internal/version"
)

func main() {
	var addr string
	var envFile string

	// Setup logger
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:          "server",
		Short:        "Portfolio backend API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info(version.Detailed())

			// A missing .env is fine, the environment may be set directly.
			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				slog.Warn("dotenv load", "path", envFile, "error", err)
			}

			config, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bind") {
				config.HTTP.Addr = addr
			}

			s, err := server.New(cmd.Context(), config)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return s.Start(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&addr, "bind", "b", server.DefaultAddr, "Address to bind the server")
	rootCmd.Flags().StringVar(&envFile, "env", ".env", "Path to the dotenv file")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("exit", "error", err)
		os.Exit(1)
	}
}
