package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/server"
	"github.com/stepwiselabs/stepwise/internal/speech"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutoring session server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = os.Getenv("STEPWISE_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		streamer, err := llm.NewStreamerFromEnv(ctx, s.Events())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		srv := server.New(server.Config{
			Addr:     addr,
			Streamer: streamer,
			Synth:    &speech.NullSynthesizer{},
			Events:   s.Events(),
			Docs:     s.Docs(),
		})

		fmt.Printf("stepwise listening on %s (model %s)\n", addr, streamer.ModelID())
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides STEPWISE_ADDR, default :8080)")
}
