package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
	"github.com/Wachary/BioPlus-AI-1.1/internal/questiongen"
	"github.com/Wachary/BioPlus-AI-1.1/internal/server"
	"github.com/Wachary/BioPlus-AI-1.1/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	// Local .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(context.Background(), s.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	generator := questiongen.New(provider, questiongen.DefaultConfig())
	differ := diagnosis.NewService(provider, diagnosis.DefaultConfig())

	srv := server.New(server.ConfigFromEnv(), generator, differ, s.EventRepo())
	return srv.Start()
}
