package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Daniel-Abiy/AfriDesk/internal/assistant"
	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/Daniel-Abiy/AfriDesk/internal/config"
	"github.com/Daniel-Abiy/AfriDesk/internal/logging"
	"github.com/Daniel-Abiy/AfriDesk/internal/offices"
	"github.com/Daniel-Abiy/AfriDesk/internal/profile"
	"github.com/Daniel-Abiy/AfriDesk/internal/recommend"
	"github.com/Daniel-Abiy/AfriDesk/internal/server"
	"github.com/Daniel-Abiy/AfriDesk/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "afridesk",
	Short: "AfriDesk - government services assistant for African citizens",
	Long: `AfriDesk helps citizens find and navigate government services.

It recommends services from a per-country catalog, optionally personalized
through Gemini, and answers follow-up questions through a chat assistant.
The catalog always works offline; the AI paths degrade to it gracefully.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print service recommendations for a citizen profile",
	Long: `Runs the recommendation pipeline once and prints the result as JSON.

Example:
  afridesk recommend --country Ghana --needs "Health Services,Tax Services"`,
	RunE: runRecommend,
}

var (
	recommendCountry string
	recommendNeeds   string
	recommendProfile string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "afridesk.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	recommendCmd.Flags().StringVar(&recommendCountry, "country", "", "citizen's country")
	recommendCmd.Flags().StringVar(&recommendNeeds, "needs", "", "comma-separated service needs")
	recommendCmd.Flags().StringVar(&recommendProfile, "profile", "", "path to a profile JSON file (flags override its fields)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(versionCmd)
}

func buildRecommender() *recommend.Recommender {
	cat := catalog.Default()
	var fetcher *recommend.Fetcher
	if cfg.HasCredential() {
		fetcher = recommend.NewFetcher(cfg.Gemini, logger)
	} else {
		logger.Info("no Gemini credential configured, recommendations use the local catalog")
	}
	return recommend.NewRecommender(cat, fetcher, logger)
}

func buildAssistant(ctx context.Context) *assistant.Assistant {
	var model assistant.ChatModel
	if cfg.HasCredential() {
		chat, err := assistant.NewGenAIChat(ctx, cfg.Gemini.APIKey, cfg.Gemini.ChatModel)
		if err != nil {
			logger.Warn("chat model unavailable, assistant uses the local knowledge base", zap.Error(err))
		} else {
			model = chat
		}
	}
	return assistant.New(model, cfg.Gemini.APIKey, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := session.NewStore(cfg.GetSessionTTL())
	defer sessions.Close()

	srv := server.New(server.Deps{
		Catalog:     catalog.Default(),
		Recommender: buildRecommender(),
		Assistant:   buildAssistant(ctx),
		Offices:     offices.Default(),
		Sessions:    sessions,
		Logger:      logger,
		Version:     cfg.Version,
	})

	return srv.Run(ctx, cfg.Server.Addr, cfg.GetShutdownTimeout())
}

func runRecommend(cmd *cobra.Command, args []string) error {
	var prof profile.Profile
	if recommendProfile != "" {
		data, err := os.ReadFile(recommendProfile)
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		if err := json.Unmarshal(data, &prof); err != nil {
			return fmt.Errorf("failed to parse profile: %w", err)
		}
	}

	if recommendCountry != "" {
		prof.Country = recommendCountry
	}
	if recommendNeeds != "" {
		prof.Needs = nil
		for _, part := range strings.Split(recommendNeeds, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				prof.Needs = append(prof.Needs, trimmed)
			}
		}
	}

	result := buildRecommender().Recommend(cmd.Context(), prof.Country, prof.CleanNeeds())

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
