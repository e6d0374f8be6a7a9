// StockMood — stock news sentiment aggregation service.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/stockmood/api"
	"github.com/seenimoa/stockmood/internal/analysis/sentiment"
	"github.com/seenimoa/stockmood/internal/config"
	"github.com/seenimoa/stockmood/internal/datasource"
	"github.com/seenimoa/stockmood/internal/history"
	"github.com/seenimoa/stockmood/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockmood",
	Short: "StockMood — stock news sentiment aggregation",
	Long: `StockMood aggregates news for stock tickers, scores each article's
sentiment with a deterministic lexicon model, and keeps a bounded
per-ticker history of the aggregate signal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("StockMood %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("Starting StockMood API server on %s\n", addr)
		return api.NewServer(cfg).ListenAndServe(addr)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "Fetch recent news for a ticker and print its sentiment summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := utils.NormalizeTicker(args[0])

		var news datasource.NewsProvider
		if cfg.News.NewsAPIKey != "" {
			news = datasource.NewNewsAPI(cfg.News.NewsAPIKey)
		} else {
			news = datasource.NewRSS(nil)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		articles, err := news.StockNews(ctx, ticker)
		if err != nil {
			return fmt.Errorf("fetch news for %s: %w", ticker, err)
		}

		result := sentiment.NewAnalyzer().Aggregate(articles)
		if record, _ := cmd.Flags().GetBool("record"); record && len(result.AnalyzedArticles) > 0 {
			history.NewStore(cfg.History.File).Append(ticker, result.Score)
		}

		return printJSON(result)
	},
}

func init() {
	analyzeCmd.Flags().Bool("record", false, "append the result to the sentiment history")
}

// --- History Command ---

var historyCmd = &cobra.Command{
	Use:   "history [ticker]",
	Short: "Print the stored sentiment history for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := utils.NormalizeTicker(args[0])
		store := history.NewStore(cfg.History.File)
		return printJSON(map[string]any{
			"ticker":  ticker,
			"history": store.Query(ticker),
		})
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
