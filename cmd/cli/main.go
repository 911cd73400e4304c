package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockval-cli",
		Short: "Stockval CLI tool",
		Long:  `A command line interface for the stock valuation and ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the stockval API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(reportCmd(), ledgerCmd(), itemsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reportCmd() *cobra.Command {
	var from, to string
	var hideZero bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Valuation reports",
	}
	cmd.PersistentFlags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")

	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Closing-stock report",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if from != "" {
				query.Set("from", from)
			}
			if to != "" {
				query.Set("to", to)
			}
			if hideZero {
				query.Set("hide_zero", "true")
			}
			return fetchAndPrint("/api/v1/reports/stock", query)
		},
	}
	stockCmd.Flags().BoolVar(&hideZero, "hide-zero", false, "Hide items whose closing quantity is zero")

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Closing-balance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if from != "" {
				query.Set("from", from)
			}
			if to != "" {
				query.Set("to", to)
			}
			return fetchAndPrint("/api/v1/reports/balance", query)
		},
	}

	cmd.AddCommand(stockCmd, balanceCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "ledger <item-code>",
		Short: "Itemized running ledger for a stock item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if from != "" {
				query.Set("from", from)
			}
			if to != "" {
				query.Set("to", to)
			}
			return fetchAndPrint("/api/v1/items/"+url.PathEscape(args[0])+"/ledger", query)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")
	return cmd
}

func itemsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if category != "" {
				query.Set("category", category)
			}
			return fetchAndPrint("/api/v1/items", query)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Item category (6=stock, 2=account)")
	return cmd
}

// fetchAndPrint GETs an API path and pretty-prints the JSON response.
func fetchAndPrint(path string, query url.Values) error {
	client := &http.Client{Timeout: timeout}

	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	resp, err := client.Get(target)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	printJSON(payload)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
