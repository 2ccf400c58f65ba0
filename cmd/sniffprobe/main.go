// ABOUTME: Diagnostic probe for the NewsSniff analysis API
// ABOUTME: Exercises the health and analyze endpoints from the command line

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"newssniff-api/sniffclient"
)

func main() {
	baseURL := flag.String("base", sniffclient.DefaultBaseURL, "analysis API base URL")
	input := flag.String("input", "", "URL or text to analyze (skipped when empty)")
	timeout := flag.Duration("timeout", sniffclient.DefaultTimeout, "per-request timeout")
	flag.Parse()

	client, err := sniffclient.NewClient(
		sniffclient.WithBaseURL(*baseURL),
		sniffclient.WithTimeout(*timeout),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	fmt.Printf("Probing %s\n\n", *baseURL)

	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	health, err := client.Health(healthCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %s\n", sniffclient.UserMessage(err))
		os.Exit(1)
	}
	fmt.Printf("Health: %s (%s)\n", health.Status, health.Timestamp.Format(time.RFC3339))

	if *input == "" {
		fmt.Println("\nNo -input given, skipping analysis.")
		return
	}

	fmt.Printf("\nAnalyzing: %s\n", *input)

	session := sniffclient.NewSession(client)
	result, err := session.Submit(ctx, *input)
	if err != nil {
		switch {
		case sniffclient.IsTimeoutError(err):
			fmt.Fprintf(os.Stderr, "Timed out: %s\n", sniffclient.UserMessage(err))
		case sniffclient.IsServerError(err):
			fmt.Fprintf(os.Stderr, "Server error: %s\n", sniffclient.UserMessage(err))
		default:
			fmt.Fprintf(os.Stderr, "Failed: %s\n", sniffclient.UserMessage(err))
		}
		os.Exit(1)
	}

	printResult(result)
}

func printResult(result *sniffclient.Result) {
	state := sniffclient.Thermometer(result.SuspicionScore, false)

	fmt.Printf("\nSuspicion score: %d/100 (%s)\n", result.SuspicionScore, state.Bucket)
	fmt.Printf("Summary: %s\n", result.ContentSummary)

	if lines := sniffclient.FactorLines(result); len(lines) > 0 {
		fmt.Println("\nFactors:")
		for _, line := range lines {
			fmt.Printf("  - %s\n", line)
		}
	}

	if links := sniffclient.SourceLinks(result.SourcesChecked); len(links) > 0 {
		fmt.Println("\nSources checked:")
		for _, link := range links {
			fmt.Printf("  - %s (%s)\n", link.Label, link.URL)
		}
	}

	if result.Details.ExtractionMethod != "" {
		fmt.Printf("\nExtraction: %s, %d chars, %d/%d reliable confirmations\n",
			result.Details.ExtractionMethod,
			result.Details.ContentLength,
			result.Details.ReliableConfirmations,
			result.Details.TotalResults)
	}
}
