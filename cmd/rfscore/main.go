package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/realfood-labs/realfood-score/internal/config"
	"github.com/realfood-labs/realfood-score/internal/openfoodfacts"
	"github.com/realfood-labs/realfood-score/internal/scoring"
)

func main() {
	name := flag.String("name", "", "product name for inline scoring")
	ingredients := flag.String("ingredients", "", "comma-separated ingredient list to score directly")
	pageSize := flag.Int("page-size", 5, "search results per page")
	flag.Usage = usage
	flag.Parse()

	cfg := config.FromEnv()

	weights := scoring.DefaultWeights()
	if cfg.WeightsFile != "" {
		var err error
		weights, err = scoring.LoadWeights(cfg.WeightsFile)
		if err != nil {
			log.Fatalf("weights: %v", err)
		}
	}
	scorer, err := scoring.NewScorer(weights)
	if err != nil {
		log.Fatalf("scorer: %v", err)
	}

	// Inline scoring needs no network.
	if *ingredients != "" {
		n := *name
		if n == "" {
			n = "Unknown Product"
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scorer.ScoreProduct(n, *ingredients)); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	arg := strings.TrimSpace(flag.Arg(0))
	if arg == "" {
		usage()
		os.Exit(2)
	}

	off := openfoodfacts.NewClient(cfg.OFFBaseURL, cfg.OFFUserAgent, cfg.OFFTimeout, cfg.OFFCacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if code := openfoodfacts.NormalizeBarcode(arg); isDigits(code) {
		lookupAndScore(ctx, off, scorer, code)
		return
	}
	search(ctx, off, arg, *pageSize)
}

func lookupAndScore(ctx context.Context, off *openfoodfacts.Client, scorer *scoring.Scorer, code string) {
	fmt.Printf("Looking up barcode: %s...\n", code)

	p, err := off.Lookup(ctx, code)
	if err == openfoodfacts.ErrNotFound {
		fmt.Println("Product not found in database.")
		return
	}
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}

	text := p.IngredientText()
	if strings.TrimSpace(text) == "" {
		fmt.Printf("Found: %s\n", p.Name)
		fmt.Println("No ingredient data available for this product.")
		return
	}

	rep := scorer.ScoreProduct(p.Name, text)

	fmt.Printf("\nProduct: %s\n", rep.Product)
	if p.Brand != "" {
		fmt.Printf("Brand: %s\n", p.Brand)
	}
	fmt.Printf("\n  MAHA (RFK): %5.1f (%s)\n", rep.Scores.Priority.Score, rep.Scores.Priority.Grade)
	fmt.Printf("  Guideline:  %5.1f (%s)\n", rep.Scores.Guideline.Score, rep.Scores.Guideline.Grade)
	fmt.Printf("  Practical:  %5.1f (%s)\n", rep.Scores.Practical.Score, rep.Scores.Practical.Grade)
	if p.NovaGroup != "" {
		fmt.Printf("\n  NOVA Group: %s (for comparison)\n", p.NovaGroup)
	}
	if len(rep.Flags) > 0 {
		fmt.Printf("\n  Flags: %s\n", strings.Join(rep.Flags, ", "))
	}
}

func search(ctx context.Context, off *openfoodfacts.Client, query string, pageSize int) {
	fmt.Printf("Searching for: %s...\n", query)

	products, err := off.Search(ctx, query, 1, pageSize)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	fmt.Printf("\nFound %d products:\n\n", len(products))
	for i, p := range products {
		fmt.Printf("  %d. %s (%s)\n", i+1, p.Name, p.Brand)
		fmt.Printf("     Barcode: %s\n", p.Barcode)
		if p.IngredientsText != "" {
			preview := p.IngredientsText
			if len(preview) > 60 {
				preview = preview[:60] + "..."
			}
			fmt.Printf("     Ingredients: %s\n", preview)
		}
		fmt.Println()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  rfscore <barcode>                         look up a barcode and print its scores
  rfscore <search term>                     search products by name
  rfscore -name NAME -ingredients "a, b"    score an ingredient list directly
`)
	flag.PrintDefaults()
}
