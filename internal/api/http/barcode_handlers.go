package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/realfood-labs/realfood-score/internal/openfoodfacts"
	"github.com/realfood-labs/realfood-score/internal/scoring"
)

// ProductSource resolves barcodes and search terms to products.
// *openfoodfacts.Client satisfies it; tests use an in-memory fake.
type ProductSource interface {
	Lookup(ctx context.Context, barcode string) (*openfoodfacts.Product, error)
	Search(ctx context.Context, query string, page, pageSize int) ([]openfoodfacts.Summary, error)
}

// ProductInfo is the provenance metadata attached to barcode-driven reports.
// NOVA group and Nutri-Score come from the product database for comparison,
// they do not affect the score.
type ProductInfo struct {
	Barcode    string `json:"barcode"`
	Brand      string `json:"brand"`
	ImageURL   string `json:"image_url"`
	NovaGroup  string `json:"nova_group"`
	NutriScore string `json:"nutriscore"`
}

type barcodeReport struct {
	scoring.Report
	ProductInfo ProductInfo `json:"product_info"`
}

type noDataResponse struct {
	ProductInfo ProductInfo `json:"product_info"`
	Error       string      `json:"error"`
}

// GET /barcode/{code}
func BarcodeScoreHandler(products ProductSource, scorer *scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			http.Error(w, "barcode required", http.StatusBadRequest)
			return
		}

		p, err := products.Lookup(r.Context(), code)
		if errors.Is(err, openfoodfacts.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "product lookup failed", http.StatusBadGateway)
			return
		}

		info := ProductInfo{
			Barcode:    p.Barcode,
			Brand:      p.Brand,
			ImageURL:   p.ImageURL,
			NovaGroup:  p.NovaGroup,
			NutriScore: p.NutriScore,
		}

		// Products without ingredient data get a distinct "no data" payload;
		// the scorer is never invoked with an empty lookup result.
		text := p.IngredientText()
		if strings.TrimSpace(text) == "" {
			writeJSON(w, noDataResponse{
				ProductInfo: info,
				Error:       "No ingredient data available for this product",
			})
			return
		}

		writeJSON(w, barcodeReport{
			Report:      scorer.ScoreProduct(p.Name, text),
			ProductInfo: info,
		})
	}
}

// GET /search?q=term&page=1&page_size=10
func SearchHandler(products ProductSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Error(w, "missing 'q' parameter", http.StatusBadRequest)
			return
		}
		page := intParam(r, "page", 1)
		pageSize := intParam(r, "page_size", 10)

		results, err := products.Search(r.Context(), query, page, pageSize)
		if err != nil {
			http.Error(w, "product search failed", http.StatusBadGateway)
			return
		}
		writeJSON(w, results)
	}
}

func intParam(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
