package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultBaseURL is the public Open Food Facts instance.
const DefaultBaseURL = "https://world.openfoodfacts.org"

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = time.Hour
)

// ErrNotFound means the barcode has no product in the database.
var ErrNotFound = errors.New("product not found")

// Product is the subset of an Open Food Facts record the scorer needs.
type Product struct {
	Barcode         string   `json:"barcode"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	IngredientsText string   `json:"ingredients_text"`
	IngredientsList []string `json:"ingredients_list"`
	ImageURL        string   `json:"image_url"`
	NutriScore      string   `json:"nutriscore"`
	NovaGroup       string   `json:"nova_group"` // 1-4 processing level, "" if unknown
	Categories      string   `json:"categories"`
}

// IngredientText returns the raw ingredient text, falling back to joining the
// structured ingredient list when the free-text field is empty.
func (p *Product) IngredientText() string {
	if p.IngredientsText != "" {
		return p.IngredientsText
	}
	return strings.Join(p.IngredientsList, ", ")
}

// Summary is one product search hit.
type Summary struct {
	Barcode         string `json:"barcode"`
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	IngredientsText string `json:"ingredients_text"`
	ImageURL        string `json:"image_url"`
}

// Client is an Open Food Facts API client with a TTL cache over lookups.
// Safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewClient creates a client. Zero values fall back to the public instance,
// a 10s timeout and a 1h lookup cache.
func NewClient(baseURL, userAgent string, timeout, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "RealFoodScore/1.0"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// NormalizeBarcode strips spaces and dashes from a scanned code.
func NormalizeBarcode(code string) string {
	code = strings.ReplaceAll(code, " ", "")
	return strings.ReplaceAll(code, "-", "")
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName     string `json:"product_name"`
		Brands          string `json:"brands"`
		IngredientsText string `json:"ingredients_text"`
		Ingredients     []struct {
			Text string `json:"text"`
		} `json:"ingredients"`
		ImageURL        string      `json:"image_url"`
		NutriscoreGrade string      `json:"nutriscore_grade"`
		NovaGroup       json.Number `json:"nova_group"`
		Categories      string      `json:"categories"`
	} `json:"product"`
}

// Lookup fetches a product by barcode/UPC/EAN. Returns ErrNotFound when the
// database has no entry; transport failures are wrapped, never swallowed.
func (c *Client) Lookup(ctx context.Context, barcode string) (*Product, error) {
	code := NormalizeBarcode(barcode)

	cacheKey := "product:" + code
	if v, ok := c.cache.Get(cacheKey); ok {
		return v.(*Product), nil
	}

	var res productResponse
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	if res.Status != 1 {
		return nil, ErrNotFound
	}

	p := &Product{
		Barcode:         code,
		Name:            res.Product.ProductName,
		Brand:           res.Product.Brands,
		IngredientsText: res.Product.IngredientsText,
		ImageURL:        res.Product.ImageURL,
		NutriScore:      res.Product.NutriscoreGrade,
		NovaGroup:       res.Product.NovaGroup.String(),
		Categories:      res.Product.Categories,
	}
	if p.Name == "" {
		p.Name = "Unknown Product"
	}
	for _, ing := range res.Product.Ingredients {
		if ing.Text != "" {
			p.IngredientsList = append(p.IngredientsList, ing.Text)
		}
	}

	c.cache.Set(cacheKey, p, gocache.DefaultExpiration)
	return p, nil
}

type searchResponse struct {
	Products []struct {
		Code            string `json:"code"`
		ProductName     string `json:"product_name"`
		Brands          string `json:"brands"`
		IngredientsText string `json:"ingredients_text"`
		ImageSmallURL   string `json:"image_small_url"`
	} `json:"products"`
}

// Search queries products by name. Page is 1-indexed.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) ([]Summary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	params := url.Values{
		"search_terms": {query},
		"page":         {strconv.Itoa(page)},
		"page_size":    {strconv.Itoa(pageSize)},
		"json":         {"1"},
	}

	var res searchResponse
	if err := c.get(ctx, c.baseURL+"/cgi/search.pl?"+params.Encode(), &res); err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(res.Products))
	for _, p := range res.Products {
		name := p.ProductName
		if name == "" {
			name = "Unknown"
		}
		out = append(out, Summary{
			Barcode:         p.Code,
			Name:            name,
			Brand:           p.Brands,
			IngredientsText: p.IngredientsText,
			ImageURL:        p.ImageSmallURL,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("open food facts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("open food facts %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode open food facts response: %w", err)
	}
	return nil
}
