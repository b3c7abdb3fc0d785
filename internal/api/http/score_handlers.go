package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/realfood-labs/realfood-score/internal/scoring"
)

// MountRoutes attaches the scoring API to a router.
func MountRoutes(r chi.Router, scorer *scoring.Scorer, products ProductSource) {
	r.Get("/", IndexHandler())
	r.Get("/score", ScoreHandler(scorer))
	r.Get("/barcode/{code}", BarcodeScoreHandler(products, scorer))
	r.Get("/search", SearchHandler(products))
}

// GET /score?name=...&ingredients=a,b,c
func ScoreHandler(scorer *scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "Unknown Product"
		}
		ingredients := r.URL.Query().Get("ingredients")
		if ingredients == "" {
			http.Error(w, "missing 'ingredients' parameter", http.StatusBadRequest)
			return
		}
		writeJSON(w, scorer.ScoreProduct(name, ingredients))
	}
}

// GET / serves a minimal landing page with a score form.
func IndexHandler() http.HandlerFunc {
	const page = `<html>
<head><title>Real Food Score API</title></head>
<body>
	<h1>Real Food Score API</h1>
	<p>Score food products against realfood.gov guidelines.</p>
	<h2>Endpoints</h2>
	<ul>
		<li><code>GET /score?name=Product&amp;ingredients=a,b,c</code></li>
		<li><code>GET /barcode/{code}</code></li>
		<li><code>GET /search?q=term</code></li>
		<li><code>GET /healthz</code></li>
	</ul>
	<h2>Try it</h2>
	<form action="/score" method="get">
		<label>Product: <input name="name" value="Test Product"></label><br><br>
		<label>Ingredients: <input name="ingredients" size="50" value="chicken, rice, olive oil, salt"></label><br><br>
		<button type="submit">Score</button>
	</form>
</body>
</html>
`
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
