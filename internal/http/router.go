package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-deals-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("POST /next", handler.Next)
	mux.HandleFunc("POST /previous", handler.Previous)
	mux.HandleFunc("POST /load-more", handler.LoadMore)
	mux.HandleFunc("GET /deals/{dealId}", handler.Detail)

	mux.HandleFunc("GET /api/deals", handler.ListDeals)
	mux.HandleFunc("POST /api/deals/next", handler.NextPage)
	mux.HandleFunc("POST /api/deals/previous", handler.PreviousPage)
	mux.HandleFunc("POST /api/deals/load-more", handler.MorePage)
	mux.HandleFunc("GET /api/deals/{dealId}", handler.DealByID)

	mux.HandleFunc("/", handler.NotFound)
	return mux
}
