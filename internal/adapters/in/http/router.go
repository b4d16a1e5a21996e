// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"borgo/internal/adapters/in/http/handlers"
	"borgo/internal/application/assistant"
	"borgo/internal/application/query"
	usecase "borgo/internal/application/usecase"
)

// RouterDeps collects everything injected from the DI container. Optional
// dependencies may be nil; their routes simply do not mount.
type RouterDeps struct {
	ShopUC     *usecase.ShopUsecase
	CatalogQ   *query.CatalogQuery
	Shopper    *assistant.PersonalShopper
	SocialPost *assistant.SocialPostWriter
	Images     handlers.ImageStore
	Reporting  handlers.ShopReporting

	MapsBrowserKey string
}

// NewRouter sets up HTTP routing for every endpoint.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.ShopUC != nil {
		sh := handlers.NewShopHandler(deps.ShopUC, deps.CatalogQ)
		if deps.SocialPost != nil {
			sh = sh.WithSocialWriter(deps.SocialPost)
		}
		if deps.Images != nil {
			sh = sh.WithImageStore(deps.Images)
		}
		mux.Handle("/shops", sh)
		mux.Handle("/shops/", sh)
	}

	if deps.Shopper != nil {
		mux.Handle("/assistant/", handlers.NewAssistantHandler(deps.Shopper))
	}

	if deps.Reporting != nil {
		mux.Handle("/reports/", handlers.NewReportHandler(deps.Reporting))
	}

	mux.Handle("/config/", handlers.NewConfigHandler(deps.MapsBrowserKey))

	return mux
}
