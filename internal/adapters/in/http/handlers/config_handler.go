// internal/adapters/in/http/handlers/config_handler.go
package handlers

import "net/http"

// ConfigHandler exposes the browser-side configuration the front end cannot
// ship statically. Today that is just the Maps JavaScript key.
type ConfigHandler struct {
	mapsBrowserKey string
}

func NewConfigHandler(mapsBrowserKey string) http.Handler {
	return &ConfigHandler{mapsBrowserKey: mapsBrowserKey}
}

func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/config/maps":
		writeJSON(w, http.StatusOK, map[string]string{"mapsApiKey": h.mapsBrowserKey})
	default:
		notFound(w)
	}
}
