package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/codingconcepts/env"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	visibrain "github.com/narke/visibrain-backend"
	"github.com/narke/visibrain-backend/internal/cors"
	"github.com/narke/visibrain-backend/internal/entry"
	"github.com/narke/visibrain-backend/internal/lookup"
	"github.com/narke/visibrain-backend/internal/tokenstore"
	"github.com/narke/visibrain-backend/internal/userauth"
)

type Config struct {
	BindAddr   string `env:"BIND_ADDR"`
	ListenPort uint16 `env:"LISTEN_PORT" default:"8000"`

	TwitchClientId     string `env:"CLIENT_ID" required:"true"`
	TwitchClientSecret string `env:"CLIENT_SECRET" required:"true"`
	RedirectUri        string `env:"REDIRECT_URI" required:"true"`
	FrontendUrl        string `env:"FRONTEND_URL" required:"true"`

	// If set, the access token is persisted to a sqlite database at this
	// path; otherwise it's held in memory and lost on restart
	DatabasePath string `env:"DATABASE_PATH"`
}

func main() {
	app, ctx := entry.NewApplication("visibrain")
	defer app.Stop()

	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		app.Fail("Failed to load .env file", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		app.Fail("Failed to load config", err)
	}

	// Initialize the store that holds the single shared user access token
	var tokenStore visibrain.TokenStore
	if config.DatabasePath != "" {
		store, err := tokenstore.Open(config.DatabasePath)
		if err != nil {
			app.Fail("Failed to open token database", err)
		}
		defer store.Close()
		tokenStore = store
		app.Log().Info("Using sqlite token store", "path", config.DatabasePath)
	} else {
		tokenStore = tokenstore.NewMemoryStore()
		app.Log().Info("Using in-memory token store; tokens will not survive a restart")
	}

	// Start setting up our HTTP handlers, using gorilla/mux for routing
	r := mux.NewRouter()

	r.Path("/").Methods("GET").HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		json.NewEncoder(res).Encode(map[string]string{
			"message": "Search video games streams on Twitch.",
		})
	})

	// The user can GET /login to initiate an OAuth code grant flow against
	// Twitch; the redirect_uri for that flow sends an authorization code
	// back to GET /callback, where it's exchanged for the access token used
	// by all lookups
	userauthServer := userauth.NewServer(
		tokenStore,
		config.TwitchClientId,
		config.TwitchClientSecret,
		config.RedirectUri,
		config.FrontendUrl,
	)
	userauthServer.RegisterRoutes(r)

	// The frontend can GET /api/get-game-id and GET /api/search-videos to
	// proxy game and video lookups through the stored token
	lookupServer := lookup.NewServer(tokenStore, config.TwitchClientId)
	lookupServer.RegisterRoutes(r)

	// CORS wraps the router itself rather than being registered via mux
	// middleware, so that preflight OPTIONS requests are answered even
	// though no route matches them
	handler := cors.Middleware(config.FrontendUrl)(r)

	// Handle incoming HTTP connections until our top-level context is
	// canceled, at which point shut down cleanly
	entry.RunServer(ctx, app.Log(), handler, config.BindAddr, config.ListenPort)
}
