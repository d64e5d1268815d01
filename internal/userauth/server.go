package userauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/nicklaw5/helix/v2"

	visibrain "github.com/narke/visibrain-backend"
	"github.com/narke/visibrain-backend/internal/entry"
)

// requiredScopes are the user scopes requested when initiating the OAuth
// challenge: the lookups we proxy only need the default level of API access,
// so this stays minimal
var requiredScopes = []string{"user:read:email"}

type Server struct {
	twitchClientId string
	redirectUri    string
	frontendUrl    string

	tokenStore      visibrain.TokenStore
	newTwitchClient NewTwitchClientFunc
	csrf            *csrfBuffer
}

func NewServer(tokenStore visibrain.TokenStore, twitchClientId, twitchClientSecret, redirectUri, frontendUrl string) *Server {
	return &Server{
		twitchClientId: twitchClientId,
		redirectUri:    redirectUri,
		frontendUrl:    frontendUrl,
		tokenStore:     tokenStore,
		newTwitchClient: func(ctx context.Context) (TwitchClient, error) {
			return helix.NewClient(&helix.Options{
				ClientID:     twitchClientId,
				ClientSecret: twitchClientSecret,
				RedirectURI:  redirectUri,
			})
		},
		csrf: &csrfBuffer{
			tokens: make([]csrfToken, 0, 8),
		},
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/login").Methods("GET").HandlerFunc(s.handleLogin)
	r.Path("/callback").Methods("GET").HandlerFunc(s.handleCallback)
}

// handleLogin (GET /login) redirects the user to the Twitch-hosted OAuth
// challenge page where they can authorize our application
func (s *Server) handleLogin(res http.ResponseWriter, req *http.Request) {
	u, err := url.Parse("https://id.twitch.tv/oauth2/authorize")
	if err != nil {
		panic(err)
	}
	q := u.Query()
	q.Add("response_type", "code")
	q.Add("client_id", s.twitchClientId)
	q.Add("redirect_uri", s.redirectUri)
	q.Add("scope", strings.Join(requiredScopes, " "))
	q.Add("state", s.csrf.generate())
	u.RawQuery = q.Encode()

	res.Header().Set("location", u.String())
	res.WriteHeader(http.StatusFound)
}

// handleCallback (GET /callback) receives the authorization code from
// Twitch, exchanges it for a user access token, persists that token, and
// sends the user back to the frontend
func (s *Server) handleCallback(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	// Verify the CSRF token carried in the 'state' parameter
	stateValue := req.URL.Query().Get("state")
	if stateValue == "" {
		http.Error(res, "'state' value not found in URL query params", http.StatusBadRequest)
		return
	}
	if !s.csrf.check(stateValue) {
		http.Error(res, "CSRF token verification failed", http.StatusBadRequest)
		return
	}

	code := req.URL.Query().Get("code")
	if code == "" {
		http.Error(res, "'code' value not found in URL query params", http.StatusBadRequest)
		return
	}

	c, err := s.newTwitchClient(req.Context())
	if err != nil {
		logger.Error("Failed to initialize Twitch API client", "error", err)
		http.Error(res, fmt.Sprintf("failed to initialize Twitch API client: %v", err), http.StatusInternalServerError)
		return
	}

	// Exchange the authorization code for a user access token: helix issues
	// a form-encoded POST to the id.twitch.tv token endpoint with our client
	// credentials, the code, and grant_type=authorization_code
	r, err := c.RequestUserAccessToken(code)
	if err != nil {
		logger.Error("Failed to reach Twitch token endpoint", "error", err)
		http.Error(res, fmt.Sprintf("failed to reach Twitch token endpoint: %v", err), http.StatusBadGateway)
		return
	}
	if r.Data.AccessToken == "" {
		description := r.ErrorMessage
		if description == "" {
			description = "no error description provided"
		}
		logger.Error("Authorization code exchange failed",
			"status", r.StatusCode,
			"description", description,
		)
		http.Error(res, fmt.Sprintf("failed to obtain access token: %s", description), http.StatusBadRequest)
		return
	}

	// Upsert the single token record: any previously stored token is
	// replaced by this one
	err = s.tokenStore.Save(req.Context(), visibrain.Token{
		AccessToken:  r.Data.AccessToken,
		RefreshToken: r.Data.RefreshToken,
	})
	if err != nil {
		logger.Error("Failed to save access token", "error", err)
		http.Error(res, fmt.Sprintf("failed to save access token: %v", err), http.StatusInternalServerError)
		return
	}
	logger.Info("Obtained and stored a new user access token")

	res.Header().Set("location", s.frontendUrl)
	res.WriteHeader(http.StatusFound)
}
