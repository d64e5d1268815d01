package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nicklaw5/helix/v2"

	visibrain "github.com/narke/visibrain-backend"
	"github.com/narke/visibrain-backend/internal/entry"
)

// defaultPageSize is the number of videos requested from upstream when the
// caller doesn't supply 'first'
const defaultPageSize = 10

type Server struct {
	tokenStore      visibrain.TokenStore
	newTwitchClient NewTwitchClientFunc
}

func NewServer(tokenStore visibrain.TokenStore, twitchClientId string) *Server {
	return &Server{
		tokenStore: tokenStore,
		newTwitchClient: func(ctx context.Context, userAccessToken string) (TwitchClient, error) {
			return helix.NewClient(&helix.Options{
				ClientID:        twitchClientId,
				UserAccessToken: userAccessToken,
			})
		},
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.Path("/get-game-id").Methods("GET").HandlerFunc(s.handleGetGameId)
	api.Path("/search-videos").Methods("GET").HandlerFunc(s.handleSearchVideos)
}

// handleGetGameId (GET /api/get-game-id) resolves a game name to its Twitch
// game ID via the Helix games endpoint
func (s *Server) handleGetGameId(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	gameName := req.URL.Query().Get("game_name")
	if gameName == "" {
		http.Error(res, "'game_name' value not found in URL query params", http.StatusBadRequest)
		return
	}

	c, ok := s.clientFromStoredToken(res, req)
	if !ok {
		return
	}

	r, err := c.GetGames(&helix.GamesParams{
		Names: []string{gameName},
	})
	if err != nil {
		logger.Error("Failed to get games from Twitch", "error", err)
		http.Error(res, fmt.Sprintf("failed to get games from Twitch: %v", err), http.StatusBadGateway)
		return
	}
	if r.StatusCode != http.StatusOK {
		logger.Error("Got error response from get games request",
			"status", r.StatusCode,
			"message", r.ErrorMessage,
		)
		http.Error(res, fmt.Sprintf("got response %d from get games request", r.StatusCode), r.StatusCode)
		return
	}
	if len(r.Data.Games) == 0 {
		http.Error(res, "game not found", http.StatusNotFound)
		return
	}

	// Multiple matches are possible; upstream ordering breaks the tie and we
	// always take the first entry
	result := GameIdResult{GameId: r.Data.Games[0].ID}
	if err := json.NewEncoder(res).Encode(result); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

// handleSearchVideos (GET /api/search-videos) lists the videos archived for
// a game, forwarding the caller's page size and pagination cursor upstream
func (s *Server) handleSearchVideos(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	q := req.URL.Query()
	gameId := q.Get("game_id")
	if gameId == "" {
		http.Error(res, "'game_id' value not found in URL query params", http.StatusBadRequest)
		return
	}
	first := defaultPageSize
	if firstValue := q.Get("first"); firstValue != "" {
		parsed, err := strconv.Atoi(firstValue)
		if err != nil || parsed < 1 {
			http.Error(res, "'first' must be a positive integer", http.StatusBadRequest)
			return
		}
		first = parsed
	}

	c, ok := s.clientFromStoredToken(res, req)
	if !ok {
		return
	}

	r, err := c.GetVideos(&helix.VideosParams{
		GameID: gameId,
		First:  first,
		After:  q.Get("after"),
	})
	if err != nil {
		logger.Error("Failed to get videos from Twitch", "error", err)
		http.Error(res, fmt.Sprintf("failed to get videos from Twitch: %v", err), http.StatusBadGateway)
		return
	}
	if r.StatusCode != http.StatusOK {
		logger.Error("Got error response from get videos request",
			"status", r.StatusCode,
			"message", r.ErrorMessage,
		)
		http.Error(res, fmt.Sprintf("got response %d from get videos request", r.StatusCode), r.StatusCode)
		return
	}

	result := VideosResult{
		Videos:     r.Data.Videos,
		Pagination: r.Data.Pagination,
	}
	if err := json.NewEncoder(res).Encode(result); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

// clientFromStoredToken initializes a Twitch API client authorized with the
// stored user access token, writing an error response and returning false if
// no token has been obtained yet: a lookup must never be forwarded upstream
// with an empty bearer credential
func (s *Server) clientFromStoredToken(res http.ResponseWriter, req *http.Request) (TwitchClient, bool) {
	logger := entry.Log(req)

	token, err := s.tokenStore.Get(req.Context())
	if err != nil {
		if errors.Is(err, visibrain.ErrNoToken) {
			http.Error(res, "not authenticated: visit /login to authorize with Twitch", http.StatusUnauthorized)
		} else {
			logger.Error("Failed to read stored access token", "error", err)
			http.Error(res, fmt.Sprintf("failed to read stored access token: %v", err), http.StatusInternalServerError)
		}
		return nil, false
	}

	c, err := s.newTwitchClient(req.Context(), token.AccessToken)
	if err != nil {
		logger.Error("Failed to initialize Twitch API client", "error", err)
		http.Error(res, fmt.Sprintf("failed to initialize Twitch API client: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return c, true
}
