package lookup

import (
	"context"

	"github.com/nicklaw5/helix/v2"
)

// TwitchClient represents the subset of Twitch API client functionality used
// to proxy game and video lookups on behalf of the frontend
type TwitchClient interface {
	GetGames(params *helix.GamesParams) (*helix.GamesResponse, error)
	GetVideos(params *helix.VideosParams) (*helix.VideosResponse, error)
}

// NewTwitchClientFunc yields a client whose outbound requests carry the
// given user access token as a bearer credential, alongside our Client-ID
type NewTwitchClientFunc func(ctx context.Context, userAccessToken string) (TwitchClient, error)
