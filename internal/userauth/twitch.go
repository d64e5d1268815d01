package userauth

import (
	"context"

	"github.com/nicklaw5/helix/v2"
)

// TwitchClient represents the subset of Twitch API client functionality used
// to exchange an authorization code for a user access token
type TwitchClient interface {
	RequestUserAccessToken(code string) (*helix.UserAccessTokenResponse, error)
}

type NewTwitchClientFunc func(ctx context.Context) (TwitchClient, error)
