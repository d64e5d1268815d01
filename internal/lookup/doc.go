// Package lookup implements the two read-only proxy endpoints consumed by
// the frontend: resolving a game's Helix ID from its name, and listing the
// videos (VODs) archived for a game. Both endpoints attach the stored user
// access token to an outbound Twitch API call and reshape the response into
// a narrow JSON envelope; neither will forward a request until a token has
// been obtained via /login.
package lookup
