// Package userauth implements the Twitch OAuth2 authorization code grant
// flow that the rest of the service depends on, as described here:
//
// - https://dev.twitch.tv/docs/authentication/getting-tokens-oauth/#authorization-code-grant-flow
//
// GET /login redirects the user to a Twitch-hosted OAuth challenge where
// they can grant our application access to their account. Twitch then sends
// the user back to GET /callback (our registered redirect URI) carrying a
// short-lived authorization code, which we exchange server-side for a User
// Access Token. That token is persisted as the single shared credential used
// to authorize all subsequent Helix API lookups, and the user is redirected
// back to the frontend.
//
// There is deliberately no per-user token isolation: the service acts on
// behalf of whoever completed the flow most recently, and each successful
// exchange overwrites the one stored token.
package userauth
