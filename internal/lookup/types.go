package lookup

import "github.com/nicklaw5/helix/v2"

// GameIdResult is the response envelope for GET /api/get-game-id: when
// upstream returns more than one match, the ID is that of the first entry in
// upstream's returned order
type GameIdResult struct {
	GameId string `json:"game_id"`
}

// VideosResult is the response envelope for GET /api/search-videos. The
// pagination object is passed through from upstream opaquely: resupplying
// its cursor as 'after' fetches the next page.
type VideosResult struct {
	Videos     []helix.Video    `json:"videos"`
	Pagination helix.Pagination `json:"pagination"`
}
