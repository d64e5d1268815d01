package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/nicklaw5/helix/v2"
)

var videosGameId *string
var videosFirst *int
var videosAfter *string

func initVideosCommand(cmd *flag.FlagSet) {
	videosGameId = cmd.String("game-id", "", "Twitch ID of the game to list videos for")
	videosFirst = cmd.Int("first", 10, "page size")
	videosAfter = cmd.String("after", "", "pagination cursor from a previous page")
}

func runVideosCommand(client *helix.Client) error {
	if *videosGameId == "" {
		return fmt.Errorf("-game-id is required")
	}
	r, err := client.GetVideos(&helix.VideosParams{
		GameID: *videosGameId,
		First:  *videosFirst,
		After:  *videosAfter,
	})
	if err != nil {
		return err
	}
	if r.StatusCode != http.StatusOK {
		return fmt.Errorf("got response %d from get videos request: %s", r.StatusCode, r.ErrorMessage)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "    ")
	return encoder.Encode(r.Data)
}
