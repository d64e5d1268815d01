package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/nicklaw5/helix/v2"
)

var gameName *string

func initGameCommand(cmd *flag.FlagSet) {
	gameName = cmd.String("name", "", "exact name of the game to resolve")
}

func runGameCommand(client *helix.Client) error {
	if *gameName == "" {
		return fmt.Errorf("-name is required")
	}
	r, err := client.GetGames(&helix.GamesParams{
		Names: []string{*gameName},
	})
	if err != nil {
		return err
	}
	if r.StatusCode != http.StatusOK {
		return fmt.Errorf("got response %d from get games request: %s", r.StatusCode, r.ErrorMessage)
	}
	if len(r.Data.Games) == 0 {
		return fmt.Errorf("no game found with name '%s'", *gameName)
	}
	for _, game := range r.Data.Games {
		fmt.Printf("%s\t%s\n", game.ID, game.Name)
	}
	return nil
}
