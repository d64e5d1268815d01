package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"github.com/nicklaw5/helix/v2"
)

// This CLI runs the same Helix lookups that the server proxies, but
// authorized with an app access token obtained via the client credentials
// grant, so that the games and videos queries can be exercised locally
// without going through the browser-based OAuth flow.

type Config struct {
	TwitchClientId     string `env:"CLIENT_ID" required:"true"`
	TwitchClientSecret string `env:"CLIENT_SECRET" required:"true"`
}

type Command struct {
	name     string
	initFunc func(cmd *flag.FlagSet)
	runFunc  func(client *helix.Client) error
}

var commands = []Command{
	{"game", initGameCommand, runGameCommand},
	{"videos", initVideosCommand, runVideosCommand},
}

func main() {
	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Parse the subcommand that we want to run, or print usage if no match
	var command *Command
	commandName := ""
	if len(os.Args) > 1 {
		commandName = os.Args[1]
	}
	for i := range commands {
		if commands[i].name == commandName {
			command = &commands[i]
			break
		}
	}
	if command == nil {
		commandNames := make([]string, 0, len(commands))
		for i := range commands {
			commandNames = append(commandNames, commands[i].name)
		}
		log.Fatalf("Usage: lookup [%s]", strings.Join(commandNames, "|"))
	}

	// Initialize command-line flags for the chosen subcommand
	flagSet := flag.NewFlagSet(command.name, flag.ExitOnError)
	command.initFunc(flagSet)
	if err := flagSet.Parse(os.Args[2:]); err != nil {
		log.Fatalf("Parse error: %v", err)
	}

	// Initialize a Twitch API client with an app access token
	client, err := newClientWithAppToken(config.TwitchClientId, config.TwitchClientSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Twitch API client: %v", err)
	}

	if err := command.runFunc(client); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func newClientWithAppToken(clientId, clientSecret string) (*helix.Client, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:     clientId,
		ClientSecret: clientSecret,
	})
	if err != nil {
		return nil, err
	}
	r, err := client.RequestAppAccessToken(nil)
	if err != nil {
		return nil, err
	}
	if r.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got response %d from app access token request: %s", r.StatusCode, r.ErrorMessage)
	}
	client.SetAppAccessToken(r.Data.AccessToken)
	return client, nil
}
