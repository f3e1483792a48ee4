package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type Config struct {
	ServerAddr string `env:"CHAT_SERVER_ADDR,default=localhost:50051"`
	Colours    bool   `env:"CHAT_COLOURS,default=true"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}
	if err := newRootCmd(config).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(config Config) *cobra.Command {
	var address string
	rootCmd := &cobra.Command{
		Use:   "chat-client",
		Short: "Command line client for the chat relay",
		Long: `chat-client talks to a running relay over gRPC.

Available commands:
  send       Publish a message
  stream     Print every new message until interrupted
  history    Show the most recent retained messages
  delete     Remove a message from history`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&address, "addr", config.ServerAddr, "relay gRPC address")

	out := &printer{colours: config.Colours}
	rootCmd.AddCommand(
		newSendCmd(&address, out),
		newStreamCmd(&address, out),
		newHistoryCmd(&address, out),
		newDeleteCmd(&address, out),
	)
	return rootCmd
}
