package main

import (
	"chat-relay/domain/chat"
	"chat-relay/grpc/client"
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const callTimeout = 10 * time.Second

func newSendCmd(address *string, out *printer) *cobra.Command {
	var sender string
	cmd := &cobra.Command{
		Use:   "send [content...]",
		Short: "Publish a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), *address, func(ctx context.Context, c *client.ChatClient) error {
				msg, err := c.Send(ctx, sender, strings.Join(args, " "))
				if err != nil {
					return err
				}
				out.sent(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&sender, "sender", "s", "Anonymous", "name shown to other participants")
	return cmd
}

func newStreamCmd(address *string, out *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Print every new message until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := client.NewChatClient(*address)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.Stream(ctx, func(msg chat.Message) error {
				out.streamed(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
}

func newHistoryCmd(address *string, out *printer) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent retained messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), *address, func(ctx context.Context, c *client.ChatClient) error {
				messages, err := c.History(ctx, limit)
				if err != nil {
					return err
				}
				out.history(cmd.OutOrStdout(), messages)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of messages")
	return cmd
}

func newDeleteCmd(address *string, out *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <message-id>",
		Short: "Remove a message from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), *address, func(ctx context.Context, c *client.ChatClient) error {
				success, detail, err := c.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				out.deleted(cmd.OutOrStdout(), success, detail)
				return nil
			})
		},
	}
}

// withClient runs a single unary call bounded by callTimeout.
func withClient(parent context.Context, address string, fn func(ctx context.Context, c *client.ChatClient) error) error {
	c, err := client.NewChatClient(address)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(parent, callTimeout)
	defer cancel()
	return fn(ctx, c)
}
