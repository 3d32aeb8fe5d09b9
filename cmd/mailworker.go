/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leettrack/leettrack/config"
	"github.com/leettrack/leettrack/internal/mailer"
	"github.com/leettrack/leettrack/internal/mq"
)

// mailworkerCmd represents the mailworker command
var mailworkerCmd = &cobra.Command{
	Use:   "mailworker",
	Short: "Consume password-reset mail jobs from the queue",
	Long: `Consume password-reset mail jobs published by the backend server
and deliver them. With no SMTP_ADDR configured the reset links are
logged instead of mailed, which is handy for local development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		queue, err := mq.NewFromConfig(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to queue: %v\n", err)
			os.Exit(1)
		}
		defer queue.Close()

		m := mailer.New(os.Getenv("SMTP_ADDR"), os.Getenv("SMTP_FROM"), os.Getenv("APP_BASE_URL"))
		if err := m.Run(cmd.Context(), queue); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "mail worker error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mailworkerCmd)
}
