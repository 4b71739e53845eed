package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aipros/console/internal/app"
	"github.com/aipros/console/internal/console"
)

var sendCmd = &cobra.Command{
	Use:   "send [command...]",
	Short: "Send one command and print the reply",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		runOnce(func(ctx context.Context, c *console.Console) {
			c.Submit(ctx, text)
		})
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick [label...]",
	Short: "Run a quick command label, e.g. \"🔥 Restart Server\"",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		label := strings.Join(args, " ")
		runOnce(func(ctx context.Context, c *console.Console) {
			c.RunQuickCommand(ctx, label)
		})
	},
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Capture one voice command through the backend microphone",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runOnce(func(ctx context.Context, c *console.Console) {
			c.StartVoice(ctx)
		})
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume [command] [choice]",
	Short: "Send a command and answer its confirmation with choice",
	Long: `Send a command; if the backend answers that several matches were
found, resume it with the given choice.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		text, choice := args[0], args[1]
		runOnce(func(ctx context.Context, c *console.Console) {
			c.Submit(ctx, text)
			if c.AwaitingConfirmation() {
				c.Resume(ctx, choice)
			}
		})
	},
}

func runOnce(fn func(context.Context, *console.Console)) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := app.RunOnce(ctx, os.Stdout, appOpts, fn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if failed {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(resumeCmd)
}
