package main

import (
	"os"

	_ "github.com/kurobbs/core/board/events"
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/core/config"
	"github.com/kurobbs/core/core/shell"
	"github.com/kurobbs/core/deps"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kurobbs",
		Short: "Moderation & trust scoring core service.",
	}

	rootCmd.PersistentFlags().StringVar(&deps.MongoURL, "mongo", env("MONGO_URL", "localhost"), "mongoDB connection url")
	rootCmd.PersistentFlags().StringVar(&deps.MongoName, "mongo-name", env("MONGO_NAME", "kurobbs"), "mongoDB database name")
	rootCmd.PersistentFlags().StringVar(&deps.RedisURL, "redis", env("REDIS_URL", "localhost:6379"), "redis cache address")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "service",
		Short: "Runs the moderation engine alongside the board.",
		Run: func(cmd *cobra.Command, args []string) {
			config.Bootstrap()
			deps.Bootstrap()
			select {}
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Zeroes out counts on approved reports older than a year.",
		Long:  "Intended to run daily from cron; reprocessing already swept rows touches nothing.",
		Run: func(cmd *cobra.Command, args []string) {
			config.Bootstrap()
			deps.Bootstrap()
			n, err := reports.ResetExpiredOutCounts(deps.Container)
			if err != nil {
				deps.Container.Log().Fatal(err)
			}
			deps.Container.Log().Noticef("out count sweep done, %d reports expired", n)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Interactive maintenance shell.",
		Run: func(cmd *cobra.Command, args []string) {
			config.Bootstrap()
			deps.Bootstrap()
			shell.RunShell()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
