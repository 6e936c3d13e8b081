package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connection to the server",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Pinging %s...\n", serverURL)
		latency, err := api().Ping()
		if err != nil {
			fmt.Printf("Failed to ping server: %v\n", err)
			return
		}
		fmt.Printf("Pong! Server is reachable (Latency: %v)\n", latency)
	},
}
