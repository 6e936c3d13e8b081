package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringP("output", "o", "", "output file (defaults to the artifact name)")
}

var downloadCmd = &cobra.Command{
	Use:   "download <artifact-name>",
	Short: "Download an encrypted artifact from the server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = filepath.Base(name)
		}

		f, err := os.Create(output)
		if err != nil {
			fmt.Println("Error creating output file:", err)
			return
		}
		defer f.Close()

		if err := api().Download(name, f); err != nil {
			fmt.Println("Download failed:", err)
			os.Remove(output)
			return
		}
		fmt.Println("Saved to", output)
	},
}
