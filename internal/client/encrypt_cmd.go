package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <server-path>",
	Short: "Encrypt a file that lives on the server host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		downloadURL, err := api().Encrypt(args[0])
		if err != nil {
			fmt.Println("Encryption failed:", err)
			return
		}
		fmt.Println("File encrypted successfully")
		fmt.Println("Download:", serverURL+downloadURL)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <server-path>",
	Short: "Decrypt a file that lives on the server host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		msg, err := api().Decrypt(args[0])
		if err != nil {
			fmt.Println("Decryption failed:", err)
			return
		}
		fmt.Println(msg)
	},
}
