package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sendOTPCmd)
	rootCmd.AddCommand(verifyOTPCmd)
}

var sendOTPCmd = &cobra.Command{
	Use:   "send-otp <email>",
	Short: "Email a one-time password to the given address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api().SendOTP(args[0]); err != nil {
			fmt.Println("Sending OTP failed:", err)
			return
		}
		fmt.Println("OTP sent to", args[0])
	},
}

var verifyOTPCmd = &cobra.Command{
	Use:   "verify-otp <code>",
	Short: "Verify a one-time password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api().VerifyOTP(args[0]); err != nil {
			fmt.Println("Verification failed:", err)
			return
		}
		fmt.Println("OTP verified successfully")
	},
}
