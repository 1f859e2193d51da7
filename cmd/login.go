package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grubline/grubline/internal/models"
)

var loginAsVendor bool

var loginCmd = &cobra.Command{
	Use:   "login <token>",
	Short: "Store a session token for authenticated calls",
	Long:  `Stores a bearer token in the local state database. User and vendor sessions are kept under separate keys; every API call reads the token fresh, so a new login takes effect immediately.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		key := models.StoreKeyUserToken
		if loginAsVendor {
			key = models.StoreKeyVendorToken
		}
		if err := a.kv.Set(key, args[0]); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		fmt.Println("token stored")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.kv.Delete(models.StoreKeyUserToken); err != nil {
			return err
		}
		if err := a.kv.Delete(models.StoreKeyVendorToken); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginAsVendor, "vendor", false, "store the token as the vendor session")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
