package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grubline/grubline/internal/models"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage the vendor profile",
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendors on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		vendors, err := a.res.Vendors(context.Background())
		if err != nil {
			return err
		}
		for _, v := range vendors {
			fmt.Printf("%-26s  %-28s  %-16s  %.1f\n", v.ID, v.Name, v.Town, v.Rating)
		}
		return nil
	},
}

var vendorGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		vendor, err := a.res.Vendor(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(vendor)
	},
}

var (
	vendorName    string
	vendorPhone   string
	vendorAddress string
	vendorTown    string
)

var vendorUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the vendor profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		vendor, err := a.res.Vendor(ctx, args[0])
		if err != nil {
			return err
		}

		edited := *vendor
		if cmd.Flags().Changed("name") {
			edited.Name = vendorName
		}
		if cmd.Flags().Changed("phone") {
			edited.Phone = vendorPhone
		}
		if cmd.Flags().Changed("address") {
			edited.Address = vendorAddress
		}
		if cmd.Flags().Changed("town") {
			edited.Town = vendorTown
		}

		confirmed, err := a.res.UpdateVendor(ctx, args[0], &edited)
		if err != nil {
			return err
		}
		return printJSON(confirmed)
	},
}

var vendorDeleteConfirm bool

var vendorDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete the vendor account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !vendorDeleteConfirm {
			return errors.New("refusing to delete without --yes")
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.res.DeleteVendor(context.Background(), args[0]); err != nil {
			return err
		}
		// The vendor session is gone with the account.
		if err := a.kv.Delete(models.StoreKeyVendorToken); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to drop vendor token: %v\n", err)
		}
		fmt.Println("vendor deleted")
		return nil
	},
}

func init() {
	vendorUpdateCmd.Flags().StringVar(&vendorName, "name", "", "vendor display name")
	vendorUpdateCmd.Flags().StringVar(&vendorPhone, "phone", "", "contact phone")
	vendorUpdateCmd.Flags().StringVar(&vendorAddress, "address", "", "street address")
	vendorUpdateCmd.Flags().StringVar(&vendorTown, "town", "", "town")
	vendorDeleteCmd.Flags().BoolVar(&vendorDeleteConfirm, "yes", false, "confirm the deletion")

	vendorCmd.AddCommand(vendorListCmd, vendorGetCmd, vendorUpdateCmd, vendorDeleteCmd)
	rootCmd.AddCommand(vendorCmd)
}
