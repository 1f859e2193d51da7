package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grubline/grubline/internal/factories"
	"github.com/grubline/grubline/internal/models"
)

var demoFoods int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print generated sample data",
	Long:  `Generates sample vendors and food listings and prints them as JSON, for seeding a local mock of the platform API during development.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vf := &factories.VendorFactory{}
		ff := &factories.FoodFactory{}

		vendor := vf.CreateVendor()
		foods := make([]models.Food, demoFoods)
		for i := range foods {
			foods[i] = ff.CreateFood(vendor.ID)
		}

		return printJSON(map[string]any{
			"vendor": vendor,
			"foods":  foods,
		})
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoFoods, "foods", 5, "number of food listings to generate")
	rootCmd.AddCommand(demoCmd)
}
