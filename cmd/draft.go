package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect the working food draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the working draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return printJSON(a.drafts.Restore())
	},
}

var draftDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Throw the working draft away",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.drafts.Clear(); err != nil {
			return err
		}
		fmt.Println("draft discarded")
		return nil
	},
}

func init() {
	draftCmd.AddCommand(draftShowCmd, draftDiscardCmd)
	rootCmd.AddCommand(draftCmd)
}
