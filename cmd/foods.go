package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/grubline/grubline/internal/api"
	"github.com/grubline/grubline/internal/editors"
	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/uploads"
	"github.com/grubline/grubline/internal/wizard"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Manage a vendor's food listings",
}

var (
	foodsVendorID string
	foodsWatch    time.Duration
)

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()

		if foodsWatch > 0 {
			res := a.res.WatchFoods(ctx, foodsVendorID, foodsWatch)
			defer res.Close()
			for {
				if foods, ok := res.Data(); ok {
					printFoods(foods.([]models.Food))
				} else if res.Loading() {
					fmt.Println("loading...")
				}
				if err := res.Err(); err != nil {
					fmt.Fprintf(os.Stderr, "refresh failed: %v\n", err)
				}
				time.Sleep(foodsWatch)
			}
		}

		foods, err := a.res.Foods(ctx, foodsVendorID)
		if err != nil {
			return err
		}
		printFoods(foods)
		return nil
	},
}

var foodsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one food listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		food, err := a.res.Food(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(food)
	},
}

var (
	createName        string
	createDescription string
	createCategory    string
	createPrice       float64
	createDeliveryFee float64
	createETA         string
	createTags        []string
	createUnavailable bool
	createImage       string
	createAddVariant  bool
	createPortion     string
	createSpice       string
	createChefSpecial bool
	createDiscard     bool
)

var foodsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a food listing from the working draft",
	Long:  `Builds up the working draft from flags (persisted locally between invocations, so a listing can be assembled across several runs), then submits it. The draft is cleared only after the server confirms the create.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if foodsVendorID == "" {
			return errors.New("--vendor is required")
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return runFoodForm(a, cmd, "")
	},
}

var foodsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return runFoodForm(a, cmd, args[0])
	},
}

// runFoodForm is the shared create/update flow: restore the draft, apply
// flag edits through the editors, optionally run the variant wizard and
// image upload, then submit and clear local state on confirmation.
func runFoodForm(a *app, cmd *cobra.Command, updateID string) error {
	ctx := context.Background()

	d := a.drafts.Restore()

	if updateID != "" && d.FoodID != updateID {
		// No local draft for this listing yet; seed one from the server.
		food, err := a.res.Food(ctx, updateID)
		if err != nil {
			return err
		}
		d = models.DraftFromFood(food)
	}

	if cmd.Flags().Changed("name") {
		d.Name = createName
	}
	if cmd.Flags().Changed("description") {
		d.Description = createDescription
	}
	if cmd.Flags().Changed("category") {
		d.Category = createCategory
	}
	if cmd.Flags().Changed("price") {
		d.Price = createPrice
	}
	if cmd.Flags().Changed("delivery-fee") {
		d.DeliveryFee = createDeliveryFee
	}
	if cmd.Flags().Changed("eta") {
		d.EstimatedDeliveryTime = createETA
	}
	if cmd.Flags().Changed("unavailable") {
		d.Available = !createUnavailable
	}

	tagEditor := editors.NewTagEditor(d.Tags)
	for _, t := range createTags {
		tagEditor.SetInput(t)
		tagEditor.Add()
	}
	d.Tags = tagEditor.Tags()

	meta := editors.NewMetadataEditor(a.kv)
	if cmd.Flags().Changed("portion") {
		meta.SetPortionSize(createPortion)
	}
	if cmd.Flags().Changed("spice") {
		level, err := parseSpiceLevel(createSpice)
		if err != nil {
			return err
		}
		meta.SetSpiceLevel(level)
	}
	if cmd.Flags().Changed("chef-special") {
		meta.SetChefSpecial(createChefSpecial)
	}

	if createImage != "" {
		url, err := uploadImageFile(ctx, a, createImage)
		if err != nil {
			// Upload trouble never invalidates the rest of the draft.
			fmt.Fprintf(os.Stderr, "image upload failed: %v\n", err)
		} else {
			d.Images = append(d.Images, url)
		}
	}

	if createAddVariant {
		if err := runVariantWizard(a, d); err != nil {
			return err
		}
	}

	a.drafts.Persist(d)
	a.drafts.Flush()

	if createDiscard {
		if err := a.drafts.Clear(); err != nil {
			return err
		}
		meta.Clear()
		fmt.Println("draft discarded")
		return nil
	}

	if d.Name == "" {
		return errors.New("the draft has no name yet; set one with --name")
	}

	var (
		food *models.Food
		err  error
	)
	if updateID != "" {
		food, err = a.res.UpdateFood(ctx, updateID, d)
	} else {
		food, err = a.res.CreateFood(ctx, foodsVendorID, d)
	}
	if err != nil {
		return err
	}

	// Confirmed by the server: the draft and metadata echo are done.
	if err := a.drafts.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear draft: %v\n", err)
	}
	meta.Clear()

	return printJSON(food)
}

// runVariantWizard drives the three-step variant editor over stdin.
func runVariantWizard(a *app, d *models.FoodDraft) error {
	w := wizard.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		switch w.Step() {
		case wizard.StepName:
			fmt.Print("variant name: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			w.SetName(scanner.Text())
		case wizard.StepPrice:
			fmt.Print("variant price: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			w.SetPrice(scanner.Text())
		case wizard.StepImage:
			fmt.Print("variant image file (optional, blank to skip): ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if path := strings.TrimSpace(scanner.Text()); path != "" {
				if err := uploadVariantImage(a, w, path); err != nil {
					fmt.Fprintf(os.Stderr, "image upload failed, variant keeps no image: %v\n", err)
				}
			}
			v, tok, err := w.Save()
			if err != nil {
				return err
			}
			d.Variants = wizard.Merge(d.Variants, v, tok)
			fmt.Printf("variant %q added (%d total)\n", v.Name, len(d.Variants))
			return nil
		}

		if err := w.Next(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func uploadVariantImage(a *app, w *wizard.Wizard, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
	defer cancel()

	up, err := uploads.NewS3Uploader(ctx, a.cfg.UploadRegion, a.cfg.UploadBucket)
	if err != nil {
		return err
	}

	file, info, contentType, err := openImageFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	bar := progressbar.DefaultBytes(info.Size(), "uploading")
	return w.UploadImage(ctx, up, filepath.Base(path), contentType, info.Size(), io.TeeReader(file, bar))
}

func uploadImageFile(ctx context.Context, a *app, path string) (string, error) {
	up, err := uploads.NewS3Uploader(ctx, a.cfg.UploadRegion, a.cfg.UploadBucket)
	if err != nil {
		return "", err
	}

	file, info, contentType, err := openImageFile(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := uploads.ValidateImage(contentType, info.Size()); err != nil {
		return "", err
	}

	bar := progressbar.DefaultBytes(info.Size(), "uploading")
	return up.Upload(ctx, filepath.Base(path), contentType, io.TeeReader(file, bar))
}

func openImageFile(path string) (*os.File, os.FileInfo, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, "", err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, "", err
	}

	contentType := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}[strings.ToLower(filepath.Ext(path))]

	return file, info, contentType, nil
}

var (
	deleteAll     bool
	deleteVariant string
	deleteImage   string
	deleteTag     string
	deleteMeta    string
)

var foodsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a listing or one of its sub-resources",
	Long:  `Deletes the whole listing (--all) or exactly one sub-resource of it (--variant, --image, --tag or --meta). The server interprets the scope; the client only validates that exactly one was chosen.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		opts := api.DeleteOptions{
			DeleteAll: deleteAll,
			VariantID: deleteVariant,
			ImageID:   deleteImage,
			TagKey:    deleteTag,
			MetaKey:   deleteMeta,
		}
		if err := a.res.DeleteFood(context.Background(), args[0], opts); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func printFoods(foods []models.Food) {
	for _, f := range foods {
		availability := "available"
		if !f.Available {
			availability = "unavailable"
		}
		fmt.Printf("%-26s  %-28s  %-12s  %6.2f  %s\n", f.ID, f.Name, f.Category, f.Price, availability)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseSpiceLevel(s string) (models.SpiceLevel, error) {
	switch strings.ToLower(s) {
	case "mild":
		return models.SpiceMild, nil
	case "medium":
		return models.SpiceMedium, nil
	case "hot":
		return models.SpiceHot, nil
	}
	return "", fmt.Errorf("unknown spice level %q (want mild, medium or hot)", s)
}

func init() {
	foodsListCmd.Flags().StringVar(&foodsVendorID, "vendor", "", "scope the list to one vendor")
	foodsListCmd.Flags().DurationVar(&foodsWatch, "watch", 0, "keep the list on screen, refreshed at this interval")

	for _, c := range []*cobra.Command{foodsCreateCmd, foodsUpdateCmd} {
		c.Flags().StringVar(&foodsVendorID, "vendor", "", "vendor the listing belongs to")
		c.Flags().StringVar(&createName, "name", "", "listing name")
		c.Flags().StringVar(&createDescription, "description", "", "listing description")
		c.Flags().StringVar(&createCategory, "category", "", "listing category")
		c.Flags().Float64Var(&createPrice, "price", 0, "base price")
		c.Flags().Float64Var(&createDeliveryFee, "delivery-fee", 0, "delivery fee")
		c.Flags().StringVar(&createETA, "eta", "", "estimated delivery time, e.g. \"25-40 min\"")
		c.Flags().StringArrayVar(&createTags, "tag", nil, "add a tag (repeatable; duplicates are ignored)")
		c.Flags().BoolVar(&createUnavailable, "unavailable", false, "mark the listing unavailable")
		c.Flags().StringVar(&createImage, "image", "", "image file to upload and attach")
		c.Flags().BoolVar(&createAddVariant, "add-variant", false, "run the variant editor before submitting")
		c.Flags().StringVar(&createPortion, "portion", "", "portion size metadata")
		c.Flags().StringVar(&createSpice, "spice", "", "spice level metadata: mild, medium or hot")
		c.Flags().BoolVar(&createChefSpecial, "chef-special", false, "mark as a chef special")
		c.Flags().BoolVar(&createDiscard, "discard", false, "discard the working draft instead of submitting")
	}

	foodsDeleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete the whole listing")
	foodsDeleteCmd.Flags().StringVar(&deleteVariant, "variant", "", "delete one variant by id")
	foodsDeleteCmd.Flags().StringVar(&deleteImage, "image", "", "delete one image by id")
	foodsDeleteCmd.Flags().StringVar(&deleteTag, "tag", "", "delete one tag by key")
	foodsDeleteCmd.Flags().StringVar(&deleteMeta, "meta", "", "delete one metadata entry by key")

	foodsCmd.AddCommand(foodsListCmd, foodsGetCmd, foodsCreateCmd, foodsUpdateCmd, foodsDeleteCmd)
	rootCmd.AddCommand(foodsCmd)
}
