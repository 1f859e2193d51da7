package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grubline/grubline/internal/search"
)

var (
	searchCategory    string
	searchSuggest     bool
	searchInteractive bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the storefront",
	Long:  `Searches the storefront by free text or category. With no arguments it shows the current trending terms. --suggest prints autocomplete suggestions for the query instead of full results.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		pageURL, _ := url.Parse("grubline://search")
		ctl := search.NewController(a.client, search.NewPageURL(pageURL), a.cfg.AutocompleteDebounce, a.cfg.TrendingLimit)
		defer ctl.Close()

		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
		defer cancel()

		ctl.Start(ctx)

		if searchInteractive {
			// The session outlives the one-shot timeout; each request is
			// still bounded by the HTTP client's own timeout.
			return runSearchSession(context.Background(), ctl, a.cfg.AutocompleteDebounce)
		}

		switch {
		case searchCategory != "":
			ctl.SelectCategory(ctx, searchCategory)
		case len(args) == 1 && searchSuggest:
			ctl.SetQuery(ctx, args[0])
			// Let the debounced autocomplete fetch fire and land.
			time.Sleep(a.cfg.AutocompleteDebounce + a.cfg.RequestTimeout)
			return printSuggestions(ctl.State())
		case len(args) == 1:
			ctl.SetQuery(ctx, args[0])
			ctl.Submit(ctx)
		default:
			return printTrending(ctl.State())
		}

		return printResults(ctl.State())
	},
}

// runSearchSession drives the controller from stdin, one command per
// line, until EOF or "quit".
func runSearchSession(ctx context.Context, ctl *search.Controller, debounce time.Duration) error {
	fmt.Println(`type to search, "cat <name>" to toggle a category, "trending" for the strip, "quit" to leave`)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit":
			return nil
		case line == "trending":
			if err := printTrending(ctl.State()); err != nil {
				return err
			}
			continue
		case strings.HasPrefix(line, "cat "):
			ctl.SelectCategory(ctx, strings.TrimSpace(strings.TrimPrefix(line, "cat ")))
		case line == "":
			continue
		default:
			ctl.SetQuery(ctx, line)
			// Show the suggestions the debounced fetch produced, then run
			// the search itself.
			time.Sleep(debounce + 200*time.Millisecond)
			if s := ctl.State(); len(s.Autocomplete) > 0 {
				_ = printSuggestions(s)
			}
			ctl.Submit(ctx)
		}

		if err := printResults(ctl.State()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func printResults(s search.State) error {
	if s.ErrorMessage != "" {
		return fmt.Errorf("search failed: %s", s.ErrorMessage)
	}
	if s.ActiveCategory != "" {
		fmt.Printf("category: %s\n\n", s.ActiveCategory)
	}
	if len(s.Results) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, f := range s.Results {
		fmt.Printf("%-28s  %-12s  %6.2f  %s\n", f.Name, f.Category, f.Price, f.EstimatedDeliveryTime)
	}
	return nil
}

func printSuggestions(s search.State) error {
	if len(s.Autocomplete) == 0 {
		fmt.Println("no suggestions")
		return nil
	}
	for _, sg := range s.Autocomplete {
		if sg.VendorName != "" {
			fmt.Printf("%-28s  %-10s  (%s)\n", sg.Name, sg.Type, sg.VendorName)
		} else {
			fmt.Printf("%-28s  %-10s\n", sg.Name, sg.Type)
		}
	}
	return nil
}

func printTrending(s search.State) error {
	if len(s.Trending) == 0 {
		fmt.Println("nothing trending right now")
		return nil
	}
	fmt.Println("trending:")
	for _, t := range s.Trending {
		fmt.Printf("  %s\n", t.Term)
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "scope results to a category")
	searchCmd.Flags().BoolVar(&searchSuggest, "suggest", false, "print autocomplete suggestions instead of results")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "run an interactive search session")
	rootCmd.AddCommand(searchCmd)
}
