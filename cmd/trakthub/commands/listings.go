package commands

import (
	"github.com/spf13/cobra"

	"trakthub/lib/scrapers/trakt"
)

var (
	trendingCategory    *string
	popularCategory     *string
	anticipatedCategory *string
)

func init() {
	trendingCategory = trendingCmd.Flags().StringP("category", "c", "shows", "Which category to list, shows or movies.")
	popularCategory = popularCmd.Flags().StringP("category", "c", "shows", "Which category to list, shows or movies.")
	anticipatedCategory = anticipatedCmd.Flags().StringP("category", "c", "shows", "Which category to list, shows or movies.")

	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(anticipatedCmd)
	rootCmd.AddCommand(boxOfficeCmd)
	rootCmd.AddCommand(calendarCmd)
}

var trendingCmd = &cobra.Command{
	Use:   "get-trending [--category <shows|movies>]",
	Short: "Lists what people are watching right now.",
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		listings, err := hub.Trending(cmd.Context(), trakt.Category(*trendingCategory))
		if err != nil {
			fatal("failed to fetch trending", err)
		}
		renderListings(listings)
	},
}

var popularCmd = &cobra.Command{
	Use:   "get-popular [--category <shows|movies>]",
	Short: "Lists the all-time most popular titles.",
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		listings, err := hub.Popular(cmd.Context(), trakt.Category(*popularCategory))
		if err != nil {
			fatal("failed to fetch popular", err)
		}
		renderListings(listings)
	},
}

var anticipatedCmd = &cobra.Command{
	Use:   "get-anticipated [--category <shows|movies>]",
	Short: "Lists the most anticipated upcoming titles.",
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		listings, err := hub.Anticipated(cmd.Context(), trakt.Category(*anticipatedCategory))
		if err != nil {
			fatal("failed to fetch anticipated", err)
		}
		renderListings(listings)
	},
}

var boxOfficeCmd = &cobra.Command{
	Use:   "get-boxoffice",
	Short: "Lists the top 10 movies by weekend box office revenue.",
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		listings, err := hub.BoxOffice(cmd.Context())
		if err != nil {
			fatal("failed to fetch box office", err)
		}
		renderListings(listings)
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar <shows|new-shows|premieres|finales|movies|dvd>",
	Short: "Lists upcoming releases from one of the calendars.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		listings, err := hub.Calendar(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch calendar", err)
		}
		renderListings(listings)
	},
}
