package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trakthub/lib/scrapers/trakt"
)

var (
	isTrendingCategory    *string
	isPopularCategory     *string
	isAnticipatedCategory *string
)

func init() {
	isTrendingCategory = isTrendingCmd.Flags().StringP("category", "c", "shows", "Which category to search, shows or movies.")
	isPopularCategory = isPopularCmd.Flags().StringP("category", "c", "shows", "Which category to search, shows or movies.")
	isAnticipatedCategory = isAnticipatedCmd.Flags().StringP("category", "c", "shows", "Which category to search, shows or movies.")

	rootCmd.AddCommand(isTrendingCmd)
	rootCmd.AddCommand(isPopularCmd)
	rootCmd.AddCommand(isAnticipatedCmd)
}

var isTrendingCmd = &cobra.Command{
	Use:   "is-trending <query> [--category <shows|movies>]",
	Short: "Reports whether a title is currently trending.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		ok, err := hub.IsTrending(cmd.Context(), args[0], trakt.Category(*isTrendingCategory))
		if err != nil {
			fatal("failed to search trending", err)
		}
		fmt.Println(ok)
	},
}

var isPopularCmd = &cobra.Command{
	Use:   "is-popular <query> [--category <shows|movies>]",
	Short: "Reports whether a title is in the all-time popular list.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		ok, err := hub.IsPopular(cmd.Context(), args[0], trakt.Category(*isPopularCategory))
		if err != nil {
			fatal("failed to search popular", err)
		}
		fmt.Println(ok)
	},
}

var isAnticipatedCmd = &cobra.Command{
	Use:   "is-anticipated <query> [--category <shows|movies>]",
	Short: "Reports whether a title is in the most anticipated list.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		ok, err := hub.IsAnticipated(cmd.Context(), args[0], trakt.Category(*isAnticipatedCategory))
		if err != nil {
			fatal("failed to search anticipated", err)
		}
		fmt.Println(ok)
	},
}
