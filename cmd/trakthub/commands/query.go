package commands

import (
	"github.com/spf13/cobra"

	"trakthub/lib/scrapers/trakt"
)

var queryCategory *string

func init() {
	queryCategory = queryCmd.Flags().StringP("category", "c", "movies", "Which category to query, people, shows or movies.")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <query> [--category <people|shows|movies>]",
	Short: `Looks up the full record of a person, show or movie. Most titles need the release year in the query, e.g. "The Matrix 1999".`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := newHub(cmd.Context())
		result, err := hub.Query(cmd.Context(), args[0], trakt.Category(*queryCategory))
		if err != nil {
			fatal("query failed", err)
		}
		switch {
		case result.Person != nil:
			renderPerson(result.Person)
		case result.Title != nil:
			renderTitle(result.Title)
		}
	},
}
