package trakt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	require.Equal(t, "/The-Matrix-1999", Slug("The Matrix 1999!", CategoryMovies))
	require.Equal(t, "/keanu-reeves", Slug("keanu reeves", CategoryPeople))
	require.Equal(t, "", Slug("", CategoryMovies))
	// person pages live directly under the category root
	require.Equal(t, "/", Slug("", CategoryPeople))
}

func TestBuildURL(t *testing.T) {
	require.Equal(t,
		"https://trakt.tv/shows/trending",
		BuildURL(DefaultBaseURL, CategoryShows, "", SectionTrending, 1),
	)
	require.Equal(t,
		"https://trakt.tv/shows/trending?page=3",
		BuildURL(DefaultBaseURL, CategoryShows, "", SectionTrending, 3),
	)
	require.Equal(t,
		"https://trakt.tv/movies/The-Matrix-1999",
		BuildURL(DefaultBaseURL, CategoryMovies, "/The-Matrix-1999", "", 0),
	)
	require.Equal(t,
		"/calendars/new-shows",
		BuildURL("", CategoryCalendars, "", "new-shows", 1),
	)
}

func TestParseURL(t *testing.T) {
	category, query, err := ParseURL("https://trakt.tv/movies/The-Matrix-1999")
	require.NoError(t, err)
	require.Equal(t, CategoryMovies, category)
	require.Equal(t, "The-Matrix-1999", query)

	category, query, err = ParseURL("https://trakt.tv/shows/trending")
	require.NoError(t, err)
	require.Equal(t, CategoryShows, category)
	require.Equal(t, "", query)

	_, _, err = ParseURL("https://trakt.tv/nonsense/thing")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateSection(t *testing.T) {
	require.NoError(t, validateSection(CategoryShows, SectionTrending))
	require.NoError(t, validateSection(CategoryMovies, SectionBoxOffice))
	require.NoError(t, validateSection(CategoryCalendars, "premieres"))

	// boxoffice exists, but only for movies; the error names the owner
	err := validateSection(CategoryShows, SectionBoxOffice)
	require.Error(t, err)
	require.Contains(t, err.Error(), `belongs to category "movies"`)

	err = validateSection(CategoryShows, "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a valid section")

	err = validateSection(CategoryShows, "")
	require.Error(t, err)
}

func TestValidateCategory(t *testing.T) {
	for _, category := range Categories() {
		require.NoError(t, validateCategory(category))
	}
	require.Error(t, validateCategory(""))
	require.Error(t, validateCategory("cartoons"))
}
