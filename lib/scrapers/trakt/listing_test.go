package trakt

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

const trendingPage = `<html><body><div class="row posters">
<div class="grid-item"><div class="titles">
<h3>41 people watching</h3>
<h3>Sonic the Hedgehog 3 <span class="year">2024</span></h3>
</div></div>
<div class="grid-item"><div class="titles">
<h3>29 people watching</h3>
<h3>Squid Game <span class="year">2021</span></h3>
</div></div>
<div class="grid-item"><div class="titles">
<h3>editorial pick</h3>
<h3>Some Promo</h3>
</div></div>
</div></body></html>`

func TestExtractTrending(t *testing.T) {
	doc := parseFixture(t, trendingPage)
	got, err := Extract(CategoryMovies, SectionTrending, doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "Sonic the Hedgehog 3", Year: 2024, WatchCount: 41},
		2: {Title: "Squid Game", Year: 2021, WatchCount: 29},
	}, got)
}

const popularPage = `<html><body>
<div class="titles"><h3>Deadpool <span class="year">2016</span></h3></div>
<div class="titles"><h3>The Dark Knight <span class="year">2008</span></h3></div>
</body></html>`

func TestExtractPopular(t *testing.T) {
	doc := parseFixture(t, popularPage)
	got, err := Extract(CategoryMovies, SectionPopular, doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "Deadpool", Year: 2016},
		2: {Title: "The Dark Knight", Year: 2008},
	}, got)
}

const anticipatedPage = `<html><body>
<a class="titles-link" href="/shows/x"><div class="titles">
<h3>Daredevil: Born Again <span class="year">2025</span></h3>
</div></a>
<a class="titles-link" href="/shows/y"><div class="titles">
<h3>Stranger Things <span class="year">2016</span></h3>
</div></a>
</body></html>`

func TestExtractAnticipated(t *testing.T) {
	doc := parseFixture(t, anticipatedPage)
	got, err := Extract(CategoryShows, SectionAnticipated, doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "Daredevil: Born Again", Year: 2025},
		2: {Title: "Stranger Things", Year: 2016},
	}, got)
}

const boxOfficePage = `<html><body>
<div class="titles"><h4>$36,000,000</h4><h3>Dog Man <span class="year">2025</span></h3></div>
<div class="titles"><h4>$9,719,754</h4><h3>Mufasa: The Lion King <span class="year">2024</span></h3></div>
</body></html>`

func TestExtractBoxOffice(t *testing.T) {
	doc := parseFixture(t, boxOfficePage)
	got, err := Extract(CategoryMovies, SectionBoxOffice, doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "Dog Man", Year: 2025, Budget: "$36,000,000"},
		2: {Title: "Mufasa: The Lion King", Year: 2024, Budget: "$9,719,754"},
	}, got)
}

const calendarShowsPage = `<html><body>
<div class="titles has-worded-image">
<h4><span class="time">8:00 pm</span></h4>
<a class="titles-link" href="/shows/a"><h3>7x11 Welcome to the e-Neighborhood</h3></a>
<span class="generic">ABC</span>
</div>
<div class="titles has-worded-image">
<h4><span class="time">9:30 pm</span></h4>
<a class="titles-link" href="/shows/b"><h3>2x01 The Calm Before</h3></a>
<span class="generic">HBO</span>
</div>
</body></html>`

func TestExtractCalendarShows(t *testing.T) {
	doc := parseFixture(t, calendarShowsPage)
	got, err := Extract(CategoryCalendars, "shows", doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {
			Title: "Welcome to the e-Neighborhood", Network: "ABC",
			Season: "7", Episode: "11", Time: "8:00 pm",
		},
		2: {
			Title: "The Calm Before", Network: "HBO",
			Season: "2", Episode: "01", Time: "9:30 pm",
		},
	}, got)
}

const calendarMoviesPage = `<html><body>
<div class="titles has-worded-image">
<h4><span class="time">limited</span></h4>
<a class="titles-link" href="/movies/a"><h3>The Long Walk</h3></a>
</div>
<div class="titles has-worded-image">
<h4><span class="time">wide</span></h4>
<a class="titles-link" href="/movies/b"><h3>Tron: Ares</h3></a>
</div>
</body></html>`

func TestExtractCalendarMovies(t *testing.T) {
	doc := parseFixture(t, calendarMoviesPage)
	got, err := Extract(CategoryCalendars, "movies", doc)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "The Long Walk", Time: "limited"},
		2: {Title: "Tron: Ares", Time: "wide"},
	}, got)
}

func TestExtractMissingContainer(t *testing.T) {
	doc := parseFixture(t, `<html><body><p>nothing here</p></body></html>`)
	_, err := Extract(CategoryShows, SectionTrending, doc)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractUnvalidatedPairPanics(t *testing.T) {
	doc := parseFixture(t, trendingPage)
	require.Panics(t, func() {
		_, _ = Extract(CategoryPeople, SectionTrending, doc)
	})
}

func TestEveryValidPairHasGrammar(t *testing.T) {
	for category, sections := range sectionsByCategory {
		for _, section := range sections {
			_, ok := listingGrammars[grammarKey{category, section}]
			require.True(t, ok, "missing grammar for (%s, %s)", category, section)
		}
	}
}

func TestExtractSkipsMalformedRows(t *testing.T) {
	doc := parseFixture(t, trendingPage)
	got, err := Extract(CategoryShows, SectionTrending, doc)
	require.NoError(t, err)
	// the promo row carries no watch count so it is dropped, and the
	// keys stay continuous
	require.Len(t, got, 2)
	for i := 1; i <= len(got); i++ {
		_, ok := got[i]
		require.True(t, ok)
	}
}
