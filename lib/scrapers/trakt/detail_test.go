package trakt

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

const moviePage = `<html><body>
<div class="col-md-10 mobile-title">
<h1>The Matrix <span class="year">1999</span> <span class="certification">R</span></h1>
</div>
<div class="rating">92%</div>
<div class="votes">112k votes</div>
<ul class="stats">
<li class="imdb"><a><div class="number"><div>8.7</div><div>2M</div></div><div class="label">IMDb</div></a></li>
<li class="tmdb"><a><div class="number"><div>8.2</div><div>26k</div></div><div class="label">TMDb</div></a></li>
<li><a><div class="number"><div>88%</div><div>Certified Fresh</div></div><div class="label">Rotten Tomatoes</div></a></li>
<li><a><div class="number">85%</div><div class="label">Audience</div></a></li>
<li><a><div class="number">73</div><div class="label">Metacritic</div></a></li>
<li><a><div class="number">98.2k</div><div class="label">Watchers</div></a></li>
<li><a><div class="number">1.2M</div><div class="label">Plays</div></a></li>
<li><a><div class="number">510k</div><div class="label">Collected</div></a></li>
<li><a><div class="number">1.4k</div><div class="label">Comments</div></a></li>
<li><a><div class="number">88k</div><div class="label">Lists</div></a></li>
<li><a><div class="number">12k</div><div class="label">Favorited</div></a></li>
</ul>
<div class="col-lg-8 col-md-7">
<ul class="additional-stats">
<li><span>1999-03-31</span></li>
<li>Runtime <span class="humanized-minutes">2h 16m</span></li>
<li itemprop="countryOfOrigin">Country us</li>
<li>Languages en, fr</li>
<li>Studios Warner Bros., Village Roadshow Pictures + 1 more</li>
<li>Genres <span itemprop="genre">Action</span>, <span itemprop="genre">Sci-Fi</span></li>
<li><span class="hidden" itemprop="director"><meta content="Lana Wachowski"></span><span class="hidden" itemprop="director"><meta content="Lilly Wachowski"></span></li>
<li><span itemprop="writer"><meta content="Lana Wachowski"></span><span itemprop="writer"><meta content="Lilly Wachowski"></span></li>
</ul>
<div id="tagline">Believe the unbelievable.</div>
<div class="readmore">Thomas Anderson leads a double life.</div>
</div>
<ul class="cast">
<li itemprop="actor"><a><div class="name">Keanu Reeves</div><div class="character">Neo</div></a></li>
<li itemprop="actor"><a><div class="name">Carrie-Anne Moss</div><div class="character">Trinity</div></a></li>
</ul>
</body></html>`

func TestExtractMovieDetail(t *testing.T) {
	doc := parseFixture(t, moviePage)
	got, err := ExtractTitleDetail(CategoryMovies, doc)
	require.NoError(t, err)

	want := TitleDetail{
		Basic: BasicInfo{Title: "The Matrix", ReleaseYear: "1999", ContentRating: "R"},
		Ratings: Ratings{
			Loved:          Score{Value: "92%", Votes: "112k votes"},
			IMDb:           Score{Value: "8.7", Votes: "2M"},
			TMDb:           Score{Value: "8.2", Votes: "26k"},
			RottenTomatoes: "88% Certified Fresh",
			Metacritic:     "73",
			Audience:       "85%",
		},
		Engagement: Engagement{
			Watchers: "98.2k", Plays: "1.2M", Collected: "510k",
			Comments: "1.4k", Lists: "88k", Favorited: "12k",
		},
		Release: ReleaseDetails{
			Date:           "1999-03-31",
			RuntimeHuman:   "2h 16m",
			RuntimeMinutes: 136,
		},
		Production: Production{
			Country:   "us",
			Languages: []string{"en", "fr"},
			Studios:   []string{"Warner Bros.", "Village Roadshow Pictures"},
			Genres:    []string{"Action", "Sci-Fi"},
			Directors: []string{"Lana Wachowski", "Lilly Wachowski"},
			Writers:   []string{"Lana Wachowski", "Lilly Wachowski"},
		},
		Narrative: Narrative{
			Tagline:     "Believe the unbelievable.",
			Description: "Thomas Anderson leads a double life.",
		},
		Cast: []string{"Keanu Reeves [Neo]", "Carrie-Anne Moss [Trinity]"},
	}

	diff := cmp.Diff(want, got, cmpopts.IgnoreFields(ReleaseDetails{}, "YearsAgo"))
	if diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, fmt.Sprintf("%d years ago", time.Now().Year()-1999), got.Release.YearsAgo)
}

// the show fixture carries no stat labels, exercising the positional
// fallback order
const showPage = `<html><body>
<div class="col-md-10 mobile-title">
<h1>Severance <span class="year">2022</span> <span class="certification">TV-MA</span></h1>
</div>
<div class="rating">90%</div>
<div class="votes">45k votes</div>
<ul class="stats">
<li><a><div class="number"><div>8.7</div><div>500k</div></div></a></li>
<li><a><div class="number"><div>8.4</div><div>3k</div></div></a></li>
<li><a><div class="number"><div>97%</div><div>Certified Fresh</div></div></a></li>
<li><a><div class="number">92%</div></a></li>
<li><a><div class="number">84</div></a></li>
<li><a><div class="number">61k</div></a></li>
<li><a><div class="number">890k</div></a></li>
<li><a><div class="number">21k</div></a></li>
<li><a><div class="number">950</div></a></li>
<li><a><div class="number">40k</div></a></li>
<li><a><div class="number">8k</div></a></li>
</ul>
<div class="col-lg-8 col-md-7">
<ul class="additional-stats">
<li><span>2022-02-18</span></li>
<li>Runtime <span class="humanized-minutes">50m</span></li>
<li itemprop="countryOfOrigin">Country us</li>
<li>Languages en</li>
<li>Studios Red Hour Productions</li>
<li>Seasons 2</li>
<li>Genres <span itemprop="genre">Drama</span>, <span itemprop="genre">Mystery</span></li>
</ul>
<div id="tagline">Who are you?</div>
<div class="readmore">Mark leads a team whose memories are split.</div>
</div>
</body></html>`

func TestExtractShowDetail(t *testing.T) {
	doc := parseFixture(t, showPage)
	got, err := ExtractTitleDetail(CategoryShows, doc)
	require.NoError(t, err)

	require.Equal(t, BasicInfo{
		Title: "Severance", ReleaseYear: "2022", ContentRating: "TV-MA",
	}, got.Basic)
	require.Equal(t, Ratings{
		Loved:          Score{Value: "90%", Votes: "45k votes"},
		IMDb:           Score{Value: "8.7", Votes: "500k"},
		TMDb:           Score{Value: "8.4", Votes: "3k"},
		RottenTomatoes: "97% Certified Fresh",
		Audience:       "92%",
		Metacritic:     "84",
	}, got.Ratings)
	require.Equal(t, Engagement{
		Watchers: "61k", Plays: "890k", Collected: "21k",
		Comments: "950", Lists: "40k", Favorited: "8k",
	}, got.Engagement)

	require.Equal(t, 50, got.Release.RuntimeMinutes)
	require.Equal(t, 2, got.TotalSeasons)
	require.Equal(t, []string{"Red Hour Productions"}, got.Production.Studios)
	require.Empty(t, got.Cast)
}

func TestExtractDetailBadHeader(t *testing.T) {
	// a header that does not split into title/year/rating means the
	// title did not resolve
	doc := parseFixture(t, `<html><body>
<div class="mobile-title"><h1>404 Not Found</h1></div>
</body></html>`)
	_, err := ExtractTitleDetail(CategoryMovies, doc)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRuntimeMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2h 16m", 136},
		{"1h", 60},
		{"45m", 45},
		{"", 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, runtimeMinutes(c.in), c.in)
	}
}
