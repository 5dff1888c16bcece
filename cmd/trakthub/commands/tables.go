package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"trakthub/lib/scrapers/trakt"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// renderListings prints a listing with only the columns the section
// actually populated.
func renderListings(listings trakt.Listings) {
	var hasYear, hasWatch, hasBudget, hasNetwork, hasEpisode, hasTime bool
	for _, entry := range listings {
		hasYear = hasYear || entry.Year != 0
		hasWatch = hasWatch || entry.WatchCount != 0
		hasBudget = hasBudget || entry.Budget != ""
		hasNetwork = hasNetwork || entry.Network != ""
		hasEpisode = hasEpisode || entry.Season != ""
		hasTime = hasTime || entry.Time != ""
	}

	header := table.Row{"#", "Title"}
	if hasYear {
		header = append(header, "Year")
	}
	if hasWatch {
		header = append(header, "Watching")
	}
	if hasBudget {
		header = append(header, "Box Office")
	}
	if hasEpisode {
		header = append(header, "Episode")
	}
	if hasNetwork {
		header = append(header, "Network")
	}
	if hasTime {
		header = append(header, "Time")
	}

	t := newTable()
	t.AppendHeader(header)
	for i := 1; i <= len(listings); i++ {
		entry := listings[i]
		row := table.Row{i, entry.Title}
		if hasYear {
			row = append(row, entry.Year)
		}
		if hasWatch {
			row = append(row, entry.WatchCount)
		}
		if hasBudget {
			row = append(row, entry.Budget)
		}
		if hasEpisode {
			row = append(row, entry.Season+"x"+entry.Episode)
		}
		if hasNetwork {
			row = append(row, entry.Network)
		}
		if hasTime {
			row = append(row, entry.Time)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderPerson(profile *trakt.PersonProfile) {
	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Name", profile.Name},
		{"Age", profile.Age},
		{"Gender", profile.Gender},
		{"Birthday", profile.Birthday},
		{"Birthplace", profile.Birthplace},
		{"Known For", profile.KnownFor},
	})
	t.Render()

	if profile.Description != "" {
		fmt.Println()
		fmt.Println(profile.Description)
	}

	if len(profile.Credits) > 0 {
		fmt.Println()
		credits := newTable()
		credits.AppendHeader(table.Row{"#", "Credit"})
		for i := 1; i <= len(profile.Credits); i++ {
			credits.AppendRow(table.Row{i, profile.Credits[i]})
		}
		credits.Render()
	}
}

func score(s trakt.Score) string {
	if s.Votes == "" {
		return s.Value
	}
	return fmt.Sprintf("%s (%s)", s.Value, s.Votes)
}

func renderTitle(detail *trakt.TitleDetail) {
	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Title", detail.Basic.Title},
		{"Year", detail.Basic.ReleaseYear},
		{"Rated", detail.Basic.ContentRating},
		{"Released", detail.Release.Date},
		{"Runtime", detail.Release.RuntimeHuman},
	})
	if detail.TotalSeasons != 0 {
		t.AppendRow(table.Row{"Seasons", detail.TotalSeasons})
	}
	t.AppendRows([]table.Row{
		{"Loved", score(detail.Ratings.Loved)},
		{"IMDb", score(detail.Ratings.IMDb)},
		{"TMDb", score(detail.Ratings.TMDb)},
		{"Rotten Tomatoes", detail.Ratings.RottenTomatoes},
		{"Audience", detail.Ratings.Audience},
		{"Metacritic", detail.Ratings.Metacritic},
		{"Watchers", detail.Engagement.Watchers},
		{"Plays", detail.Engagement.Plays},
		{"Collected", detail.Engagement.Collected},
		{"Comments", detail.Engagement.Comments},
		{"Lists", detail.Engagement.Lists},
		{"Favorited", detail.Engagement.Favorited},
		{"Country", detail.Production.Country},
		{"Languages", join(detail.Production.Languages)},
		{"Studios", join(detail.Production.Studios)},
		{"Genres", join(detail.Production.Genres)},
		{"Directors", join(detail.Production.Directors)},
		{"Writers", join(detail.Production.Writers)},
	})
	t.Render()

	if detail.Narrative.Tagline != "" {
		fmt.Println()
		fmt.Println(detail.Narrative.Tagline)
	}
	if detail.Narrative.Description != "" {
		fmt.Println()
		fmt.Println(detail.Narrative.Description)
	}

	if len(detail.Cast) > 0 {
		fmt.Println()
		cast := newTable()
		cast.AppendHeader(table.Row{"Cast"})
		for _, member := range detail.Cast {
			cast.AppendRow(table.Row{member})
		}
		cast.Render()
	}
}

func join(values []string) string {
	return strings.Join(values, ", ")
}
