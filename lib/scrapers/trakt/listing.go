package trakt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trakthub/lib/htmlutil"
)

// Listing is one entry of a listing page. Which fields are populated
// depends on the section the page belongs to: trending rows carry a
// watch count, box office rows a budget, calendar rows network and
// episode coordinates.
type Listing struct {
	Title      string
	Year       int
	WatchCount int
	Budget     string
	Network    string
	Season     string
	Episode    string
	Time       string
}

// Listings maps a 1-based continuous index to its record.
type Listings map[int]Listing

type grammarKey struct {
	category Category
	section  string
}

type grammarFunc func(doc *goquery.Document) (Listings, error)

// listingGrammars dispatches (category, section) to the extraction
// grammar for that page shape. Populated and exhaustiveness-checked in
// init; the hub validates pairs before extraction ever runs, so a miss
// here is a programming error.
var listingGrammars = map[grammarKey]grammarFunc{}

func init() {
	episodic := extractCalendarEpisodes
	titleOnly := extractCalendarTitles

	grammars := map[grammarKey]grammarFunc{
		{CategoryShows, SectionTrending}:     extractTrending,
		{CategoryMovies, SectionTrending}:    extractTrending,
		{CategoryShows, SectionPopular}:      extractTitleYear("div.titles"),
		{CategoryMovies, SectionPopular}:     extractTitleYear("div.titles"),
		{CategoryShows, SectionAnticipated}:  extractTitleYear("a.titles-link"),
		{CategoryMovies, SectionAnticipated}: extractTitleYear("a.titles-link"),
		{CategoryMovies, SectionBoxOffice}:   extractBoxOffice,

		{CategoryCalendars, "shows"}:     episodic,
		{CategoryCalendars, "new-shows"}: episodic,
		{CategoryCalendars, "premieres"}: episodic,
		{CategoryCalendars, "finales"}:   episodic,
		{CategoryCalendars, "movies"}:    titleOnly,
		{CategoryCalendars, "dvd"}:       titleOnly,
		{CategoryCalendars, "people"}:    titleOnly,
	}
	for key, fn := range grammars {
		listingGrammars[key] = fn
	}

	// every valid listing pair must have a grammar before the program
	// starts serving requests
	for category, sections := range sectionsByCategory {
		for _, section := range sections {
			if _, ok := listingGrammars[grammarKey{category, section}]; !ok {
				panic(fmt.Sprintf("no listing grammar for (%s, %s)", category, section))
			}
		}
	}
}

// Extract applies the grammar for (category, section) to the parsed
// page. The pair must have been validated upstream.
func Extract(category Category, section string, doc *goquery.Document) (Listings, error) {
	grammar, ok := listingGrammars[grammarKey{category, section}]
	if !ok {
		panic(fmt.Sprintf("extract called with unvalidated pair (%s, %s)", category, section))
	}
	return grammar(doc)
}

// e.g. "41 people watchingSonic the Hedgehog 3 2024"
var trendingRegex = regexp.MustCompile(`^(\d+)\s+people watching(.+?)\s+(\d{4})$`)

func extractTrending(doc *goquery.Document) (Listings, error) {
	blocks, err := textBlocks(doc, "div.titles")
	if err != nil {
		return nil, err
	}

	out := Listings{}
	for _, text := range blocks {
		m := trendingRegex.FindStringSubmatch(text)
		if m == nil {
			// rows that do not carry the trending shape are skipped,
			// they do not fail the page
			continue
		}
		watching, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		out[len(out)+1] = Listing{
			Title:      strings.TrimSpace(m[2]),
			WatchCount: watching,
			Year:       year,
		}
	}
	return out, nil
}

// e.g. "Deadpool 2016", "Daredevil: Born Again 2025"
var titleYearRegex = regexp.MustCompile(`^(\w+)(.*?)\s(\d{4})$`)

func extractTitleYear(selector string) grammarFunc {
	return func(doc *goquery.Document) (Listings, error) {
		blocks, err := textBlocks(doc, selector)
		if err != nil {
			return nil, err
		}

		out := Listings{}
		for _, text := range blocks {
			m := titleYearRegex.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			year, _ := strconv.Atoi(m[3])
			out[len(out)+1] = Listing{
				Title: strings.TrimSpace(m[1] + m[2]),
				Year:  year,
			}
		}
		return out, nil
	}
}

// e.g. "$36,000,000Dog Man 2025"
var boxOfficeRegex = regexp.MustCompile(`^(\$\d[\d,]*)(\D+)(\d{4})$`)

func extractBoxOffice(doc *goquery.Document) (Listings, error) {
	blocks, err := textBlocks(doc, "div.titles")
	if err != nil {
		return nil, err
	}

	out := Listings{}
	for _, text := range blocks {
		m := boxOfficeRegex.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[3])
		out[len(out)+1] = Listing{
			Title:  strings.TrimSpace(m[2]),
			Budget: m[1],
			Year:   year,
		}
	}
	return out, nil
}

// e.g. "7x11 Welcome to the e-Neighborhood"
var episodeRegex = regexp.MustCompile(`(\d{1,3}x\d{1,3})\s(\D+)`)

const calendarRowSelector = "div.titles.has-worded-image"

func extractCalendarEpisodes(doc *goquery.Document) (Listings, error) {
	rows := doc.Find(calendarRowSelector)
	if len(rows.Nodes) == 0 {
		return nil, &ParseError{Fragment: calendarRowSelector}
	}

	out := Listings{}
	rows.Each(func(_ int, row *goquery.Selection) {
		link := htmlutil.CleanText(row.Find(".titles-link"))
		m := episodeRegex.FindStringSubmatch(link)
		if m == nil {
			return
		}
		coords := strings.SplitN(m[1], "x", 2)
		out[len(out)+1] = Listing{
			Title:   strings.TrimSpace(m[2]),
			Network: htmlutil.CleanText(row.Find(".generic")),
			Season:  coords[0],
			Episode: coords[1],
			Time:    htmlutil.CleanText(row.Find("h4").First()),
		}
	})
	return out, nil
}

func extractCalendarTitles(doc *goquery.Document) (Listings, error) {
	rows := doc.Find(calendarRowSelector)
	if len(rows.Nodes) == 0 {
		return nil, &ParseError{Fragment: calendarRowSelector}
	}

	out := Listings{}
	rows.Each(func(_ int, row *goquery.Selection) {
		title := htmlutil.CleanText(row.Find(".titles-link"))
		if title == "" {
			return
		}
		out[len(out)+1] = Listing{
			Title: title,
			Time:  htmlutil.CleanText(row.Find("h4").First()),
		}
	})
	return out, nil
}

func textBlocks(doc *goquery.Document, selector string) ([]string, error) {
	sel := doc.Find(selector)
	if len(sel.Nodes) == 0 {
		return nil, &ParseError{Fragment: selector}
	}
	out := make([]string, 0, len(sel.Nodes))
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, htmlutil.CleanText(s))
	})
	return out, nil
}
