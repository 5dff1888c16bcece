package trakt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"trakthub/lib/htmlutil"
)

// Score pairs a rating value with its vote/review count.
type Score struct {
	Value string
	Votes string
}

type BasicInfo struct {
	Title         string
	ReleaseYear   string
	ContentRating string
}

type Ratings struct {
	Loved          Score
	IMDb           Score
	TMDb           Score
	RottenTomatoes string
	Metacritic     string
	Audience       string
}

type Engagement struct {
	Watchers  string
	Plays     string
	Collected string
	Comments  string
	Lists     string
	Favorited string
}

type ReleaseDetails struct {
	Date           string
	YearsAgo       string
	RuntimeHuman   string
	RuntimeMinutes int
}

type Production struct {
	Country   string
	Languages []string
	Studios   []string
	Genres    []string
	Directors []string
	Writers   []string
}

type Narrative struct {
	Tagline     string
	Description string
}

// TitleDetail is the grouped record extracted from a single title page.
// Cast is populated for movies only, TotalSeasons for shows only.
type TitleDetail struct {
	Basic        BasicInfo
	Ratings      Ratings
	Engagement   Engagement
	Release      ReleaseDetails
	Production   Production
	Narrative    Narrative
	Cast         []string
	TotalSeasons int
}

// ExtractTitleDetail applies the detail-page grammar for the category.
// Movie and show pages are structurally different layouts, so each has
// its own path; the category must have been validated upstream.
func ExtractTitleDetail(category Category, doc *goquery.Document) (TitleDetail, error) {
	switch category {
	case CategoryMovies:
		return extractMovieDetail(doc)
	case CategoryShows:
		return extractShowDetail(doc)
	}
	panic(fmt.Sprintf("no detail grammar for category %q", category))
}

const titleHeaderSelector = "div.mobile-title h1"

// readHeader splits the page header into exactly (title, release year,
// content rating); any other arity means the layout changed or the
// entity was not found.
func readHeader(doc *goquery.Document) (BasicInfo, error) {
	h1 := doc.Find(titleHeaderSelector).First()
	if len(h1.Nodes) == 0 {
		return BasicInfo{}, &ParseError{Fragment: titleHeaderSelector}
	}
	parts := strings.Split(htmlutil.SeparatedText(h1, "#"), "#")
	if len(parts) != 3 {
		return BasicInfo{}, &ParseError{
			Fragment: titleHeaderSelector,
			Err:      fmt.Errorf("header split into %d parts, want 3", len(parts)),
		}
	}
	return BasicInfo{
		Title:         strings.TrimSpace(parts[0]),
		ReleaseYear:   strings.TrimSpace(parts[1]),
		ContentRating: strings.TrimSpace(parts[2]),
	}, nil
}

type statEntry struct {
	label string
	parts []string
}

// readStats collects the entries of the page's stats strip. Each entry
// is the "number" fragment split into its sub-values plus the entry's
// label when the markup carries one.
func readStats(doc *goquery.Document) ([]statEntry, error) {
	strip := doc.Find("ul.stats").First()
	if len(strip.Nodes) == 0 {
		return nil, &ParseError{Fragment: "ul.stats"}
	}

	var entries []statEntry
	strip.Find("li").Each(func(_ int, li *goquery.Selection) {
		number := li.Find("div.number").First()
		if len(number.Nodes) == 0 {
			return
		}
		joined := htmlutil.SeparatedText(number, "#")
		if joined == "" {
			joined = htmlutil.CleanText(number)
		}
		entries = append(entries, statEntry{
			label: strings.ToLower(htmlutil.CleanText(li.Find("div.label").First())),
			parts: strings.Split(joined, "#"),
		})
	})
	if len(entries) == 0 {
		return nil, &ParseError{Fragment: "ul.stats div.number"}
	}
	return entries, nil
}

// the stats strip order when entries carry no label; pinned by the
// detail extraction tests
var positionalStatKeys = [...]string{
	"imdb", "tmdb", "rotten tomatoes", "audience", "metacritic",
	"watchers", "plays", "collected", "comments", "lists", "favorited",
}

func assignStats(detail *TitleDetail, entries []statEntry) {
	for i, entry := range entries {
		key := entry.label
		if key == "" && i < len(positionalStatKeys) {
			key = positionalStatKeys[i]
		}
		first := entry.parts[0]
		pair := Score{Value: first}
		if len(entry.parts) > 1 {
			pair.Votes = entry.parts[1]
		}

		switch {
		case strings.Contains(key, "imdb"):
			detail.Ratings.IMDb = pair
		case strings.Contains(key, "tmdb"):
			detail.Ratings.TMDb = pair
		case strings.Contains(key, "rotten"):
			detail.Ratings.RottenTomatoes = strings.Join(entry.parts, " ")
		case strings.Contains(key, "audience"):
			detail.Ratings.Audience = first
		case strings.Contains(key, "metacritic"):
			detail.Ratings.Metacritic = first
		case strings.Contains(key, "watchers"):
			detail.Engagement.Watchers = first
		case strings.Contains(key, "plays"):
			detail.Engagement.Plays = first
		case strings.Contains(key, "collected"):
			detail.Engagement.Collected = first
		case strings.Contains(key, "comments"):
			detail.Engagement.Comments = first
		case strings.Contains(key, "lists"):
			detail.Engagement.Lists = first
		case strings.Contains(key, "favorited"):
			detail.Engagement.Favorited = first
		}
	}
}

var runtimeRegex = regexp.MustCompile(`(?:(\d+)h)?\s*(?:(\d+)m)?`)

// runtimeMinutes re-expresses a humanized runtime like "1h 29m" as total
// minutes; a missing hour or minute group counts as zero.
func runtimeMinutes(humanized string) int {
	m := runtimeRegex.FindStringSubmatch(humanized)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

func yearsAgoLabel(date string) string {
	if len(date) < 4 {
		return ""
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return ""
	}
	n := time.Now().Year() - year
	suffix := "s"
	if n == 1 || n == -1 {
		suffix = ""
	}
	return fmt.Sprintf("%d year%s ago", n, suffix)
}

func readRelease(meta *goquery.Selection) ReleaseDetails {
	date := htmlutil.CleanText(meta.Find("li span").First())
	human := htmlutil.CleanText(meta.Find("span.humanized-minutes").First())
	return ReleaseDetails{
		Date:           date,
		YearsAgo:       yearsAgoLabel(date),
		RuntimeHuman:   human,
		RuntimeMinutes: runtimeMinutes(human),
	}
}

// labeledItem finds the list item whose text begins with the label and
// returns the text with the label stripped, e.g. "CountryUnited States"
// -> "United States".
func labeledItem(meta *goquery.Selection, label string) string {
	var value string
	meta.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		text := htmlutil.CleanText(li)
		if strings.HasPrefix(text, label) {
			value = htmlutil.StripLabel(text, label)
			return false
		}
		return true
	})
	return value
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// splitStudios is splitList plus dropping the "+ N more" suffix the
// studio list carries when it is truncated.
func splitStudios(joined string) []string {
	if idx := strings.Index(joined, "+"); idx >= 0 {
		joined = joined[:idx]
	}
	return splitList(strings.TrimSpace(joined))
}

func metaContents(meta *goquery.Selection, selector string) []string {
	seen := map[string]bool{}
	var out []string
	meta.Find(selector).Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Find("meta").Attr("content")
		if !ok {
			content, ok = s.Attr("content")
		}
		if !ok || seen[content] {
			return
		}
		seen[content] = true
		out = append(out, content)
	})
	return out
}

func readProduction(meta *goquery.Selection) Production {
	country := htmlutil.StripLabel(
		htmlutil.CleanText(meta.Find("li[itemprop=countryOfOrigin]").First()), "Country",
	)
	return Production{
		Country:   country,
		Languages: splitList(labeledItem(meta, "Languages")),
		Studios:   splitStudios(labeledItem(meta, "Studios")),
		Genres:    htmlutil.TextList(meta.Find("span[itemprop=genre]")),
		Directors: metaContents(meta, "span[itemprop=director]"),
		Writers:   metaContents(meta, "[itemprop=writer]"),
	}
}

func readNarrative(meta *goquery.Selection) Narrative {
	return Narrative{
		Tagline:     htmlutil.CleanText(meta.Find("div#tagline").First()),
		Description: htmlutil.CleanText(meta.Find("div.readmore").First()),
	}
}

func extractMovieDetail(doc *goquery.Document) (TitleDetail, error) {
	basic, err := readHeader(doc)
	if err != nil {
		return TitleDetail{}, err
	}
	entries, err := readStats(doc)
	if err != nil {
		return TitleDetail{}, err
	}
	meta := doc.Find(personDetailsSelector).First()
	if len(meta.Nodes) == 0 {
		return TitleDetail{}, &ParseError{Fragment: personDetailsSelector}
	}

	detail := TitleDetail{Basic: basic}
	detail.Ratings.Loved = Score{
		Value: htmlutil.CleanText(doc.Find("div.rating").First()),
		Votes: htmlutil.CleanText(doc.Find("div.votes").First()),
	}
	assignStats(&detail, entries)
	detail.Release = readRelease(meta)
	detail.Production = readProduction(meta)
	detail.Narrative = readNarrative(meta)

	doc.Find("li[itemprop=actor]").Each(func(_ int, li *goquery.Selection) {
		name := htmlutil.CleanText(li.Find(".name").First())
		character := htmlutil.CleanText(li.Find(".character").First())
		if name == "" {
			return
		}
		detail.Cast = append(detail.Cast, fmt.Sprintf("%s [%s]", name, character))
	})

	return detail, nil
}

// show pages share the conceptual fields of movie pages minus the cast
// strip, plus a season count, under a different layout
func extractShowDetail(doc *goquery.Document) (TitleDetail, error) {
	basic, err := readHeader(doc)
	if err != nil {
		return TitleDetail{}, err
	}
	entries, err := readStats(doc)
	if err != nil {
		return TitleDetail{}, err
	}
	meta := doc.Find(personDetailsSelector).First()
	if len(meta.Nodes) == 0 {
		return TitleDetail{}, &ParseError{Fragment: personDetailsSelector}
	}

	detail := TitleDetail{Basic: basic}
	detail.Ratings.Loved = Score{
		Value: htmlutil.CleanText(doc.Find("div.rating").First()),
		Votes: htmlutil.CleanText(doc.Find("div.votes").First()),
	}
	assignStats(&detail, entries)
	detail.Release = readRelease(meta)
	detail.Production = readProduction(meta)
	detail.Narrative = readNarrative(meta)

	if seasons := labeledItem(meta, "Seasons"); seasons != "" {
		detail.TotalSeasons, _ = strconv.Atoi(seasons)
	}

	return detail, nil
}
