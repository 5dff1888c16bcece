package trakt

import (
	"fmt"
	"net/url"
	"strings"

	"trakthub/lib/textutil"
)

const DefaultBaseURL = "https://trakt.tv/"

type Category string

const (
	CategoryPeople    Category = "people"
	CategoryShows     Category = "shows"
	CategoryMovies    Category = "movies"
	CategoryCalendars Category = "calendars"
)

const (
	SectionTrending    = "trending"
	SectionPopular     = "popular"
	SectionAnticipated = "anticipated"
	SectionBoxOffice   = "boxoffice"
)

var showSections = []string{SectionTrending, SectionPopular, SectionAnticipated}

var movieSections = []string{SectionTrending, SectionPopular, SectionAnticipated, SectionBoxOffice}

var calendarSections = []string{
	"people", "shows", "movies",
	"premieres", "new-shows", "finales", "dvd",
}

var sectionsByCategory = map[Category][]string{
	CategoryShows:     showSections,
	CategoryMovies:    movieSections,
	CategoryCalendars: calendarSections,
}

func Categories() []Category {
	return []Category{CategoryPeople, CategoryShows, CategoryMovies, CategoryCalendars}
}

func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func validateCategory(c Category) error {
	if c == "" {
		return validationErrorf("a category must be provided, one of: %v", Categories())
	}
	if !ValidCategory(c) {
		return validationErrorf("%q is not a valid category, must be one of: %v", c, Categories())
	}
	return nil
}

// validateSection checks that the section exists at all and that it
// belongs to the given category; a section of another category is
// rejected with an error naming the category it does belong to.
func validateSection(c Category, section string) error {
	if section == "" {
		return validationErrorf("a section must be provided")
	}

	owners := []Category{}
	for _, cat := range []Category{CategoryShows, CategoryMovies, CategoryCalendars} {
		for _, s := range sectionsByCategory[cat] {
			if s == section {
				owners = append(owners, cat)
				break
			}
		}
	}
	if len(owners) == 0 {
		return validationErrorf(
			"%q is not a valid section\nshow sections: %v\nmovie sections: %v\ncalendar sections: %v",
			section, showSections, movieSections, calendarSections,
		)
	}
	for _, owner := range owners {
		if owner == c {
			return nil
		}
	}
	return validationErrorf(
		"%q is not a valid section for category %q, it belongs to category %q",
		section, c, owners[0],
	)
}

// Slug derives a URL path segment from a free-text query: punctuation
// stripped, words hyphen-joined, "/" prefixed. It is empty unless the
// query is non-empty or the category is people (person pages live
// directly under /people/<slug>).
func Slug(query string, category Category) string {
	if query == "" && category != CategoryPeople {
		return ""
	}
	return "/" + textutil.Slugify(query)
}

// BuildURL assembles base + category + slug [+ /section] [?page=N].
func BuildURL(base string, category Category, slug, section string, page int) string {
	u := strings.TrimSuffix(base, "/") + "/" + string(category) + slug
	if section != "" {
		u += "/" + section
	}
	if page > 1 {
		u += fmt.Sprintf("?page=%d", page)
	}
	return u
}

// ParseURL recovers the category and slug-derived query from a URL built
// by BuildURL. The query comes back hyphen-joined, i.e. normalized up to
// the punctuation Slug stripped.
func ParseURL(raw string) (Category, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", &RequestError{URL: raw, Err: err}
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", "", validationErrorf("url %q has no category path segment", raw)
	}
	category := Category(segments[0])
	if err := validateCategory(category); err != nil {
		return "", "", err
	}
	query := ""
	if len(segments) > 1 {
		rest := segments[1]
		if err := validateSection(category, rest); err != nil {
			// not a section, so it is the slug
			query = rest
		}
	}
	return category, query, nil
}
