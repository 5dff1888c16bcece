package trakt

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Hub is the high level entry point: it owns a Client and exposes one
// method per catalog question. All methods validate their arguments
// before any traffic happens.
type Hub struct {
	Client *Client
	// fan-out per paginated listing request, defaults to MaxPages
	Pages int
}

func NewHub(ctx context.Context, opts ClientOptions) (*Hub, error) {
	client, err := NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Hub{Client: client, Pages: MaxPages}, nil
}

func (h *Hub) pages() int {
	if h.Pages <= 0 || h.Pages > MaxPages {
		return MaxPages
	}
	return h.Pages
}

// Listing fetches and extracts a listing (category, section) across the
// requested number of pages. Calendar listings are a single page on the
// site, so pages is ignored for them.
func (h *Hub) Listing(ctx context.Context, category Category, section string, pages int) (Listings, error) {
	ctx, span := tracer.Start(ctx, "hub:Listing")
	defer span.End()
	span.SetAttributes(
		attribute.String("category", string(category)),
		attribute.String("section", section),
	)

	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if category == CategoryPeople {
		return nil, validationErrorf("category %q has no listing sections", category)
	}
	if err := validateSection(category, section); err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, page int) (Listings, error) {
		doc, err := h.Client.Document(ctx, BuildURL("", category, "", section, page))
		if err != nil {
			return nil, err
		}
		return Extract(category, section, doc)
	}

	if category == CategoryCalendars {
		pages = 1
	}
	result, err := FetchPages(ctx, pages, fetch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing failed")
		return nil, err
	}
	return result, nil
}

func (h *Hub) Trending(ctx context.Context, category Category) (Listings, error) {
	return h.Listing(ctx, category, SectionTrending, h.pages())
}

func (h *Hub) Popular(ctx context.Context, category Category) (Listings, error) {
	return h.Listing(ctx, category, SectionPopular, h.pages())
}

func (h *Hub) Anticipated(ctx context.Context, category Category) (Listings, error) {
	return h.Listing(ctx, category, SectionAnticipated, h.pages())
}

func (h *Hub) BoxOffice(ctx context.Context) (Listings, error) {
	return h.Listing(ctx, CategoryMovies, SectionBoxOffice, 1)
}

func (h *Hub) Calendar(ctx context.Context, section string) (Listings, error) {
	return h.Listing(ctx, CategoryCalendars, section, 1)
}

// contains reports whether the query fuzzily matches an entry of the
// (category, section) listing.
func (h *Hub) contains(ctx context.Context, query string, category Category, section string) (bool, error) {
	if err := validateQuery(query); err != nil {
		return false, err
	}
	listings, err := h.Listing(ctx, category, section, h.pages())
	if err != nil {
		return false, err
	}
	_, _, ok := BestMatch(query, listings)
	return ok, nil
}

func (h *Hub) IsTrending(ctx context.Context, query string, category Category) (bool, error) {
	return h.contains(ctx, query, category, SectionTrending)
}

func (h *Hub) IsPopular(ctx context.Context, query string, category Category) (bool, error) {
	return h.contains(ctx, query, category, SectionPopular)
}

func (h *Hub) IsAnticipated(ctx context.Context, query string, category Category) (bool, error) {
	return h.contains(ctx, query, category, SectionAnticipated)
}

// Person fetches a person page by free-text name and extracts the
// profile.
func (h *Hub) Person(ctx context.Context, query string) (*PersonProfile, error) {
	ctx, span := tracer.Start(ctx, "hub:Person")
	defer span.End()

	if err := validateQuery(query); err != nil {
		return nil, err
	}
	slug := Slug(query, CategoryPeople)
	doc, err := h.Client.Document(ctx, BuildURL("", CategoryPeople, slug, "", 0))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "person page failed")
		return nil, err
	}
	profile, err := ExtractPerson(doc, slug)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Title fetches a show or movie detail page by free-text query. Most
// titles need the release year in the query to resolve, e.g.
// "The Matrix 1999".
func (h *Hub) Title(ctx context.Context, query string, category Category) (*TitleDetail, error) {
	ctx, span := tracer.Start(ctx, "hub:Title")
	defer span.End()

	if err := validateQuery(query); err != nil {
		return nil, err
	}
	if category != CategoryShows && category != CategoryMovies {
		return nil, validationErrorf(
			"detail pages exist for categories %q and %q, not %q",
			CategoryShows, CategoryMovies, category,
		)
	}
	slug := Slug(query, category)
	doc, err := h.Client.Document(ctx, BuildURL("", category, slug, "", 0))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "title page failed")
		return nil, err
	}
	detail, err := ExtractTitleDetail(category, doc)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// QueryResult holds whichever record a Query produced; exactly one of
// the fields is set.
type QueryResult struct {
	Person *PersonProfile
	Title  *TitleDetail
}

// Query dispatches a free-text lookup to the detail extractor for the
// category.
func (h *Hub) Query(ctx context.Context, query string, category Category) (QueryResult, error) {
	if err := validateCategory(category); err != nil {
		return QueryResult{}, err
	}
	switch category {
	case CategoryPeople:
		person, err := h.Person(ctx, query)
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{Person: person}, nil
	case CategoryShows, CategoryMovies:
		title, err := h.Title(ctx, query, category)
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{Title: title}, nil
	}
	return QueryResult{}, validationErrorf("category %q has no detail pages to query", category)
}

func validateQuery(query string) error {
	if query == "" {
		return validationErrorf("a query must be provided")
	}
	return nil
}

// defaultHub backs the package level helpers; constructed once, on
// first use, against the public site.
var defaultHub = sync.OnceValues(func() (*Hub, error) {
	return NewHub(context.Background(), ClientOptions{})
})

func GetTrending(ctx context.Context, category Category) (Listings, error) {
	h, err := defaultHub()
	if err != nil {
		return nil, err
	}
	return h.Trending(ctx, category)
}

func GetPopular(ctx context.Context, category Category) (Listings, error) {
	h, err := defaultHub()
	if err != nil {
		return nil, err
	}
	return h.Popular(ctx, category)
}

func GetAnticipated(ctx context.Context, category Category) (Listings, error) {
	h, err := defaultHub()
	if err != nil {
		return nil, err
	}
	return h.Anticipated(ctx, category)
}

func GetBoxOffice(ctx context.Context) (Listings, error) {
	h, err := defaultHub()
	if err != nil {
		return nil, err
	}
	return h.BoxOffice(ctx)
}

func GetCalendar(ctx context.Context, section string) (Listings, error) {
	h, err := defaultHub()
	if err != nil {
		return nil, err
	}
	return h.Calendar(ctx, section)
}

func IsTrending(ctx context.Context, query string, category Category) (bool, error) {
	h, err := defaultHub()
	if err != nil {
		return false, err
	}
	return h.IsTrending(ctx, query, category)
}

func IsPopular(ctx context.Context, query string, category Category) (bool, error) {
	h, err := defaultHub()
	if err != nil {
		return false, err
	}
	return h.IsPopular(ctx, query, category)
}

func IsAnticipated(ctx context.Context, query string, category Category) (bool, error) {
	h, err := defaultHub()
	if err != nil {
		return false, err
	}
	return h.IsAnticipated(ctx, query, category)
}

func Query(ctx context.Context, query string, category Category) (QueryResult, error) {
	h, err := defaultHub()
	if err != nil {
		return QueryResult{}, err
	}
	return h.Query(ctx, query, category)
}
