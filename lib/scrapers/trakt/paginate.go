package trakt

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
)

// MaxPages bounds the paginated fan-out per listing request.
const MaxPages = 5

// FetchPageFunc fetches and extracts a single result page, returning
// records keyed 1..N local to that page.
type FetchPageFunc func(ctx context.Context, page int) (Listings, error)

// FetchPages fetches pages 1..pages concurrently and merges them into one
// continuously-indexed collection. The merge is deterministic: pages are
// collected first and re-keyed in ascending page order, so the result
// never depends on goroutine scheduling. Any page error fails the whole
// request.
func FetchPages(ctx context.Context, pages int, fetch FetchPageFunc) (Listings, error) {
	ctx, span := tracer.Start(ctx, "FetchPages")
	defer span.End()
	span.SetAttributes(attribute.Int("pages", pages))

	if pages <= 0 || pages > MaxPages {
		return nil, ErrBadPageBound
	}

	perPage := make([]Listings, pages)
	errList := make([]error, pages)
	wg := sync.WaitGroup{}

	for i := 0; i < pages; i++ {
		page := i + 1
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := fetch(ctx, page)
			if err != nil {
				errList[page-1] = err
				return
			}
			perPage[page-1] = result
		}()
	}
	wg.Wait()

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	merged := Listings{}
	for _, pageResult := range perPage {
		offset := len(merged)
		for i := 1; i <= len(pageResult); i++ {
			record, ok := pageResult[i]
			if !ok {
				return nil, &ParseError{Fragment: "page records are not continuously indexed"}
			}
			merged[offset+i] = record
		}
	}
	return merged, nil
}
