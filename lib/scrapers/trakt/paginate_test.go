package trakt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchPagesMergesInPageOrder(t *testing.T) {
	// per-page sizes differ so any ordering mistake shows up in the keys
	sizes := map[int]int{1: 2, 2: 3, 3: 1}
	fetch := func(_ context.Context, page int) (Listings, error) {
		out := Listings{}
		for i := 1; i <= sizes[page]; i++ {
			out[i] = Listing{Title: fmt.Sprintf("p%d-%d", page, i)}
		}
		return out, nil
	}

	got, err := FetchPages(context.Background(), 3, fetch)
	require.NoError(t, err)
	require.Equal(t, Listings{
		1: {Title: "p1-1"},
		2: {Title: "p1-2"},
		3: {Title: "p2-1"},
		4: {Title: "p2-2"},
		5: {Title: "p2-3"},
		6: {Title: "p3-1"},
	}, got)
}

func TestFetchPagesBounds(t *testing.T) {
	fetch := func(_ context.Context, _ int) (Listings, error) {
		return Listings{}, nil
	}

	_, err := FetchPages(context.Background(), 0, fetch)
	require.ErrorIs(t, err, ErrBadPageBound)

	_, err = FetchPages(context.Background(), -2, fetch)
	require.ErrorIs(t, err, ErrBadPageBound)

	_, err = FetchPages(context.Background(), MaxPages+1, fetch)
	require.ErrorIs(t, err, ErrBadPageBound)

	_, err = FetchPages(context.Background(), MaxPages, fetch)
	require.NoError(t, err)
}

func TestFetchPagesPropagatesErrors(t *testing.T) {
	fetchErr := errors.New("page exploded")
	fetch := func(_ context.Context, page int) (Listings, error) {
		if page == 2 {
			return nil, fetchErr
		}
		return Listings{1: {Title: "ok"}}, nil
	}

	_, err := FetchPages(context.Background(), 3, fetch)
	require.ErrorIs(t, err, fetchErr)
}

func TestFetchPagesRejectsGappedKeys(t *testing.T) {
	fetch := func(_ context.Context, _ int) (Listings, error) {
		return Listings{1: {Title: "a"}, 3: {Title: "c"}}, nil
	}

	_, err := FetchPages(context.Background(), 1, fetch)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
