package trakt

import (
	"github.com/antzucaro/matchr"

	"trakthub/lib/textutil"
)

// MatchThreshold is the minimum similarity score for two titles to be
// considered the same work.
const MatchThreshold = 90

// TitleScore rates the similarity of two titles on a 0..100 scale. Scoring
// is case and punctuation insensitive, so "the matrix (1999)" and
// "The Matrix 1999" score 100.
func TitleScore(a, b string) int {
	a = textutil.NormalizeName(textutil.StripPunctuation(a))
	b = textutil.NormalizeName(textutil.StripPunctuation(b))
	if a == b {
		return 100
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 100
	}
	distance := matchr.Levenshtein(a, b)
	if distance >= longest {
		return 0
	}
	return (longest - distance) * 100 / longest
}

// IsMatch reports whether two titles are similar enough to refer to the
// same work.
func IsMatch(a, b string) bool {
	return TitleScore(a, b) >= MatchThreshold
}

// BestMatch scans listings for the entry most similar to the query and
// returns its key. ok is false when no entry clears MatchThreshold.
func BestMatch(query string, listings Listings) (key int, best Listing, ok bool) {
	bestScore := -1
	for i := 1; i <= len(listings); i++ {
		entry, found := listings[i]
		if !found {
			continue
		}
		score := TitleScore(query, entry.Title)
		if score > bestScore {
			bestScore = score
			key = i
			best = entry
		}
	}
	return key, best, bestScore >= MatchThreshold
}
