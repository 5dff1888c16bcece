package trakt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const personPage = `<html><body>
<div class="col-lg-8 col-md-7">
<ul class="stats-list">
<li>Age 61</li>
<li>Gender Male</li>
<li>Birthday 1964-09-02</li>
<li>Birthplace Beirut, Lebanon</li>
<li>Known For Acting</li>
</ul>
<p>Keanu Charles Reeves is a Canadian actor known for his stoic roles.</p>
</div>
<div class="titles"><h3 class="ellipsify">John Wick</h3></div>
<div class="titles"><h3 class="ellipsify">The Matrix</h3></div>
<div class="titles"><h3 class="ellipsify">Speed</h3></div>
</body></html>`

func TestExtractPerson(t *testing.T) {
	doc := parseFixture(t, personPage)
	got, err := ExtractPerson(doc, "/keanu-reeves")
	require.NoError(t, err)

	require.Equal(t, "Keanu Reeves", got.Name)
	require.Equal(t, "61", got.Age)
	require.Equal(t, "Male", got.Gender)
	require.Equal(t, "1964-09-02", got.Birthday)
	require.Equal(t, "Beirut, Lebanon", got.Birthplace)
	require.Equal(t, "Acting", got.KnownFor)
	require.Equal(t, "Keanu Charles Reeves is a Canadian actor known for his stoic roles.", got.Description)
	require.Equal(t, map[int]string{
		1: "John Wick",
		2: "The Matrix",
		3: "Speed",
	}, got.Credits)
}

func TestExtractPersonMissingDetails(t *testing.T) {
	doc := parseFixture(t, `<html><body><p>no profile</p></body></html>`)
	_, err := ExtractPerson(doc, "/nobody")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractPersonTruncatedStats(t *testing.T) {
	doc := parseFixture(t, `<html><body>
<div class="col-lg-8 col-md-7"><ul><li>Age 61</li><li>Gender Male</li></ul></div>
</body></html>`)
	_, err := ExtractPerson(doc, "/somebody")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
