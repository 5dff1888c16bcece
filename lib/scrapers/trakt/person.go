package trakt

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trakthub/lib/htmlutil"
	"trakthub/lib/textutil"
)

// PersonProfile is the extracted shape of a person page.
type PersonProfile struct {
	Name        string
	Age         string
	Gender      string
	Birthday    string
	Birthplace  string
	KnownFor    string
	Description string
	// acting/production credits keyed 1..N in page order
	Credits map[int]string
}

// the five stat rows appear in this order with their label glued onto
// the value, e.g. "Age60", "GenderMale"
var personStatLabels = [...]string{"Age", "Gender", "Birthday", "Birthplace", "Known For"}

const personDetailsSelector = "div.col-lg-8.col-md-7"

// ExtractPerson applies the person-page grammar. The slug the page was
// requested under supplies the display name.
func ExtractPerson(doc *goquery.Document, slug string) (PersonProfile, error) {
	details := doc.Find(personDetailsSelector).First()
	if len(details.Nodes) == 0 {
		return PersonProfile{}, &ParseError{Fragment: personDetailsSelector}
	}

	statItems := details.Find("ul").First().Find("li")
	if len(statItems.Nodes) < len(personStatLabels) {
		return PersonProfile{}, &ParseError{Fragment: personDetailsSelector + " ul li"}
	}

	profile := PersonProfile{
		Name:    textutil.Humanize(slug),
		Credits: map[int]string{},
	}
	stats := htmlutil.TextList(statItems)
	for i, label := range personStatLabels {
		value := htmlutil.StripLabel(stats[i], label)
		switch label {
		case "Age":
			profile.Age = value
		case "Gender":
			profile.Gender = value
		case "Birthday":
			profile.Birthday = value
		case "Birthplace":
			profile.Birthplace = value
		case "Known For":
			profile.KnownFor = value
		}
	}

	// the biography is the container's own text with the stat list's
	// text carved out
	listText := details.Find("ul").First().Text()
	profile.Description = strings.TrimSpace(
		strings.Replace(details.Text(), listText, "", 1),
	)

	doc.Find("div.titles .ellipsify").Each(func(_ int, s *goquery.Selection) {
		profile.Credits[len(profile.Credits)+1] = htmlutil.CleanText(s)
	})

	return profile, nil
}
