package configutil

// Project metadata served by the CLI's version/about commands.
// Kept as a flat mapping so it can be rendered generically.
var Metadata = map[string]string{
	"name":        "trakthub",
	"version":     "1.2.0",
	"author":      "trakthub maintainers",
	"license":     "MIT",
	"description": "A scraper and CLI for browsing Trakt.tv listings and titles.",
	"url":         "https://github.com/trakthub/trakthub",
}
