package ingest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownMuseum is the attribution fallback when no museum can be
// recognized in a post.
const UnknownMuseum = "Unknown Museum"

// museumNames maps lowercase substrings found in forum posts to canonical
// museum display names. Checked in a fixed order so attribution is
// deterministic when a post mentions more than one site.
var museumNames = []struct {
	key  string
	name string
}{
	{"prado", "Museo del Prado"},
	{"vatican", "Vatican Museums"},
	{"louvre", "Louvre Museum"},
	{"british museum", "British Museum"},
	{"metropolitan", "Metropolitan Museum of Art"},
	{"uffizi", "Uffizi Gallery"},
	{"tate", "Tate Modern"},
	{"alhambra", "Alhambra"},
	{"colosseum", "Colosseum"},
	{"pompeii", "Pompeii"},
	{"herculaneum", "Herculaneum"},
	{"borghese", "Borghese Gallery"},
	{"medici", "Medici Riccardi Palace"},
	{"tower of london", "Tower of London"},
	{"edinburgh castle", "Edinburgh Castle"},
	{"ostia", "Ostia Antica"},
	{"accademia", "Accademia Gallery"},
	{"bargello", "Bargello Museum"},
	{"milan duomo", "Milan Duomo"},
	{"duomo", "Duomo Museum"},
	{"florence", "Florence Museums"},
	{"olympia", "Olympia"},
	{"budapest", "Budapest Museums"},
}

// siteSuffixes are generic cultural-site words a post title may end a
// museum name with when the site is not in the canonical table.
var siteSuffixes = []string{"museum", "gallery", "palace", "castle"}

var titleCaser = cases.Title(language.English)

// ExtractMuseumName attributes a post to a museum from its title and
// content. Canonical names win over suffix extraction; posts that match
// nothing are attributed to UnknownMuseum.
func ExtractMuseumName(title, content string) string {
	text := strings.ToLower(title + " " + content)

	for _, m := range museumNames {
		if strings.Contains(text, m.key) {
			return m.name
		}
	}

	// Fall back to "<Name> Museum" style extraction from the title, e.g.
	// "orsay museum tickets" -> "Orsay Museum".
	titleLower := strings.ToLower(title)
	for _, suffix := range siteSuffixes {
		idx := strings.Index(titleLower, suffix)
		if idx < 0 {
			continue
		}
		prefix := strings.TrimSpace(titleLower[:idx])
		if prefix == "" {
			continue
		}
		return titleCaser.String(prefix) + " " + titleCaser.String(suffix)
	}

	return UnknownMuseum
}
