package scraper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cottageSelector matches the participant-popup triggers that carry the
// housing code of a cottage variant.
const cottageSelector = "a.js-open-popinParticipants[data-housingcode]"

// ExtractCottages parses the listing page for every distinct cottage variant.
// Duplicated housing codes keep their first occurrence, and document order is
// preserved.
func ExtractCottages(body []byte) ([]Cottage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	var cottages []Cottage
	seen := make(map[string]bool)

	doc.Find(cottageSelector).Each(func(_ int, s *goquery.Selection) {
		code := strings.TrimSpace(s.AttrOr("data-housingcode", ""))
		if code == "" || seen[code] {
			return
		}
		seen[code] = true

		cottages = append(cottages, Cottage{
			HousingCode:  code,
			HousingType:  attrOrDefault(s, "data-housing", Inconnu),
			ComfortLevel: attrOrDefault(s, "data-comfort", Inconnu),
			NbPersonnes:  intAttr(s, "data-maxcapacity"),
		})
	})

	return cottages, nil
}

// attrOrDefault returns the attribute value, or the default when the
// attribute is absent. An attribute present but empty is kept as is.
func attrOrDefault(s *goquery.Selection, name, def string) string {
	if v, exists := s.Attr(name); exists {
		return v
	}
	return def
}

// intAttr reads an integer attribute; absent or unparsable values become 0.
func intAttr(s *goquery.Selection, name string) int {
	v, exists := s.Attr(name)
	if !exists {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
