// Package nextclass links calendar events to campus buildings: it parses
// building codes and rooms out of free-text event locations and picks the
// next upcoming class from an event feed.
package nextclass

import (
	"regexp"
	"sort"
	"strings"

	"github.com/campusnav/campusnav/pkg/cdm"
)

// Parser extracts a building code and optional room from free text like
// "H-920", "MB 3.270" or "Hall Building Room 920". All patterns are compiled
// once at construction; parsing is pure and deterministic.
type Parser struct {
	codes        []string
	codePatterns map[string]*codePatterns

	names []nameEntry

	roomAfterName   *regexp.Regexp
	numberAfterName *regexp.Regexp
}

type codePatterns struct {
	withRoom   *regexp.Regexp
	roomWord   *regexp.Regexp
	standalone *regexp.Regexp
}

type nameEntry struct {
	name       string
	buildingID string
}

// NewParser builds a parser over the known building table. Codes and names
// are matched longest-first so that a longer code is never shadowed by a
// shorter one appearing as its substring; ties keep table order.
func NewParser(buildings []*cdm.Building) *Parser {
	parser := &Parser{
		codePatterns:    map[string]*codePatterns{},
		roomAfterName:   regexp.MustCompile(`(?i)\s*(?:room|rm\.?)\s*(\S+)`),
		numberAfterName: regexp.MustCompile(`\s+(\d[\d.]*)`),
	}

	seenNames := map[string]bool{}

	for _, building := range buildings {
		code := building.ID
		escaped := regexp.QuoteMeta(code)

		parser.codes = append(parser.codes, code)
		parser.codePatterns[code] = &codePatterns{
			// e.g. "H-920", "MB 3.270", "EV1.605", "MB-S2.330"
			withRoom: regexp.MustCompile(`(?i)(?:^|[\s,;])` + escaped + `[\s\-_]?([A-Za-z]?\d[\d.]*\d?)(?:\s|$|,|;)`),
			// e.g. "H room 920", "H, rm. 920"
			roomWord: regexp.MustCompile(`(?i)(?:^|[\s,;])` + escaped + `[\s,;]+(?:room|rm\.?)\s*(\S+)`),
			// bare code at a word boundary
			standalone: regexp.MustCompile(`(?i)(?:^|[\s,;])` + escaped + `(?:\s|$|,|;)`),
		}

		for _, name := range []string{building.FullName, building.Name} {
			lower := strings.ToLower(name)
			if lower == "" || seenNames[lower] {
				continue
			}
			seenNames[lower] = true

			parser.names = append(parser.names, nameEntry{name: lower, buildingID: building.ID})
		}
	}

	sort.SliceStable(parser.codes, func(i, j int) bool {
		return len(parser.codes[i]) > len(parser.codes[j])
	})
	sort.SliceStable(parser.names, func(i, j int) bool {
		return len(parser.names[i].name) > len(parser.names[j].name)
	})

	return parser
}

// Parse extracts a building and optional room from the text, or nil when the
// text cannot be linked to a building ("Online", "TBD", addresses, empty).
func (p *Parser) Parse(text string) *cdm.ParsedLocation {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return nil
	}

	if parsed := p.matchByCode(cleaned); parsed != nil {
		return parsed
	}

	return p.matchByName(cleaned)
}

func (p *Parser) matchByCode(text string) *cdm.ParsedLocation {
	for _, code := range p.codes {
		patterns := p.codePatterns[code]

		if match := patterns.withRoom.FindStringSubmatch(text); match != nil {
			return &cdm.ParsedLocation{Building: code, Room: match[1]}
		}

		if match := patterns.roomWord.FindStringSubmatch(text); match != nil {
			return &cdm.ParsedLocation{Building: code, Room: match[1]}
		}

		if patterns.standalone.MatchString(text) {
			return &cdm.ParsedLocation{Building: code}
		}
	}

	return nil
}

func (p *Parser) matchByName(text string) *cdm.ParsedLocation {
	lower := strings.ToLower(text)

	for _, entry := range p.names {
		index := strings.Index(lower, entry.name)
		if index < 0 {
			continue
		}

		afterName := lower[index+len(entry.name):]

		// "Hall Building Room 920"
		if match := p.roomAfterName.FindStringSubmatch(afterName); match != nil {
			return &cdm.ParsedLocation{Building: entry.buildingID, Room: match[1]}
		}

		// "Hall Building 920"
		if match := p.numberAfterName.FindStringSubmatch(afterName); match != nil {
			return &cdm.ParsedLocation{Building: entry.buildingID, Room: match[1]}
		}

		return &cdm.ParsedLocation{Building: entry.buildingID}
	}

	return nil
}
