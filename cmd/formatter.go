package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/crunchy/crunchyroll"
)

// ConsoleFormatter renders catalog entities as trees for the terminal
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// slotTitles maps search slots to their headings, in display order
var slotTitles = []struct {
	title string
	slot  func(*crunchyroll.QueryResults) *crunchyroll.BulkResult[*crunchyroll.Collection]
}{
	{"Top results", func(q *crunchyroll.QueryResults) *crunchyroll.BulkResult[*crunchyroll.Collection] { return q.TopResults }},
	{"Series", func(q *crunchyroll.QueryResults) *crunchyroll.BulkResult[*crunchyroll.Collection] { return q.Series }},
	{"Movie listings", func(q *crunchyroll.QueryResults) *crunchyroll.BulkResult[*crunchyroll.Collection] { return q.MovieListing }},
	{"Episodes", func(q *crunchyroll.QueryResults) *crunchyroll.BulkResult[*crunchyroll.Collection] { return q.Episode }},
}

// FormatQueryResults formats every present search slot
func (f *ConsoleFormatter) FormatQueryResults(results *crunchyroll.QueryResults) string {
	var sb strings.Builder
	printed := 0

	for _, s := range slotTitles {
		slot := s.slot(results)
		if slot == nil {
			continue
		}
		printed++
		sb.WriteString(f.FormatCollections(s.title, slot.Items))
		if remaining := slot.Remaining(); remaining > 0 {
			fmt.Fprintf(&sb, "  ... %d more\n\n", remaining)
		}
	}

	if printed == 0 {
		return "No results found\n"
	}
	return sb.String()
}

// FormatCollections formats search results under title
func (f *ConsoleFormatter) FormatCollections(title string, items []*crunchyroll.Collection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, len(items))

	if len(items) == 0 {
		sb.WriteString("  none\n\n")
		return sb.String()
	}

	for i, item := range items {
		isLast := i == len(items)-1
		prefix, indent := treePrefix(isLast)

		fmt.Fprintf(&sb, "%s── %s [%s] %s%s\n", prefix, item.Title, item.Type, item.ID, f.lockMarker(item.Available()))

		switch {
		case item.SeriesMetadata != nil:
			md := item.SeriesMetadata
			fmt.Fprintf(&sb, "%s%s | %d episodes, %d seasons\n", indent, yearOrUnknown(md.SeriesLaunchYear), md.EpisodeCount, md.SeasonCount)
			if len(md.AudioLocales) > 0 {
				fmt.Fprintf(&sb, "%sAudio: %s\n", indent, joinLocales(md.AudioLocales))
			}
		case item.MovieListingMetadata != nil:
			md := item.MovieListingMetadata
			fmt.Fprintf(&sb, "%s%s\n", indent, yearOrUnknown(md.MovieReleaseYear))
		case item.EpisodeMetadata != nil:
			md := item.EpisodeMetadata
			fmt.Fprintf(&sb, "%s%s S%02dE%02d\n", indent, md.SeriesTitle, md.SeasonNumber, md.EpisodeNumber)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatSeries formats fetched series
func (f *ConsoleFormatter) FormatSeries(series []*crunchyroll.Series) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nSeries (%d):\n\n", len(series))

	for i, s := range series {
		isLast := i == len(series)-1
		prefix, indent := treePrefix(isLast)

		fmt.Fprintf(&sb, "%s── %s (%s) %s%s\n", prefix, s.Title, yearOrUnknown(s.SeriesLaunchYear), s.ID, f.lockMarker(s.Available()))
		fmt.Fprintf(&sb, "%s%d episodes, %d seasons\n", indent, s.EpisodeCount, s.SeasonCount)

		var flags []string
		if s.IsSimulcast {
			flags = append(flags, "Simulcast")
		}
		if s.IsSubbed {
			flags = append(flags, "Subbed")
		}
		if s.IsDubbed {
			flags = append(flags, "Dubbed")
		}
		if s.IsMature {
			flags = append(flags, "Mature")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(flags, " | "))
		}
		if len(s.AudioLocales) > 0 {
			fmt.Fprintf(&sb, "%sAudio: %s\n", indent, joinLocales(s.AudioLocales))
		}
		if len(s.SubtitleLocales) > 0 {
			fmt.Fprintf(&sb, "%sSubtitles: %s\n", indent, joinLocales(s.SubtitleLocales))
		}
		if img, ok := crunchyroll.Largest(s.Images.PosterTall); ok {
			fmt.Fprintf(&sb, "%sPoster: %s\n", indent, img.Source)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatMovieListings formats fetched movie listings
func (f *ConsoleFormatter) FormatMovieListings(listings []*crunchyroll.MovieListing) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nMovie listings (%d):\n\n", len(listings))

	for i, m := range listings {
		isLast := i == len(listings)-1
		prefix, indent := treePrefix(isLast)

		fmt.Fprintf(&sb, "%s── %s (%s) %s%s\n", prefix, m.Title, yearOrUnknown(m.MovieReleaseYear), m.ID, f.lockMarker(m.Available()))
		if m.ContentProvider != "" {
			fmt.Fprintf(&sb, "%sProvider: %s\n", indent, m.ContentProvider)
		}
		if len(m.SubtitleLocales) > 0 {
			fmt.Fprintf(&sb, "%sSubtitles: %s\n", indent, joinLocales(m.SubtitleLocales))
		}
		if !m.PremiumAvailableDate.IsZero() {
			fmt.Fprintf(&sb, "%sPremium since: %s\n", indent, m.PremiumAvailableDate.Format("2006-01-02"))
		}
		if img, ok := crunchyroll.Largest(m.Images.PosterTall); ok {
			fmt.Fprintf(&sb, "%sPoster: %s\n", indent, img.Source)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// lockMarker flags entries the session cannot watch
func (f *ConsoleFormatter) lockMarker(available bool) string {
	if available {
		return ""
	}
	return " [PREMIUM]"
}

func treePrefix(isLast bool) (prefix, indent string) {
	if isLast {
		return "╰", "    "
	}
	return "├", "│   "
}

func yearOrUnknown(year uint32) string {
	if year == 0 {
		return "unknown year"
	}
	return fmt.Sprintf("%d", year)
}

func joinLocales(locales []crunchyroll.Locale) string {
	parts := make([]string, len(locales))
	for i, l := range locales {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
