package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/moodiary/internal/calendar"
	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

var moodColors = map[mood.Mood]lipgloss.Color{
	mood.Happy:   lipgloss.Color("#FFD54F"),
	mood.Sad:     lipgloss.Color("#64B5F6"),
	mood.Angry:   lipgloss.Color("#E57373"),
	mood.Excited: lipgloss.Color("#FF8A65"),
	mood.Relaxed: lipgloss.Color("#81C784"),
	mood.Focused: lipgloss.Color("#9575CD"),
	mood.Neutral: lipgloss.Color("#B0BEC5"),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	cellStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	todayStyle   = cellStyle.Underline(true).Bold(true)
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	weekdayNames = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

func moodStyle(m mood.Mood) lipgloss.Style {
	c, ok := moodColors[m]
	if !ok {
		c = moodColors[mood.Neutral]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// moodLabel is the one-line badge for m, e.g. "😊 happy (행복)".
func moodLabel(m mood.Mood) string {
	return fmt.Sprintf("%s %s (%s)", mood.Emoji(m), m, mood.Korean(m))
}

// renderCalendar draws the month grid. Days with an entry are coloured by
// its mood; today is underlined. The legend below counts the month's moods.
func renderCalendar(entries []models.Entry, year int, month time.Month, today time.Time) string {
	var rows []string

	header := make([]string, 0, 7)
	for _, d := range weekdayNames {
		header = append(header, mutedStyle.Inherit(cellStyle).Render(d))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	todayKey := today.In(time.Local).Format(models.DateLayout)
	for _, week := range calendar.Month(entries, year, month) {
		cells := make([]string, 0, 7)
		for _, c := range week {
			cells = append(cells, renderCell(c, todayKey))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	title := titleStyle.Render(fmt.Sprintf("%s %d", month, year))
	grid := borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, title, grid, renderLegend(calendar.CountByMood(entries, year, month)))
}

func renderCell(c calendar.Cell, todayKey string) string {
	if c.Blank() {
		return cellStyle.Render("")
	}

	style := cellStyle
	if c.Date == todayKey {
		style = todayStyle
	}
	text := strconv.Itoa(c.Day)
	if c.Entry != nil {
		style = style.Inherit(moodStyle(c.Entry.Mood).Bold(true))
		text = "*" + text
	}
	return style.Render(text)
}

func renderLegend(counts map[mood.Mood]int) string {
	parts := make([]string, 0, len(counts))
	for _, m := range mood.All() {
		parts = append(parts, moodStyle(m).Render(fmt.Sprintf("%s %s %d", mood.Emoji(m), m, counts[m])))
	}
	return strings.Join(parts, "  ")
}

// renderList prints one line per entry, newest date first.
func renderList(entries []models.Entry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No entries yet. Type 'new' to write one.")
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	lines := make([]string, 0, len(sorted))
	for _, e := range sorted {
		date := e.Date
		if date == "" {
			date = "----------"
		}
		lines = append(lines, fmt.Sprintf("%6s  %s  %s  %s",
			e.ID, date, moodStyle(e.Mood).Render(fmt.Sprintf("%s %-8s", mood.Emoji(e.Mood), e.Mood)), e.Title))
	}
	return strings.Join(lines, "\n")
}

// renderEntry prints the detail view of a single entry.
func renderEntry(e models.Entry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("#%s  %s", e.ID, e.Date)))
	b.WriteString("  ")
	b.WriteString(moodStyle(e.Mood).Render(moodLabel(e.Mood)))
	b.WriteString("\n\n")
	b.WriteString(e.Content)
	if e.Empathy != "" {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("💬 " + e.Empathy))
	}
	if e.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("📝 " + e.Feedback))
	}
	return b.String()
}

// renderOverview prints the profile view with a bar per mood.
func renderOverview(o services.Overview) string {
	var b strings.Builder
	name := o.Profile.DisplayName()
	if name == "" {
		name = models.LocalPart(o.Profile.Email)
	}
	b.WriteString(titleStyle.Render(name))
	if o.Profile.Email != "" {
		b.WriteString("  " + mutedStyle.Render(o.Profile.Email))
	}
	b.WriteString("\n")

	if o.DaysJoined > 0 {
		fmt.Fprintf(&b, "Writing with moodiary for %d days\n", o.DaysJoined)
	}
	fmt.Fprintf(&b, "Entries: %d total, %d this month\n", o.Summary.Total, o.Summary.ThisMonth)
	if o.Summary.HasMostCommon {
		fmt.Fprintf(&b, "Most common mood: %s\n", moodStyle(o.Summary.MostCommon).Render(moodLabel(o.Summary.MostCommon)))
	}

	for _, m := range mood.All() {
		n := o.Summary.ByMood[m]
		bar := moodStyle(m).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "\n%s %-8s %3d %s", mood.Emoji(m), m, n, bar)
	}
	return b.String()
}
