package reporters

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"weblog-analytics/internal/models"
)

// ReportRenderer writes a session report to w for human or machine consumption.
type ReportRenderer interface {
	Render(w io.Writer, report *models.SessionReport) error
}

type textRenderer struct {
	topN int
}

// NewTextRenderer renders the report as aligned text tables. Each table is
// capped to the topN highest-ranked rows; topN <= 0 renders everything.
// Rows arrive pre-sorted from the aggregators, so the cap keeps the head.
func NewTextRenderer(topN int) ReportRenderer {
	return &textRenderer{topN: topN}
}

func (r *textRenderer) Render(w io.Writer, report *models.SessionReport) error {
	if _, err := fmt.Fprintf(w, "batch %s  events %d  skipped %d\n\n", report.BatchID, report.TotalEvents, report.SkippedLines); err != nil {
		return err
	}
	if err := r.renderSessionHits(w, report.SessionHits); err != nil {
		return err
	}
	if err := r.renderSessionDurations(w, report.AvgSessionTimes); err != nil {
		return err
	}
	if err := r.renderUniqueURLs(w, report.UniqueURLCounts); err != nil {
		return err
	}
	if err := r.renderEngagements(w, report.Engagements); err != nil {
		return err
	}
	return r.renderUserAgents(w, report.RequestsByUserAgent)
}

func (r *textRenderer) renderSessionHits(w io.Writer, rows []models.SessionHitCount) error {
	tw := newTable(w, "Hits per session")
	fmt.Fprintln(tw, "ip\tsession_id\ttotal_hits")
	for _, row := range rows[:r.rowCount(len(rows))] {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.IP, row.SessionID, row.TotalHits)
	}
	return endTable(w, tw)
}

func (r *textRenderer) renderSessionDurations(w io.Writer, rows []models.IPSessionDuration) error {
	tw := newTable(w, "Average session time per IP")
	fmt.Fprintln(tw, "ip\ttotal_sessions\ttotal_duration_sec\tavg_session_time_in_min")
	for _, row := range rows[:r.rowCount(len(rows))] {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", row.IP, row.TotalSessions, row.TotalDurationSec, row.AvgSessionTimeMin)
	}
	return endTable(w, tw)
}

func (r *textRenderer) renderUniqueURLs(w io.Writer, rows []models.SessionUniqueURLs) error {
	tw := newTable(w, "Unique URL visits per session")
	fmt.Fprintln(tw, "session_id\tnum_unique_hits")
	for _, row := range rows[:r.rowCount(len(rows))] {
		fmt.Fprintf(tw, "%s\t%d\n", row.SessionID, row.NumUniqueHits)
	}
	return endTable(w, tw)
}

func (r *textRenderer) renderEngagements(w io.Writer, rows []models.UserEngagement) error {
	tw := newTable(w, "Most engaged users")
	fmt.Fprintln(tw, "user\tsession_id\tduration_min")
	for _, row := range rows[:r.rowCount(len(rows))] {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", row.User, row.SessionID, row.DurationMin)
	}
	return endTable(w, tw)
}

func (r *textRenderer) renderUserAgents(w io.Writer, byUserAgent map[string]int64) error {
	// Map iteration order is random; rank like the other tables.
	type uaRow struct {
		name string
		hits int64
	}
	rows := make([]uaRow, 0, len(byUserAgent))
	for name, hits := range byUserAgent {
		rows = append(rows, uaRow{name: name, hits: hits})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].hits != rows[j].hits {
			return rows[i].hits > rows[j].hits
		}
		return rows[i].name < rows[j].name
	})

	tw := newTable(w, "Requests by user agent")
	fmt.Fprintln(tw, "user_agent\ttotal_hits")
	for _, row := range rows[:r.rowCount(len(rows))] {
		fmt.Fprintf(tw, "%s\t%d\n", row.name, row.hits)
	}
	return endTable(w, tw)
}

func (r *textRenderer) rowCount(total int) int {
	if r.topN <= 0 || r.topN >= total {
		return total
	}
	return r.topN
}

func newTable(w io.Writer, title string) *tabwriter.Writer {
	fmt.Fprintf(w, "%s\n", title)
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func endTable(w io.Writer, tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
