// path: report/report.go
package report

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pestreport/mailer"
	"pestreport/models"
	"pestreport/store"
)

// Fixed bodies; the email goes out with one of these when there is nothing
// (or nothing readable) to report.
const (
	noDataMsg     = "No submissions data available for the weekly report."
	noRecentMsg   = "No new pest reports in the last week."
	readErrMsg    = "Error reading submissions data. Report cannot be generated."
	genericErrMsg = "An error occurred while preparing the report."
)

// Builder renders the periodic digest, mails it, and compacts the store
// afterwards.
type Builder struct {
	store  store.Store
	mail   mailer.Sender
	window time.Duration
	now    func() time.Time
}

func NewBuilder(st store.Store, mail mailer.Sender, retentionDays int) *Builder {
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &Builder{
		store:  st,
		mail:   mail,
		window: time.Duration(retentionDays) * 24 * time.Hour,
		now:    time.Now,
	}
}

// Build renders the digest for records inside the trailing window, in store
// order. Errors degrade to a textual body; the caller mails whatever comes
// back.
func (b *Builder) Build() string {
	recs, err := b.store.ReadAll()
	switch {
	case errors.Is(err, store.ErrCorrupt):
		log.Printf("report: %v", err)
		return readErrMsg
	case err != nil:
		log.Printf("report: read submissions: %v", err)
		return genericErrMsg
	}
	if len(recs) == 0 {
		return noDataMsg
	}

	now := b.now()
	windowStart := now.Add(-b.window)

	var recent []models.Submission
	for _, rec := range recs {
		ts, err := models.ParseTimestamp(rec.Timestamp)
		if err != nil {
			log.Printf("report: warning: skipping record with invalid timestamp %q", rec.Timestamp)
			continue
		}
		if !ts.Before(windowStart) {
			recent = append(recent, rec)
		}
	}
	if len(recent) == 0 {
		return noRecentMsg
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly Pest Report - Last %d Days (%s to %s)\n\n",
		int(b.window.Hours()/24),
		windowStart.Format("2006-01-02"),
		now.Format("2006-01-02"))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, rec := range recent {
		fmt.Fprintf(&sb, "--- Report #%d ---\n", i+1)
		fmt.Fprintf(&sb, "  Name: %s\n", rec.YourName)
		fmt.Fprintf(&sb, "  Business Area: %s\n", rec.BusinessArea)
		fmt.Fprintf(&sb, "  Pest(s): %s\n", strings.Join(rec.Pests, ", "))
		if rec.HasOtherPest() {
			fmt.Fprintf(&sb, "  Other Pest: %s\n", rec.OtherPest)
		}
		fmt.Fprintf(&sb, "  Date of Incident: %s\n", rec.ReportDate)
		fmt.Fprintf(&sb, "  Notes: %s\n", rec.AdditionalNotes)
		fmt.Fprintf(&sb, "  Image URL: %s\n", rec.ImageURL)
		ts, _ := models.ParseTimestamp(rec.Timestamp)
		fmt.Fprintf(&sb, "  Submitted On: %s\n\n", ts.Format("2006-01-02 15:04:05"))
	}
	return sb.String()
}

// Compact rewrites the store keeping only records inside the window. It runs
// on a fresh read so submissions that arrived while the report was being
// built survive. Records with unreadable timestamps are dropped here.
func (b *Builder) Compact() error {
	recs, err := b.store.ReadAll()
	if err != nil {
		return fmt.Errorf("compact read: %w", err)
	}
	cutoff := b.now().Add(-b.window)

	kept := make([]models.Submission, 0, len(recs))
	for _, rec := range recs {
		ts, err := models.ParseTimestamp(rec.Timestamp)
		if err != nil {
			continue
		}
		if !ts.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	if err := b.store.ReplaceAll(kept); err != nil {
		return fmt.Errorf("compact write: %w", err)
	}
	return nil
}

// Run builds and mails the digest, then compacts regardless of the mail
// outcome. Compaction failure only logs; the returned error reflects
// delivery.
func (b *Builder) Run() error {
	body := b.Build()
	subject := fmt.Sprintf("Weekly Pest Report - %s", b.now().Format("2006-01-02"))

	mailErr := b.mail.Send(subject, body)
	if mailErr != nil {
		log.Printf("report: failed to send weekly report: %v", mailErr)
	} else {
		log.Printf("report: weekly report sent")
	}

	if err := b.Compact(); err != nil {
		log.Printf("report: compaction failed: %v", err)
	}
	return mailErr
}
