// path: models/submission.go
package models

import (
	"fmt"
	"time"
)

// NA is substituted for any missing free-text field at intake.
const NA = "N/A"

// Values stored in image_url when no hosted image exists.
const (
	NoImage      = "No image uploaded"
	UploadFailed = "Image upload failed"
)

// Submission is one pest report as persisted in the store.
// JSON field names are the on-disk contract; do not rename.
type Submission struct {
	Timestamp       string   `json:"timestamp" bson:"timestamp"`
	YourName        string   `json:"yourName" bson:"yourName"`
	BusinessArea    string   `json:"businessArea" bson:"businessArea"`
	Pests           []string `json:"pests" bson:"pests"`
	OtherPest       string   `json:"otherPest" bson:"otherPest"`
	ReportDate      string   `json:"reportDate" bson:"reportDate"`
	AdditionalNotes string   `json:"additionalNotes" bson:"additionalNotes"`
	ImageURL        string   `json:"image_url" bson:"image_url"`
}

// HasOtherPest reports whether the free-text pest field carries a real value.
// "" and the placeholder both count as absent.
func (s *Submission) HasOtherPest() bool {
	return s.OtherPest != "" && s.OtherPest != NA
}

// SubmitPayload is the jsonData form field of POST /submit-report.
type SubmitPayload struct {
	YourName        string   `json:"yourName"`
	BusinessArea    string   `json:"businessArea"`
	Pests           []string `json:"pests"`
	OtherPest       string   `json:"otherPest"`
	ReportDate      string   `json:"reportDate"`
	AdditionalNotes string   `json:"additionalNotes"`
}

// SubmitResp is the response body for POST /submit-report.
type SubmitResp struct {
	Message string `json:"message"`
}

// ListResp is the response body for GET /api/reports.
type ListResp struct {
	OK    bool         `json:"ok"`
	Items []Submission `json:"items"`
}

// Layouts accepted when reading timestamps back. Records written by this
// service use RFC3339; older data may carry naive ISO-8601 stamps without a
// zone.
var tsLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp parses a stored timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
