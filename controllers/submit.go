// path: controllers/submit.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pestreport/imagehost"
	"pestreport/mailer"
	"pestreport/models"
	"pestreport/store"
)

// Deps carries the collaborators every handler needs; main wires them from
// config so nothing here touches the environment.
type Deps struct {
	Store  store.Store
	Mail   mailer.Sender
	Images imagehost.ImageHost
}

// HandleSubmitReport accepts one pest report. The web form posts
// multipart/form-data with a jsonData text field plus an optional imageFile
// part; a plain JSON body works too (no image that way).
func (d *Deps) HandleSubmitReport(c *fiber.Ctx) error {
	ct := c.Get("Content-Type")

	var p models.SubmitPayload
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		raw := c.FormValue("jsonData")
		if raw == "" {
			return badReq(c, "No JSON data found in request form")
		}
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return badReq(c, "Invalid JSON data provided")
		}
	case strings.HasPrefix(ct, "application/json"):
		if err := c.BodyParser(&p); err != nil {
			return badReq(c, "Invalid JSON data provided")
		}
	default:
		return c.Status(fiber.StatusUnsupportedMediaType).
			JSON(ErrorResp{OK: false, Error: "unsupported content type"})
	}

	pests := p.Pests
	if pests == nil {
		pests = []string{}
	}

	rec := models.Submission{
		Timestamp:       time.Now().Format(time.RFC3339),
		YourName:        orNA(p.YourName),
		BusinessArea:    orNA(p.BusinessArea),
		Pests:           pests,
		OtherPest:       p.OtherPest,
		ReportDate:      orNA(p.ReportDate),
		AdditionalNotes: orNA(p.AdditionalNotes),
		ImageURL:        models.NoImage,
	}

	if fh, err := c.FormFile("imageFile"); err == nil && fh != nil && fh.Filename != "" {
		rec.ImageURL = d.uploadImage(c.Context(), fh)
	}

	if err := d.Store.Append(rec); err != nil {
		log.Printf("submit: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.SubmitResp{Message: "Error saving submission"})
	}

	subject := fmt.Sprintf("New Pest Report from %s", rec.YourName)
	if err := d.Mail.Send(subject, notificationBody(&rec)); err != nil {
		// Accepted but degraded: the record is already persisted.
		log.Printf("submit: notification failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.SubmitResp{Message: "Report submitted, but email failed to send. Check backend logs."})
	}
	return c.JSON(models.SubmitResp{Message: "Report submitted and email sent successfully!"})
}

// uploadImage never fails the submission; a broken upload is recorded as the
// failure sentinel instead.
func (d *Deps) uploadImage(ctx context.Context, fh *multipart.FileHeader) string {
	if d.Images == nil {
		log.Printf("submit: image host not configured, marking upload failed")
		return models.UploadFailed
	}
	f, err := fh.Open()
	if err != nil {
		log.Printf("submit: open image %q: %v", fh.Filename, err)
		return models.UploadFailed
	}
	defer f.Close()

	url, err := d.Images.Upload(ctx, f)
	if err != nil {
		log.Printf("submit: image upload failed: %v", err)
		return models.UploadFailed
	}
	log.Printf("submit: image uploaded: %s", url)
	return url
}

func notificationBody(rec *models.Submission) string {
	var b strings.Builder
	b.WriteString("A new pest report has been submitted:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", rec.YourName)
	fmt.Fprintf(&b, "Business Area: %s\n", rec.BusinessArea)
	fmt.Fprintf(&b, "Pest(s): %s\n", strings.Join(rec.Pests, ", "))
	if rec.HasOtherPest() {
		fmt.Fprintf(&b, "Other Pest: %s\n", rec.OtherPest)
	}
	fmt.Fprintf(&b, "Date: %s\n", rec.ReportDate)
	fmt.Fprintf(&b, "Notes: %s\n", rec.AdditionalNotes)
	fmt.Fprintf(&b, "Image URL: %s\n", rec.ImageURL)
	fmt.Fprintf(&b, "Submitted At: %s", rec.Timestamp)
	return b.String()
}
