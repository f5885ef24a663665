// path: controllers/reports_list.go
package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"pestreport/models"
	"pestreport/store"
)

// HandleListSubmissions returns stored submissions, newest first.
// Query params: limit (1..100, default 20), since (RFC3339 lower bound).
func (d *Deps) HandleListSubmissions(c *fiber.Ctx) error {
	limit := clampLimit(c.Query("limit"), 20, 100)

	var since time.Time
	if v := c.Query("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badReq(c, "invalid since (RFC3339)")
		}
		since = t
	}

	recs, err := d.Store.ReadAll()
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return c.Status(fiber.StatusInternalServerError).
				JSON(ErrorResp{OK: false, Error: "submission data unavailable"})
		}
		return serverErr(c, err)
	}

	items := make([]models.Submission, 0, limit)
	for i := len(recs) - 1; i >= 0 && len(items) < limit; i-- {
		rec := recs[i]
		if !since.IsZero() {
			ts, err := models.ParseTimestamp(rec.Timestamp)
			if err != nil || ts.Before(since) {
				continue
			}
		}
		items = append(items, rec)
	}

	return c.JSON(models.ListResp{OK: true, Items: items})
}
