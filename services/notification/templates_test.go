package notification

import (
	"testing"

	"terravista/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderBookingNotification(t *testing.T) {
	plain, html := renderBookingNotification(models.BookingEmailPayload{
		ReservationID:     "r1",
		Name:              "Ana",
		Email:             "ana@example.com",
		Phone:             "123",
		Date:              "2026-09-10",
		Time:              "10:00",
		Budget:            "200k-300k",
		DesiredProperties: []string{"Seaside Villa"},
	})

	for _, body := range []string{plain, html} {
		assert.Contains(t, body, "Ana")
		assert.Contains(t, body, "ana@example.com")
		assert.Contains(t, body, "10:00")
		assert.Contains(t, body, "200k-300k")
		assert.Contains(t, body, "Seaside Villa")
	}
}

func TestRenderConfirmationIncludesMeetLinkOnlyWhenSet(t *testing.T) {
	payload := models.ConfirmationEmailPayload{
		Name:  "Ana",
		Email: "ana@example.com",
		Date:  "2026-09-10",
		Time:  "10:00",
	}

	plain, _ := renderConfirmation(payload, "Terravista")
	assert.NotContains(t, plain, "http")

	payload.MeetLink = "https://meet.example.com/xyz"
	plain, html := renderConfirmation(payload, "Terravista")
	assert.Contains(t, plain, "https://meet.example.com/xyz")
	assert.Contains(t, html, "https://meet.example.com/xyz")
}

func TestRenderRejectionIncludesReason(t *testing.T) {
	plain, html := renderRejection(models.RejectionEmailPayload{
		Name:   "Ana",
		Email:  "ana@example.com",
		Date:   "2026-09-10",
		Time:   "10:00",
		Reason: "the office is closed that week",
	}, "Terravista")

	assert.Contains(t, plain, "the office is closed that week")
	assert.Contains(t, html, "the office is closed that week")
}

func TestRenderEscapesMarkupInHTMLBodies(t *testing.T) {
	name := "<script>alert(1)</script>"
	reason := `<img src=x onerror=alert(1)>`

	_, html := renderBookingNotification(models.BookingEmailPayload{
		Name:    name,
		Email:   "ana@example.com",
		Phone:   "123",
		Date:    "2026-09-10",
		Time:    "10:00",
		Message: "<b>hi</b>",
	})
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>hi</b>")
	assert.Contains(t, html, "&lt;script&gt;")

	_, html = renderConfirmation(models.ConfirmationEmailPayload{
		Name:     name,
		Email:    "ana@example.com",
		Date:     "2026-09-10",
		Time:     "10:00",
		MeetLink: `https://meet.example.com/x"><script>alert(1)</script>`,
	}, "Terravista")
	assert.NotContains(t, html, "<script>")

	_, html = renderRejection(models.RejectionEmailPayload{
		Name:   name,
		Email:  "ana@example.com",
		Date:   "2026-09-10",
		Time:   "10:00",
		Reason: reason,
	}, "Terravista")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img")

	_, html = renderContactMessage(models.ContactMessage{
		Name:    name,
		Email:   "ana@example.com",
		Message: "<iframe></iframe>",
	})
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<iframe>")
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Thursday, September 10, 2026", humanDate("2026-09-10"))
	// Unparseable input falls back to the raw string.
	assert.Equal(t, "not-a-date", humanDate("not-a-date"))
}
