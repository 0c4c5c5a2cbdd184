package notification

import (
	"fmt"
	"html"
	"strings"

	"terravista/models"
)

// esc escapes a value before it is interpolated into an HTML body. Every
// field in these payloads is either visitor-typed or admin-typed free text,
// so nothing goes into markup unescaped.
func esc(s string) string {
	return html.EscapeString(s)
}

func renderBookingNotification(p models.BookingEmailPayload) (plain, html string) {
	var b strings.Builder
	fmt.Fprintf(&b, "New consultation request\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", p.Name, p.Email, p.Phone)
	fmt.Fprintf(&b, "Date: %s\nTime: %s\n", humanDate(p.Date), p.Time)
	appendIf(&b, "Message", p.Message)
	appendIf(&b, "Budget", p.Budget)
	appendIf(&b, "Property type", p.PropertyType)
	appendIf(&b, "Investment type", p.InvestmentType)
	appendIf(&b, "Reason", p.Reason)
	appendIf(&b, "Referral source", p.ReferralSource)
	if len(p.DesiredProperties) > 0 {
		fmt.Fprintf(&b, "Properties of interest: %s\n", strings.Join(p.DesiredProperties, ", "))
	}
	plain = b.String()

	html = fmt.Sprintf(
		`<h2>New consultation request</h2>
<p><strong>%s</strong> &lt;%s&gt; &mdash; %s</p>
<p>%s at %s</p>
<pre>%s</pre>`,
		esc(p.Name), esc(p.Email), esc(p.Phone), esc(humanDate(p.Date)), esc(p.Time), esc(plain))
	return plain, html
}

func renderConfirmation(p models.ConfirmationEmailPayload, siteName string) (plain, html string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", p.Name)
	fmt.Fprintf(&b, "Your consultation on %s at %s is confirmed.\n", humanDate(p.Date), p.Time)
	if p.MeetLink != "" {
		fmt.Fprintf(&b, "Join here: %s\n", p.MeetLink)
	}
	fmt.Fprintf(&b, "\nSee you soon,\n%s\n", siteName)
	plain = b.String()

	link := ""
	if p.MeetLink != "" {
		link = fmt.Sprintf(`<p><a href="%s">Join the meeting</a></p>`, esc(p.MeetLink))
	}
	html = fmt.Sprintf(
		`<p>Hello %s,</p>
<p>Your consultation on <strong>%s</strong> at <strong>%s</strong> is confirmed.</p>
%s
<p>See you soon,<br>%s</p>`,
		esc(p.Name), esc(humanDate(p.Date)), esc(p.Time), link, esc(siteName))
	return plain, html
}

func renderRejection(p models.RejectionEmailPayload, siteName string) (plain, html string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", p.Name)
	fmt.Fprintf(&b, "Unfortunately we cannot host your consultation on %s at %s.\n", humanDate(p.Date), p.Time)
	if p.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", p.Reason)
	}
	fmt.Fprintf(&b, "\nYou are welcome to book another time.\n\n%s\n", siteName)
	plain = b.String()

	reason := ""
	if p.Reason != "" {
		reason = fmt.Sprintf("<p>Reason: %s</p>", esc(p.Reason))
	}
	html = fmt.Sprintf(
		`<p>Hello %s,</p>
<p>Unfortunately we cannot host your consultation on <strong>%s</strong> at <strong>%s</strong>.</p>
%s
<p>You are welcome to book another time.</p>
<p>%s</p>`,
		esc(p.Name), esc(humanDate(p.Date)), esc(p.Time), reason, esc(siteName))
	return plain, html
}

func renderContactMessage(m models.ContactMessage) (plain, html string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact form message\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", m.Name, m.Email)
	appendIf(&b, "Phone", m.Phone)
	fmt.Fprintf(&b, "\n%s\n", m.Message)
	plain = b.String()

	html = fmt.Sprintf(
		`<h2>Contact form message</h2>
<p><strong>%s</strong> &lt;%s&gt; %s</p>
<p>%s</p>`,
		esc(m.Name), esc(m.Email), esc(m.Phone), esc(m.Message))
	return plain, html
}

func appendIf(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}
