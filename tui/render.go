package tui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	tempmail "github.com/geortick/temp-email-cli"
	"github.com/geortick/temp-email-cli/store"
)

const timeLayout = "2006-01-02 15:04"

// renderAddresses formats the stored address list as a table.
func renderAddresses(records []store.AddressRecord, now time.Time) string {
	if len(records) == 0 {
		return dimStyle.Render("No addresses yet. Create one first.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-40s %-18s %s", "ADDRESS", "CREATED", "EXPIRES")))
	b.WriteString("\n")
	for _, rec := range records {
		line := fmt.Sprintf("%-40s %-18s %s",
			rec.Address,
			rec.CreatedAt.Local().Format(timeLayout),
			rec.ExpiresAt.Local().Format(timeLayout),
		)
		if rec.Expired(now) {
			b.WriteString(expiredStyle.Render(line + "  (expired)"))
		} else {
			b.WriteString(addressStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummaries formats an inbox listing.
func renderSummaries(msgs []tempmail.MessageSummary) string {
	if len(msgs) == 0 {
		return dimStyle.Render("Inbox is empty.")
	}

	var b strings.Builder
	for i, m := range msgs {
		marker := " "
		if m.HasAttachments {
			marker = attachMarker
		}
		b.WriteString(fmt.Sprintf("%2d. %s %s  %s\n", i+1, marker,
			subjectStyle.Render(truncate(m.Subject, 50)),
			dimStyle.Render(m.From)))
		if m.Intro != "" {
			b.WriteString("      " + dimStyle.Render(truncate(m.Intro, 70)) + "\n")
		}
	}
	return b.String()
}

// renderMessage formats a full message for reading.
func renderMessage(m *tempmail.Message) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("From:    ") + m.From + "\n")
	b.WriteString(headerStyle.Render("To:      ") + strings.Join(m.To, ", ") + "\n")
	b.WriteString(headerStyle.Render("Date:    ") + m.ReceivedAt.Local().Format(timeLayout) + "\n")
	b.WriteString(headerStyle.Render("Subject: ") + subjectStyle.Render(m.Subject) + "\n")

	body := m.Text
	if body == "" && m.HTML != "" {
		body = htmlToText(m.HTML)
	}
	if body == "" {
		body = dimStyle.Render("(empty body)")
	}
	b.WriteString("\n" + bodyBoxStyle.Render(strings.TrimSpace(body)) + "\n")

	if len(m.Attachments) > 0 {
		b.WriteString("\n" + headerStyle.Render("Attachments:") + "\n")
		for _, a := range m.Attachments {
			b.WriteString(fmt.Sprintf("  %s %s (%s, %d bytes)\n",
				attachMarker, a.Filename, a.ContentType, a.Size))
		}
	}
	return b.String()
}

var (
	htmlTagRe    = regexp.MustCompile(`(?s)<(script|style)[^>]*>.*?</(script|style)>|<[^>]+>`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// htmlToText is a crude fallback for messages that only carry an HTML
// body: strip tags, decode the handful of entities that matter, and
// collapse blank lines. Good enough for terminal display.
func htmlToText(html string) string {
	text := htmlTagRe.ReplaceAllString(html, "")
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	text = replacer.Replace(text)
	return blankLinesRe.ReplaceAllString(strings.TrimSpace(text), "\n\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
