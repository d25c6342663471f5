package tempmail

import (
	"time"

	"github.com/geortick/temp-email-cli/internal/api"
)

// MessageSummary is a single entry from the inbox listing. It carries
// enough for a list display without the full message body.
type MessageSummary struct {
	ID             string
	From           string
	To             []string
	Subject        string
	Intro          string
	HasAttachments bool
	ReceivedAt     time.Time
}

// Message is the full content of a received message.
// Messages are fetched on demand from the provider and never persisted.
type Message struct {
	ID          string
	From        string
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
	ReceivedAt  time.Time
}

// Attachment describes a message attachment without its content.
type Attachment struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
}

func mailboxAddresses(boxes []api.Mailbox) []string {
	if len(boxes) == 0 {
		return nil
	}
	out := make([]string, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.Address)
	}
	return out
}

func summaryFromAPI(m api.MessageSummary) MessageSummary {
	return MessageSummary{
		ID:             m.ID,
		From:           m.From.Address,
		To:             mailboxAddresses(m.To),
		Subject:        m.Subject,
		Intro:          m.Intro,
		HasAttachments: m.HasAttachments,
		ReceivedAt:     m.ReceivedAt,
	}
}

func messageFromAPI(m *api.Message) *Message {
	msg := &Message{
		ID:         m.ID,
		From:       m.From.Address,
		To:         mailboxAddresses(m.To),
		Subject:    m.Subject,
		Text:       m.Text,
		ReceivedAt: m.ReceivedAt,
	}
	// The provider delivers the HTML body as a list of fragments.
	for _, h := range m.HTML {
		msg.HTML += h
	}
	for _, a := range m.Attachments {
		msg.Attachments = append(msg.Attachments, Attachment{
			ID:          a.ID,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}
	return msg
}
