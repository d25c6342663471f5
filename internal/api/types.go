package api

import (
	"encoding/json"
	"time"
)

// Domain represents an entry from the provider's domain list.
type Domain struct {
	ID       string `json:"id"`
	Domain   string `json:"domain"`
	IsActive bool   `json:"isActive"`
}

// Account represents a provisioned account on the provider.
type Account struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// Mailbox is an address/name pair as it appears in message headers.
type Mailbox struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// MessageSummary is a single entry from the message list endpoint.
type MessageSummary struct {
	ID             string    `json:"id"`
	From           Mailbox   `json:"from"`
	To             []Mailbox `json:"to"`
	Subject        string    `json:"subject"`
	Intro          string    `json:"intro"`
	HasAttachments bool      `json:"hasAttachments"`
	ReceivedAt     time.Time `json:"createdAt"`
}

// Message is the full content of a single message.
type Message struct {
	ID             string       `json:"id"`
	From           Mailbox      `json:"from"`
	To             []Mailbox    `json:"to"`
	Subject        string       `json:"subject"`
	Intro          string       `json:"intro"`
	Text           string       `json:"text"`
	HTML           []string     `json:"html"`
	HasAttachments bool         `json:"hasAttachments"`
	Attachments    []Attachment `json:"attachments"`
	ReceivedAt     time.Time    `json:"createdAt"`
}

// Attachment describes a message attachment without its content.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"downloadUrl"`
}

type createAccountRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type createTokenRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// collection accepts both response shapes the provider is known to
// emit for list endpoints: a bare JSON array, or a hydra-style
// collection object whose member list lives under "hydra:member".
type collection[T any] struct {
	Members []T
}

func (c *collection[T]) UnmarshalJSON(data []byte) error {
	var members []T
	if err := json.Unmarshal(data, &members); err == nil {
		c.Members = members
		return nil
	}

	var wrapper struct {
		Members []T `json:"hydra:member"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	c.Members = wrapper.Members
	return nil
}
