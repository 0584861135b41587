package models

import "time"

// Client is a customer that projects are billed to.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Projects is populated by catalog reads; nil when not loaded.
	Projects []*Project `json:"projects,omitempty"`
}

// Project belongs to exactly one client.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClientID  string    `json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Client *Client `json:"client,omitempty"`
}
