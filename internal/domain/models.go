package domain

import (
	"encoding/json"
	"time"
)

// Domain contains core models shared by the dashboard client and console apps.

// ServiceStatus is a point-in-time health classification for one platform service.
type ServiceStatus string

const (
	StatusOnline   ServiceStatus = "Online"
	StatusDegraded ServiceStatus = "Degraded"
	StatusOffline  ServiceStatus = "Offline"
)

// SystemStatus maps a service name to its current status.
type SystemStatus map[string]ServiceStatus

// Artist is an AI artist record as returned by the dashboard API.
// Only ID is contractual; the remaining fields are populated when the
// backend (or the profile enricher) provides them.
type Artist struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Status      string `json:"status,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Stats is the aggregate returned by the stats endpoint. Counters the
// backend is known to emit are mapped; everything else rides along raw.
type Stats struct {
	TotalArtists    int             `json:"total_artists"`
	ActiveArtists   int             `json:"active_artists"`
	TracksGenerated int             `json:"tracks_generated"`
	Extra           json.RawMessage `json:"extra,omitempty"`
}

// QuickStats is the condensed counter snapshot shown on the dashboard header.
type QuickStats struct {
	Artists   int `json:"artists"`
	Active    int `json:"active"`
	Autopilot int `json:"autopilot"`
	Errors    int `json:"errors"`
}

// ChatMessageType classifies who produced a chat turn.
type ChatMessageType string

const (
	ChatMessageUser   ChatMessageType = "user"
	ChatMessageSystem ChatMessageType = "system"
	ChatMessageArtist ChatMessageType = "artist"
)

// ChatMessage is one immutable turn in an artist conversation.
type ChatMessage struct {
	ID        string          `json:"id"`
	Type      ChatMessageType `json:"type"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Sender    string          `json:"sender"`
}

// LogEntry is an artist log record. The backend log shape is not part of
// the client contract, so entries stay opaque.
type LogEntry = json.RawMessage

// GenerationResult is the response to a content generation request.
// Payload carries whatever the generation backend returned beyond the
// identifying fields.
type GenerationResult struct {
	ID      string          `json:"id,omitempty"`
	Status  string          `json:"status,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
