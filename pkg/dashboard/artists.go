package dashboard

import (
	"context"
	"strconv"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

// ArtistFilters narrows an artist listing. Zero-value fields are omitted
// from the request entirely rather than sent as empty parameters.
type ArtistFilters struct {
	Genre  string
	Status string
	Search string
}

func (f ArtistFilters) query() map[string]string {
	q := make(map[string]string, 3)
	if f.Genre != "" {
		q["genre"] = f.Genre
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Search != "" {
		q["search"] = f.Search
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// LogFilters narrows an artist log listing. Limit <= 0 means unset.
type LogFilters struct {
	Level string
	Limit int
}

func (f LogFilters) query() map[string]string {
	q := make(map[string]string, 2)
	if f.Level != "" {
		q["level"] = f.Level
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// GenerateParams describes a content generation request. All three fields
// are required by the backend; the client does not validate their values.
type GenerateParams struct {
	Genre  string `json:"genre"`
	Style  string `json:"style"`
	Length string `json:"length"`
}

// Artists lists artists matching the given filters. Ordering is whatever
// the backend returns; the client does not sort or dedupe.
func (c *Client) Artists(ctx context.Context, filters ArtistFilters) ([]domain.Artist, error) {
	var artists []domain.Artist
	if err := c.getJSON(ctx, c.endpoint("artists"), filters.query(), &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// ArtistByID fetches a single artist. The id is interpolated into the
// request path as-is; passing a valid identifier is the caller's job.
func (c *Client) ArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	var artist domain.Artist
	if err := c.getJSON(ctx, c.endpoint("artists", id), nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// ArtistLogs fetches log entries for an artist. Entries are opaque; the
// log record shape is not part of the client contract.
func (c *Client) ArtistLogs(ctx context.Context, id string, filters LogFilters) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	if err := c.getJSON(ctx, c.endpoint("artists", id, "logs"), filters.query(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GenerateContent triggers content generation for an artist.
func (c *Client) GenerateContent(ctx context.Context, id string, params GenerateParams) (*domain.GenerationResult, error) {
	var result domain.GenerationResult
	if err := c.postJSON(ctx, c.endpoint("artists", id, "generate"), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
