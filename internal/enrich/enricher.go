package enrich

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
	"github.com/soundforge-hq/soundforge-console/internal/logger"
	"github.com/soundforge-hq/soundforge-console/pkg/httpclient"
)

const (
	maxHTMLBodyBytes = 1 << 20 // 1 MiB
	defaultTimeout   = 15 * time.Second
)

// Enricher fetches artist profile pages and fills gaps in artist records
// from their OG tags.
type Enricher struct {
	client httpclient.Client
	log    logger.Logger
	delay  time.Duration
}

// NewEnricher constructs an enricher with the provided HTTP client (or default).
func NewEnricher(client httpclient.Client, log logger.Logger, delay time.Duration) *Enricher {
	if client == nil {
		client = httpclient.NewRestyClient(defaultTimeout)
	}
	return &Enricher{
		client: client,
		log:    logger.Ensure(log),
		delay:  delay,
	}
}

// Enrich iterates artists, fetching each profile page (with throttling) and
// merging OG metadata into empty fields. Failures degrade to the original
// record; a cancelled context returns what has been processed so far.
func (e *Enricher) Enrich(ctx context.Context, artists []domain.Artist) []domain.Artist {
	// seed output with originals so we can return what we have on abort
	out := append([]domain.Artist(nil), artists...)

	for i, artist := range artists {
		select {
		case <-ctx.Done():
			return out[:i]
		default:
		}

		if strings.TrimSpace(artist.ProfileURL) == "" {
			continue
		}

		enriched, err := e.fetchAndParse(ctx, artist)
		if err != nil {
			e.log.WarnObj("artist profile scrape failed", "profile_error", map[string]any{
				"artist_id": artist.ID,
				"url":       artist.ProfileURL,
				"error":     err.Error(),
			})
			out[i] = artist
		} else {
			out[i] = enriched
		}

		if e.delay > 0 && i < len(artists)-1 {
			timer := time.NewTimer(e.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return out[:i+1]
			case <-timer.C:
			}
		}
	}

	return out
}

// fetchAndParse downloads the profile page and merges its OG metadata.
func (e *Enricher) fetchAndParse(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	resp, err := e.client.Get(ctx, artist.ProfileURL, nil, nil)
	if err != nil {
		return artist, fmt.Errorf("fetch profile page: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 1024 {
			snippet = snippet[:1024]
		}
		return artist, fmt.Errorf("status %d body: %s", resp.StatusCode(), snippet)
	}

	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}

	meta, err := parseMeta(body)
	if err != nil {
		return artist, err
	}
	updated := artist
	if updated.Name == "" && meta.Title != "" {
		updated.Name = meta.Title
	}
	if updated.Description == "" && meta.Description != "" {
		updated.Description = meta.Description
	}
	if updated.ImageURL == "" && meta.ImageURL != "" {
		updated.ImageURL = meta.ImageURL
	}

	return updated, nil
}

func parseMeta(body []byte) (pageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return pageMeta{}, fmt.Errorf("parse html: %w", err)
	}

	pm := pageMeta{}

	extract := func(sel string) string {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}

	pm.Title = firstNonEmpty(
		extract(`meta[property="og:title"]`),
		strings.TrimSpace(doc.Find("title").First().Text()),
	)
	pm.Description = firstNonEmpty(
		extract(`meta[property="og:description"]`),
		extract(`meta[name="description"]`),
	)
	pm.ImageURL = extract(`meta[property="og:image"]`)

	return pm, nil
}

type pageMeta struct {
	Title       string
	Description string
	ImageURL    string
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
