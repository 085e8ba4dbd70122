package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// DateLayout is the ISO date format used by the picture-of-the-day endpoint.
const DateLayout = "2006-01-02"

// APOD fetches the picture of the day. A nil date asks for today's.
func (c *Client) APOD(ctx context.Context, date *time.Time) (*APOD, error) {
	const op = "apod"

	query := url.Values{}
	if date != nil {
		if date.After(c.now()) {
			return nil, apperrors.NewPayloadError(op, fmt.Errorf("date %s is in the future", date.Format(DateLayout)))
		}
		query.Set("date", date.Format(DateLayout))
	}

	var out APOD
	if err := c.get(ctx, op, "/api/apod", query, &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EPIC fetches the latest Earth imagery in source order.
func (c *Client) EPIC(ctx context.Context) ([]EpicImage, error) {
	var out []EpicImage
	if err := c.get(ctx, "epic", "/api/epic", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Launches fetches the full SpaceX launch history.
func (c *Client) Launches(ctx context.Context) ([]Launch, error) {
	const op = "launches"

	var out []Launch
	if err := c.get(ctx, op, "/api/launches", nil, &out); err != nil {
		return nil, err
	}
	return keepValid(ctx, c, op, out), nil
}

// Rockets fetches the vehicles available for comparison.
func (c *Client) Rockets(ctx context.Context) ([]Rocket, error) {
	const op = "rockets"

	var out []Rocket
	if err := c.get(ctx, op, "/api/rockets", nil, &out); err != nil {
		return nil, err
	}
	return keepValid(ctx, c, op, out), nil
}

// CompareRockets asks the backend to generate a comparison of two rockets by name.
func (c *Client) CompareRockets(ctx context.Context, rocket1, rocket2 string) (*Comparison, error) {
	const op = "compare-rockets"

	req := CompareRequest{Rocket1: rocket1, Rocket2: rocket2}
	if err := c.check(op, req); err != nil {
		return nil, err
	}

	var out Comparison
	if err := c.post(ctx, op, "/api/compare-rockets", req, &out); err != nil {
		return nil, err
	}
	if err := c.check(op, out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NASAImages searches the NASA media library for term, restricted to one media type.
func (c *Client) NASAImages(ctx context.Context, term string, mediaType MediaType) ([]MediaItem, error) {
	query := url.Values{}
	query.Set("q", term)
	query.Set("media_type", string(mediaType))

	var out []MediaItem
	if err := c.get(ctx, "nasa-images", "/api/nasa-images", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// keepValid drops records that fail validation, logging each at warn level.
// One incomplete record never discards the rest of the collection.
func keepValid[T any](ctx context.Context, c *Client, op string, records []T) []T {
	out := make([]T, 0, len(records))
	for i, r := range records {
		if err := c.check(op, r); err != nil {
			c.log.Warn(ctx, "skipping invalid record", "op", op, "index", i, "error", err)
			continue
		}
		out = append(out, r)
	}
	return out
}
