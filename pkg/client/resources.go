package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/user/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Journals(ctx context.Context) ([]Journal, error) {
	journals := []Journal{}
	if err := c.do(ctx, http.MethodGet, "/journals", nil, nil, &journals); err != nil {
		return nil, err
	}
	return journals, nil
}

func (c *Client) CreateJournal(ctx context.Context, input JournalInput) (*Journal, error) {
	var journal Journal
	if err := c.do(ctx, http.MethodPost, "/journals", nil, input, &journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (c *Client) UpdateJournal(ctx context.Context, journalID int64, input JournalInput) (*Journal, error) {
	var journal Journal
	if err := c.do(ctx, http.MethodPut, journalPath(journalID), nil, input, &journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (c *Client) DeleteJournal(ctx context.Context, journalID int64) error {
	return c.do(ctx, http.MethodDelete, journalPath(journalID), nil, nil, nil)
}

func (c *Client) Entries(ctx context.Context, filter EntryFilter) ([]Entry, error) {
	query := url.Values{}
	if filter.JournalID > 0 {
		query.Set("journal_id", strconv.FormatInt(filter.JournalID, 10))
	}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.Format(time.RFC3339))
	}

	entries := []Entry{}
	if err := c.do(ctx, http.MethodGet, "/entries", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateEntry(ctx context.Context, input EntryInput) (*Entry, error) {
	var entry Entry
	if err := c.do(ctx, http.MethodPost, "/entries", nil, input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) UpdateEntry(ctx context.Context, entryID int64, patch EntryPatch) (*Entry, error) {
	var entry Entry
	if err := c.do(ctx, http.MethodPatch, entryPath(entryID), nil, patch, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteEntry(ctx context.Context, entryID int64) error {
	return c.do(ctx, http.MethodDelete, entryPath(entryID), nil, nil, nil)
}

func (c *Client) Moods(ctx context.Context) ([]Mood, error) {
	moods := []Mood{}
	if err := c.do(ctx, http.MethodGet, "/moods", nil, nil, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}

// Heatmap returns entry counts per day of year, or of one month when month
// is between 1 and 12.
func (c *Client) Heatmap(ctx context.Context, year, month int) ([]HeatmapDay, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}

	days := []HeatmapDay{}
	if err := c.do(ctx, http.MethodGet, "/entries/heatmap", query, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *Client) MoodTrend(ctx context.Context, limit int) ([]MoodTrendPoint, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	points := []MoodTrendPoint{}
	if err := c.do(ctx, http.MethodGet, "/entries/mood-trend", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Prompt asks for a journaling prompt, about topic when it is not empty.
func (c *Client) Prompt(ctx context.Context, topic string) (*Prompt, error) {
	var prompt Prompt
	var err error
	if topic == "" {
		err = c.do(ctx, http.MethodGet, "/ai-prompt", nil, nil, &prompt)
	} else {
		err = c.do(ctx, http.MethodPost, "/ai-prompt/custom", nil, customPromptRequest{Topic: topic}, &prompt)
	}
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

func journalPath(journalID int64) string {
	return "/journals/" + strconv.FormatInt(journalID, 10)
}

func entryPath(entryID int64) string {
	return "/entries/" + strconv.FormatInt(entryID, 10)
}
