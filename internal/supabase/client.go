// Package supabase is a minimal client for the Supabase PostgREST insert
// endpoint used as the mint address sink.
package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/solmint/mintgen/internal/params"
)

// Record is one row of the mint address table.
type Record struct {
	PubKey     string `json:"pub_key"`
	PrivateKey string `json:"private_key"`
	SuffixType string `json:"suffix_type"`
}

// Client posts records to a Supabase REST table.
type Client struct {
	client *resty.Client
	url    string
	key    string
	table  string
}

// NewClient builds a client from config. The URL and anon key are required;
// without them no upload can ever succeed, so this fails up front.
func NewClient(cfg *params.SupabaseConfig) (*Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is not configured (set SUPABASE_URL)")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase anon key is not configured (set SUPABASE_ANON_KEY)")
	}
	table := cfg.Table
	if table == "" {
		table = "mint_addresses"
	}
	return &Client{
		client: resty.New(),
		url:    strings.TrimSuffix(cfg.URL, "/"),
		key:    cfg.AnonKey,
		table:  table,
	}, nil
}

// InsertBatch inserts all records in one REST call.
func (c *Client) InsertBatch(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	return c.post(ctx, records)
}

// InsertOne inserts a single record.
func (c *Client) InsertOne(ctx context.Context, record Record) error {
	return c.post(ctx, record)
}

func (c *Client) post(ctx context.Context, body interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("apikey", c.key).
		SetHeader("Authorization", "Bearer "+c.key).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("%v/rest/v1/%v", c.url, c.table))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("supabase insert status %v: %v", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}
