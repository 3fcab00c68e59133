package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmint/mintgen/internal/params"
)

type capturedRequest struct {
	method string
	path   string
	apikey string
	auth   string
	body   []byte
}

func newTestServer(t *testing.T, status int, respBody string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = append(captured, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			apikey: r.Header.Get("apikey"),
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func testClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(&params.SupabaseConfig{URL: url, AnonKey: "test-key"})
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)

	_, err = NewClient(&params.SupabaseConfig{AnonKey: "k"})
	assert.Error(t, err, "missing URL")

	_, err = NewClient(&params.SupabaseConfig{URL: "http://x"})
	assert.Error(t, err, "missing anon key")

	c, err := NewClient(&params.SupabaseConfig{URL: "http://x/", AnonKey: "k", Table: "keys"})
	require.NoError(t, err)
	assert.Equal(t, "http://x", c.url)
	assert.Equal(t, "keys", c.table)
}

func TestInsertBatch(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, "")
	c := testClient(t, srv.URL)

	records := []Record{
		{PubKey: "pub1", PrivateKey: "priv1", SuffixType: "pump"},
		{PubKey: "pub2", PrivateKey: "priv2", SuffixType: "pump"},
	}
	require.NoError(t, c.InsertBatch(context.Background(), records))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/rest/v1/mint_addresses", req.path)
	assert.Equal(t, "test-key", req.apikey)
	assert.Equal(t, "Bearer test-key", req.auth)

	var got []Record
	require.NoError(t, json.Unmarshal(req.body, &got))
	assert.Equal(t, records, got)
}

func TestInsertBatchEmpty(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, "")
	c := testClient(t, srv.URL)

	require.NoError(t, c.InsertBatch(context.Background(), nil))
	assert.Empty(t, *captured, "empty batch issues no request")
}

func TestInsertOne(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, "")
	c := testClient(t, srv.URL)

	rec := Record{PubKey: "pub1", PrivateKey: "priv1", SuffixType: "bonk"}
	require.NoError(t, c.InsertOne(context.Background(), rec))

	require.Len(t, *captured, 1)
	var got Record
	require.NoError(t, json.Unmarshal((*captured)[0].body, &got))
	assert.Equal(t, rec, got)
}

func TestInsertErrorStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"message":"invalid api key"}`)
	c := testClient(t, srv.URL)

	err := c.InsertOne(context.Background(), Record{PubKey: "pub1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}
