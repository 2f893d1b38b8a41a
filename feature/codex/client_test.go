package codex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/codex/items/", r.URL.Path)
		w.Write([]byte(`[{"slug":"iron-sword","name":"Iron Sword","tier":3,"uri":"/codex/items/iron-sword/"}]`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	entries, err := client.List(context.Background(), KindItems)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "iron-sword", entries[0].Slug)
	assert.Equal(t, 3, entries[0].Tier)
}

func TestClientFetchItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/codex/items/iron-sword/", r.URL.Path)
		w.Write([]byte(`{
			"slug": "iron-sword",
			"name": "Iron Sword",
			"tier": 3,
			"stats": {"attack": 10, "element": "Fire"},
			"causes": [{"name": "Burning", "icon": "burning.png"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	item, err := client.FetchItem(context.Background(), "iron-sword")
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", item.Name)
	require.NotNil(t, item.Stats)
	require.NotNil(t, item.Stats.Attack)
	assert.Equal(t, 10, *item.Stats.Attack)
	assert.Nil(t, item.Stats.Defense, "absent stats stay nil")
	require.Len(t, item.Causes, 1)
	assert.Equal(t, "Burning", item.Causes[0].Name)
}

func TestClientFetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchSkill(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClientContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchFollower(ctx, "kerberos")
	require.ErrorIs(t, err, context.Canceled)
}
