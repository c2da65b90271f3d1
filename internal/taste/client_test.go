package taste

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/smereddy/vibetrail/internal/core/model"
)

func TestFetch_MapsProviderPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "place", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("take"))
		assert.Equal(t, "New Orleans", r.URL.Query().Get("location"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, []string{"jazz"}, r.URL.Query()["signal"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": "q-1", "name": "Jazz Lounge", "description": "intimate jazz club", "location": "downtown", "score": 0.92, "metadata": {"price": "$$"}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	entities, err := client.Fetch(context.Background(), "place", "New Orleans",
		[]string{"restaurant", "bar"},
		[]model.ExtractedSeed{{Text: "jazz"}}, 5)

	assert.NoError(t, err)
	assert.Len(t, entities, 1)
	assert.Equal(t, "q-1", entities[0].ID)
	assert.Equal(t, "Jazz Lounge", entities[0].Name)
	assert.Equal(t, "place", entities[0].Category)
	assert.Equal(t, 0.92, entities[0].Score)
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background(), "place", "", nil, nil, 5)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background(), "movie", "", nil, nil, 3)
	assert.Error(t, err)
}
