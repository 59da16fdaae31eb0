package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrigin(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/trainer/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pokemasdb-test", r.Header.Get("User-Agent"))
		switch r.URL.EscapedPath() {
		case "/trainer/":
			_, _ = w.Write([]byte(`{"trainers":[{"name":"Red"},{"name":"Sygna Suit Red"}]}`))
		case "/trainer/Red":
			_, _ = w.Write(trainerJSON("Red", "Pikachu"))
		case "/trainer/Sygna%20Suit%20Red":
			_, _ = w.Write(trainerJSON("Sygna Suit Red", "Charizard"))
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestHTTPSource(url string) *HTTPSource {
	return NewHTTP(Config{BaseURL: url + "/", TimeoutSeconds: 5, Concurrency: 2, UserAgent: "pokemasdb-test"})
}

func TestHTTPSource_TrainerNames(t *testing.T) {
	srv := newOrigin(t)
	src := newTestHTTPSource(srv.URL)

	names, err := src.TrainerNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Sygna Suit Red"}, names)
}

func TestHTTPSource_Trainer(t *testing.T) {
	srv := newOrigin(t)
	src := newTestHTTPSource(srv.URL)

	data, err := src.Trainer(context.Background(), "Sygna Suit Red")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Charizard")

	_, err = src.Trainer(context.Background(), "Missingno")
	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, http.StatusNotFound, le.Status)
	assert.Equal(t, srv.URL+"/trainer/Missingno", le.Location)
}

func TestHTTPSource_FetchAll(t *testing.T) {
	srv := newOrigin(t)

	res, err := FetchAll(context.Background(), newTestHTTPSource(srv.URL), 2, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Trainers, 2)
	assert.Equal(t, "Sygna Suit Red", res.Trainers[1].Name)
	assert.Equal(t, "https://pokemasdb.com/trainer/Sygna%20Suit%20Red", res.Trainers[1].DataURL())
}

func TestHTTPSource_ListFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPWithClient(srv.Client(), srv.URL).TrainerNames(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "502")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestHTTPSource(url).Trainer(context.Background(), "Red")
	assert.ErrorIs(t, err, ErrUnavailable)
}
