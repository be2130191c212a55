package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1302,
			"next": "https://pokeapi.co/api/v2/pokemon?offset=60&limit=20",
			"previous": null,
			"results": [{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}]
		}`))
	})
	mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 25,
			"name": "pikachu",
			"height": 4,
			"weight": 60,
			"abilities": [{"ability": {"name": "static", "url": ""}, "is_hidden": false, "slot": 1}],
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"sprites": {"front_default": "https://img/25.png"}
		}`))
	})
	mux.HandleFunc("/ability/overgrow", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"pokemon": [
				{"pokemon": {"name": "bulbasaur", "url": ""}, "is_hidden": false, "slot": 1},
				{"pokemon": {"name": "ivysaur", "url": ""}, "is_hidden": false, "slot": 1}
			]
		}`))
	})
	mux.HandleFunc("/type/electric", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"pokemon": [{"pokemon": {"name": "pikachu", "url": ""}, "slot": 1}]
		}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_List(t *testing.T) {
	client := New(newTestServer(t).URL)

	page, err := client.List(context.Background(), 20, 40)
	require.NoError(t, err)
	assert.Equal(t, 1302, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "pikachu", page.Results[0].Name)
	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
}

func TestClient_Pokemon(t *testing.T) {
	client := New(newTestServer(t).URL)

	pokemon, err := client.Pokemon(context.Background(), "25")
	require.NoError(t, err)
	assert.Equal(t, 25, pokemon.ID)
	assert.Equal(t, "pikachu", pokemon.Name)
	require.Len(t, pokemon.Abilities, 1)
	assert.Equal(t, "static", pokemon.Abilities[0].Ability.Name)
	require.Len(t, pokemon.Types, 1)
	assert.Equal(t, "electric", pokemon.Types[0].Type.Name)
	assert.Equal(t, "https://img/25.png", pokemon.Sprites.FrontDefault)
}

func TestClient_Pokemon_NotFound(t *testing.T) {
	client := New(newTestServer(t).URL)

	pokemon, err := client.Pokemon(context.Background(), "zzz-nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, pokemon)
}

func TestClient_PokemonByAbility(t *testing.T) {
	client := New(newTestServer(t).URL)

	names, err := client.PokemonByAbility(context.Background(), "overgrow")
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur", "ivysaur"}, names)
}

func TestClient_PokemonByType(t *testing.T) {
	client := New(newTestServer(t).URL)

	names, err := client.PokemonByType(context.Background(), "electric")
	require.NoError(t, err)
	assert.Equal(t, []string{"pikachu"}, names)
}

func TestClient_ServerErrorIsNotNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL)

	_, err := client.Pokemon(context.Background(), "25")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(newTestServer(t).URL)

	_, err := client.Pokemon(ctx, "25")
	assert.Error(t, err)
}
