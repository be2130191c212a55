package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 10 * time.Second

// ErrNotFound is returned when the catalog has no record for the given key.
// Any other failure (transport error, 5xx) means the catalog itself is
// unhealthy and is reported as a distinct error so callers can tell a miss
// from an outage.
var ErrNotFound = errors.New("catalog item not found")

// Client speaks to the external catalog API over plain HTTP GET.
type Client struct {
	http *resty.Client
}

// New creates a catalog client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout),
	}
}

// List fetches a paginated page of catalog references.
func (c *Client) List(ctx context.Context, limit, offset int) (*ListResponse, error) {
	var out ListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", fmt.Sprint(limit)).
		SetQueryParam("offset", fmt.Sprint(offset)).
		SetResult(&out).
		Get("/pokemon")
	if err != nil {
		return nil, fmt.Errorf("catalog list: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog list: status %d", resp.StatusCode())
	}
	return &out, nil
}

// Pokemon fetches the full detail record for a name or numeric id.
func (c *Client) Pokemon(ctx context.Context, key string) (*Pokemon, error) {
	var out Pokemon
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/pokemon/" + url.PathEscape(key))
	if err != nil {
		return nil, fmt.Errorf("catalog pokemon %q: %w", key, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog pokemon %q: status %d", key, resp.StatusCode())
	}
	return &out, nil
}

// PokemonByAbility returns the names of all pokemon having the ability.
func (c *Client) PokemonByAbility(ctx context.Context, ability string) ([]string, error) {
	var out abilityResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/ability/" + url.PathEscape(ability))
	if err != nil {
		return nil, fmt.Errorf("catalog ability %q: %w", ability, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog ability %q: status %d", ability, resp.StatusCode())
	}

	names := make([]string, 0, len(out.Pokemon))
	for _, entry := range out.Pokemon {
		names = append(names, entry.Pokemon.Name)
	}
	return names, nil
}

// PokemonByType returns the names of all pokemon having the type.
func (c *Client) PokemonByType(ctx context.Context, typeName string) ([]string, error) {
	var out typeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/type/" + url.PathEscape(typeName))
	if err != nil {
		return nil, fmt.Errorf("catalog type %q: %w", typeName, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog type %q: status %d", typeName, resp.StatusCode())
	}

	names := make([]string, 0, len(out.Pokemon))
	for _, entry := range out.Pokemon {
		names = append(names, entry.Pokemon.Name)
	}
	return names, nil
}
