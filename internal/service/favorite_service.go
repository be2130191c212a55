package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokevault/internal/catalog"
	apperrors "pokevault/internal/errors"
	"pokevault/internal/model"
	"pokevault/internal/repository"
)

// FavoriteService manages a user's favorites. Every operation takes the
// verified owner id; there is no unowned access path.
type FavoriteService interface {
	Add(ctx context.Context, ownerID uuid.UUID, pokemonID int) (*model.Favorite, error)
	Remove(ctx context.Context, ownerID uuid.UUID, pokemonID int) error
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Favorite, error)
	Get(ctx context.Context, ownerID, favoriteID uuid.UUID) (*model.Favorite, *catalog.Pokemon, error)
}

type favoriteService struct {
	favorites repository.FavoriteRepository
	catalog   CatalogAPI
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository, catalogClient CatalogAPI) FavoriteService {
	return &favoriteService{
		favorites: favorites,
		catalog:   catalogClient,
	}
}

// Add persists a new favorite. Duplicate (owner, pokemon) pairs are allowed.
func (s *favoriteService) Add(ctx context.Context, ownerID uuid.UUID, pokemonID int) (*model.Favorite, error) {
	favorite := &model.Favorite{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PokemonID: pokemonID,
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// Remove deletes the owner's favorites for the pokemon. Removing a favorite
// that does not exist is a no-op, not an error.
func (s *favoriteService) Remove(ctx context.Context, ownerID uuid.UUID, pokemonID int) error {
	if err := s.favorites.DeleteByPokemon(ctx, ownerID, pokemonID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// List returns the owner's favorites, most recent first.
func (s *favoriteService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := s.favorites.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// Get returns a favorite with its catalog record fetched live. A favorite
// owned by another user is reported as not found. A pokemon that has since
// vanished from the catalog yields the favorite with a nil pokemon.
func (s *favoriteService) Get(ctx context.Context, ownerID, favoriteID uuid.UUID) (*model.Favorite, *catalog.Pokemon, error) {
	favorite, err := s.favorites.FindByID(ctx, ownerID, favoriteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("find favorite: %w", err)
	}

	pokemon, err := s.catalog.Pokemon(ctx, strconv.Itoa(favorite.PokemonID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return favorite, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return favorite, pokemon, nil
}
