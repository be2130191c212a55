package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokevault/internal/model"
)

// FavoriteRepository defines persistence operations for favorites. Every
// query filters by owner id in SQL; a favorite owned by someone else is
// indistinguishable from one that does not exist.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Favorite, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Favorite, error)
	DeleteByPokemon(ctx context.Context, ownerID uuid.UUID, pokemonID int) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteByPokemon removes every favorite the owner has for the pokemon.
// Deleting nothing is not an error.
func (r *favoriteRepository) DeleteByPokemon(ctx context.Context, ownerID uuid.UUID, pokemonID int) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND pokemon_id = ?", ownerID, pokemonID).
		Delete(&model.Favorite{}).Error
}
