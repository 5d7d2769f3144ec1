package repository

import (
	"gorm.io/gorm"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

func (r *GormTokenRepository) Create(token *models.PersonalToken) error {
	return r.db.Create(token).Error
}

func (r *GormTokenRepository) FindByHash(hash string) (*models.PersonalToken, error) {
	var token models.PersonalToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *GormTokenRepository) DeleteByUser(userID uint64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.PersonalToken{}).Error
}
