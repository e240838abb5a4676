package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clubpuntos/internal/models/db_models"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Admin, error)
	FindByID(ctx context.Context, id uint) (*db_models.Admin, error)
	BulkInsert(ctx context.Context, admins []db_models.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (a *adminRepository) FindByEmail(ctx context.Context, email string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := a.db.WithContext(ctx).First(&admin, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

func (a *adminRepository) FindByID(ctx context.Context, id uint) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := a.db.WithContext(ctx).First(&admin, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

// BulkInsert loads historical admin rows, skipping ids already present.
func (a *adminRepository) BulkInsert(ctx context.Context, admins []db_models.Admin) error {
	if len(admins) == 0 {
		return nil
	}
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&admins).Error
}
