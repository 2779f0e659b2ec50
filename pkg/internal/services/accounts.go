package services

import (
	"github.com/samber/lo"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureAccount provisions a placeholder account the first time anything
// references an unknown identifier. The insert ignores conflicts, so two
// concurrent calls for the same identifier end up with a single row and an
// already-provisioned account is returned unchanged.
func EnsureAccount(tx *gorm.DB, id string) (models.User, error) {
	account := models.User{
		ID:       id,
		Username: models.AccountFallbackName,
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&account).Error; err != nil {
		return account, err
	}
	if err := tx.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

// MapAccountProfiles loads the profiles for a set of account ids in one query.
// Ids without a matching row map to an unknown placeholder, so callers can
// decorate posts and comments without caring whether the author was ever
// provisioned.
func MapAccountProfiles(tx *gorm.DB, ids []string) (map[string]models.User, error) {
	var accounts []models.User
	if err := tx.Where("id IN ?", lo.Uniq(ids)).Find(&accounts).Error; err != nil {
		return nil, err
	}

	out := lo.SliceToMap(accounts, func(item models.User) (string, models.User) {
		return item.ID, item
	})
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			out[id] = models.User{
				ID:       id,
				Username: models.AccountUnknownName,
			}
		}
	}

	return out, nil
}
