package services

import (
	"github.com/google/uuid"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TogglePostLike flips the like state of a post for one account and reports
// the new state. Delete and insert run in a single transaction and the insert
// ignores conflicts on the (post_id, user_id) index, so racing toggles settle
// on at most one row.
func TogglePostLike(tx *gorm.DB, postID, userID string) (bool, error) {
	if _, err := EnsureAccount(tx, userID); err != nil {
		return false, err
	}

	var positive bool
	err := tx.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			positive = false
			return nil
		}

		positive = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{
			ID:     uuid.NewString(),
			PostID: postID,
			UserID: userID,
		}).Error
	})

	return positive, err
}
