package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/models"
	"gorm.io/gorm"
)

// ListComment returns the comments of one post in storage order, each
// decorated with its display timestamp and author profile.
func ListComment(tx *gorm.DB, postID string) ([]models.Comment, error) {
	items := make([]models.Comment, 0)
	if err := tx.Where("post_id = ?", postID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	authors, err := MapAccountProfiles(tx, lo.Map(items, func(item models.Comment, _ int) string {
		return item.AuthorID
	}))
	if err != nil {
		return nil, err
	}

	for idx, item := range items {
		item.Date = item.CreatedAt.Format(models.DisplayTimeLayout)
		item.Author = authors[item.AuthorID]
		items[idx] = item
	}

	return items, nil
}

// NewComment persists a comment under the given post id. The post itself is
// not checked; the hourly cleanup sweeps anything left dangling.
func NewComment(tx *gorm.DB, postID, authorID, text string) (models.Comment, error) {
	if _, err := EnsureAccount(tx, authorID); err != nil {
		return models.Comment{}, err
	}

	item := models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := tx.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// DeleteComment removes the comment matching both ids, doing nothing when
// there is no match.
func DeleteComment(tx *gorm.DB, postID, commentID string) error {
	return tx.Where("id = ? AND post_id = ?", commentID, postID).Delete(&models.Comment{}).Error
}
