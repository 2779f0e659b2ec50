package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/models"
	"gorm.io/gorm"
)

type childCount struct {
	PostID string
	Count  int64
}

func countPostChildren(tx *gorm.DB, model any, ids []string) (map[string]int64, error) {
	var counts []childCount
	if err := tx.Model(model).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	return lo.SliceToMap(counts, func(item childCount) (string, int64) {
		return item.PostID, item.Count
	}), nil
}

// ListPost returns every post, newest first, decorated with its display
// timestamp, live like and comment counts and the author profile. Counts and
// authors are gathered in bulk rather than per row.
func ListPost(tx *gorm.DB) ([]models.Post, error) {
	items := make([]models.Post, 0)
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := lo.Map(items, func(item models.Post, _ int) string {
		return item.ID
	})

	likes, err := countPostChildren(tx, &models.Like{}, ids)
	if err != nil {
		return nil, err
	}
	comments, err := countPostChildren(tx, &models.Comment{}, ids)
	if err != nil {
		return nil, err
	}
	authors, err := MapAccountProfiles(tx, lo.Map(items, func(item models.Post, _ int) string {
		return item.AuthorID
	}))
	if err != nil {
		return nil, err
	}

	for idx, item := range items {
		item.Date = item.CreatedAt.Format(models.DisplayTimeLayout)
		item.TotalLikes = likes[item.ID]
		item.TotalComments = comments[item.ID]
		item.Author = authors[item.AuthorID]
		items[idx] = item
	}

	return items, nil
}

// NewPost provisions the author when needed and persists a fresh post.
func NewPost(tx *gorm.DB, authorID, text string, image *string) (models.Post, error) {
	if _, err := EnsureAccount(tx, authorID); err != nil {
		return models.Post{}, err
	}

	item := models.Post{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Text:      text,
		Image:     image,
		CreatedAt: time.Now(),
	}

	if err := tx.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// DeletePost removes a post together with its comments and likes in one
// transaction. Deleting a post that does not exist is a no-op.
func DeletePost(tx *gorm.DB, id string) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
}
