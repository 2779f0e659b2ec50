package models

// Like marks that an account liked a post. The unique index makes the
// (post, user) pair a real constraint instead of something only the toggle
// logic upholds, so concurrent toggles cannot stack duplicate rows.
type Like struct {
	ID     string `json:"id" gorm:"primaryKey"`
	PostID string `json:"post_id" gorm:"uniqueIndex:idx_likes_post_user"`
	UserID string `json:"user_id" gorm:"uniqueIndex:idx_likes_post_user"`
}
