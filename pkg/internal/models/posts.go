package models

import "time"

// DisplayTimeLayout is the layout posts and comments use for the `data` field
// on the wire. Storage keeps the real timestamp; the string is derived only
// when building a response.
const DisplayTimeLayout = "02/01/2006 15:04"

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	AuthorID  string    `json:"-" gorm:"index"`
	Text      string    `json:"texto"`
	Image     *string   `json:"imagem_post"`
	CreatedAt time.Time `json:"-" gorm:"index"`

	// Filled in by the post service when listing, never persisted.
	Date          string `json:"data" gorm:"-"`
	TotalLikes    int64  `json:"likes" gorm:"-"`
	TotalComments int64  `json:"comentarios" gorm:"-"`
	Author        User   `json:"autor" gorm:"-"`
}
