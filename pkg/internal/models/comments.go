package models

import "time"

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"-" gorm:"index"`
	AuthorID  string    `json:"-" gorm:"index"`
	Text      string    `json:"texto"`
	CreatedAt time.Time `json:"-"`

	Date   string `json:"data" gorm:"-"`
	Author User   `json:"autor" gorm:"-"`
}
