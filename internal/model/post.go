package model

import "time"

// Post 帖子，作者创建后不可变更
type Post struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	AuthorID    uint       `gorm:"index:idx_post_author;not null"`
	Author      User       `gorm:"foreignKey:AuthorID"`
	Categories  []Category `gorm:"foreignKey:PostID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Post) TableName() string { return "posts" }
