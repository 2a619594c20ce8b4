package model

// Category 帖子标签，随帖子创建，name 不唯一
type Category struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(255);index:idx_category_name;not null"`
	PostID uint   `gorm:"index:idx_category_post;not null"`
	Post   Post   `gorm:"foreignKey:PostID"`
}

func (Category) TableName() string { return "categories" }
