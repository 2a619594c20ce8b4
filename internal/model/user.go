package model

// User 作者（用户由运维预置，不走 API 创建）
type User struct {
	ID    uint    `gorm:"primaryKey"`
	Email string  `gorm:"type:varchar(255);uniqueIndex:idx_user_email;not null"`
	Name  *string `gorm:"type:varchar(255)"`
	Posts []Post  `gorm:"foreignKey:AuthorID"`
}

func (User) TableName() string { return "users" }
