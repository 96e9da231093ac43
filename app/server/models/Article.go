package models

type Article struct {
	ID uint `gorm:"column:id;primaryKey"`

	Title   string `gorm:"column:title;not null"`   // 标题
	Content string `gorm:"column:content;not null"` // 正文
}

func (Article) TableName() string {
	return "articles"
}
