package model

import "time"

// StudyResource 对应于 'study_resources' 表，是启动时写入的静态学习资源目录。
type StudyResource struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Subject     string    `gorm:"type:varchar(50);not null" json:"subject"`
	URL         string    `gorm:"type:varchar(500);column:url" json:"url"`
	Type        string    `gorm:"type:varchar(50)" json:"type"`
	Difficulty  string    `gorm:"type:varchar(50)" json:"difficulty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (StudyResource) TableName() string {
	return "study_resources"
}
