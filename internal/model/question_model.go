package model

import "time"

type Question struct {
	Id           int       `gorm:"primaryKey;autoIncrement:false"`
	OriginalText string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionDocument is the layout of the JSON question store file.
type QuestionDocument struct {
	Questions []QuestionRecord `json:"questions"`
}

type QuestionRecord struct {
	Id           int    `json:"id"`
	OriginalText string `json:"original_text"`
}
