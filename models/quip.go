package models

// Quip is a short stored reply
type Quip struct {
	ID   string `json:"id" gorm:"column:id;primary_key"`
	Text string `json:"message" gorm:"column:message;type:text;not null"`
}
