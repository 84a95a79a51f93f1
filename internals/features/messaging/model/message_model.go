package model

import "time"

/* =========================================================
   MODEL: messages
========================================================= */

type MessageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Sender    string `gorm:"type:varchar(160);not null" json:"sender"`
	Recipient string `gorm:"type:varchar(160);not null;index" json:"recipient"`

	Subject string `gorm:"type:varchar(200);not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
	Read    bool   `gorm:"not null;default:false;index" json:"read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MessageModel) TableName() string { return "messages" }
