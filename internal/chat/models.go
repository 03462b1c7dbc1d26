package chat

import "time"

type ChatRoom struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	Name      string    `gorm:"type:varchar(128)" json:"name"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	Messages  []Message `gorm:"foreignKey:ChatID;references:ID" json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ChatRoom) TableName() string { return "chat_rooms" }

type Message struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	ChatID    string    `gorm:"type:varchar(64);index;not null" json:"chat_id"`
	FromWho   string    `gorm:"type:varchar(16);not null" json:"from_who"`
	Msg       string    `gorm:"type:text" json:"msg"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Message) TableName() string { return "messages" }

// Code rows are seeded out of band; the service only reads them.
type Code struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	Category  string    `gorm:"type:varchar(64);index;not null" json:"category"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Code) TableName() string { return "codes" }
