package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo wraps the shared *gorm.DB. gorm's database/sql pool makes it safe for
// concurrent use; each statement borrows a connection and returns it.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateRoom(ctx context.Context, room *ChatRoom) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ChatRoom{}).Where("id = ?", room.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateID
		}
		if err := tx.Create(room).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateID
			}
			return err
		}
		return nil
	})
}

// ListRooms returns rooms in created_at DESC order (newest first), without
// their messages. Ties are broken by insertion order.
func (r *Repo) ListRooms(ctx context.Context) ([]ChatRoom, error) {
	var rooms []ChatRoom
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, seq DESC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []ChatRoom{}
	}
	return rooms, nil
}

// GetRoom loads a room with its messages in created_at ASC order.
func (r *Repo) GetRoom(ctx context.Context, id string) (*ChatRoom, error) {
	var room ChatRoom
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, seq ASC")
		}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if room.Messages == nil {
		room.Messages = []Message{}
	}
	return &room, nil
}

func (r *Repo) UpdateRoom(ctx context.Context, id, name, prompt string) (*ChatRoom, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room ChatRoom
		if err := tx.Where("id = ?", id).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		room.Name = name
		room.Prompt = prompt
		return tx.Save(&room).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetRoom(ctx, id)
}

// DeleteRoom removes a room and all of its messages. The cascade is done
// here rather than relying on engine foreign-key support.
func (r *Repo) DeleteRoom(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room ChatRoom
		if err := tx.Where("id = ?", id).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("chat_id = ?", id).Delete(&Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
}

// AppendMessage inserts a message after verifying the room exists, inside one
// transaction so a concurrent room delete cannot strand the row.
func (r *Repo) AppendMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ChatRoom{}).Where("id = ?", msg.ChatID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&Message{}).Where("id = ?", msg.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateID
		}
		if err := tx.Create(msg).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateID
			}
			return err
		}
		return nil
	})
}

// ListMessages returns a room's messages in created_at ASC order, or
// ErrNotFound when the room does not exist.
func (r *Repo) ListMessages(ctx context.Context, chatID string) ([]Message, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ChatRoom{}).Where("id = ?", chatID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var msgs []Message
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, seq ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}

func (r *Repo) ListCodesByCategory(ctx context.Context, category string) ([]Code, error) {
	var codes []Code
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("seq ASC").
		Find(&codes).Error; err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []Code{}
	}
	return codes, nil
}
