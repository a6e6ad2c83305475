package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`

	Recipes []*Recipe `gorm:"foreignKey:AuthorID"`
	Timestamp
}

// Subscription links a follower to an author. The check constraint keeps
// self-subscription out even when the application-level check is raced.
type Subscription struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex:idx_unique_subscribing" json:"user_id"`
	SubscribingID uuid.UUID `gorm:"uniqueIndex:idx_unique_subscribing;check:chk_not_self_subscribing,user_id <> subscribing_id" json:"subscribing_id"`

	User        *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Subscribing *User `gorm:"foreignKey:SubscribingID;constraint:OnDelete:CASCADE"`
	Timestamp
}
