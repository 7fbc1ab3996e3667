package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser represents a back-office account
type AdminUser struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"` // Never expose
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`
	Role         string             `json:"role" bson:"role"`
	LastLoginAt  *time.Time         `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// RefreshToken represents a persisted, revocable refresh token
type RefreshToken struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     string             `json:"user_id" bson:"user_id"`
	TokenHash  string             `json:"-" bson:"token_hash"` // Never expose
	DeviceName string             `json:"device_name,omitempty" bson:"device_name,omitempty"`
	Browser    string             `json:"browser,omitempty" bson:"browser,omitempty"`
	IPAddress  string             `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	ExpiresAt  time.Time          `json:"expires_at" bson:"expires_at"`
	Revoked    bool               `json:"revoked" bson:"revoked"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}
