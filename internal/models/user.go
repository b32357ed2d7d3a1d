package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Bio          string

	// Relationships
	SentRequests     []FriendRequest `gorm:"foreignKey:RequesterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReceivedRequests []FriendRequest `gorm:"foreignKey:RecipientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
