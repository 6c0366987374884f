package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// UserModel is the Firestore document for a customer profile, keyed by the
// Firebase Auth UID.
type UserModel struct {
	Email          string        `firestore:"email"`
	DisplayName    string        `firestore:"displayName"`
	DefaultAddress *AddressModel `firestore:"defaultAddress,omitempty"`
	Admin          bool          `firestore:"admin"`
	CreatedAt      time.Time     `firestore:"createdAt"`
	UpdatedAt      time.Time     `firestore:"updatedAt"`
}

// FromUserDomain maps a domain entity to its document form.
func FromUserDomain(user *entity.User) *UserModel {
	m := &UserModel{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Admin:       user.Admin,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
	if user.DefaultAddress != nil {
		addr := FromAddressDomain(user.DefaultAddress)
		m.DefaultAddress = &addr
	}

	return m
}

// ToUserDomain maps a document back to the domain entity.
func ToUserDomain(uid string, m *UserModel) *entity.User {
	user := &entity.User{
		UID:         uid,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Admin:       m.Admin,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DefaultAddress != nil {
		addr := ToAddressDomain(*m.DefaultAddress)
		user.DefaultAddress = &addr
	}

	return user
}
