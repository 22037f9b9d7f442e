package auth

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

// Role is the account type stored on the user record
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCompany   Role = "company"
	RoleJobseeker Role = "jobseeker"
	RoleAgent     Role = "agent"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleJobseeker, RoleAgent:
		return true
	}
	return false
}

// UserStatus is the moderation state of an account
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusApproved  UserStatus = "approved"
	UserStatusRejected  UserStatus = "rejected"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected, UserStatusSuspended:
		return true
	}
	return false
}

// User is the account row needed to authenticate a request
type User struct {
	ID           kernel.UserID `db:"id"`
	Email        kernel.Email  `db:"email"`
	Role         Role          `db:"user_type"`
	Status       UserStatus    `db:"status"`
	PasswordHash string        `db:"password_hash"`
}

// Identity is the authenticated caller handed to the core
type Identity struct {
	UserID kernel.UserID
	Role   Role
	Status UserStatus
}

func (i *Identity) IsApproved() bool {
	return i != nil && i.Status == UserStatusApproved
}

type UserRepository interface {
	FindByID(ctx context.Context, id kernel.UserID) (*User, error)
	Create(ctx context.Context, user *User) error
}
