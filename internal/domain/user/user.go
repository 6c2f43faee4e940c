// Package user holds the user aggregate root. Role changes go through
// admin actions or approved role requests; the aggregate itself only
// enforces local invariants.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "quickdesk/internal/domain/user/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type User struct {
	id                   uint
	firstName            string
	lastName             string
	email                *vo.Email
	passwordHash         string
	role                 authorization.UserRole
	categoryOfInterestID *uint
	isActive             bool
	createdAt            time.Time
	updatedAt            time.Time
}

func NewUser(
	firstName string,
	lastName string,
	email *vo.Email,
	passwordHash string,
) (*User, error) {
	if err := validateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", lastName); err != nil {
		return nil, err
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.RoleEndUser,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	firstName string,
	lastName string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	categoryOfInterestID *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                   id,
		firstName:            firstName,
		lastName:             lastName,
		email:                email,
		passwordHash:         passwordHash,
		role:                 role,
		categoryOfInterestID: categoryOfInterestID,
		isActive:             isActive,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > 50 {
		return fmt.Errorf("%s exceeds maximum length of 50 characters", field)
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) Email() *vo.Email {
	return u.email
}

// PasswordHash returns the bcrypt hash. It never appears in serialized output.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CategoryOfInterestID() *uint {
	return u.categoryOfInterestID
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes first and last name. Empty arguments keep the
// current value.
func (u *User) UpdateProfile(firstName, lastName string) error {
	if firstName != "" {
		if err := validateName("first name", firstName); err != nil {
			return err
		}
		u.firstName = strings.TrimSpace(firstName)
	}
	if lastName != "" {
		if err := validateName("last name", lastName); err != nil {
			return err
		}
		u.lastName = strings.TrimSpace(lastName)
	}
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole sets a new role. Callers ensure the change was authorized by an
// admin action or an approved role request.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetCategoryOfInterest(categoryID *uint) {
	u.categoryOfInterestID = categoryID
	u.updatedAt = biztime.NowUTC()
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}
