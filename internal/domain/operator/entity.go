package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a staff account for the admin API. Viewers may request quotes;
// operators and admins may also edit rule sheets and overrides.
type Operator struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOperator(email Email, passwordHash string, role Role) *Operator {
	return &Operator{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructOperator(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Operator {
	return &Operator{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Operator) ID() uuid.UUID         { return o.id }
func (o *Operator) Email() Email          { return o.email }
func (o *Operator) PasswordHash() string  { return o.passwordHash }
func (o *Operator) Role() Role            { return o.role }
func (o *Operator) LastLogin() *time.Time { return o.lastLogin }
func (o *Operator) IsActive() bool        { return o.isActive }
func (o *Operator) CreatedAt() time.Time  { return o.createdAt }
func (o *Operator) UpdatedAt() time.Time  { return o.updatedAt }
