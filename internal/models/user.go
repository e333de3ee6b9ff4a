package models

import "time"

// AccessLevel is an ordered permission level; higher values include the
// permissions of lower ones.
type AccessLevel int

const (
	AccessLevelView  AccessLevel = 1
	AccessLevelEdit  AccessLevel = 2
	AccessLevelAdmin AccessLevel = 3
)

// Valid reports whether the level is one of the three known levels.
func (l AccessLevel) Valid() bool {
	return l >= AccessLevelView && l <= AccessLevelAdmin
}

func (l AccessLevel) String() string {
	switch l {
	case AccessLevelView:
		return "viewer"
	case AccessLevelEdit:
		return "editor"
	case AccessLevelAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

type User struct {
	ID           uint64      `gorm:"primarykey" json:"id"`
	Username     string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash string      `gorm:"type:varchar(255);not null" json:"-"`
	AccessLevel  AccessLevel `gorm:"not null;default:1" json:"access_level"`
	Active       bool        `gorm:"not null" json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CanAssign reports whether the user may be assigned to projects.
func (u User) CanAssign() bool {
	return u.AccessLevel >= AccessLevelEdit
}
