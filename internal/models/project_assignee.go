package models

import "time"

// ProjectAssignee links a project to a team member by username.
type ProjectAssignee struct {
	ProjectID string    `gorm:"primarykey;type:varchar(20)" json:"project_id"`
	Username  string    `gorm:"primarykey;type:varchar(50)" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
