package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TradeSchool model
type TradeSchool struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"index;not null" json:"name"`
	Location   string    `gorm:"index;not null" json:"location"`
	Programs   []string  `gorm:"serializer:json" json:"programs"`
	Website    string    `gorm:"not null" json:"website"`
	Accredited bool      `gorm:"default:true" json:"accredited"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Student model
type Student struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID            string    `gorm:"uniqueIndex;size:36" json:"uuid"`
	FirstName       string    `gorm:"index:idx_student_name,priority:2;not null" json:"firstName"`
	LastName        string    `gorm:"index:idx_student_name,priority:1;not null" json:"lastName"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	EnrolledProgram string    `gorm:"index" json:"enrolledProgram"`
	Status          string    `gorm:"index;default:enrolled" json:"status"`
	EnrollmentDate  time.Time `json:"enrollmentDate"`
	SchoolID        *int      `gorm:"index" json:"schoolId,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Foreign key association
	School *TradeSchool `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
}

// BeforeCreate assigns a UUID when none was provided.
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.NewString()
	}
	return nil
}

// User model for API authentication
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
