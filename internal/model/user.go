package model

// User is a managed user record. UserID is assigned by the backend and is
// zero until the record has been created.
type User struct {
	UserID     int        `json:"user_id,omitempty" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName   string     `json:"user_name" gorm:"column:user_name;size:50;uniqueIndex;not null"`
	FirstName  string     `json:"first_name" gorm:"column:first_name;size:255;not null"`
	LastName   string     `json:"last_name" gorm:"column:last_name;size:255;not null"`
	Email      string     `json:"email" gorm:"column:email;size:255;not null"`
	UserStatus UserStatus `json:"user_status" gorm:"column:user_status;type:varchar(1);not null"`
	Department string     `json:"department,omitempty" gorm:"column:department;size:255"`
}

// TableName pins the table name used by GORM.
func (User) TableName() string {
	return "users"
}
