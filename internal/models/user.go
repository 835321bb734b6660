package models

// User - аккаунт, идентифицируемый номером телефона
type User struct {
	BaseModel
	PhoneNumber  string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string
	FirstName    string
	LastName     string
	IsActive     bool `gorm:"default:true"`
	IsStaff      bool `gorm:"default:false"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
