package postgres

type UserModel struct {
	ID             int    `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordDigest []byte `gorm:"type:bytea;not null"`
	Admin          bool   `gorm:"not null;default:false"`
}

func (UserModel) TableName() string { return "users" }

type PasteModel struct {
	ID     int    `gorm:"primaryKey"`
	UserID int    `gorm:"index;not null"`
	Data   string `gorm:"type:text;not null"`
}

func (PasteModel) TableName() string { return "pastes" }
