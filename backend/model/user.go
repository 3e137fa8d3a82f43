package model

import (
	"errors"
	"time"

	"article-hub/backend/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account. The password hash is excluded from every JSON
// projection; DisplayPicture holds the pk of the avatar File when set.
type User struct {
	PK             int64          `json:"-" gorm:"column:pk;primaryKey;autoIncrement"`
	UUID           string         `json:"uuid" gorm:"type:char(36);uniqueIndex;not null"`
	FullName       string         `json:"full_name" gorm:"size:100"`
	Email          string         `json:"email" gorm:"index;size:50;not null"`
	Password       string         `json:"-" gorm:"type:text;not null"`
	DisplayPicture *int64         `json:"-" gorm:"column:display_picture"`
	Role           int            `json:"role" gorm:"type:int;default:1"`
	Status         int            `json:"status" gorm:"type:int;default:1"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	Avatar *File `json:"-" gorm:"foreignKey:DisplayPicture"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.New().String()
	}
	return nil
}

func GetUserByPK(pk int64) (*User, error) {
	if pk == 0 {
		return nil, errors.New("empty user id")
	}
	var user User
	if err := DB.Preload("Avatar").First(&user, "pk = ?", pk).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUUID(userUUID string) (*User, error) {
	var user User
	if err := DB.Preload("Avatar").First(&user, "uuid = ?", userUUID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetAllUsers(startIdx int, num int) ([]*User, error) {
	var users []*User
	err := DB.Order("pk DESC").Offset(startIdx).Limit(num).Find(&users).Error
	return users, err
}

func IsEmailAlreadyTaken(email string) bool {
	var count int64
	err := DB.Model(&User{}).Where("email = ?", email).Count(&count).Error
	return err == nil && count > 0
}

func (user *User) Insert() error {
	if user.Password != "" {
		var err error
		user.Password, err = common.Password2Hash(user.Password)
		if err != nil {
			return err
		}
	}
	return DB.Create(user).Error
}

func (user *User) Update(updatePassword bool) error {
	if updatePassword {
		var err error
		user.Password, err = common.Password2Hash(user.Password)
		if err != nil {
			return err
		}
	}
	return DB.Save(user).Error
}

func (user *User) Delete() error {
	if user.PK == 0 {
		return errors.New("empty user id")
	}
	return DB.Delete(user).Error
}

// ValidateAndFill checks the email/password pair and, on success, replaces
// the receiver with the stored record.
func (user *User) ValidateAndFill() error {
	invalid := errors.New("invalid email or password, or the account is disabled")
	if user.Email == "" || user.Password == "" {
		return errors.New("email or password is empty")
	}
	var found User
	if err := DB.Where("email = ?", user.Email).First(&found).Error; err != nil {
		return invalid
	}
	if !common.ValidatePasswordAndHash(user.Password, found.Password) || found.Status != common.UserStatusEnabled {
		return invalid
	}
	*user = found
	return nil
}
