package model

import (
	"os"
	"path/filepath"

	"article-hub/backend/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createRootAccountIfNeed() error {
	var userCount int64
	if err := DB.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		common.SysLog("no user exists, create a root/admin user for you: email is root@localhost, password is 123456")
		hashedPassword, err := common.Password2Hash("123456")
		if err != nil {
			return err
		}
		adminUser := User{
			FullName: "Root User",
			Email:    "root@localhost",
			Password: hashedPassword,
			Role:     common.RoleRootUser,
			Status:   common.UserStatusEnabled,
		}
		if err := DB.Create(&adminUser).Error; err != nil {
			return err
		}
		common.SysLog("root/admin user created successfully")
	}
	return nil
}

func InitDB() (err error) {
	var dbInstance *gorm.DB
	dsn := os.Getenv("SQL_DSN")

	if dsn != "" {
		common.SysLog("using MySQL database")
		dbInstance, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("SQL_DSN not set, using SQLite as database: " + common.SQLitePath)
		if dir := filepath.Dir(common.SQLitePath); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				common.FatalLog("failed to create database directory: " + mkErr.Error())
			}
		}
		dbInstance, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		common.FatalLog("failed to connect database: " + err.Error())
		return err
	}

	DB = dbInstance

	err = DB.AutoMigrate(
		&User{},
		&File{},
		&Category{},
		&Article{},
		&ArticleCategory{},
	)
	if err != nil {
		common.FatalLog("failed to auto migrate database schema: " + err.Error())
		return err
	}

	if err = createRootAccountIfNeed(); err != nil {
		common.FatalLog("failed to create root account: " + err.Error())
		return err
	}

	common.SysLog("database initialized successfully")
	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("closing database connection")
	return sqlDB.Close()
}
