package inits

import (
	"fmt"

	"article-admin-console/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Article{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始用户
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash("password", argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Name:     "admin",
			Email:    "admin@example.com",
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 初始化文章
	if err = db.Model(&models.Article{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get article count: %w", err)
	} else if counter == 0 { // 没有任何文章，添加示例文章
		// 插入记录
		if err = db.Create([]*models.Article{
			{
				Title:   "欢迎使用管理后台",
				Content: "在这里可以管理用户与文章。",
			},
			{
				Title:   "开始之前",
				Content: "请先修改初始管理员的密码。",
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial articles: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
