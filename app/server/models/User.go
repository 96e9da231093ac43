package models

import "gorm.io/datatypes"

// Permissions 权限字段的固定结构，取代自由 JSON 映射，保证类型安全
type Permissions struct {
	ArticleManagement  bool `json:"articleManagement"`  // 文章管理
	CategoryManagement bool `json:"categoryManagement"` // 分类管理
}

type User struct {
	ID uint `gorm:"column:id;primaryKey"`

	// 基础信息
	Name  string `gorm:"column:name;not null"`              // 用户名，注册时在应用层检查重复（非数据库约束）
	Email string `gorm:"column:email;uniqueIndex;not null"` // 邮箱，全局唯一（数据库约束）

	// 登录认证相关
	Password string `gorm:"column:password;not null"` // 密码，使用 argon2id 储存，不会出现在任何响应里

	// 权限信息，以 JSON 字段储存，默认全部关闭
	Permissions datatypes.JSONType[Permissions] `gorm:"column:permissions;not null"`
}

func (User) TableName() string {
	return "users"
}
