package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"article-admin-console/app/server/constants"
	"article-admin-console/app/server/jwt"
	"article-admin-console/app/server/models"
	"article-admin-console/app/server/types"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// randomEmail 注册接口不采用用户提交的邮箱，而是生成一个随机邮箱占位
func randomEmail() string {
	local := strings.SplitN(uuid.NewString(), "-", 2)[0]
	domain := constants.RandomEmailDomains[rand.IntN(len(constants.RandomEmailDomains))]
	return fmt.Sprintf("%s@%s", local, domain)
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Name == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest)
	}

	// 检查用户名是否被占用（应用层检查，与插入并非原子操作）
	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "name = ?", req.Name).Error; err == nil {
		return a.erm(c, http.StatusBadRequest, "user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing user", zap.String("name", req.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户，权限默认全部关闭
	user := models.User{
		Name:     req.Name,
		Email:    randomEmail(),
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("name", user.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Name:    user.Name,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusCreated, &types.RegisterResponse{
		Message: "registered",
		Token:   token,
		User: types.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
