package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"article-admin-console/app/server/models"
	"article-admin-console/app/server/types"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (a *App) pathID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(idUint64), nil
}

// userMapFields 映射更新请求里携带的字段，未携带的保持原值
func (a *App) userMapFields(req *types.UserUpdateRequest, user *models.User) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Permissions != nil {
		user.Permissions = datatypes.NewJSONType(*req.Permissions)
	}
}

func userInfo(user *models.User) *types.UserInfo {
	return &types.UserInfo{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Permissions: user.Permissions.Data(),
	}
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	var users []models.User
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 映射响应结构，密码散列不能跟着出去
	resUsers := []types.UserInfo{}
	for _, user := range users {
		resUsers = append(resUsers, *userInfo(&user))
	}

	return c.JSON(http.StatusOK, resUsers)
}

func (a *App) UserGet(c echo.Context) error {
	id, err := a.pathID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "user not found")
		} else {
			a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return a.erm(c, http.StatusBadRequest, "name, email and password are required")
	}

	// 处理密码，和注册接口一样散列后储存
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
	}
	if req.Permissions != nil {
		user.Permissions = datatypes.NewJSONType(*req.Permissions)
	}

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("name", user.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, userInfo(&user))
}

func (a *App) UserUpdate(c echo.Context) error {
	id, err := a.pathID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "user not found")
		} else {
			a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.userMapFields(&req, &user)

	// 更新用户信息
	if err := a.db.WithContext(rctx).Save(&user).Error; err != nil {
		a.l.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

func (a *App) UserDelete(c echo.Context) error {
	id, err := a.pathID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 先确认存在，不存在的 id 返回 404 而不是静默成功
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "user not found")
		} else {
			a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除用户（硬删除）
	if err := a.db.WithContext(rctx).Delete(&user).Error; err != nil {
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.ErrorMessage{Message: "user deleted"})
}
