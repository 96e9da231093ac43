package forms

import (
	"article-admin-console/app/client/api"
	"article-admin-console/app/server/models"
	"article-admin-console/app/server/types"
	"article-admin-console/app/server/utils"
)

// UserDraft 编辑对话框里收集的字段， ID 为零表示新建
type UserDraft struct {
	ID                 uint
	Name               string
	Email              string
	Password           string
	ArticleManagement  bool
	CategoryManagement bool
}

// UserEditor 用户管理视图的控制器：一张绑定列表的表格加一个编辑对话框。
// 每次变更后整表重新拉取，而不是修补本地状态。
type UserEditor struct {
	c *api.Client

	users  []types.UserInfo
	notice string // 唯一的临时通知，成功与失败都走这里
}

func NewUserEditor(c *api.Client) *UserEditor {
	return &UserEditor{c: c}
}

func (e *UserEditor) Users() []types.UserInfo {
	return e.users
}

// Notice 取出当前通知并清空（临时展示一次）
func (e *UserEditor) Notice() string {
	n := e.notice
	e.notice = ""
	return n
}

func (e *UserEditor) Refresh() error {
	users, err := e.c.ListUsers()
	if err != nil {
		e.notice = Notice(err)
		return err
	}

	e.users = users
	return nil
}

// Save 根据草稿里有没有 ID 决定走创建还是更新
func (e *UserEditor) Save(draft UserDraft) error {
	permissions := models.Permissions{
		ArticleManagement:  draft.ArticleManagement,
		CategoryManagement: draft.CategoryManagement,
	}

	var err error
	if draft.ID == 0 {
		_, err = e.c.CreateUser(&types.UserCreateRequest{
			Name:        draft.Name,
			Email:       draft.Email,
			Password:    draft.Password,
			Permissions: &permissions,
		})
	} else {
		// 编辑对话框只收集名称和权限，邮箱不随更新提交（服务端保留原值）
		_, err = e.c.UpdateUser(draft.ID, &types.UserUpdateRequest{
			Name:        utils.P(draft.Name),
			Permissions: &permissions,
		})
	}
	if err != nil {
		e.notice = Notice(err)
		return err
	}

	e.notice = "user saved"
	return e.Refresh()
}

func (e *UserEditor) Delete(id uint) error {
	if err := e.c.DeleteUser(id); err != nil {
		e.notice = Notice(err)
		return err
	}

	e.notice = "user deleted"
	return e.Refresh()
}
