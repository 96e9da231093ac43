package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"article-admin-console/app/server/constants"
	"article-admin-console/app/server/models"
	"article-admin-console/app/server/types"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func (a *App) ArticleList(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体：请求里可能带有 token ，但这个接口不做校验，直接忽略
	var req types.ArticleListRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 查询缓存
	var resArticles []types.ArticleInfo
	if cacheBytes, err := a.rdb.Get(rctx, constants.CacheKeyArticleList).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for article list", zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &resArticles); err != nil {
		a.l.Error("failed to unmarshal article list", zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(rctx, constants.CacheKeyArticleList)
	} else {
		// 成功拉取到并格式化
		return c.JSON(http.StatusOK, resArticles)
	}

	// 查询数据库，新文章在前
	var articles []models.Article
	if err := a.db.WithContext(rctx).Order("id DESC").Find(&articles).Error; err != nil {
		a.l.Error("failed to get article list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resArticles = []types.ArticleInfo{}
	for _, article := range articles {
		resArticles = append(resArticles, types.ArticleInfo{
			ID:      article.ID,
			Title:   article.Title,
			Content: article.Content,
		})
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(resArticles); err != nil {
		a.l.Error("failed to marshal article list", zap.Error(err))
	} else {
		a.rdb.Set(rctx, constants.CacheKeyArticleList, cacheBytes, constants.CacheExpireArticleList)
	}

	return c.JSON(http.StatusOK, resArticles)
}
