package state

import (
	"fmt"
	"slices"

	"article-admin-console/app/server/types"
)

// ActionKind 文章状态机支持的动作类型
type ActionKind string

const (
	ActionSet     ActionKind = "set"     // 整体替换（初次拉取）
	ActionAdded   ActionKind = "added"   // 头部插入一篇
	ActionChanged ActionKind = "changed" // 按 id 替换一篇
	ActionDeleted ActionKind = "deleted" // 按 id 移除一篇
)

type Action struct {
	Kind     ActionKind
	Article  types.ArticleInfo   // added / changed 使用
	Articles []types.ArticleInfo // set 使用
	ID       uint                // deleted 使用
}

// Store 文章列表的状态容器：一个有序列表加一个加载标记。
// 没有任何全局查找，组合方在创建时注入拉取函数。
type Store struct {
	articles []types.ArticleInfo
	loading  bool
}

func NewStore() *Store {
	return &Store{
		articles: []types.ArticleInfo{},
		loading:  true, // 初次拉取完成（或失败）之前一直处于加载中
	}
}

// reduce 纯函数，不修改传入的切片
func reduce(articles []types.ArticleInfo, action Action) []types.ArticleInfo {
	switch action.Kind {
	case ActionAdded:
		if action.Article.Title == "" || action.Article.Content == "" {
			return articles
		}
		return append([]types.ArticleInfo{action.Article}, articles...)
	case ActionChanged:
		next := slices.Clone(articles)
		for i, t := range next {
			if t.ID == action.Article.ID {
				next[i] = action.Article
			}
		}
		return next
	case ActionDeleted:
		return slices.DeleteFunc(slices.Clone(articles), func(t types.ArticleInfo) bool {
			return t.ID == action.ID
		})
	case ActionSet:
		return action.Articles
	default:
		// 未知动作说明调用方写错了，直接崩掉暴露问题
		panic(fmt.Sprintf("unknown action: %s", action.Kind))
	}
}

func (s *Store) Dispatch(action Action) {
	s.articles = reduce(s.articles, action)
}

// Load 执行初次拉取：成功时用结果整体替换，无论成败都会结束加载状态
func (s *Store) Load(fetch func() ([]types.ArticleInfo, error)) error {
	defer func() {
		s.loading = false
	}()

	articles, err := fetch()
	if err != nil {
		return err
	}

	s.Dispatch(Action{Kind: ActionSet, Articles: articles})
	return nil
}

func (s *Store) Articles() []types.ArticleInfo {
	return s.articles
}

func (s *Store) Loading() bool {
	return s.loading
}
