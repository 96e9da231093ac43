package constants

import "time"

const (
	CacheKeyArticleList = "admin:article:list"
)

const (
	CacheExpireArticleList = 10 * time.Minute
)
