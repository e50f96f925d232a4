package statistics

import (
	"strconv"
	"time"

	"github.com/janmeier/inkwell/app/models"
	"github.com/janmeier/inkwell/internal/pkg/cache"
	"github.com/janmeier/inkwell/internal/pkg/database"
)

const (
	CacheKeyPostsTotal    = "statistics:posts:total"
	CacheKeyUsersTotal    = "statistics:users:total"
	CacheKeyCommentsTotal = "statistics:comments:total"
	CacheExpiration       = 30 * time.Minute
)

// SiteStats holds the totals shown on the home page.
type SiteStats struct {
	TotalPosts    int
	TotalUsers    int
	TotalComments int
}

// GetSiteStats returns cached site totals, recomputing expired entries from
// the database. A cold or unreachable cache degrades to direct counts.
func GetSiteStats() SiteStats {
	return SiteStats{
		TotalPosts:    cachedCount(CacheKeyPostsTotal, &models.Post{}),
		TotalUsers:    cachedCount(CacheKeyUsersTotal, &models.User{}),
		TotalComments: cachedCount(CacheKeyCommentsTotal, &models.Comment{}),
	}
}

func cachedCount(key string, model interface{}) int {
	if val, err := cache.GetInt(key); err == nil {
		return val
	}

	var count int64
	db := database.GetDB()
	if db == nil {
		return 0
	}
	if err := db.Model(model).Count(&count).Error; err != nil {
		return 0
	}

	_ = cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration)

	return int(count)
}
