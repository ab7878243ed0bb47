package entity

import (
	"net/url"
	"strings"
	"time"
)

// Video is a bookmarked link to an externally hosted video, owned by one user.
type Video struct {
	ID        int64
	URL       string
	UserID    int64
	CreatedAt time.Time
}

// IsYouTubeURL accepts youtube.com watch (v=) and shorts links and youtu.be
// short links, with or without the www. prefix.
func IsYouTubeURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	switch {
	case host == "youtu.be" || strings.HasSuffix(host, ".youtu.be"):
		return len(u.Path) > 1
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		return u.Query().Get("v") != "" || strings.HasPrefix(u.Path, "/shorts/")
	default:
		return false
	}
}
