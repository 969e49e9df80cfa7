package httpapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"life-dashboard/internal/domain/timewindow"
)

// parseWindow 讀取 startDate / endDate；未提供的一端不設限。
func parseWindow(c *gin.Context) (timewindow.Window, error) {
	var w timewindow.Window
	for _, p := range []struct {
		name string
		dst  *string
	}{
		{"startDate", &w.Start},
		{"endDate", &w.End},
	} {
		v := strings.TrimSpace(c.Query(p.name))
		if v == "" {
			continue
		}
		if _, err := time.Parse(timewindow.DateLayout, v); err != nil {
			return timewindow.Window{}, fmt.Errorf("invalid %s", p.name)
		}
		*p.dst = v
	}
	if w.Start != "" && w.End != "" && w.Start > w.End {
		return timewindow.Window{}, fmt.Errorf("startDate after endDate")
	}
	return w, nil
}

func parseIntDefault(val string, def int) int {
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

func userKey(c *gin.Context) string {
	if id := c.GetString(ctxUserID); id != "" {
		return id
	}
	return localUserID
}
