package pkg

import (
	"fmt"
	"strings"
	"time"
)

// ContestDuration 由起止时间推导展示用时长，形如 "2d 2h 30m"。
// 时长永远不落库，每次读取时重新计算。
// end <= start 时 ok=false，调用方应标记为 invalid 而不是显示负值。
func ContestDuration(start, end time.Time) (string, bool) {
	diff := end.Sub(start)
	if diff <= 0 {
		return "", false
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff%(24*time.Hour)) / int(time.Hour)
	minutes := int(diff%time.Hour) / int(time.Minute)

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}

	s := strings.TrimSpace(b.String())
	if s == "" {
		s = "0m"
	}
	return s, true
}
