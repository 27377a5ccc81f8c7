package pkg

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify 频道名归一化：小写、连续空白折叠成一个连字符。
// "General Chat" 和 "general   chat" 归一化后相同，用于查重。
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
