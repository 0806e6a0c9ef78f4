package util

import (
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`#(\S+)`)

// ExtractTags 提取去重后的 #标签
func ExtractTags(rawContent string) []string {
	matches := tagRegex.FindAllStringSubmatch(rawContent, -1)

	tagSet := make(map[string]struct{})
	var tags []string

	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		tagName := strings.Trim(m[1], ".,，。!?！？")
		if tagName == "" {
			continue
		}
		if _, exists := tagSet[tagName]; !exists {
			tagSet[tagName] = struct{}{}
			tags = append(tags, tagName)
		}
	}

	return tags
}

// MergeTags keeps explicit tags first and appends content tags not already present.
func MergeTags(explicit []string, content string) []string {
	seen := make(map[string]struct{}, len(explicit))
	out := make([]string, 0, len(explicit))
	for _, t := range explicit {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	for _, t := range ExtractTags(content) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Ptr 取地址
func Ptr[T any](v T) *T {
	return &v
}
