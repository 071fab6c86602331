package utils

import "strings"

// ParseTags 解析逗号分隔的标签：去掉首尾空白，丢弃空项，保留顺序和重复项
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags 编辑表单回显时使用
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
