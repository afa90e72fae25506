package repository

import (
	"context"
	"sort"
	"sync"

	"campus-hub/backend/internal/model"
)

// StudentRepository 学生名册数据访问接口
type StudentRepository interface {
	// GetByEmail 按邮箱查询学生
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	// List 返回全部学生，按邮箱升序
	List(ctx context.Context) ([]model.Student, error)
}

type memoryStudentRepo struct {
	mu       sync.RWMutex
	students map[string]*model.Student
}

// NewMemoryStudentRepo 创建内存 StudentRepository 实例
func NewMemoryStudentRepo(seed []model.Student) StudentRepository {
	r := &memoryStudentRepo{
		students: make(map[string]*model.Student, len(seed)),
	}
	for i := range seed {
		s := seed[i]
		r.students[s.Email] = &s
	}
	return r
}

func (r *memoryStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memoryStudentRepo) List(_ context.Context) ([]model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Student, 0, len(r.students))
	for _, s := range r.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Email < result[j].Email })
	return result, nil
}
