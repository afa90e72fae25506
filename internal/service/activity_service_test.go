package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"go.uber.org/zap"

	"campus-hub/backend/internal/model"
)

func setupTestActivityService(activities []model.Activity) ActivityService {
	repo := testRepo(activities, testStudents())
	return NewActivityService(repo, zap.NewNop())
}

// ── List 测试 ──

func TestActivityService_List_PreservesSeedOrder(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	// 旧接口按录入顺序返回，不重排
	expected := []string{"Chess Club", "Soccer Team", "Art Club"}
	if len(result) != len(expected) {
		t.Fatalf("期望%d项，实际%d项", len(expected), len(result))
	}
	for i, entry := range result {
		if entry.Name != expected[i] {
			t.Errorf("位置%d期望%s，实际%s", i, expected[i], entry.Name)
		}
	}
}

// ── Signup 测试 ──

func TestActivityService_Signup_Success(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	msg, err := svc.Signup(context.Background(), "Soccer Team", "tyler@mergington.edu")
	if err != nil {
		t.Fatalf("Signup 应成功: %v", err)
	}
	if msg.Message != "Signed up tyler@mergington.edu for Soccer Team" {
		t.Errorf("消息文案与旧接口不一致: %s", msg.Message)
	}
}

func TestActivityService_Signup_ActivityNotFound(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Signup(context.Background(), "Knitting Club", "tyler@mergington.edu")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("期望 ErrActivityNotFound，实际: %v", err)
	}
}

func TestActivityService_Signup_StudentNotInRoster(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Signup(context.Background(), "Soccer Team", "stranger@example.com")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestActivityService_Signup_Duplicate(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	if !errors.Is(err, ErrAlreadySignedUp) {
		t.Errorf("期望 ErrAlreadySignedUp，实际: %v", err)
	}
}

func TestActivityService_Signup_Full(t *testing.T) {
	// Art Club 名额 2/2 已满
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Signup(context.Background(), "Art Club", "tyler@mergington.edu")
	if !errors.Is(err, ErrActivityFull) {
		t.Errorf("期望 ErrActivityFull，实际: %v", err)
	}
}

func TestActivityService_Signup_ThenVisibleInList(t *testing.T) {
	repo := testRepo(sampleActivities(), testStudents())
	svc := NewActivityService(repo, zap.NewNop())

	if _, err := svc.Signup(context.Background(), "Soccer Team", "zoe@mergington.edu"); err != nil {
		t.Fatalf("Signup 应成功: %v", err)
	}

	// 写后读：报名完成后的查询应看到新名单
	a, err := repo.Activity.GetByName(context.Background(), "Soccer Team")
	if err != nil {
		t.Fatalf("GetByName 应成功: %v", err)
	}
	if len(a.Participants) != 1 || a.Participants[0] != "zoe@mergington.edu" {
		t.Errorf("期望名单=[zoe@mergington.edu]，实际=%v", a.Participants)
	}
}

// ── Unregister 测试 ──

func TestActivityService_Unregister_Success(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("Unregister 应成功: %v", err)
	}
	if msg.Message != "Unregistered michael@mergington.edu from Chess Club" {
		t.Errorf("消息文案与旧接口不一致: %s", msg.Message)
	}
}

func TestActivityService_Unregister_ActivityNotFound(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Unregister(context.Background(), "Knitting Club", "michael@mergington.edu")
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("期望 ErrActivityNotFound，实际: %v", err)
	}
}

func TestActivityService_Unregister_NotSignedUp(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	_, err := svc.Unregister(context.Background(), "Chess Club", "tyler@mergington.edu")
	if !errors.Is(err, ErrNotSignedUp) {
		t.Errorf("期望 ErrNotSignedUp，实际: %v", err)
	}
}

// ── ListStudents 测试 ──

func TestActivityService_ListStudents_SortedByEmail(t *testing.T) {
	svc := setupTestActivityService(sampleActivities())

	result, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents 应成功: %v", err)
	}
	if len(result.Students) != len(testStudents()) {
		t.Fatalf("期望%d名学生，实际%d名", len(testStudents()), len(result.Students))
	}
	emails := make([]string, 0, len(result.Students))
	for _, s := range result.Students {
		emails = append(emails, s.Email)
	}
	if !sort.StringsAreSorted(emails) {
		t.Errorf("学生名册未按邮箱升序: %v", emails)
	}
}
