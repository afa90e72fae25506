package service

import (
	"campus-hub/backend/config"
	"campus-hub/backend/internal/model"
	"campus-hub/backend/internal/repository"
)

// ── 测试辅助 ──
//
// 存储本身就是内存实现，测试直接用真实 Repository + 定制种子，
// 不再为存储层单独做 mock。

func testRepo(activities []model.Activity, students []model.Student) *repository.Repository {
	return &repository.Repository{
		Activity: repository.NewMemoryActivityRepo(activities),
		Student:  repository.NewMemoryStudentRepo(students),
	}
}

func defaultSearchConfig() *config.SearchConfig {
	return &config.SearchConfig{
		SuggestionLimit:  10,
		KeywordMinLength: 4,
	}
}

// sampleActivities 覆盖搜索边界的最小活动集
func sampleActivities() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			Category:        "Academic",
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{},
			Category:        "Sports",
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
			Category:        "Arts",
		},
	}
}

func testStudents() []model.Student {
	return []model.Student{
		{Email: "michael@mergington.edu", Name: "Michael", Grade: 10},
		{Email: "daniel@mergington.edu", Name: "Daniel", Grade: 11},
		{Email: "amelia@mergington.edu", Name: "Amelia", Grade: 11},
		{Email: "harper@mergington.edu", Name: "Harper", Grade: 9},
		{Email: "tyler@mergington.edu", Name: "Tyler", Grade: 9},
		{Email: "zoe@mergington.edu", Name: "Zoe", Grade: 10},
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
