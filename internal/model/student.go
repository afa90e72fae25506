package model

// Student 学生名册条目 — 邮箱为唯一标识
type Student struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}
