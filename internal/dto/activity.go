package dto

import "campus-hub/backend/internal/model"

// ── 活动模块 DTO ──

// SignupRequest 报名/退出请求参数（沿用旧接口的 query 传参）
type SignupRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// MessageResponse 操作结果消息（消息文案与旧服务端保持一致，英文）
type MessageResponse struct {
	Message string `json:"message"`
}

// StudentsResponse 学生名册响应
type StudentsResponse struct {
	Students []model.Student `json:"students"`
}
