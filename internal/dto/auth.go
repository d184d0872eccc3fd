package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"`
	Account      AccountResponse `json:"account"`
}

// AccountResponse 账号信息
type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// ProfileResponse 当前用户画像：账号 + 解析出的档案记录
//
// StudentID / ReviewerID 是通过歧义 ID 解析器由账号 id 反查档案得到的，
// 档案不存在时字段省略。
type ProfileResponse struct {
	Account    AccountResponse `json:"account"`
	StudentID  string          `json:"student_id,omitempty"`
	ReviewerID string          `json:"reviewer_id,omitempty"`
}
