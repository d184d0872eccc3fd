package dto

// ── 答辩模块 DTO ──

// CreateSessionRequest 创建答辩场次请求
//
// ReviewerID 是歧义 ID：可能是导师档案 id，也可能是其账号 id
// （前端通常直接携带 JWT 里的账号 id），由 Service 层解析。
type CreateSessionRequest struct {
	DefenseDate    string `json:"defense_date"     binding:"required"` // ISO 日期 YYYY-MM-DD
	ReviewerID     string `json:"reviewer_id"      binding:"required"`
	DepartmentID   string `json:"department_id"    binding:"required,uuid"`
	ClassGroupID   string `json:"class_group_id"   binding:"required,uuid"`
	AcademicYearID string `json:"academic_year_id" binding:"required,uuid"`
}

// AddSlotRequest 向场次添加答辩时段请求
//
// StudentID 同样是歧义 ID。请求中即使携带日期也会被父场次日期覆盖，
// 所以这里根本不收日期字段。
type AddSlotRequest struct {
	StudentID string `json:"student_id"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	Subject   string `json:"subject"    binding:"required,max=500"`
}

// UpdateSlotRequest 修改答辩时段请求（仅主题与起止时间）
type UpdateSlotRequest struct {
	Subject   string `json:"subject"    binding:"required,max=500"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
}

// ── 响应 ──

// SessionResponse 答辩场次响应
// 关联缺失时对应字段省略，而不是报错（历史数据可能不完整）
type SessionResponse struct {
	ID           string              `json:"id"`
	DefenseDate  string              `json:"defense_date"`
	Reviewer     *ReviewerBrief      `json:"reviewer,omitempty"`
	Department   *DepartmentBrief    `json:"department,omitempty"`
	ClassGroup   *ClassGroupBrief    `json:"class_group,omitempty"`
	AcademicYear *AcademicYearBrief  `json:"academic_year,omitempty"`
}

// SlotResponse 答辩时段响应
type SlotResponse struct {
	ID          string        `json:"id"`
	SessionID   string        `json:"session_id"`
	DefenseDate string        `json:"defense_date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Subject     string        `json:"subject"`
	Student     *StudentBrief `json:"student,omitempty"`
}

// StudentSlotView 学生视角的轻量时段投影
type StudentSlotView struct {
	StudentID   string `json:"student_id,omitempty"`
	DefenseDate string `json:"defense_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Subject     string `json:"subject"`
}

// ReviewerBrief 评审导师简要信息
type ReviewerBrief struct {
	ID         string           `json:"id"`
	FamilyName string           `json:"family_name"`
	GivenName  string           `json:"given_name"`
	Specialty  string           `json:"specialty,omitempty"`
	Department *DepartmentBrief `json:"department,omitempty"`
}

// StudentBrief 学生简要信息
type StudentBrief struct {
	ID         string `json:"id"`
	FamilyName string `json:"family_name"`
	GivenName  string `json:"given_name"`
}

// DepartmentBrief 系部简要信息
type DepartmentBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClassGroupBrief 班级组简要信息
type ClassGroupBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AcademicYearBrief 学年简要信息
type AcademicYearBrief struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

