package model

// Reviewer 评审导师档案表 — 对应 reviewers
type Reviewer struct {
	ReviewerID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"reviewer_id"`
	FamilyName   string  `gorm:"type:varchar(100);not null"                     json:"family_name"`
	GivenName    string  `gorm:"type:varchar(100);not null"                     json:"given_name"`
	Specialty    string  `gorm:"type:varchar(100)"                              json:"specialty,omitempty"`
	AccountID    *string `gorm:"type:uuid;index"                                json:"account_id,omitempty"`
	DepartmentID *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	BaseModel

	// 关联
	Account    *Account    `gorm:"foreignKey:AccountID;references:AccountID"       json:"account,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Reviewer) TableName() string { return "reviewers" }
