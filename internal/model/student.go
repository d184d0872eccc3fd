package model

// Student 学生档案表 — 对应 students
//
// 分类三元组（系部 / 班级组 / 学年）在历史数据中可能不完整，
// 查询层对此有专门的回退策略，模型层不做强制。
type Student struct {
	StudentID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	FamilyName     string  `gorm:"type:varchar(100);not null"                     json:"family_name"`
	GivenName      string  `gorm:"type:varchar(100);not null"                     json:"given_name"`
	AccountID      *string `gorm:"type:uuid;index"                                json:"account_id,omitempty"`
	DepartmentID   *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	ClassGroupID   *string `gorm:"type:uuid"                                      json:"class_group_id,omitempty"`
	AcademicYearID *string `gorm:"type:uuid"                                      json:"academic_year_id,omitempty"`
	BaseModel

	// 关联
	Account      *Account      `gorm:"foreignKey:AccountID;references:AccountID"           json:"account,omitempty"`
	Department   *Department   `gorm:"foreignKey:DepartmentID;references:DepartmentID"     json:"department,omitempty"`
	ClassGroup   *ClassGroup   `gorm:"foreignKey:ClassGroupID;references:ClassGroupID"     json:"class_group,omitempty"`
	AcademicYear *AcademicYear `gorm:"foreignKey:AcademicYearID;references:AcademicYearID" json:"academic_year,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// HasClassificationKeys 分类三元组是否完整（精确匹配查询的前提）
func (s *Student) HasClassificationKeys() bool {
	return s.ClassGroupID != nil && s.DepartmentID != nil && s.AcademicYearID != nil
}

