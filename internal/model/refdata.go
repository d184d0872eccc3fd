package model

// Department 系部表 — 对应 departments
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

func (Department) TableName() string { return "departments" }

// ClassGroup 班级组表 — 对应 class_groups
type ClassGroup struct {
	ClassGroupID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_group_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

func (ClassGroup) TableName() string { return "class_groups" }

// AcademicYear 学年表 — 对应 academic_years
type AcademicYear struct {
	AcademicYearID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_year_id"`
	Label          string `gorm:"type:varchar(50);not null"                      json:"label"`
	BaseModel
}

func (AcademicYear) TableName() string { return "academic_years" }
