package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Account      AccountRepository
	Student      StudentRepository
	Reviewer     ReviewerRepository
	Department   DepartmentRepository
	ClassGroup   ClassGroupRepository
	AcademicYear AcademicYearRepository
	Session      SessionRepository
	Slot         SlotRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Account:      NewAccountRepo(db),
		Student:      NewStudentRepo(db),
		Reviewer:     NewReviewerRepo(db),
		Department:   NewDepartmentRepo(db),
		ClassGroup:   NewClassGroupRepo(db),
		AcademicYear: NewAcademicYearRepo(db),
		Session:      NewSessionRepo(db),
		Slot:         NewSlotRepo(db),
	}
}

