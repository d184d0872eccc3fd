package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"defense-hub/internal/model"
	pkgerrors "defense-hub/pkg/errors"
)

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	accounts map[string]*model.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	if account.AccountID == "" {
		account.AccountID = "acc-" + account.Email
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByAccountID(_ context.Context, accountID string) (*model.Student, error) {
	for _, s := range m.students {
		if s.AccountID != nil && *s.AccountID == accountID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ReviewerRepository ──

type mockReviewerRepo struct {
	reviewers map[string]*model.Reviewer
}

func newMockReviewerRepo() *mockReviewerRepo {
	return &mockReviewerRepo{reviewers: make(map[string]*model.Reviewer)}
}

func (m *mockReviewerRepo) GetByID(_ context.Context, id string) (*model.Reviewer, error) {
	if r, ok := m.reviewers[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReviewerRepo) GetByAccountID(_ context.Context, accountID string) (*model.Reviewer, error) {
	for _, r := range m.reviewers {
		if r.AccountID != nil && *r.AccountID == accountID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock 基础参照数据 Repository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		result = append(result, *d)
	}
	return result, nil
}

type mockClassGroupRepo struct {
	classGroups map[string]*model.ClassGroup
}

func newMockClassGroupRepo() *mockClassGroupRepo {
	return &mockClassGroupRepo{classGroups: make(map[string]*model.ClassGroup)}
}

func (m *mockClassGroupRepo) GetByID(_ context.Context, id string) (*model.ClassGroup, error) {
	if cg, ok := m.classGroups[id]; ok {
		return cg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassGroupRepo) List(_ context.Context) ([]model.ClassGroup, error) {
	var result []model.ClassGroup
	for _, cg := range m.classGroups {
		result = append(result, *cg)
	}
	return result, nil
}

type mockAcademicYearRepo struct {
	years map[string]*model.AcademicYear
}

func newMockAcademicYearRepo() *mockAcademicYearRepo {
	return &mockAcademicYearRepo{years: make(map[string]*model.AcademicYear)}
}

func (m *mockAcademicYearRepo) GetByID(_ context.Context, id string) (*model.AcademicYear, error) {
	if ay, ok := m.years[id]; ok {
		return ay, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) List(_ context.Context) ([]model.AcademicYear, error) {
	var result []model.AcademicYear
	for _, ay := range m.years {
		result = append(result, *ay)
	}
	return result, nil
}

// ── Mock SessionRepository ──
//
// 持有参照数据 mock 的引用，在重载/预加载时物化关联，
// 模拟真实仓储层的 Preload 行为。

type mockSessionRepo struct {
	sessions []*model.DefenseSession
	nextID   int

	reviewers   *mockReviewerRepo
	departments *mockDepartmentRepo
	classGroups *mockClassGroupRepo
	years       *mockAcademicYearRepo

	// vanishOnReload 模拟插入后重载未命中的存储层缺陷
	vanishOnReload bool
}

func newMockSessionRepo(
	reviewers *mockReviewerRepo,
	departments *mockDepartmentRepo,
	classGroups *mockClassGroupRepo,
	years *mockAcademicYearRepo,
) *mockSessionRepo {
	return &mockSessionRepo{
		reviewers:   reviewers,
		departments: departments,
		classGroups: classGroups,
		years:       years,
	}
}

func (m *mockSessionRepo) materialize(s *model.DefenseSession) *model.DefenseSession {
	full := *s
	if r, ok := m.reviewers.reviewers[full.ReviewerID]; ok {
		rc := *r
		if rc.DepartmentID != nil {
			if d, ok := m.departments.departments[*rc.DepartmentID]; ok {
				rc.Department = d
			}
		}
		full.Reviewer = &rc
	}
	if d, ok := m.departments.departments[full.DepartmentID]; ok {
		full.Department = d
	}
	if cg, ok := m.classGroups.classGroups[full.ClassGroupID]; ok {
		full.ClassGroup = cg
	}
	if ay, ok := m.years.years[full.AcademicYearID]; ok {
		full.AcademicYear = ay
	}
	return &full
}

func (m *mockSessionRepo) CreateAndReload(_ context.Context, session *model.DefenseSession) (*model.DefenseSession, error) {
	// 外键校验：悬空的参照引用在持久化时被拒绝
	if _, ok := m.departments.departments[session.DepartmentID]; !ok {
		return nil, fmt.Errorf("%w: department_id=%s", pkgerrors.ErrForeignKeyViolation, session.DepartmentID)
	}
	if _, ok := m.classGroups.classGroups[session.ClassGroupID]; !ok {
		return nil, fmt.Errorf("%w: class_group_id=%s", pkgerrors.ErrForeignKeyViolation, session.ClassGroupID)
	}
	if _, ok := m.years.years[session.AcademicYearID]; !ok {
		return nil, fmt.Errorf("%w: academic_year_id=%s", pkgerrors.ErrForeignKeyViolation, session.AcademicYearID)
	}

	if session.SessionID == "" {
		m.nextID++
		session.SessionID = fmt.Sprintf("sess-%d", m.nextID)
	}
	m.sessions = append(m.sessions, session)

	if m.vanishOnReload {
		return nil, gorm.ErrRecordNotFound
	}
	return m.materialize(session), nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.DefenseSession, error) {
	for _, s := range m.sessions {
		if s.SessionID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) GetByIDWithAssociations(_ context.Context, id string) (*model.DefenseSession, error) {
	for _, s := range m.sessions {
		if s.SessionID == id {
			return m.materialize(s), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) ListAll(_ context.Context) ([]model.DefenseSession, error) {
	result := make([]model.DefenseSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, *m.materialize(s))
	}
	return result, nil
}

func (m *mockSessionRepo) ListByReviewer(_ context.Context, reviewerID string) ([]model.DefenseSession, error) {
	var result []model.DefenseSession
	for _, s := range m.sessions {
		if s.ReviewerID == reviewerID {
			result = append(result, *m.materialize(s))
		}
	}
	return result, nil
}

func (m *mockSessionRepo) ListByKeys(_ context.Context, classGroupID, departmentID, academicYearID string) ([]model.DefenseSession, error) {
	var result []model.DefenseSession
	for _, s := range m.sessions {
		if s.ClassGroupID == classGroupID && s.DepartmentID == departmentID && s.AcademicYearID == academicYearID {
			result = append(result, *m.materialize(s))
		}
	}
	return result, nil
}

// ── Mock SlotRepository ──

type mockSlotRepo struct {
	slots  []*model.DefenseSlot
	nextID int

	students *mockStudentRepo
	sessions *mockSessionRepo
}

func newMockSlotRepo(students *mockStudentRepo, sessions *mockSessionRepo) *mockSlotRepo {
	return &mockSlotRepo{students: students, sessions: sessions}
}

func (m *mockSlotRepo) materialize(sl *model.DefenseSlot, withSession bool) *model.DefenseSlot {
	full := *sl
	if st, ok := m.students.students[full.StudentID]; ok {
		full.Student = st
	}
	if withSession {
		for _, s := range m.sessions.sessions {
			if s.SessionID == full.SessionID {
				full.Session = m.sessions.materialize(s)
				break
			}
		}
	}
	return &full
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.DefenseSlot) error {
	if slot.SlotID == "" {
		m.nextID++
		slot.SlotID = fmt.Sprintf("slot-%d", m.nextID)
	}
	m.slots = append(m.slots, slot)
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.DefenseSlot, error) {
	for _, sl := range m.slots {
		if sl.SlotID == id {
			return m.materialize(sl, false), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListBySession(_ context.Context, sessionID string) ([]model.DefenseSlot, error) {
	var result []model.DefenseSlot
	for _, sl := range m.slots {
		if sl.SessionID == sessionID {
			result = append(result, *m.materialize(sl, false))
		}
	}
	return result, nil
}

func (m *mockSlotRepo) ListByStudent(_ context.Context, studentID string) ([]model.DefenseSlot, error) {
	var result []model.DefenseSlot
	for _, sl := range m.slots {
		if sl.StudentID == studentID {
			result = append(result, *m.materialize(sl, true))
		}
	}
	return result, nil
}

func (m *mockSlotRepo) UpdateFields(_ context.Context, slot *model.DefenseSlot) error {
	for _, sl := range m.slots {
		if sl.SlotID == slot.SlotID {
			sl.Subject = slot.Subject
			sl.StartTime = slot.StartTime
			sl.EndTime = slot.EndTime
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

