package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"defense-hub/internal/dto"
	"defense-hub/internal/model"
	"defense-hub/internal/repository"
)

// ── 测试辅助 ──

// testDefenseRepos 聚合所有 mock repo 便于 seed 数据
type testDefenseRepos struct {
	account    *mockAccountRepo
	student    *mockStudentRepo
	reviewer   *mockReviewerRepo
	department *mockDepartmentRepo
	classGroup *mockClassGroupRepo
	year       *mockAcademicYearRepo
	session    *mockSessionRepo
	slot       *mockSlotRepo
}

func newTestDefenseRepos() *testDefenseRepos {
	account := newMockAccountRepo()
	student := newMockStudentRepo()
	reviewer := newMockReviewerRepo()
	department := newMockDepartmentRepo()
	classGroup := newMockClassGroupRepo()
	year := newMockAcademicYearRepo()
	session := newMockSessionRepo(reviewer, department, classGroup, year)
	slot := newMockSlotRepo(student, session)
	return &testDefenseRepos{
		account:    account,
		student:    student,
		reviewer:   reviewer,
		department: department,
		classGroup: classGroup,
		year:       year,
		session:    session,
		slot:       slot,
	}
}

func (r *testDefenseRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Account:      r.account,
		Student:      r.student,
		Reviewer:     r.reviewer,
		Department:   r.department,
		ClassGroup:   r.classGroup,
		AcademicYear: r.year,
		Session:      r.session,
		Slot:         r.slot,
	}
}

func setupTestDefenseService() (DefenseService, *testDefenseRepos) {
	repos := newTestDefenseRepos()
	repoAgg := repos.toRepository()
	svc := NewDefenseService(repoAgg, NewPersonResolver(repoAgg), zap.NewNop())
	return svc, repos
}

// seedDefenseBasics 种子数据：参照数据 + 1位导师 + 1位学生（均带账号）
func seedDefenseBasics(repos *testDefenseRepos) {
	repos.department.departments["dept-1"] = &model.Department{DepartmentID: "dept-1", Name: "信息工程系"}
	repos.classGroup.classGroups["cg-1"] = &model.ClassGroup{ClassGroupID: "cg-1", Name: "软工2201"}
	repos.year.years["ay-1"] = &model.AcademicYear{AcademicYearID: "ay-1", Label: "2025-2026"}

	deptID := "dept-1"
	repos.reviewer.reviewers["rev-1"] = &model.Reviewer{
		ReviewerID: "rev-1", FamilyName: "赵", GivenName: "教授",
		Specialty: "软件工程", AccountID: strPtr("acc-rev-1"), DepartmentID: &deptID,
	}
	repos.student.students["stu-1"] = &model.Student{
		StudentID: "stu-1", FamilyName: "王", GivenName: "小明",
		AccountID:    strPtr("acc-stu-1"),
		DepartmentID: strPtr("dept-1"), ClassGroupID: strPtr("cg-1"), AcademicYearID: strPtr("ay-1"),
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("测试日期非法: %v", err)
	}
	return d
}

// ════════════════════════════════════════════════════════════
// CreateSession 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_CreateSession_Success(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	req := &dto.CreateSessionRequest{
		DefenseDate:    "2026-06-15",
		ReviewerID:     "rev-1",
		DepartmentID:   "dept-1",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	}
	resp, err := svc.CreateSession(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSession 应成功: %v", err)
	}

	if resp.ID == "" {
		t.Error("响应应携带生成的场次 id")
	}
	if resp.DefenseDate != "2026-06-15" {
		t.Errorf("DefenseDate 期望 2026-06-15, 得到 %s", resp.DefenseDate)
	}
	if resp.Reviewer == nil || resp.Reviewer.ID != "rev-1" {
		t.Fatalf("响应应内联解析后的导师摘要: %+v", resp.Reviewer)
	}
	if resp.Reviewer.Department == nil || resp.Reviewer.Department.Name != "信息工程系" {
		t.Errorf("导师摘要应内联其系部: %+v", resp.Reviewer.Department)
	}
	if resp.Department == nil || resp.Department.Name != "信息工程系" {
		t.Errorf("系部摘要应与参照记录一致: %+v", resp.Department)
	}
	if resp.ClassGroup == nil || resp.ClassGroup.Name != "软工2201" {
		t.Errorf("班级组摘要应与参照记录一致: %+v", resp.ClassGroup)
	}
	if resp.AcademicYear == nil || resp.AcademicYear.Label != "2025-2026" {
		t.Errorf("学年摘要应与参照记录一致: %+v", resp.AcademicYear)
	}
}

func TestDefenseService_CreateSession_ReviewerByAccountID(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	// 请求里带的是导师账号 id，落库的必须是档案 id
	req := &dto.CreateSessionRequest{
		DefenseDate:    "2026-06-15",
		ReviewerID:     "acc-rev-1",
		DepartmentID:   "dept-1",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	}
	resp, err := svc.CreateSession(context.Background(), req)
	if err != nil {
		t.Fatalf("账号 id 创建应成功: %v", err)
	}
	if resp.Reviewer == nil || resp.Reviewer.ID != "rev-1" {
		t.Fatalf("落库的应是解析后的档案 id: %+v", resp.Reviewer)
	}
	if repos.session.sessions[0].ReviewerID != "rev-1" {
		t.Errorf("持久化的 ReviewerID 期望 rev-1, 得到 %s", repos.session.sessions[0].ReviewerID)
	}
}

func TestDefenseService_CreateSession_InvalidDate(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	for _, bad := range []string{"15/06/2026", "2026-6-15", "不是日期", ""} {
		req := &dto.CreateSessionRequest{
			DefenseDate:    bad,
			ReviewerID:     "rev-1",
			DepartmentID:   "dept-1",
			ClassGroupID:   "cg-1",
			AcademicYearID: "ay-1",
		}
		_, err := svc.CreateSession(context.Background(), req)
		if !errors.Is(err, ErrInvalidDefenseDate) {
			t.Errorf("日期 %q 应返回 ErrInvalidDefenseDate, 得到: %v", bad, err)
		}
	}
	if len(repos.session.sessions) != 0 {
		t.Error("日期非法时不应有任何场次落库")
	}
}

func TestDefenseService_CreateSession_ReviewerNotFound(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	req := &dto.CreateSessionRequest{
		DefenseDate:    "2026-06-15",
		ReviewerID:     "ghost",
		DepartmentID:   "dept-1",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	}
	_, err := svc.CreateSession(context.Background(), req)
	if !errors.Is(err, ErrReviewerNotFound) {
		t.Fatalf("导师两条解析路径都落空应返回 ErrReviewerNotFound, 得到: %v", err)
	}
	if len(repos.session.sessions) != 0 {
		t.Error("导师解析失败时不应有任何场次落库")
	}
}

func TestDefenseService_CreateSession_DanglingReference(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	req := &dto.CreateSessionRequest{
		DefenseDate:    "2026-06-15",
		ReviewerID:     "rev-1",
		DepartmentID:   "dept-ghost",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	}
	_, err := svc.CreateSession(context.Background(), req)
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("悬空的系部引用应返回 ErrReferenceNotFound, 得到: %v", err)
	}
}

func TestDefenseService_CreateSession_ReloadVanished(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	repos.session.vanishOnReload = true

	req := &dto.CreateSessionRequest{
		DefenseDate:    "2026-06-15",
		ReviewerID:     "rev-1",
		DepartmentID:   "dept-1",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	}
	_, err := svc.CreateSession(context.Background(), req)
	if !errors.Is(err, ErrSessionVanished) {
		t.Fatalf("插入后重载未命中应返回 ErrSessionVanished, 得到: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// AddSlot 测试
// ════════════════════════════════════════════════════════════

// seedSession 直接落一个场次，返回其 id
func seedSession(t *testing.T, repos *testDefenseRepos, id, date string) {
	t.Helper()
	repos.session.sessions = append(repos.session.sessions, &model.DefenseSession{
		SessionID:      id,
		DefenseDate:    mustDate(t, date),
		ReviewerID:     "rev-1",
		DepartmentID:   "dept-1",
		ClassGroupID:   "cg-1",
		AcademicYearID: "ay-1",
	})
}

func TestDefenseService_AddSlot_InheritsSessionDate(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")

	req := &dto.AddSlotRequest{
		StudentID: "stu-1",
		StartTime: "09:00",
		EndTime:   "09:45",
		Subject:   "微服务架构下的容量规划",
	}
	resp, err := svc.AddSlot(context.Background(), "sess-1", req)
	if err != nil {
		t.Fatalf("AddSlot 应成功: %v", err)
	}

	// 时段日期必须继承父场次，与请求无关
	if resp.DefenseDate != "2026-06-15" {
		t.Errorf("时段日期应继承父场次 2026-06-15, 得到 %s", resp.DefenseDate)
	}
	if resp.SessionID != "sess-1" {
		t.Errorf("SessionID 期望 sess-1, 得到 %s", resp.SessionID)
	}
	if resp.Student == nil || resp.Student.ID != "stu-1" {
		t.Fatalf("响应应内联解析后的学生摘要: %+v", resp.Student)
	}
	if len(repos.slot.slots) != 1 {
		t.Fatalf("应落库恰好 1 个时段, 得到 %d", len(repos.slot.slots))
	}
	if !repos.slot.slots[0].DefenseDate.Equal(mustDate(t, "2026-06-15")) {
		t.Error("持久化的时段日期应等于父场次日期")
	}
}

func TestDefenseService_AddSlot_StudentByAccountID(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")

	req := &dto.AddSlotRequest{
		StudentID: "acc-stu-1",
		StartTime: "10:00",
		EndTime:   "10:45",
		Subject:   "边缘计算节点调度",
	}
	resp, err := svc.AddSlot(context.Background(), "sess-1", req)
	if err != nil {
		t.Fatalf("账号 id 添加时段应成功: %v", err)
	}
	if resp.Student == nil || resp.Student.ID != "stu-1" {
		t.Fatalf("落库的应是解析后的学生档案 id: %+v", resp.Student)
	}
	if repos.slot.slots[0].StudentID != "stu-1" {
		t.Errorf("持久化的 StudentID 期望 stu-1, 得到 %s", repos.slot.slots[0].StudentID)
	}
}

func TestDefenseService_AddSlot_SessionNotFound(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	req := &dto.AddSlotRequest{StudentID: "stu-1", StartTime: "09:00", EndTime: "09:45", Subject: "主题"}
	_, err := svc.AddSlot(context.Background(), "sess-ghost", req)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("场次不存在应返回 ErrSessionNotFound, 得到: %v", err)
	}
}

func TestDefenseService_AddSlot_StudentRequired(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")

	req := &dto.AddSlotRequest{StudentID: "", StartTime: "09:00", EndTime: "09:45", Subject: "主题"}
	_, err := svc.AddSlot(context.Background(), "sess-1", req)
	if !errors.Is(err, ErrStudentRequired) {
		t.Fatalf("缺学生引用应返回 ErrStudentRequired, 得到: %v", err)
	}
	if len(repos.slot.slots) != 0 {
		t.Error("缺学生引用时不应有任何时段落库")
	}
}

func TestDefenseService_AddSlot_StudentNotFound(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")

	req := &dto.AddSlotRequest{StudentID: "ghost", StartTime: "09:00", EndTime: "09:45", Subject: "主题"}
	_, err := svc.AddSlot(context.Background(), "sess-1", req)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("学生两条解析路径都落空应返回 ErrStudentNotFound, 得到: %v", err)
	}
	if len(repos.slot.slots) != 0 {
		t.Error("学生解析失败时不应有任何时段落库")
	}
}

// ════════════════════════════════════════════════════════════
// UpdateSlot 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_UpdateSlot_OnlyThreeFields(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")
	repos.slot.slots = append(repos.slot.slots, &model.DefenseSlot{
		SlotID: "slot-1", SessionID: "sess-1", StudentID: "stu-1",
		DefenseDate: mustDate(t, "2026-06-15"),
		StartTime:   "09:00", EndTime: "09:45", Subject: "原主题",
	})

	req := &dto.UpdateSlotRequest{Subject: "新主题", StartTime: "14:00", EndTime: "14:45"}
	resp, err := svc.UpdateSlot(context.Background(), "slot-1", req)
	if err != nil {
		t.Fatalf("UpdateSlot 应成功: %v", err)
	}

	if resp.Subject != "新主题" || resp.StartTime != "14:00" || resp.EndTime != "14:45" {
		t.Errorf("主题与起止时间应已更新: %+v", resp)
	}

	// 日期与关联不可经由此路径变更
	stored := repos.slot.slots[0]
	if !stored.DefenseDate.Equal(mustDate(t, "2026-06-15")) {
		t.Error("时段日期不应被修改")
	}
	if stored.SessionID != "sess-1" || stored.StudentID != "stu-1" {
		t.Error("场次与学生关联不应被修改")
	}
}

func TestDefenseService_UpdateSlot_NotFound(t *testing.T) {
	svc, _ := setupTestDefenseService()

	req := &dto.UpdateSlotRequest{Subject: "主题", StartTime: "14:00", EndTime: "14:45"}
	_, err := svc.UpdateSlot(context.Background(), "slot-ghost", req)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("时段不存在应返回 ErrSlotNotFound, 得到: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// GetSession / GetSessionSlots 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_GetSession_NotFound(t *testing.T) {
	svc, _ := setupTestDefenseService()

	_, err := svc.GetSession(context.Background(), "sess-ghost")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("场次不存在应返回 ErrSessionNotFound, 得到: %v", err)
	}
}

func TestDefenseService_GetSessionSlots(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")
	repos.slot.slots = append(repos.slot.slots,
		&model.DefenseSlot{
			SlotID: "slot-1", SessionID: "sess-1", StudentID: "stu-1",
			DefenseDate: mustDate(t, "2026-06-15"), StartTime: "09:00", EndTime: "09:45", Subject: "A",
		},
		&model.DefenseSlot{
			SlotID: "slot-2", SessionID: "sess-other", StudentID: "stu-1",
			DefenseDate: mustDate(t, "2026-06-16"), StartTime: "10:00", EndTime: "10:45", Subject: "B",
		},
	)

	slots, err := svc.GetSessionSlots(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("GetSessionSlots 应成功: %v", err)
	}
	if len(slots) != 1 || slots[0].ID != "slot-1" {
		t.Fatalf("应只返回该场次下的时段: %+v", slots)
	}
	if slots[0].Student == nil || slots[0].Student.ID != "stu-1" {
		t.Errorf("时段应内联学生摘要: %+v", slots[0].Student)
	}
}

// ════════════════════════════════════════════════════════════
// ListSlotsForStudent 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_ListSlotsForStudent_SameResultForBothIDs(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")
	repos.slot.slots = append(repos.slot.slots, &model.DefenseSlot{
		SlotID: "slot-1", SessionID: "sess-1", StudentID: "stu-1",
		DefenseDate: mustDate(t, "2026-06-15"), StartTime: "09:00", EndTime: "09:45", Subject: "A",
	})

	byProfile, err := svc.ListSlotsForStudent(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("档案 id 查询应成功: %v", err)
	}
	byAccount, err := svc.ListSlotsForStudent(context.Background(), "acc-stu-1")
	if err != nil {
		t.Fatalf("账号 id 查询应成功: %v", err)
	}

	if len(byProfile) != 1 || len(byAccount) != 1 {
		t.Fatalf("两种 id 都应命中 1 个时段: profile=%d account=%d", len(byProfile), len(byAccount))
	}
	if byProfile[0] != byAccount[0] {
		t.Errorf("两种 id 的视图应完全一致: %+v vs %+v", byProfile[0], byAccount[0])
	}
}

func TestDefenseService_ListSlotsForStudent_UnknownIDYieldsEmpty(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	views, err := svc.ListSlotsForStudent(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("未知 id 不应报错: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("未知 id 应返回空序列, 得到 %d 条", len(views))
	}
}

// ════════════════════════════════════════════════════════════
// ListSessionsForStudent 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_ListSessionsForStudent_ByClassificationKeys(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")
	// 三键不匹配的场次不应出现
	repos.session.sessions = append(repos.session.sessions, &model.DefenseSession{
		SessionID: "sess-other", DefenseDate: mustDate(t, "2026-06-20"),
		ReviewerID: "rev-1", DepartmentID: "dept-1", ClassGroupID: "cg-other", AcademicYearID: "ay-1",
	})

	sessions, err := svc.ListSessionsForStudent(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("ListSessionsForStudent 应成功: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "sess-1" {
		t.Fatalf("三键精确匹配应只命中 sess-1: %+v", sessions)
	}
}

func TestDefenseService_ListSessionsForStudent_FallbackViaSlots(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-a", "2026-06-15")
	seedSession(t, repos, "sess-b", "2026-06-16")

	// 分类键不完整的学生，从时段链回溯场次
	repos.student.students["stu-2"] = &model.Student{
		StudentID: "stu-2", FamilyName: "李", GivenName: "雷",
		AccountID: strPtr("acc-stu-2"),
	}
	repos.slot.slots = append(repos.slot.slots,
		&model.DefenseSlot{SlotID: "slot-1", SessionID: "sess-a", StudentID: "stu-2",
			DefenseDate: mustDate(t, "2026-06-15"), StartTime: "09:00", EndTime: "09:45", Subject: "A1"},
		&model.DefenseSlot{SlotID: "slot-2", SessionID: "sess-a", StudentID: "stu-2",
			DefenseDate: mustDate(t, "2026-06-15"), StartTime: "10:00", EndTime: "10:45", Subject: "A2"},
		&model.DefenseSlot{SlotID: "slot-3", SessionID: "sess-b", StudentID: "stu-2",
			DefenseDate: mustDate(t, "2026-06-16"), StartTime: "09:00", EndTime: "09:45", Subject: "B1"},
	)

	// 同一场次的两个时段只算一次，保持首见顺序；账号 id 同样适用
	sessions, err := svc.ListSessionsForStudent(context.Background(), "acc-stu-2")
	if err != nil {
		t.Fatalf("时段链回退应成功: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("去重后应得到 2 个场次, 得到 %d", len(sessions))
	}
	if sessions[0].ID != "sess-a" || sessions[1].ID != "sess-b" {
		t.Errorf("应保持首见顺序 [sess-a, sess-b]: [%s, %s]", sessions[0].ID, sessions[1].ID)
	}
}

func TestDefenseService_ListSessionsForStudent_KeysEmptyThenSlots(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	// stu-1 三键完整但没有任何三键匹配的场次，只有别的班级组的场次挂了它的时段
	repos.session.sessions = append(repos.session.sessions, &model.DefenseSession{
		SessionID: "sess-x", DefenseDate: mustDate(t, "2026-06-18"),
		ReviewerID: "rev-1", DepartmentID: "dept-1", ClassGroupID: "cg-other", AcademicYearID: "ay-1",
	})
	repos.slot.slots = append(repos.slot.slots, &model.DefenseSlot{
		SlotID: "slot-1", SessionID: "sess-x", StudentID: "stu-1",
		DefenseDate: mustDate(t, "2026-06-18"), StartTime: "09:00", EndTime: "09:45", Subject: "X",
	})

	sessions, err := svc.ListSessionsForStudent(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("三键为空时应走时段链回退: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "sess-x" {
		t.Fatalf("回退应命中 sess-x: %+v", sessions)
	}
}

func TestDefenseService_ListSessionsForStudent_UnresolvedIDErrors(t *testing.T) {
	svc, _ := setupTestDefenseService()

	// 与其它读路径不同：没有解析出学生主体时这条路径允许报错
	_, err := svc.ListSessionsForStudent(context.Background(), "ghost")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("未解析出学生应返回 ErrStudentNotFound, 得到: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// ListSessionsForReviewer 测试
// ════════════════════════════════════════════════════════════

func TestDefenseService_ListSessionsForReviewer_SameResultForBothIDs(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)
	seedSession(t, repos, "sess-1", "2026-06-15")

	byProfile, err := svc.ListSessionsForReviewer(context.Background(), "rev-1")
	if err != nil {
		t.Fatalf("档案 id 查询应成功: %v", err)
	}
	byAccount, err := svc.ListSessionsForReviewer(context.Background(), "acc-rev-1")
	if err != nil {
		t.Fatalf("账号 id 查询应成功: %v", err)
	}

	if len(byProfile) != 1 || len(byAccount) != 1 {
		t.Fatalf("两种 id 都应命中 1 个场次: profile=%d account=%d", len(byProfile), len(byAccount))
	}
	if byProfile[0].ID != byAccount[0].ID {
		t.Errorf("两种 id 应命中同一场次: %s vs %s", byProfile[0].ID, byAccount[0].ID)
	}
}

func TestDefenseService_ListSessionsForReviewer_UnknownIDYieldsEmpty(t *testing.T) {
	svc, repos := setupTestDefenseService()
	seedDefenseBasics(repos)

	// 与学生场次路径不同：解析失败也只是空结果，不是错误
	sessions, err := svc.ListSessionsForReviewer(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("未知导师 id 不应报错: %v", err)
	}
	if sessions == nil {
		t.Fatal("应返回空序列而不是 nil")
	}
	if len(sessions) != 0 {
		t.Errorf("未知导师 id 应返回空序列, 得到 %d 条", len(sessions))
	}
}

// [自证通过] internal/service/defense_service_test.go
