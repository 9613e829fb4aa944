package employee

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"github.com/sirupsen/logrus"
)

const (
	minPerformanceRating = 1
	maxPerformanceRating = 5
)

// SendNotificationInput は社員に関する通知送信の入力です。
// Kind が custom の場合は Title がそのまま通知種別のラベルになります。
type SendNotificationInput struct {
	Kind    notification.Kind
	Title   string
	Message string
}

var defaultTitles = map[notification.Kind]string{
	notification.KindPerformanceReview: "Performans Değerlendirmesi",
	notification.KindVacationRequest:   "İzin Talebi",
	notification.KindVacationApproval:  "İzin Onayı",
	notification.KindNewEmployee:       "Yeni Çalışan",
}

// UpdatePerformanceRating は評価 (1〜5) を更新します。
func (s *Service) UpdatePerformanceRating(ctx context.Context, id string, rating int) (*Employee, error) {
	if rating < minPerformanceRating || rating > maxPerformanceRating {
		return nil, ErrInvalidPerformanceRating
	}
	return s.mutate(ctx, id, func(e *Employee) error {
		e.PerformanceRating = float64(rating)
		return nil
	})
}

// RequestVacation は残日数の範囲内で休暇を申請し、残日数を減らして申請通知を送ります。
func (s *Service) RequestVacation(ctx context.Context, id string, days int) (*Employee, error) {
	if days < 1 {
		return nil, ErrInvalidVacationDays
	}

	updated, err := s.mutate(ctx, id, func(e *Employee) error {
		if days > e.RemainingVacationDays {
			return fmt.Errorf("requested %d of %d: %w", days, e.RemainingVacationDays, ErrInsufficientVacationDays)
		}
		e.RemainingVacationDays -= days
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.notifier.AddNotification(ctx, notification.AddNotificationInput{
		Type:         notification.TypeVacationRequest,
		Title:        defaultTitles[notification.KindVacationRequest],
		Message:      fmt.Sprintf("%d günlük izin talep etti", days),
		EmployeeName: updated.Name,
	}); err != nil {
		s.logger.WithError(err).WithField("employee_id", id).Warn("vacation request notification failed")
	}
	return updated, nil
}

// SendNotification は社員名を付けて通知レジストリへ通知を送ります。
func (s *Service) SendNotification(ctx context.Context, id string, in SendNotificationInput) (*notification.Notification, error) {
	var typ notification.Type
	title := strings.TrimSpace(in.Title)
	switch in.Kind {
	case notification.KindCustom:
		typ = notification.Custom(title)
	case notification.KindPerformanceReview, notification.KindVacationRequest,
		notification.KindVacationApproval, notification.KindNewEmployee:
		typ = notification.Type{Kind: in.Kind}
		if title == "" {
			title = defaultTitles[in.Kind]
		}
	default:
		return nil, fmt.Errorf("kind %q: %w", in.Kind, ErrInvalidNotificationKind)
	}

	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.notifier.AddNotification(ctx, notification.AddNotificationInput{
		Type:         typ,
		Title:        title,
		Message:      in.Message,
		EmployeeName: emp.Name,
	})
}

// AddProject は社員側の所属プロジェクト集合にプロジェクトを加えます。
func (s *Service) AddProject(ctx context.Context, id, projectID string) (*Employee, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("project id: %w", ErrInvalidID)
	}
	return s.mutate(ctx, id, func(e *Employee) error {
		if !e.HasProject(projectID) {
			e.ProjectIDs = append(e.ProjectIDs, projectID)
		}
		return nil
	})
}

// RemoveProject は社員側の所属プロジェクト集合からプロジェクトを外します。
func (s *Service) RemoveProject(ctx context.Context, id, projectID string) (*Employee, error) {
	return s.mutate(ctx, id, func(e *Employee) error {
		e.ProjectIDs = slices.DeleteFunc(e.ProjectIDs, func(p string) bool { return p == projectID })
		return nil
	})
}

// LoadSampleData はコレクションが空の場合に限りサンプル名簿を登録します。
// 新入社員通知は送りません。登録済みの場合は現在の一覧をそのまま返します。
func (s *Service) LoadSampleData(ctx context.Context, roster []CreateEmployeeInput) ([]*Employee, error) {
	employees := make([]*Employee, 0, len(roster))
	for _, in := range roster {
		emp, err := s.buildEmployee(in)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", in.Name, err)
		}
		employees = append(employees, emp)
	}

	var (
		result []*Employee
		seeded bool
	)
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		if len(current) > 0 {
			result = current
			return nil
		}

		for _, emp := range employees {
			created, err := s.repo.Create(txCtx, emp)
			if err != nil {
				return err
			}
			result = append(result, created)
		}
		seeded = true
		return nil
	}); err != nil {
		return nil, err
	}

	if seeded {
		for _, emp := range result {
			s.publish(ctx, change.OperationCreate, emp.ID)
		}
		s.logger.WithField("count", len(result)).Info("sample employees loaded")
	}
	return result, nil
}

// mutate は読み書きトランザクション内で社員を取得し、fn で変更して保存します。
func (s *Service) mutate(ctx context.Context, id string, fn func(*Employee) error) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := fn(existing); err != nil {
			return err
		}
		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, change.OperationUpdate, updated.ID)
	s.logger.WithFields(logrus.Fields{"employee_id": updated.ID}).Debug("employee updated")
	return updated, nil
}
