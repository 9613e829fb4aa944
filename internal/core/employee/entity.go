package employee

import (
	"slices"
	"time"
)

// AllDepartments は部署フィルタで「すべて」を表す番兵値です。
const AllDepartments = "Tümü"

const defaultVacationDays = 20

// Employee は社員エンティティです。
// ProjectIDs は所属プロジェクト ID の集合で、順序に意味はありません。
type Employee struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Position              string    `json:"position"`
	Department            string    `json:"department"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	StartDate             time.Time `json:"start_date"`
	IsActive              bool      `json:"is_active"`
	PerformanceRating     float64   `json:"performance_rating"`
	RemainingVacationDays int       `json:"remaining_vacation_days"`
	Skills                []string  `json:"skills"`
	ProjectIDs            []string  `json:"project_ids"`
}

// Clone は社員のディープコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	c := *e
	c.Skills = slices.Clone(e.Skills)
	c.ProjectIDs = slices.Clone(e.ProjectIDs)
	return &c
}

// HasProject は社員がプロジェクトに所属しているかを返します。
func (e *Employee) HasProject(projectID string) bool {
	return slices.Contains(e.ProjectIDs, projectID)
}

// DepartmentCount は部署ごとの人数です。
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// PerformanceSummary はダッシュボード向けの評価集計です。
type PerformanceSummary struct {
	Average float64 `json:"average"`
	High    int     `json:"high"`
	Medium  int     `json:"medium"`
	Low     int     `json:"low"`
	Total   int     `json:"total"`
}
