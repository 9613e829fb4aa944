package employee

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 社員データはトルコ語のため、検索と並び替えはトルコ語の規則に従います。
var textLanguage = language.Turkish

// textMatcher は大文字小文字を区別せずに部分一致を判定します。
// トルコ語の小文字化と言語非依存の畳み込みのどちらかで一致すれば一致とみなします。
type textMatcher struct {
	lower  cases.Caser
	fold   cases.Caser
	search string
	folded string
}

func newTextMatcher(search string) *textMatcher {
	m := &textMatcher{lower: cases.Lower(textLanguage), fold: cases.Fold()}
	search = strings.TrimSpace(search)
	m.search = m.lower.String(search)
	m.folded = m.fold.String(search)
	return m
}

func (m *textMatcher) empty() bool {
	return m.search == ""
}

func (m *textMatcher) contains(value string) bool {
	return strings.Contains(m.lower.String(value), m.search) ||
		strings.Contains(m.fold.String(value), m.folded)
}

func newMatcher(in ListEmployeesInput) func(*Employee) bool {
	text := newTextMatcher(in.SearchText)
	department := strings.TrimSpace(in.Department)
	allDepartments := department == "" || department == AllDepartments

	return func(e *Employee) bool {
		if !text.empty() && !text.contains(e.Name) && !text.contains(e.Department) {
			return false
		}
		if !allDepartments && e.Department != department {
			return false
		}
		return in.IncludeInactive || e.IsActive
	}
}

// Departments は登録済みの部署名と AllDepartments を昇順で返します。
func (s *Service) Departments(ctx context.Context) ([]string, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	departments := []string{AllDepartments}
	for _, emp := range list {
		if !slices.Contains(departments, emp.Department) {
			departments = append(departments, emp.Department)
		}
	}

	collate.New(textLanguage).SortStrings(departments)
	return departments, nil
}

// DepartmentStats は部署ごとの人数を多い順に返します。
// 同数の部署は部署名の昇順に並べます。
func (s *Service) DepartmentStats(ctx context.Context) ([]DepartmentCount, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, emp := range list {
		counts[emp.Department]++
	}

	stats := make([]DepartmentCount, 0, len(counts))
	for dept, count := range counts {
		stats = append(stats, DepartmentCount{Department: dept, Count: count})
	}

	col := collate.New(textLanguage)
	slices.SortFunc(stats, func(a, b DepartmentCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return col.CompareString(a.Department, b.Department)
	})
	return stats, nil
}

// AveragePerformance は評価の平均を返します。社員がいない場合は 0 です。
func (s *Service) AveragePerformance(ctx context.Context) (float64, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return averageRating(list), nil
}

// PerformanceSummary は平均評価と評価帯ごとの人数を返します。
func (s *Service) PerformanceSummary(ctx context.Context) (*PerformanceSummary, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PerformanceSummary{Average: averageRating(list), Total: len(list)}
	for _, emp := range list {
		switch {
		case emp.PerformanceRating >= 4:
			summary.High++
		case emp.PerformanceRating == 3:
			summary.Medium++
		case emp.PerformanceRating <= 2:
			summary.Low++
		}
	}
	return summary, nil
}

func averageRating(list []*Employee) float64 {
	total := 0.0
	for _, emp := range list {
		total += emp.PerformanceRating
	}
	return total / float64(max(1, len(list)))
}
