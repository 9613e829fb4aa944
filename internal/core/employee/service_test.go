package employee

import (
	"context"
	"errors"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/ogurasousui/workforce/internal/core/notification"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	employees []*Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	r.employees = append(r.employees, e.Clone())
	return e.Clone(), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	for i, existing := range r.employees {
		if existing.ID == e.ID {
			r.employees[i] = e.Clone()
			return e.Clone(), nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) DeleteAt(_ context.Context, indexes []int) ([]*Employee, error) {
	sorted := slices.Clone(indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	sorted = slices.Compact(sorted)

	var removed []*Employee
	for _, idx := range sorted {
		removed = append(removed, r.employees[idx])
		r.employees = append(r.employees[:idx], r.employees[idx+1:]...)
	}
	return removed, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]*Employee, error) {
	list := make([]*Employee, 0, len(r.employees))
	for _, e := range r.employees {
		list = append(list, e.Clone())
	}
	return list, nil
}

type fakeNotifier struct {
	inputs []notification.AddNotificationInput
}

func (n *fakeNotifier) AddNotification(_ context.Context, in notification.AddNotificationInput) (*notification.Notification, error) {
	n.inputs = append(n.inputs, in)
	return &notification.Notification{ID: "n-1", Type: in.Type, Title: in.Title, Message: in.Message, EmployeeName: in.EmployeeName}, nil
}

func newTestService(t *testing.T) (*Service, *fakeEmployeeRepo, *fakeNotifier) {
	t.Helper()
	repo := newFakeEmployeeRepo()
	notifier := &fakeNotifier{}
	clk := &stubClock{now: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)}
	return NewService(repo, notifier, clk, nil, nil, nil), repo, notifier
}

func boolPtr(v bool) *bool { return &v }

func mustAdd(t *testing.T, svc *Service, in CreateEmployeeInput) *Employee {
	t.Helper()
	created, err := svc.AddEmployee(context.Background(), in)
	if err != nil {
		t.Fatalf("AddEmployee(%s) returned error: %v", in.Name, err)
	}
	return created
}

func TestService_AddEmployee_Success(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newTestService(t)

	created, err := svc.AddEmployee(context.Background(), CreateEmployeeInput{
		Name:       "  Ahmet Yılmaz ",
		Position:   "Yazılım Geliştirici",
		Department: "Bilgi Teknolojileri",
		Email:      " Ahmet.Yilmaz@Sirket.com ",
		Skills:     []string{"Swift", "SwiftUI", "iOS"},
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Name != "Ahmet Yılmaz" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Email != "ahmet.yilmaz@sirket.com" {
		t.Fatalf("expected normalized email, got %s", created.Email)
	}
	if !created.IsActive || created.RemainingVacationDays != 20 {
		t.Fatalf("expected defaults active=true vacation=20, got %t %d", created.IsActive, created.RemainingVacationDays)
	}
	if !created.StartDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start date to default to clock date, got %v", created.StartDate)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("expected employee appended, got %d", len(repo.employees))
	}

	if len(notifier.inputs) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.inputs))
	}
	sent := notifier.inputs[0]
	if sent.Type != notification.TypeNewEmployee || sent.EmployeeName != "Ahmet Yılmaz" {
		t.Fatalf("unexpected notification: %+v", sent)
	}
}

func TestService_AddEmployee_Validation(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newTestService(t)
	negative := -1

	cases := []struct {
		name string
		in   CreateEmployeeInput
		want error
	}{
		{"empty name", CreateEmployeeInput{Name: " ", Position: "Dev"}, ErrInvalidName},
		{"empty position", CreateEmployeeInput{Name: "A", Position: ""}, ErrInvalidPosition},
		{"bad email", CreateEmployeeInput{Name: "A", Position: "Dev", Email: "not-an-email"}, ErrInvalidEmail},
		{"rating out of range", CreateEmployeeInput{Name: "A", Position: "Dev", PerformanceRating: 6}, ErrInvalidPerformanceRating},
		{"negative vacation", CreateEmployeeInput{Name: "A", Position: "Dev", RemainingVacationDays: &negative}, ErrInvalidVacationDays},
	}

	for _, tc := range cases {
		if _, err := svc.AddEmployee(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	if len(repo.employees) != 0 || len(notifier.inputs) != 0 {
		t.Fatalf("expected no side effects on invalid input")
	}
}

func TestService_UpdateEmployee(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "Ayşe Kara", Position: "İK Uzmanı", Department: "İnsan Kaynakları"})

	created.Department = "Yazılım"
	created.ProjectIDs = []string{"p-1", "p-2"}

	updated, err := svc.UpdateEmployee(context.Background(), created)
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.Department != "Yazılım" {
		t.Fatalf("expected department updated, got %s", updated.Department)
	}
	if len(updated.ProjectIDs) != 0 {
		t.Fatalf("expected stored project ids kept, got %v", updated.ProjectIDs)
	}
}

func TestService_UpdateEmployee_KeepsProjectMembership(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "Ayşe Kara", Position: "İK Uzmanı"})
	if _, err := svc.AddProject(ctx, created.ID, "p-1"); err != nil {
		t.Fatalf("AddProject returned error: %v", err)
	}

	updated, err := svc.UpdateEmployee(ctx, &Employee{ID: created.ID, Name: "Ayşe Kara", Position: "Kıdemli İK Uzmanı"})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.Position != "Kıdemli İK Uzmanı" {
		t.Fatalf("expected position updated, got %s", updated.Position)
	}
	if !slices.Equal(updated.ProjectIDs, []string{"p-1"}) {
		t.Fatalf("expected project ids [p-1], got %v", updated.ProjectIDs)
	}
}

func TestService_UpdateEmployee_NotFoundIsNoop(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	mustAdd(t, svc, CreateEmployeeInput{Name: "Ayşe Kara", Position: "İK Uzmanı"})
	before, _ := repo.List(context.Background())

	_, err := svc.UpdateEmployee(context.Background(), &Employee{ID: "missing", Name: "X", Position: "Y"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	after, _ := repo.List(context.Background())
	if len(after) != len(before) || after[0].Name != before[0].Name {
		t.Fatalf("expected collection unchanged")
	}
}

func TestService_DeleteEmployees(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	for _, n := range []string{"A", "B", "C", "D"} {
		mustAdd(t, svc, CreateEmployeeInput{Name: n, Position: "Dev"})
	}

	removed, err := svc.DeleteEmployees(context.Background(), []int{2, 0, 2})
	if err != nil {
		t.Fatalf("DeleteEmployees returned error: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed, got %d", len(removed))
	}

	remaining, _ := repo.List(context.Background())
	if len(remaining) != 2 || remaining[0].Name != "B" || remaining[1].Name != "D" {
		t.Fatalf("unexpected remaining employees: %+v", remaining)
	}
}

func TestService_DeleteEmployees_InvalidIndex(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	mustAdd(t, svc, CreateEmployeeInput{Name: "A", Position: "Dev"})

	if _, err := svc.DeleteEmployees(context.Background(), []int{0, 5}); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("expected no deletion when any index is invalid")
	}
}

func seedFilterFixture(t *testing.T, svc *Service) {
	t.Helper()
	mustAdd(t, svc, CreateEmployeeInput{Name: "Ahmet Yılmaz", Position: "Yazılım Geliştirici", Department: "Bilgi Teknolojileri"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "Mehmet Demir", Position: "Proje Yöneticisi", Department: "Yazılım"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "Ayşe Kara", Position: "İK Uzmanı", Department: "İnsan Kaynakları"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "Kübra Ünal", Position: "Test Uzmanı", Department: "YAZILIM"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "Elif Ateş", Position: "İK Uzmanı", Department: "İnsan Kaynakları", IsActive: boolPtr(false)})
}

func names(list []*Employee) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name)
	}
	return out
}

func TestService_ListEmployees_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	seedFilterFixture(t, svc)

	got, err := svc.ListEmployees(context.Background(), ListEmployeesInput{SearchText: "yazılım", Department: AllDepartments})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if !slices.Equal(names(got), []string{"Mehmet Demir", "Kübra Ünal"}) {
		t.Fatalf("unexpected search result: %v", names(got))
	}

	byName, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{SearchText: "AHMET"})
	if !slices.Equal(names(byName), []string{"Ahmet Yılmaz"}) {
		t.Fatalf("expected name search, got %v", names(byName))
	}

	if len(repo.employees) != 5 {
		t.Fatalf("filtering must not mutate the collection")
	}
}

func TestService_ListEmployees_SearchMatchesASCIIUpperCase(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	mustAdd(t, svc, CreateEmployeeInput{Name: "Ali Veli", Position: "Analist", Department: "Finans"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "Işık Kaya", Position: "Geliştirici", Department: "Yazılım"})

	for _, search := range []string{"ALI", "ali", "Ali"} {
		got, err := svc.ListEmployees(context.Background(), ListEmployeesInput{SearchText: search})
		if err != nil {
			t.Fatalf("ListEmployees returned error: %v", err)
		}
		if !slices.Equal(names(got), []string{"Ali Veli"}) {
			t.Fatalf("search %q: expected [Ali Veli], got %v", search, names(got))
		}
	}

	got, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{SearchText: "IŞIK"})
	if !slices.Equal(names(got), []string{"Işık Kaya"}) {
		t.Fatalf("expected Turkish dotless match, got %v", names(got))
	}
}

func TestService_ListEmployees_DepartmentAndInactive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	seedFilterFixture(t, svc)

	hr, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{Department: "İnsan Kaynakları"})
	if !slices.Equal(names(hr), []string{"Ayşe Kara"}) {
		t.Fatalf("expected only active HR employee, got %v", names(hr))
	}

	hrAll, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{Department: "İnsan Kaynakları", IncludeInactive: true})
	if !slices.Equal(names(hrAll), []string{"Ayşe Kara", "Elif Ateş"}) {
		t.Fatalf("expected inactive employee included, got %v", names(hrAll))
	}

	all, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{})
	if len(all) != 4 {
		t.Fatalf("expected 4 active employees, got %d", len(all))
	}

	none, _ := svc.ListEmployees(context.Background(), ListEmployeesInput{SearchText: "zzz"})
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", none)
	}
}

func TestService_FilterEmployees_IsLazy(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	seedFilterFixture(t, svc)

	seq, err := svc.FilterEmployees(context.Background(), ListEmployeesInput{IncludeInactive: true})
	if err != nil {
		t.Fatalf("FilterEmployees returned error: %v", err)
	}

	visited := 0
	for range seq {
		visited++
		if visited == 2 {
			break
		}
	}
	if visited != 2 {
		t.Fatalf("expected early stop after 2, got %d", visited)
	}
}

func TestService_Departments(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	mustAdd(t, svc, CreateEmployeeInput{Name: "A", Position: "Dev", Department: "Yazılım"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "B", Position: "Dev", Department: "İnsan Kaynakları"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "C", Position: "Dev", Department: "Bilgi Teknolojileri"})
	mustAdd(t, svc, CreateEmployeeInput{Name: "D", Position: "Dev", Department: "Yazılım"})

	got, err := svc.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments returned error: %v", err)
	}
	want := []string{"Bilgi Teknolojileri", "İnsan Kaynakları", AllDepartments, "Yazılım"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestService_DepartmentStats(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	for _, dept := range []string{"Yazılım", "İnsan Kaynakları", "İnsan Kaynakları", "Bilgi Teknolojileri", "İnsan Kaynakları", "Yazılım"} {
		mustAdd(t, svc, CreateEmployeeInput{Name: "X", Position: "Dev", Department: dept})
	}

	stats, err := svc.DepartmentStats(context.Background())
	if err != nil {
		t.Fatalf("DepartmentStats returned error: %v", err)
	}
	want := []DepartmentCount{
		{Department: "İnsan Kaynakları", Count: 3},
		{Department: "Yazılım", Count: 2},
		{Department: "Bilgi Teknolojileri", Count: 1},
	}
	if !slices.Equal(stats, want) {
		t.Fatalf("expected %v, got %v", want, stats)
	}
}

func TestService_AveragePerformance(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	avg, err := svc.AveragePerformance(context.Background())
	if err != nil {
		t.Fatalf("AveragePerformance returned error: %v", err)
	}
	if avg != 0 {
		t.Fatalf("expected 0 for empty collection, got %v", avg)
	}

	mustAdd(t, svc, CreateEmployeeInput{Name: "A", Position: "Dev", PerformanceRating: 4})
	mustAdd(t, svc, CreateEmployeeInput{Name: "B", Position: "Dev", PerformanceRating: 3})
	mustAdd(t, svc, CreateEmployeeInput{Name: "C", Position: "Dev", PerformanceRating: 2})

	avg, _ = svc.AveragePerformance(context.Background())
	if avg != 3 {
		t.Fatalf("expected average 3, got %v", avg)
	}

	summary, err := svc.PerformanceSummary(context.Background())
	if err != nil {
		t.Fatalf("PerformanceSummary returned error: %v", err)
	}
	if summary.High != 1 || summary.Medium != 1 || summary.Low != 1 || summary.Total != 3 {
		t.Fatalf("unexpected buckets: %+v", summary)
	}
}

func TestService_RequestVacation(t *testing.T) {
	t.Parallel()

	svc, _, notifier := newTestService(t)
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "Ayşe Kara", Position: "İK Uzmanı"})

	updated, err := svc.RequestVacation(context.Background(), created.ID, 5)
	if err != nil {
		t.Fatalf("RequestVacation returned error: %v", err)
	}
	if updated.RemainingVacationDays != 15 {
		t.Fatalf("expected 15 days remaining, got %d", updated.RemainingVacationDays)
	}

	last := notifier.inputs[len(notifier.inputs)-1]
	if last.Type != notification.TypeVacationRequest || last.Message != "5 günlük izin talep etti" {
		t.Fatalf("unexpected vacation notification: %+v", last)
	}

	if _, err := svc.RequestVacation(context.Background(), created.ID, 16); !errors.Is(err, ErrInsufficientVacationDays) {
		t.Fatalf("expected ErrInsufficientVacationDays, got %v", err)
	}
	if _, err := svc.RequestVacation(context.Background(), created.ID, 0); !errors.Is(err, ErrInvalidVacationDays) {
		t.Fatalf("expected ErrInvalidVacationDays, got %v", err)
	}

	current, _ := svc.GetEmployee(context.Background(), created.ID)
	if current.RemainingVacationDays != 15 {
		t.Fatalf("expected rejected requests to leave balance at 15, got %d", current.RemainingVacationDays)
	}
}

func TestService_UpdatePerformanceRating(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "A", Position: "Dev"})

	updated, err := svc.UpdatePerformanceRating(context.Background(), created.ID, 4)
	if err != nil {
		t.Fatalf("UpdatePerformanceRating returned error: %v", err)
	}
	if updated.PerformanceRating != 4 {
		t.Fatalf("expected rating 4, got %v", updated.PerformanceRating)
	}

	if _, err := svc.UpdatePerformanceRating(context.Background(), created.ID, 0); !errors.Is(err, ErrInvalidPerformanceRating) {
		t.Fatalf("expected ErrInvalidPerformanceRating, got %v", err)
	}
	if _, err := svc.UpdatePerformanceRating(context.Background(), "missing", 3); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_SendNotification(t *testing.T) {
	t.Parallel()

	svc, _, notifier := newTestService(t)
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "Mehmet Demir", Position: "Proje Yöneticisi"})

	if _, err := svc.SendNotification(context.Background(), created.ID, SendNotificationInput{
		Kind:    notification.KindVacationApproval,
		Message: "İzniniz onaylandı",
	}); err != nil {
		t.Fatalf("SendNotification returned error: %v", err)
	}
	approval := notifier.inputs[len(notifier.inputs)-1]
	if approval.Title != "İzin Onayı" || approval.EmployeeName != "Mehmet Demir" {
		t.Fatalf("expected default approval title, got %+v", approval)
	}

	if _, err := svc.SendNotification(context.Background(), created.ID, SendNotificationInput{
		Kind:  notification.KindCustom,
		Title: "Toplantı",
	}); err != nil {
		t.Fatalf("SendNotification custom returned error: %v", err)
	}
	custom := notifier.inputs[len(notifier.inputs)-1]
	if custom.Type != notification.Custom("Toplantı") {
		t.Fatalf("expected custom type label, got %+v", custom.Type)
	}

	if _, err := svc.SendNotification(context.Background(), created.ID, SendNotificationInput{Kind: "bogus"}); !errors.Is(err, ErrInvalidNotificationKind) {
		t.Fatalf("expected ErrInvalidNotificationKind, got %v", err)
	}
}

func TestService_ProjectMembershipIsASet(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created := mustAdd(t, svc, CreateEmployeeInput{Name: "A", Position: "Dev"})

	if _, err := svc.AddProject(context.Background(), created.ID, "p-1"); err != nil {
		t.Fatalf("AddProject returned error: %v", err)
	}
	updated, err := svc.AddProject(context.Background(), created.ID, "p-1")
	if err != nil {
		t.Fatalf("AddProject returned error: %v", err)
	}
	if !slices.Equal(updated.ProjectIDs, []string{"p-1"}) {
		t.Fatalf("expected single membership, got %v", updated.ProjectIDs)
	}

	updated, err = svc.RemoveProject(context.Background(), created.ID, "p-1")
	if err != nil {
		t.Fatalf("RemoveProject returned error: %v", err)
	}
	if len(updated.ProjectIDs) != 0 {
		t.Fatalf("expected membership removed, got %v", updated.ProjectIDs)
	}
}

func TestService_LoadSampleData_OnlyOnce(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newTestService(t)
	roster := []CreateEmployeeInput{
		{Name: "Ahmet Yılmaz", Position: "Yazılım Geliştirici", Department: "Bilgi Teknolojileri"},
		{Name: "Ayşe Kara", Position: "İK Uzmanı", Department: "İnsan Kaynakları"},
	}

	first, err := svc.LoadSampleData(context.Background(), roster)
	if err != nil {
		t.Fatalf("LoadSampleData returned error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 seeded employees, got %d", len(first))
	}

	second, err := svc.LoadSampleData(context.Background(), roster)
	if err != nil {
		t.Fatalf("second LoadSampleData returned error: %v", err)
	}
	if len(second) != 2 || len(repo.employees) != 2 {
		t.Fatalf("expected seeding to happen once, got %d employees", len(repo.employees))
	}
	if len(notifier.inputs) != 0 {
		t.Fatalf("expected no notifications for sample data")
	}
}
