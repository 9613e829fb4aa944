package project

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/workforce/internal/core/change"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeProjectRepo struct {
	projects []*Project
}

func (r *fakeProjectRepo) Create(_ context.Context, p *Project) (*Project, error) {
	r.projects = append(r.projects, p.Clone())
	return p.Clone(), nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *Project) (*Project, error) {
	for i, existing := range r.projects {
		if existing.ID == p.ID {
			r.projects[i] = p.Clone()
			return p.Clone(), nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.projects {
		if existing.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return ErrProjectNotFound
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*Project, error) {
	list := make([]*Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p.Clone())
	}
	return list, nil
}

type recordingPublisher struct {
	events []change.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e change.Event) {
	p.events = append(p.events, e)
}

func newTestService(t *testing.T) (*Service, *fakeProjectRepo, *recordingPublisher) {
	t.Helper()
	repo := &fakeProjectRepo{}
	pub := &recordingPublisher{}
	clk := &stubClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewService(repo, clk, nil, pub, nil), repo, pub
}

func assertProgressInvariant(t *testing.T, p *Project) {
	t.Helper()
	if len(p.Tasks) == 0 {
		if p.Progress != 0 {
			t.Fatalf("expected progress 0 for empty project, got %v", p.Progress)
		}
		return
	}
	completed := 0
	for _, task := range p.Tasks {
		if task.Status == TaskStatusCompleted {
			completed++
		}
	}
	want := float64(completed) / float64(len(p.Tasks))
	if p.Progress != want {
		t.Fatalf("expected progress %v, got %v", want, p.Progress)
	}
}

func TestService_CreateProject(t *testing.T) {
	t.Parallel()

	svc, repo, pub := newTestService(t)

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name:        "  Mobil Uygulama ",
		Description: "iOS uygulaması",
		Tasks: []CreateTaskInput{
			{Title: "Tasarım", Status: TaskStatusCompleted},
			{Title: "Geliştirme"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	if created.ID == "" || created.Name != "Mobil Uygulama" {
		t.Fatalf("unexpected project: %+v", created)
	}
	if created.Tasks[1].Status != TaskStatusPending {
		t.Fatalf("expected default status Pending, got %s", created.Tasks[1].Status)
	}
	if created.Progress != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", created.Progress)
	}
	if !created.StartDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start date defaulted to clock date, got %v", created.StartDate)
	}
	if len(repo.projects) != 1 {
		t.Fatalf("expected project stored")
	}
	if len(pub.events) != 1 || pub.events[0].Operation != change.OperationCreate {
		t.Fatalf("expected create event, got %+v", pub.events)
	}
}

func TestService_CreateProject_Validation(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)

	if _, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: " "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: "P", Tasks: []CreateTaskInput{{Title: ""}}}); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if _, err := svc.CreateProject(context.Background(), CreateProjectInput{Name: "P", Tasks: []CreateTaskInput{{Title: "T", Status: "Done"}}}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestService_ProgressAfterAddingPendingTask(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name: "Raporlama",
		Tasks: []CreateTaskInput{
			{Title: "A", Status: TaskStatusCompleted},
			{Title: "B", Status: TaskStatusCompleted},
			{Title: "C", Status: TaskStatusInProgress},
			{Title: "D"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}
	if created.Progress != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", created.Progress)
	}

	updated, err := svc.AddTask(context.Background(), created.ID, CreateTaskInput{Title: "E"})
	if err != nil {
		t.Fatalf("AddTask returned error: %v", err)
	}
	if updated.Progress != 0.4 {
		t.Fatalf("expected progress 0.4, got %v", updated.Progress)
	}
}

func TestService_ProgressInvariantAcrossTaskMutations(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{Name: "P"})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}
	assertProgressInvariant(t, p)

	p, _ = svc.AddTask(ctx, p.ID, CreateTaskInput{Title: "one"})
	assertProgressInvariant(t, p)
	p, _ = svc.AddTask(ctx, p.ID, CreateTaskInput{Title: "two"})
	assertProgressInvariant(t, p)

	first := p.Tasks[0]
	p, err = svc.SetTaskStatus(ctx, p.ID, first.ID, TaskStatusCompleted)
	if err != nil {
		t.Fatalf("SetTaskStatus returned error: %v", err)
	}
	assertProgressInvariant(t, p)
	if p.Progress != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", p.Progress)
	}

	second := p.Tasks[1]
	second.Status = TaskStatusCompleted
	second.Title = "two (done)"
	p, err = svc.UpdateTask(ctx, p.ID, second)
	if err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}
	assertProgressInvariant(t, p)
	if p.Tasks[1].Title != "two (done)" {
		t.Fatalf("expected task replaced, got %+v", p.Tasks[1])
	}

	p, err = svc.RemoveTask(ctx, p.ID, first.ID)
	if err != nil {
		t.Fatalf("RemoveTask returned error: %v", err)
	}
	assertProgressInvariant(t, p)

	p, _ = svc.RemoveTask(ctx, p.ID, second.ID)
	assertProgressInvariant(t, p)

	stale := p.Clone()
	stale.Progress = 0.9
	p, err = svc.UpdateProject(ctx, stale)
	if err != nil {
		t.Fatalf("UpdateProject returned error: %v", err)
	}
	assertProgressInvariant(t, p)
}

func TestService_UnknownIDsAreNoops(t *testing.T) {
	t.Parallel()

	svc, repo, pub := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreateProject(ctx, CreateProjectInput{Name: "P", Tasks: []CreateTaskInput{{Title: "T"}}})
	pub.events = nil

	if _, err := svc.SetTaskStatus(ctx, p.ID, "missing", TaskStatusCompleted); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.RemoveTask(ctx, "missing", p.Tasks[0].ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := svc.UpdateProject(ctx, &Project{ID: "missing", Name: "X"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if err := svc.DeleteProject(ctx, "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := svc.SetTaskStatus(ctx, p.ID, p.Tasks[0].ID, "Done"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	stored, _ := repo.FindByID(ctx, p.ID)
	if stored.Tasks[0].Status != TaskStatusPending || len(repo.projects) != 1 {
		t.Fatalf("expected state unchanged, got %+v", stored)
	}
	if len(pub.events) != 0 {
		t.Fatalf("expected no events for failed mutations, got %+v", pub.events)
	}
}

func TestService_ReassignTask(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreateProject(ctx, CreateProjectInput{Name: "P", Tasks: []CreateTaskInput{
		{Title: "T", Status: TaskStatusInProgress, AssignedTo: "emp-1"},
	}})

	updated, err := svc.ReassignTask(ctx, ReassignTaskInput{
		ProjectID:      p.ID,
		TaskID:         p.Tasks[0].ID,
		FromEmployeeID: "someone-else",
		ToEmployeeID:   "emp-2",
	})
	if err != nil {
		t.Fatalf("ReassignTask returned error: %v", err)
	}
	if updated.Tasks[0].AssignedTo != "emp-2" {
		t.Fatalf("expected task reassigned, got %s", updated.Tasks[0].AssignedTo)
	}
	if updated.Tasks[0].Status != TaskStatusInProgress {
		t.Fatalf("expected status untouched, got %s", updated.Tasks[0].Status)
	}
}

func TestService_HandleEmployeeRemoval(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreateProject(ctx, CreateProjectInput{Name: "P", Tasks: []CreateTaskInput{
		{Title: "A", Status: TaskStatusInProgress, AssignedTo: "emp-1"},
		{Title: "B", Status: TaskStatusCompleted, AssignedTo: "emp-1"},
		{Title: "C", Status: TaskStatusInProgress, AssignedTo: "emp-2"},
	}})
	p, _ = svc.AssignEmployee(ctx, p.ID, "emp-1")
	p, _ = svc.AssignEmployee(ctx, p.ID, "emp-2")
	p, _ = svc.AssignEmployee(ctx, p.ID, "emp-1")
	if !reflect.DeepEqual(p.AssignedEmployees, []string{"emp-1", "emp-2"}) {
		t.Fatalf("expected membership set, got %v", p.AssignedEmployees)
	}

	updated, err := svc.HandleEmployeeRemoval(ctx, p.ID, "emp-1")
	if err != nil {
		t.Fatalf("HandleEmployeeRemoval returned error: %v", err)
	}

	for _, task := range updated.Tasks[:2] {
		if task.AssignedTo != "" || task.Status != TaskStatusPending {
			t.Fatalf("expected task unassigned and pending, got %+v", task)
		}
	}
	if updated.Tasks[2].AssignedTo != "emp-2" || updated.Tasks[2].Status != TaskStatusInProgress {
		t.Fatalf("expected other employee's task untouched, got %+v", updated.Tasks[2])
	}
	if !reflect.DeepEqual(updated.AssignedEmployees, []string{"emp-2"}) {
		t.Fatalf("expected emp-1 removed from project, got %v", updated.AssignedEmployees)
	}
	assertProgressInvariant(t, updated)
}

func TestService_CalculateEmployeeWorkload(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	svc.CreateProject(ctx, CreateProjectInput{Name: "P1", Tasks: []CreateTaskInput{
		{Title: "A", AssignedTo: "emp-1"},
		{Title: "B", Status: TaskStatusInProgress, AssignedTo: "emp-1"},
		{Title: "C", Status: TaskStatusCompleted, AssignedTo: "emp-1"},
	}})
	svc.CreateProject(ctx, CreateProjectInput{Name: "P2", Tasks: []CreateTaskInput{
		{Title: "D", Status: TaskStatusDelayed, AssignedTo: "emp-1"},
		{Title: "E", Status: TaskStatusInProgress, AssignedTo: "emp-2"},
	}})

	w, err := svc.CalculateEmployeeWorkload(ctx, "emp-1")
	if err != nil {
		t.Fatalf("CalculateEmployeeWorkload returned error: %v", err)
	}
	if w != (Workload{Total: 4, Pending: 1, InProgress: 1}) {
		t.Fatalf("unexpected workload: %+v", w)
	}
	if w.Total < w.Pending+w.InProgress {
		t.Fatalf("workload total must cover pending and in progress")
	}

	none, _ := svc.CalculateEmployeeWorkload(ctx, "emp-3")
	if none != (Workload{}) {
		t.Fatalf("expected zero workload, got %+v", none)
	}
}

func TestService_DeleteProject(t *testing.T) {
	t.Parallel()

	svc, repo, pub := newTestService(t)
	ctx := context.Background()
	p, _ := svc.CreateProject(ctx, CreateProjectInput{Name: "P"})

	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject returned error: %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("expected project removed")
	}
	last := pub.events[len(pub.events)-1]
	if last.Operation != change.OperationDelete || last.ID != p.ID {
		t.Fatalf("expected delete event, got %+v", last)
	}
}

func TestProject_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	original := &Project{
		ID:          "p-1",
		Name:        "Mobil Uygulama",
		Description: "iOS",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     due,
		Tasks: []Task{
			{ID: "t-1", Title: "Tasarım", Status: TaskStatusCompleted, AssignedTo: "emp-1", DueDate: due},
			{ID: "t-2", Title: "Test", Status: TaskStatusNotStarted, DueDate: due},
		},
		AssignedEmployees: []string{"emp-1"},
	}
	original.RecomputeProgress()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded Project
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !reflect.DeepEqual(original, &decoded) {
		t.Fatalf("expected %+v, got %+v", original, decoded)
	}
}
