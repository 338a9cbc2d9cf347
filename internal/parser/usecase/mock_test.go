package usecase_test

import (
	"context"
	"strconv"
	"strings"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is a func-field fake of the parser repository.
type fakeRepo struct {
	projects map[string]model.Project // lowercase name or path → project
	tags     map[string]model.Tag     // lowercase name → existing tag

	nameErr error
	pathErr error
	tagErr  error

	created []string // names FindOrCreateTag minted, in call order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects: make(map[string]model.Project),
		tags:     make(map[string]model.Tag),
	}
}

func (f *fakeRepo) addProject(path string) model.Project {
	p := model.Project{
		ID:       "proj-" + strconv.Itoa(len(f.projects)+1),
		OwnerID:  "user-1",
		Name:     path[strings.LastIndex(path, "/")+1:],
		FullPath: path,
		Color:    "#ff7043",
	}
	f.projects[strings.ToLower(path)] = p
	return p
}

func (f *fakeRepo) GetProjectByName(ctx context.Context, opt repository.GetProjectByNameOptions) (model.Project, error) {
	if f.nameErr != nil {
		return model.Project{}, f.nameErr
	}
	return f.projects[strings.ToLower(opt.Name)], nil
}

func (f *fakeRepo) GetProjectByPath(ctx context.Context, opt repository.GetProjectByPathOptions) (model.Project, error) {
	if f.pathErr != nil {
		return model.Project{}, f.pathErr
	}
	return f.projects[strings.ToLower(opt.Path)], nil
}

func (f *fakeRepo) FindOrCreateTag(ctx context.Context, opt repository.FindOrCreateTagOptions) (model.Tag, bool, error) {
	if f.tagErr != nil {
		return model.Tag{}, false, f.tagErr
	}
	if tag, ok := f.tags[strings.ToLower(opt.Name)]; ok {
		return tag, false, nil
	}

	f.created = append(f.created, opt.Name)
	tag := model.Tag{
		ID:      "tag-" + strconv.Itoa(len(f.created)),
		OwnerID: opt.OwnerID,
		Name:    opt.Name,
		Color:   "#6b7280",
	}
	f.tags[strings.ToLower(opt.Name)] = tag
	return tag, true, nil
}
