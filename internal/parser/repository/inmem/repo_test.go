package inmem_test

import (
	"context"
	"testing"

	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository/inmem"
)

const owner = "user-1"

func TestProjectLookups(t *testing.T) {
	ctx := context.Background()
	repo := inmem.New(&mockLogger{})

	work, err := repo.EnsurePath(ctx, owner, "Work/Meetings", "#ff7043")
	if err != nil {
		t.Fatalf("EnsurePath: %v", err)
	}
	if work.FullPath != "Work/Meetings" {
		t.Errorf("unexpected full path %q", work.FullPath)
	}

	t.Run("Name Lookup Is Case Insensitive", func(t *testing.T) {
		p, err := repo.GetProjectByName(ctx, repository.GetProjectByNameOptions{OwnerID: owner, Name: "mEEtings"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != work.ID {
			t.Errorf("expected %q, got %q", work.ID, p.ID)
		}
	})

	t.Run("Path Lookup Is Case Insensitive", func(t *testing.T) {
		p, err := repo.GetProjectByPath(ctx, repository.GetProjectByPathOptions{OwnerID: owner, Path: "work/meetings"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != work.ID {
			t.Errorf("expected %q, got %q", work.ID, p.ID)
		}
	})

	t.Run("Cached Path Lookup Returns Same Project", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			p, err := repo.GetProjectByPath(ctx, repository.GetProjectByPathOptions{OwnerID: owner, Path: "work/meetings"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ID != work.ID {
				t.Errorf("lookup %d: expected %q, got %q", i, work.ID, p.ID)
			}
		}
	})

	t.Run("Missing Project Is Zero Not Error", func(t *testing.T) {
		p, err := repo.GetProjectByName(ctx, repository.GetProjectByNameOptions{OwnerID: owner, Name: "nope"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsZero() {
			t.Errorf("expected zero project, got %+v", p)
		}
	})

	t.Run("Scoped To Owner", func(t *testing.T) {
		p, err := repo.GetProjectByPath(ctx, repository.GetProjectByPathOptions{OwnerID: "someone-else", Path: "work/meetings"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsZero() {
			t.Errorf("expected zero project for other owner, got %+v", p)
		}
	})

	t.Run("Duplicate Sibling Rejected", func(t *testing.T) {
		_, err := repo.CreateProject(ctx, repository.CreateProjectOptions{OwnerID: owner, Name: "WORK"})
		if err == nil {
			t.Errorf("expected duplicate name error")
		}
	})
}

func TestFindOrCreateTag(t *testing.T) {
	ctx := context.Background()
	repo := inmem.New(&mockLogger{})

	first, created, err := repo.FindOrCreateTag(ctx, repository.FindOrCreateTagOptions{OwnerID: owner, Name: "Urgent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Errorf("expected first lookup to create the tag")
	}
	if first.Name != "Urgent" {
		t.Errorf("tag should keep the user's casing, got %q", first.Name)
	}

	second, created, err := repo.FindOrCreateTag(ctx, repository.FindOrCreateTagOptions{OwnerID: owner, Name: "URGENT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Errorf("expected case-insensitive match, got a new tag")
	}
	if second.ID != first.ID {
		t.Errorf("expected same tag, got %q and %q", first.ID, second.ID)
	}

	_, created, err = repo.FindOrCreateTag(ctx, repository.FindOrCreateTagOptions{OwnerID: "someone-else", Name: "urgent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Errorf("tags are owner-scoped; expected a new tag for another owner")
	}
}
