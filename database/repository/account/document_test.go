package accountRepo

import (
	"context"
	"encoding/json"
	"testing"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

const fixture = `{"users":[
	{"id":"student_1","role":"student","name":"Sara","email":"sara@example.com","phone":"01012345678","createdAt":"2024-01-01T10:00:00Z"},
	{"id":"tutor_1","role":"tutor","name":"Omar","email":"omar@example.com","phone":"01112345678","approved":true,"createdAt":"2024-01-02T10:00:00Z"}
]}`

func newTestRepo(t *testing.T) AccountRepository {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(fixture), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	return NewDocumentAccountRepo(document.NewCollectionRepository(adapter))
}

func TestGetByIDMissingIsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nobody")
	if !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindByEmailAbsentIsNil(t *testing.T) {
	repo := newTestRepo(t)

	account, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if err != nil || account != nil {
		t.Fatalf("expected nil, nil; got %v, %v", account, err)
	}
}

func TestCreateRejectsTakenIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
	}{
		{"email", "sara@example.com", "01298765432"},
		{"phone", "new@example.com", "01012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			err := repo.Create(context.Background(), &models.Account{ID: "student_2", Role: models.RoleStudent, Email: tt.email, Phone: tt.phone})
			if !utils.IsKind(err, utils.KindDuplicate) {
				t.Fatalf("expected duplicate, got %v", err)
			}
		})
	}
}

func TestPatchMergesFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	updated, err := repo.Patch(ctx, "student_1", map[string]any{"bio": "Loves physics", "id": "hijack"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "student_1" || updated.Bio != "Loves physics" || updated.Name != "Sara" {
		t.Errorf("unexpected account %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Error("expected updatedAt to be set")
	}

	_, err = repo.Patch(ctx, "student_1", map[string]any{"email": "omar@example.com"})
	if !utils.IsKind(err, utils.KindDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	favs, err := repo.ToggleFavorite(ctx, "student_1", "tutor_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favs) != 1 || favs[0] != "tutor_1" {
		t.Fatalf("expected [tutor_1], got %v", favs)
	}

	favs, err = repo.ToggleFavorite(ctx, "student_1", "tutor_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("expected empty favorites, got %v", favs)
	}
}

func TestListByRole(t *testing.T) {
	repo := newTestRepo(t)

	tutors, err := repo.ListByRole(context.Background(), models.RoleTutor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tutors) != 1 || tutors[0].ID != "tutor_1" {
		t.Errorf("unexpected tutors %+v", tutors)
	}
}

func TestWritesKeepUndeclaredFieldsOfOtherAccounts(t *testing.T) {
	source := document.FixtureFunc(func(context.Context) ([]byte, error) {
		return []byte(`{"users":[
			{"id":"student_1","role":"student","email":"sara@example.com","userType":"student","avatar":"pic.png"},
			{"id":"tutor_1","role":"tutor","email":"omar@example.com","avatar":"omar.png"}
		]}`), nil
	})
	store := document.NewCollectionRepository(document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source)))
	repo := NewDocumentAccountRepo(store)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Account{ID: "student_2", Role: models.RoleStudent, Email: "ali@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.ToggleFavorite(ctx, "student_1", "tutor_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Patch(ctx, "tutor_1", map[string]any{"name": "Omar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users, err := store.GetCollection(ctx, document.Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	var student, tutor map[string]any
	if err := json.Unmarshal(users[0], &student); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(users[1], &tutor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if student["avatar"] != "pic.png" || student["userType"] != "student" {
		t.Errorf("expected student extras kept, got %v", student)
	}
	if tutor["avatar"] != "omar.png" || tutor["name"] != "Omar" {
		t.Errorf("expected tutor extras kept alongside the update, got %v", tutor)
	}
}
