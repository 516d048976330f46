package repository

import (
	"context"
	"strings"
	"testing"

	"thanawyia/database/document"
	"thanawyia/models"

	"golang.org/x/crypto/bcrypt"
)

func TestHashSeedPasswords(t *testing.T) {
	existing, err := bcrypt.GenerateFromPassword([]byte("already-hashed"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := document.Parse([]byte(`{"users":[
		{"id":"student_1","role":"student","email":"a@example.com","password":"plain-secret"},
		{"id":"tutor_1","role":"tutor","email":"b@example.com","password":"` + string(existing) + `"},
		{"id":"admin_1","role":"admin","email":"c@example.com","avatar":"admin.png"}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := HashSeedPasswords(bcrypt.MinCost)(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts, err := document.Load[models.Account](document.NewTx(doc), document.Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(accounts[0].Password), []byte("plain-secret")); err != nil {
		t.Errorf("expected plaintext password to be hashed: %v", err)
	}
	if accounts[1].Password != string(existing) {
		t.Error("expected existing hash to be kept")
	}
	if accounts[2].Password != "" {
		t.Error("expected empty password to stay empty")
	}

	raw, err := document.NewTx(doc).Records(document.Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw[2]), `"avatar":"admin.png"`) {
		t.Errorf("expected undeclared field kept, got %s", raw[2])
	}
}

func TestDocumentRepositoriesShareOneDocument(t *testing.T) {
	source := document.FixtureFunc(func(context.Context) ([]byte, error) {
		return []byte(`{"users":[{"id":"tutor_1","role":"tutor","email":"t@example.com","avatar":"t.png"}]}`), nil
	})
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	repos := NewDocumentRepositories(document.NewCollectionRepository(adapter))
	ctx := context.Background()

	if _, err := repos.Reviews.CreateWithAggregate(ctx, &models.Review{ID: "r_1", TutorID: "tutor_1", StudentID: "s", Rating: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tutor, err := repos.Accounts.GetByID(ctx, "tutor_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tutor.Rating != 4 || tutor.ReviewsCount != 1 {
		t.Errorf("expected aggregate visible through accounts, got %+v", tutor)
	}
	users, err := document.NewCollectionRepository(adapter).GetCollection(ctx, document.Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(users[0]), `"avatar":"t.png"`) {
		t.Errorf("expected review write to keep tutor extras, got %s", users[0])
	}
	if err := repos.Ping(ctx); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
}
