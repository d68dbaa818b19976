package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTest(t *testing.T, db *gorm.DB, title, category, kind string, topics ...string) *model.Test {
	t.Helper()
	test := &model.Test{
		Title:           title,
		Category:        category,
		Kind:            kind,
		DurationMinutes: 30,
		NegativeMarking: true,
	}
	for i, topic := range topics {
		test.Questions = append(test.Questions, model.Question{
			Topic:         topic,
			Prompt:        fmt.Sprintf("%s question %d", topic, i+1),
			CorrectAnswer: "A",
			Marks:         1,
			OrderInTest:   i + 1,
		})
	}
	if err := NewTestRepository(db).Create(t.Context(), test); err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return test
}

func seedSubmitted(t *testing.T, db *gorm.DB, testID, userID uint, score float64, secs int, at time.Time) *model.TestAttempt {
	t.Helper()
	repo := NewTestAttemptRepository(db)
	a := &model.TestAttempt{TestID: testID, UserID: userID, Status: model.AttemptStatusInProgress, TotalQuestions: 1}
	if err := repo.Create(t.Context(), a); err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	a.Score = score
	a.TimeTakenSeconds = secs
	a.SubmittedAt = &at
	if err := repo.MarkSubmitted(t.Context(), a); err != nil {
		t.Fatalf("mark submitted: %v", err)
	}
	return a
}
