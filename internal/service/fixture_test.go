package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/lshigami/aptiprep/internal/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db        *gorm.DB
	events    *event.Recorder
	now       time.Time
	admin     AdminTestService
	catalog   CatalogService
	attempts  *attemptService
	ranking   *rankingService
	analytics *analyticsService
	history   TestSubmissionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)), &gorm.Config{
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

	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewTestAttemptRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	events := &event.Recorder{}
	// Wednesday
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	attempts := NewAttemptService(testRepo, questionRepo, attemptRepo, answerRepo, events).(*attemptService)
	attempts.now = clock
	ranking := NewRankingService(testRepo, attemptRepo, repository.NewLeaderboardRepository(db), NewLeaderboardCache(nil, 0), events, time.UTC).(*rankingService)
	ranking.now = clock
	analytics := NewAnalyticsService(testRepo, attemptRepo, answerRepo, repository.NewAnalyticsRepository(db), repository.NewActivityRepository(db)).(*analyticsService)
	analytics.now = clock

	return &fixture{
		db:        db,
		events:    events,
		now:       now,
		admin:     NewAdminTestService(testRepo),
		catalog:   NewCatalogService(testRepo),
		attempts:  attempts,
		ranking:   ranking,
		analytics: analytics,
		history:   NewTestSubmissionService(testRepo, attemptRepo, NewScoreConverterService()),
	}
}

// createTest adds a test whose questions all have "A" as the key, one per
// topic, worth one mark each.
func (f *fixture) createTest(t *testing.T, title, category, kind string, negative bool, topics ...string) *dto.TestResponseDTO {
	t.Helper()
	req := dto.TestCreateDTO{
		Title:           title,
		Category:        category,
		Kind:            kind,
		DurationMinutes: 10,
		NegativeMarking: negative,
	}
	for i, topic := range topics {
		req.Questions = append(req.Questions, dto.QuestionCreateDTO{
			Topic:         topic,
			Prompt:        fmt.Sprintf("%s #%d", topic, i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Marks:         1,
			OrderInTest:   i + 1,
		})
	}
	test, err := f.admin.CreateTest(t.Context(), req)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	return test
}

// submit runs one attempt end to end through the gateway. choices maps the
// question position to the selected option.
func (f *fixture) submit(t *testing.T, test *dto.TestResponseDTO, userID uint, choices map[int]string, secs int, at time.Time) uint {
	t.Helper()
	ctx := t.Context()
	id, err := f.attempts.CreateAttempt(ctx, session.NewAttempt{TestID: test.ID, UserID: userID})
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	recs := make([]session.AnswerRecord, 0, len(test.Questions))
	for i, q := range test.Questions {
		rec := session.AnswerRecord{QuestionID: q.ID}
		if opt, ok := choices[i]; ok {
			rec.SelectedOption = &opt
		}
		recs = append(recs, rec)
	}
	if err := f.attempts.FinalizeAnswers(ctx, id, recs); err != nil {
		t.Fatalf("finalize answers: %v", err)
	}
	if err := f.attempts.UpdateAttempt(ctx, id, session.AttemptUpdate{TimeTakenSeconds: secs, SubmittedAt: at}); err != nil {
		t.Fatalf("update attempt: %v", err)
	}
	return id
}

func strPtr(s string) *string { return &s }
