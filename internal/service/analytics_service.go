package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/lshigami/aptiprep/internal/streak"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	weakAreaThreshold = 60.0
	strengthThreshold = 75.0
)

// streakKinds are the test kinds whose submissions count as daily activity.
var streakKinds = []string{model.TestKindMock, model.TestKindCompanySpecific}

// AnalyticsService rebuilds a user's per-category summary and daily streak.
type AnalyticsService interface {
	RefreshAnalytics(ctx context.Context, userID, testID uint) error
	GetUserAnalytics(ctx context.Context, userID uint) ([]dto.UserAnalyticsDTO, error)
}

type analyticsService struct {
	testRepo      repository.TestRepository
	attemptRepo   repository.TestAttemptRepository
	answerRepo    repository.AnswerRepository
	analyticsRepo repository.AnalyticsRepository
	activityRepo  repository.ActivityRepository
	now           func() time.Time
}

func NewAnalyticsService(
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
	answerRepo repository.AnswerRepository,
	analyticsRepo repository.AnalyticsRepository,
	activityRepo repository.ActivityRepository,
) AnalyticsService {
	return &analyticsService{
		testRepo:      testRepo,
		attemptRepo:   attemptRepo,
		answerRepo:    answerRepo,
		analyticsRepo: analyticsRepo,
		activityRepo:  activityRepo,
		now:           time.Now,
	}
}

func skipped(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrComputationSkipped, err)
}

// RefreshAnalytics recomputes the (user, category) row of the test's category
// from source records and overwrites it.
func (s *analyticsService) RefreshAnalytics(ctx context.Context, userID, testID uint) error {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return fmt.Errorf("refresh analytics: %w", err)
	}
	loc := s.userLocation(ctx, userID)

	timestamps, err := s.activityTimes(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("RefreshAnalytics: failed to collect activity")
		return skipped("collect activity", err)
	}
	summary := streak.Compute(timestamps, s.now(), loc)

	submitted, err := s.attemptRepo.FindSubmittedByUserAndCategory(ctx, userID, test.Category)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("category", test.Category).Msg("RefreshAnalytics: failed to load attempts")
		return skipped("load attempts", err)
	}
	avgScore, totalTime := averageScore(submitted)

	stats, err := s.answerRepo.TopicAccuracy(ctx, userID, test.Category)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("category", test.Category).Msg("RefreshAnalytics: failed to load topic accuracy")
		return skipped("topic accuracy", err)
	}
	weak, strong := classifyTopics(stats)
	weakJSON, err := json.Marshal(weak)
	if err != nil {
		return skipped("encode weak areas", err)
	}
	strongJSON, err := json.Marshal(strong)
	if err != nil {
		return skipped("encode strengths", err)
	}

	row := &model.UserAnalytics{
		UserID:            userID,
		Category:          test.Category,
		AvgScore:          avgScore,
		TotalTimeSpent:    totalTime,
		WeakAreas:         datatypes.JSON(weakJSON),
		Strengths:         datatypes.JSON(strongJSON),
		CurrentStreakDays: summary.Current,
		LongestStreakDays: summary.Longest,
		ActiveDays:        summary.ActiveDays,
		LastActivityDate:  summary.LastActivity,
	}
	if err := s.analyticsRepo.Upsert(ctx, row); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("category", test.Category).Msg("RefreshAnalytics: upsert failed")
		return skipped("store analytics", err)
	}
	log.Info().Uint("userID", userID).Str("category", test.Category).Int("currentStreak", summary.Current).Int("longestStreak", summary.Longest).Msg("Analytics refreshed")
	return nil
}

// userLocation resolves the profile timezone. Missing or unknown zones fall
// back to UTC.
func (s *analyticsService) userLocation(ctx context.Context, userID uint) *time.Location {
	tz, err := s.analyticsRepo.FindTimezone(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("RefreshAnalytics: timezone lookup failed, using UTC")
		return time.UTC
	}
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Str("timezone", tz).Msg("RefreshAnalytics: unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

// activityTimes unions every source that counts toward the streak. Adaptive
// practice submissions are not part of it.
func (s *analyticsService) activityTimes(ctx context.Context, userID uint) ([]time.Time, error) {
	sources := []struct {
		name  string
		fetch func(context.Context, uint) ([]time.Time, error)
	}{
		{"test submissions", func(ctx context.Context, id uint) ([]time.Time, error) {
			return s.attemptRepo.SubmissionTimes(ctx, id, streakKinds)
		}},
		{"practice sessions", s.activityRepo.PracticeSessionTimes},
		{"assignment completions", s.activityRepo.AssignmentCompletionTimes},
		{"custom tests", s.activityRepo.CustomTestTimes},
	}

	var all []time.Time
	for _, src := range sources {
		times, err := src.fetch(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		all = append(all, times...)
	}
	return all, nil
}

func averageScore(attempts []repository.SubmittedAttempt) (float64, int) {
	if len(attempts) == 0 {
		return 0, 0
	}
	var sum float64
	total := 0
	for _, a := range attempts {
		sum += a.Score
		total += a.TimeTakenSeconds
	}
	return round2(sum / float64(len(attempts))), total
}

// classifyTopics splits topics by accuracy percentage. Thresholds apply to
// the exact accuracy; only the stored value is rounded. Topics between the
// two thresholds appear in neither map.
func classifyTopics(stats []repository.TopicStat) (weak, strong map[string]float64) {
	weak = map[string]float64{}
	strong = map[string]float64{}
	for _, st := range stats {
		if st.Total == 0 {
			continue
		}
		acc := 100 * float64(st.Correct) / float64(st.Total)
		switch {
		case acc < weakAreaThreshold:
			weak[st.Topic] = round2(acc)
		case acc >= strengthThreshold:
			strong[st.Topic] = round2(acc)
		}
	}
	return weak, strong
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *analyticsService) GetUserAnalytics(ctx context.Context, userID uint) ([]dto.UserAnalyticsDTO, error) {
	rows, err := s.analyticsRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserAnalytics: failed to load analytics")
		return nil, fmt.Errorf("load analytics for user %d: %w", userID, err)
	}
	var dtos []dto.UserAnalyticsDTO
	if err := copier.Copy(&dtos, &rows); err != nil {
		log.Error().Err(err).Msg("GetUserAnalytics: failed to copy analytics to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if dtos == nil {
		dtos = []dto.UserAnalyticsDTO{}
	}
	return dtos, nil
}
