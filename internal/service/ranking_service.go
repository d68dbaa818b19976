package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// RankingService ranks a submitted attempt among every submitted attempt of
// its test and maintains the per-period leaderboard rows. It takes no locks:
// each call re-reads a snapshot and upserts on natural keys, so concurrent
// submissions converge once the last one has run.
type RankingService interface {
	Rank(ctx context.Context, req ranking.Request) (*ranking.Result, error)
	GetLeaderboard(ctx context.Context, testID uint, period ranking.Period, limit int) (*dto.LeaderboardResponse, error)
}

type rankingService struct {
	testRepo        repository.TestRepository
	attemptRepo     repository.TestAttemptRepository
	leaderboardRepo repository.LeaderboardRepository
	cache           LeaderboardCache
	publisher       event.Publisher
	loc             *time.Location
	now             func() time.Time
}

func NewRankingService(
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
	leaderboardRepo repository.LeaderboardRepository,
	cache LeaderboardCache,
	publisher event.Publisher,
	loc *time.Location,
) RankingService {
	if loc == nil {
		loc = time.UTC
	}
	return &rankingService{
		testRepo:        testRepo,
		attemptRepo:     attemptRepo,
		leaderboardRepo: leaderboardRepo,
		cache:           cache,
		publisher:       publisher,
		loc:             loc,
		now:             time.Now,
	}
}

func toEntries(rows []repository.SubmittedAttempt) []ranking.Entry {
	entries := make([]ranking.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, ranking.Entry{
			AttemptID:        r.ID,
			UserID:           r.UserID,
			Score:            r.Score,
			TimeTakenSeconds: r.TimeTakenSeconds,
			SubmittedAt:      r.SubmittedAt,
		})
	}
	return entries
}

func (s *rankingService) Rank(ctx context.Context, req ranking.Request) (*ranking.Result, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, req.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("rank attempt %d: %w", req.AttemptID, err)
	}
	if attempt.UserID != req.UserID || attempt.TestID != req.TestID {
		return nil, fmt.Errorf("%w: attempt %d does not belong to user %d on test %d", apperr.ErrInvalidInput, req.AttemptID, req.UserID, req.TestID)
	}
	if !attempt.IsSubmitted() {
		return nil, fmt.Errorf("rank attempt %d: not submitted: %w", req.AttemptID, apperr.ErrComputationSkipped)
	}

	rows, err := s.attemptRepo.FindSubmittedByTest(ctx, req.TestID)
	if err != nil {
		log.Error().Err(err).Uint("testID", req.TestID).Msg("Rank: failed to load submitted attempts")
		return nil, fmt.Errorf("rank attempt %d: %w: %w", req.AttemptID, apperr.ErrComputationSkipped, err)
	}
	entries := toEntries(rows)

	result, ok := ranking.Compute(entries, req.AttemptID)
	if !ok {
		return nil, fmt.Errorf("rank attempt %d: missing from snapshot: %w", req.AttemptID, apperr.ErrComputationSkipped)
	}
	if err := s.attemptRepo.UpdateRanking(ctx, req.AttemptID, result.Rank, result.Percentile); err != nil {
		log.Error().Err(err).Uint("attemptID", req.AttemptID).Msg("Rank: failed to store rank on attempt")
		return nil, fmt.Errorf("store rank of attempt %d: %w: %w", req.AttemptID, apperr.ErrComputationSkipped, err)
	}

	now := s.now().In(s.loc)
	updated := make([]string, 0, len(ranking.Periods))
	for _, period := range ranking.Periods {
		windowed := ranking.Within(entries, period, now)
		pr, inWindow := ranking.Compute(windowed, req.AttemptID)
		if !inWindow {
			continue
		}
		row := &model.LeaderboardEntry{
			UserID:     req.UserID,
			TestID:     req.TestID,
			PeriodType: string(period),
			AttemptID:  req.AttemptID,
			Rank:       pr.Rank,
			Score:      attempt.Score,
			TimeTaken:  attempt.TimeTakenSeconds,
			Percentile: pr.Percentile,
		}
		if err := s.leaderboardRepo.Upsert(ctx, row); err != nil {
			log.Warn().Err(err).Uint("attemptID", req.AttemptID).Str("period", string(period)).Msg("Rank: leaderboard upsert failed")
			continue
		}
		updated = append(updated, string(period))
	}
	s.cache.Invalidate(ctx, req.TestID)

	log.Info().Uint("attemptID", req.AttemptID).Int("rank", result.Rank).Float64("percentile", result.Percentile).Int("total", result.TotalAttempts).Msg("Attempt ranked")
	if err := s.publisher.Publish(ctx, event.LeaderboardUpdated, event.LeaderboardUpdatedPayload{
		TestID:     req.TestID,
		AttemptID:  req.AttemptID,
		UserID:     req.UserID,
		Rank:       result.Rank,
		Percentile: result.Percentile,
		Periods:    updated,
	}); err != nil {
		log.Warn().Err(err).Uint("attemptID", req.AttemptID).Msg("Rank: failed to publish leaderboard.updated")
	}
	return &result, nil
}

// GetLeaderboard lists each user's best attempt within the period. Ties on
// score and time are shown in submission order.
func (s *rankingService) GetLeaderboard(ctx context.Context, testID uint, period ranking.Period, limit int) (*dto.LeaderboardResponse, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, fmt.Errorf("leaderboard for test %d: %w", testID, err)
	}

	resp, hit := s.cache.Get(ctx, testID, period)
	if !hit {
		rows, err := s.attemptRepo.FindSubmittedByTest(ctx, testID)
		if err != nil {
			log.Error().Err(err).Uint("testID", testID).Msg("GetLeaderboard: failed to load submitted attempts")
			return nil, fmt.Errorf("leaderboard for test %d: %w", testID, err)
		}
		now := s.now().In(s.loc)
		best := ranking.BestPerUser(ranking.Within(toEntries(rows), period, now))

		resp = &dto.LeaderboardResponse{
			TestID:  testID,
			Period:  string(period),
			Entries: make([]dto.LeaderboardEntryDTO, 0, len(best)),
		}
		for i, e := range best {
			resp.Entries = append(resp.Entries, dto.LeaderboardEntryDTO{
				Rank:             i + 1,
				UserID:           e.UserID,
				AttemptID:        e.AttemptID,
				Score:            e.Score,
				TimeTakenSeconds: e.TimeTakenSeconds,
				Percentile:       ranking.Percentile(best, e),
				SubmittedAt:      e.SubmittedAt,
			})
		}
		s.cache.Set(ctx, resp, now)
	}

	if limit > 0 && len(resp.Entries) > limit {
		trimmed := *resp
		trimmed.Entries = resp.Entries[:limit]
		return &trimmed, nil
	}
	return resp, nil
}
