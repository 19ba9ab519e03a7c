package university

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/internal/stage"
	"counsellor/pkg/metrics"
	"counsellor/pkg/mq"
)

var ErrNotFound = repository.ErrNotFound

const searchCacheTTL = time.Hour

// Service covers university search and the shortlist lifecycle, including
// the stage advancements that shortlisting and locking trigger.
type Service struct {
	universityRepo *repository.UniversityRepository
	shortlistRepo  *repository.ShortlistRepository
	profileRepo    *repository.ProfileRepository
	syncer         *stage.Synchronizer
	scorecard      *ScorecardClient
	rdb            *redis.Client
	publisher      *mq.Publisher
	logger         *zap.Logger
}

func NewService(
	universityRepo *repository.UniversityRepository,
	shortlistRepo *repository.ShortlistRepository,
	profileRepo *repository.ProfileRepository,
	syncer *stage.Synchronizer,
	scorecard *ScorecardClient,
	rdb *redis.Client,
	publisher *mq.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		universityRepo: universityRepo,
		shortlistRepo:  shortlistRepo,
		profileRepo:    profileRepo,
		syncer:         syncer,
		scorecard:      scorecard,
		rdb:            rdb,
		publisher:      publisher,
		logger:         logger,
	}
}

// Search returns universities matching the query, preferring the Scorecard
// API when configured and falling back to the static catalog. Results are
// cached in Redis per query.
func (s *Service) Search(ctx context.Context, query string) []SearchResult {
	cacheKey := "uni:search:" + query

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var results []SearchResult
			if json.Unmarshal(cached, &results) == nil {
				return results
			}
		}
	}

	var results []SearchResult
	if s.scorecard != nil && s.scorecard.Enabled() && query != "" {
		apiResults, err := s.scorecard.Search(ctx, query)
		if err != nil {
			s.logger.Warn("Scorecard search failed, using catalog",
				zap.Error(err),
				zap.String("query", query),
			)
		} else if len(apiResults) > 0 {
			results = apiResults
		}
	}
	if results == nil {
		results = searchCatalog(query)
	}

	if s.rdb != nil {
		if body, err := json.Marshal(results); err == nil {
			s.rdb.Set(ctx, cacheKey, body, searchCacheTTL)
		}
	}
	return results
}

// findOrCreate resolves a university by name, creating a stub row when the
// catalog entry has not been persisted yet.
func (s *Service) findOrCreate(ctx context.Context, name, country string) (*model.University, error) {
	uni, err := s.universityRepo.FindByName(ctx, name)
	if err == nil {
		return uni, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if country == "" {
		country = "USA"
	}
	uni = &model.University{
		Name:       name,
		Country:    country,
		TuitionFee: "Unknown",
	}
	if err := s.universityRepo.Insert(ctx, uni); err != nil {
		return nil, err
	}
	return uni, nil
}

// AddToShortlist shortlists a university for the user and advances their
// stage when they are still in the profile-building or discovery phase.
// Re-shortlisting the same university is a no-op.
func (s *Service) AddToShortlist(ctx context.Context, userID int, universityName, country, category string) (*model.ShortlistItem, error) {
	if category == "" {
		category = model.CategoryTarget
	}

	uni, err := s.findOrCreate(ctx, universityName, country)
	if err != nil {
		return nil, err
	}

	exists, err := s.shortlistRepo.Exists(ctx, userID, uni.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.shortlistRepo.FindByUniversityForUser(ctx, userID, uni.ID)
	}

	item := &model.ShortlistItem{
		UserID:       userID,
		UniversityID: uni.ID,
		Category:     category,
	}
	if err := s.shortlistRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if next, advanced := stage.NextOnShortlist(profile.CurrentStage); advanced {
		if err := s.advanceStage(ctx, userID, profile.CurrentStage, next); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// ListShortlist returns the user's shortlist with university names.
func (s *Service) ListShortlist(ctx context.Context, userID int) ([]model.ShortlistEntry, error) {
	return s.shortlistRepo.ListByUser(ctx, userID)
}

// Lock marks a shortlisted university as the final choice and advances the
// stage to applications.
func (s *Service) Lock(ctx context.Context, userID, shortlistID int) error {
	item, err := s.shortlistRepo.FindByIDForUser(ctx, shortlistID, userID)
	if err != nil {
		return err
	}
	_, err = s.lock(ctx, userID, item)
	return err
}

// LockByUniversityName is the chat-action variant of Lock. It reports whether
// the lock actually changed anything so the caller can keep quiet about
// re-locks.
func (s *Service) LockByUniversityName(ctx context.Context, userID int, universityName string) (bool, error) {
	uni, err := s.universityRepo.FindByName(ctx, universityName)
	if err != nil {
		return false, err
	}
	item, err := s.shortlistRepo.FindByUniversityForUser(ctx, userID, uni.ID)
	if err != nil {
		return false, err
	}
	return s.lock(ctx, userID, item)
}

// lock finalizes the choice. An already-locked item is a no-op: the stage was
// advanced and the event published when it was first locked.
func (s *Service) lock(ctx context.Context, userID int, item *model.ShortlistItem) (bool, error) {
	if item.IsLocked {
		return false, nil
	}
	if err := s.shortlistRepo.SetLocked(ctx, item.ID, true); err != nil {
		return false, err
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if next, advanced := stage.NextOnLock(profile.CurrentStage); advanced {
		if err := s.advanceStage(ctx, userID, profile.CurrentStage, next); err != nil {
			return false, err
		}
	}

	if s.publisher != nil {
		name := ""
		if uni, err := s.universityRepo.FindByID(ctx, item.UniversityID); err == nil {
			name = uni.Name
		}
		payload := mq.UniversityLockedPayload{
			UserID:       userID,
			UniversityID: item.UniversityID,
			University:   name,
			LockedAt:     time.Now(),
		}
		if err := s.publisher.Publish(mq.RoutingUniversityLocked, payload); err != nil {
			s.logger.Warn("Failed to publish university.locked", zap.Error(err))
		}
	}
	return true, nil
}

// Unlock releases a locked choice and reverts the stage to finalizing. The
// revert intentionally does not resynchronize tasks: application-stage tasks
// keep whatever status they had.
func (s *Service) Unlock(ctx context.Context, userID, shortlistID int) error {
	item, err := s.shortlistRepo.FindByIDForUser(ctx, shortlistID, userID)
	if err != nil {
		return err
	}
	if !item.IsLocked {
		return nil
	}

	if err := s.shortlistRepo.SetLocked(ctx, item.ID, false); err != nil {
		return err
	}

	if err := s.profileRepo.UpdateStage(ctx, userID, stage.StageFinalizing); err != nil {
		return err
	}
	s.logger.Info("University unlocked, stage reverted",
		zap.Int("user_id", userID),
		zap.Int("shortlist_id", shortlistID),
	)
	return nil
}

func (s *Service) advanceStage(ctx context.Context, userID int, from, to string) error {
	if err := s.profileRepo.UpdateStage(ctx, userID, to); err != nil {
		return err
	}
	if err := s.syncer.Synchronize(ctx, userID, to); err != nil {
		return err
	}

	metrics.IncrementStageAdvance(to)
	s.logger.Info("Stage advanced",
		zap.Int("user_id", userID),
		zap.String("from", from),
		zap.String("to", to),
	)

	if s.publisher != nil {
		payload := mq.StageAdvancedPayload{
			UserID:     userID,
			FromStage:  from,
			ToStage:    to,
			AdvancedAt: time.Now(),
		}
		if err := s.publisher.Publish(mq.RoutingStageAdvanced, payload); err != nil {
			s.logger.Warn("Failed to publish stage.advanced", zap.Error(err))
		}
	}
	return nil
}
