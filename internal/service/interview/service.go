package interview

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/internal/service/counsellor"
)

const fallbackReply = "I apologize, could you repeat that?"

// Status reports which interview modes the student can take.
type Status struct {
	LockedUniversity           string `json:"locked_university"`
	LockedUniversityID         *int   `json:"locked_university_id"`
	TargetCountry              string `json:"target_country"`
	CanTakeUniversityInterview bool   `json:"can_take_university_interview"`
}

// Service runs mock admissions and visa interviews against the LLM and
// archives their transcripts.
type Service struct {
	shortlistRepo *repository.ShortlistRepository
	profileRepo   *repository.ProfileRepository
	interviewRepo *repository.InterviewRepository
	llm           counsellor.LLMClient
	logger        *zap.Logger
}

func NewService(
	shortlistRepo *repository.ShortlistRepository,
	profileRepo *repository.ProfileRepository,
	interviewRepo *repository.InterviewRepository,
	llm counsellor.LLMClient,
	logger *zap.Logger,
) *Service {
	return &Service{
		shortlistRepo: shortlistRepo,
		profileRepo:   profileRepo,
		interviewRepo: interviewRepo,
		llm:           llm,
		logger:        logger,
	}
}

// GetStatus resolves the locked university and target country. Country
// priority: locked university's country, then the first preferred country,
// then "USA".
func (s *Service) GetStatus(ctx context.Context, userID int) (*Status, error) {
	status := &Status{TargetCountry: "USA"}

	locked, err := s.shortlistRepo.FindLockedByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if locked != nil {
		status.LockedUniversity = locked.UniversityName
		status.LockedUniversityID = &locked.UniversityID
		status.TargetCountry = locked.Country
		status.CanTakeUniversityInterview = true
		return status, nil
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if profile != nil && len(profile.PreferredCountries) > 0 {
		status.TargetCountry = profile.PreferredCountries[0]
	}
	return status, nil
}

// Chat produces the interviewer's next line for the given mode.
func (s *Service) Chat(ctx context.Context, userID int, mode, message string, history []counsellor.ChatTurn) (string, error) {
	prompt, err := s.buildPrompt(ctx, userID, mode)
	if err != nil {
		return "", err
	}

	reply, err := s.llm.Complete(ctx, prompt+speechInstruction, history, message)
	if err != nil {
		s.logger.Warn("Interview completion failed",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.String("mode", mode),
		)
		return fallbackReply, nil
	}
	return reply, nil
}

func (s *Service) buildPrompt(ctx context.Context, userID int, mode string) (string, error) {
	locked, err := s.shortlistRepo.FindLockedByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	switch mode {
	case model.InterviewModeUniversity:
		uniName := "a prestigious university"
		uniCountry := "the USA"
		if locked != nil {
			uniName = locked.UniversityName
			uniCountry = locked.Country
		}
		return universityOfficerPrompt(uniName, uniCountry), nil

	case model.InterviewModeVisa:
		country := "USA"
		if locked != nil {
			country = locked.Country
		} else {
			profile, err := s.profileRepo.FindByUserID(ctx, userID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return "", err
			}
			if profile != nil && len(profile.PreferredCountries) > 0 {
				country = profile.PreferredCountries[0]
			}
		}
		prompt := visaOfficerPrompt(country)
		if locked != nil {
			prompt += fmt.Sprintf("\nYou know the student is planning to attend %s.", locked.UniversityName)
		}
		return prompt, nil

	default:
		return "You are a generic interviewer.", nil
	}
}

// Save archives a finished interview's transcript. University-mode
// interviews are linked to the locked university when one exists.
func (s *Service) Save(ctx context.Context, userID int, mode, transcript string) (*model.Interview, error) {
	if mode == "" {
		mode = "Interaction"
	}

	var universityID *int
	if mode == model.InterviewModeUniversity {
		locked, err := s.shortlistRepo.FindLockedByUser(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if locked != nil {
			universityID = &locked.UniversityID
		}
	}

	interview := &model.Interview{
		UserID:        userID,
		InterviewType: mode,
		Transcript:    transcript,
		UniversityID:  universityID,
	}
	if err := s.interviewRepo.Insert(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// HistoryEntry is one archived interview for display.
type HistoryEntry struct {
	ID                int    `json:"id"`
	Mode              string `json:"mode"`
	Date              string `json:"date"`
	TranscriptPreview string `json:"transcript_preview"`
	FullTranscript    string `json:"full_transcript"`
	UniversityName    string `json:"university_name"`
}

// History returns archived interviews, newest first, optionally filtered by
// mode.
func (s *Service) History(ctx context.Context, userID int, mode string) ([]HistoryEntry, error) {
	items, err := s.interviewRepo.ListByUser(ctx, userID, mode)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(items))
	for _, item := range items {
		preview := item.Transcript
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		uniName := item.UniversityName
		if uniName == "" {
			uniName = "N/A"
		}
		entries = append(entries, HistoryEntry{
			ID:                item.ID,
			Mode:              item.InterviewType,
			Date:              item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			TranscriptPreview: preview,
			FullTranscript:    item.Transcript,
			UniversityName:    uniName,
		})
	}
	return entries, nil
}
