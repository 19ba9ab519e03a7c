package counsellor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/pkg/metrics"
)

const historyWindow = 15

const fallbackReply = "I'm sorry, I'm having trouble connecting to my reasoning core right now. Please try again in a moment."

// ChatResult is the counsellor's reply plus the side effects it executed.
type ChatResult struct {
	Response     string   `json:"response"`
	ActionsTaken []string `json:"actions_taken"`
}

// UniversityActions is the university-service surface the counsellor drives
// when executing action tags.
type UniversityActions interface {
	ListShortlist(ctx context.Context, userID int) ([]model.ShortlistEntry, error)
	AddToShortlist(ctx context.Context, userID int, universityName, country, category string) (*model.ShortlistItem, error)
	LockByUniversityName(ctx context.Context, userID int, universityName string) (bool, error)
}

// Service orchestrates a counselling exchange: it assembles the student
// context, calls the LLM, executes the action tags in the reply, and
// persists the conversation.
type Service struct {
	profileRepo  *repository.ProfileRepository
	taskRepo     *repository.TaskRepository
	chatRepo     *repository.ChatRepository
	universities UniversityActions
	llm          LLMClient
	logger       *zap.Logger
}

func NewService(
	profileRepo *repository.ProfileRepository,
	taskRepo *repository.TaskRepository,
	chatRepo *repository.ChatRepository,
	universities UniversityActions,
	llm LLMClient,
	logger *zap.Logger,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		taskRepo:     taskRepo,
		chatRepo:     chatRepo,
		universities: universities,
		llm:          llm,
		logger:       logger,
	}
}

// History returns the full conversation, oldest first.
func (s *Service) History(ctx context.Context, userID int) ([]model.ChatMessage, error) {
	return s.chatRepo.ListByUser(ctx, userID)
}

// Chat handles one message from the student.
func (s *Service) Chat(ctx context.Context, userID int, message string) (*ChatResult, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		// Profiles are seeded at signup; recreate if one is somehow missing.
		if err := s.profileRepo.CreateEmpty(ctx, userID); err != nil {
			return nil, err
		}
		profile, err = s.profileRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	shortlist, err := s.universities.ListShortlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	taskList, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.recentHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	userMsg := &model.ChatMessage{UserID: userID, Role: model.RoleUser, Text: message}
	if err := s.chatRepo.Insert(ctx, userMsg); err != nil {
		return nil, err
	}

	system := fullSystemPrompt(buildContext(profile, shortlist, taskList))
	reply, err := s.llm.Complete(ctx, system, history, message)
	if err != nil {
		s.logger.Warn("LLM completion failed", zap.Error(err), zap.Int("user_id", userID))
		reply = fallbackReply
	}

	executed := s.executeActions(ctx, userID, profile, taskList, ParseActions(reply))
	clean := StripActions(reply)

	botMsg := &model.ChatMessage{UserID: userID, Role: model.RoleBot, Text: clean}
	if err := s.chatRepo.Insert(ctx, botMsg); err != nil {
		return nil, err
	}
	for _, actionText := range executed {
		actionMsg := &model.ChatMessage{UserID: userID, Role: model.RoleBot, Text: actionText, IsAction: true}
		if err := s.chatRepo.Insert(ctx, actionMsg); err != nil {
			return nil, err
		}
	}

	return &ChatResult{Response: clean, ActionsTaken: executed}, nil
}

// recentHistory returns the last historyWindow messages as LLM turns,
// oldest first.
func (s *Service) recentHistory(ctx context.Context, userID int) ([]ChatTurn, error) {
	recent, err := s.chatRepo.ListRecent(ctx, userID, historyWindow)
	if err != nil {
		return nil, err
	}

	turns := make([]ChatTurn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		role := "user"
		if recent[i].Role == model.RoleBot {
			role = "assistant"
		}
		turns = append(turns, ChatTurn{Role: role, Content: recent[i].Text})
	}
	return turns, nil
}

// executeActions applies each parsed action. Failures skip the action rather
// than abort the chat; the reply itself is still delivered.
func (s *Service) executeActions(ctx context.Context, userID int, profile *model.Profile, taskList []model.Task, actions []Action) []string {
	executed := []string{}
	for _, action := range actions {
		switch action.Type {
		case ActionShortlist:
			if action.University == "" {
				continue
			}
			if _, err := s.universities.AddToShortlist(ctx, userID, action.University, "", action.Category); err != nil {
				s.logger.Warn("Chat shortlist action failed",
					zap.Error(err),
					zap.String("university", action.University),
				)
				continue
			}
			category := action.Category
			if category == "" {
				category = model.CategoryTarget
			}
			executed = append(executed, fmt.Sprintf("Shortlisted %s to %s list", action.University, category))

		case ActionAddTask:
			if action.Title == "" || hasTaskTitled(taskList, action.Title) {
				continue
			}
			t := &model.Task{
				UserID:          userID,
				Title:           action.Title,
				Status:          model.TaskStatusPending,
				IsAutoGenerated: true,
			}
			if err := s.taskRepo.Insert(ctx, t); err != nil {
				s.logger.Warn("Chat add_task action failed", zap.Error(err))
				continue
			}
			taskList = append(taskList, *t)
			metrics.IncrementTaskGeneration("chat")
			executed = append(executed, fmt.Sprintf("Added task: %s", action.Title))

		case ActionLock:
			if action.University == "" {
				continue
			}
			locked, err := s.universities.LockByUniversityName(ctx, userID, action.University)
			if err != nil {
				s.logger.Warn("Chat lock action failed",
					zap.Error(err),
					zap.String("university", action.University),
				)
				continue
			}
			// Re-locking an already-locked choice changes nothing.
			if !locked {
				continue
			}
			executed = append(executed, fmt.Sprintf("Locked %s - Welcome to the Application phase!", action.University))
		}
	}
	return executed
}

func hasTaskTitled(taskList []model.Task, title string) bool {
	for _, t := range taskList {
		if strings.EqualFold(t.Title, title) {
			return true
		}
	}
	return false
}
