package vote

import (
	"context"
	"errors"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VoteService interface {
		LoadUserVotes(ctx context.Context, userID string) (domain.UserVotesResponse, error)
		SubmitVotes(ctx context.Context, req domain.SubmitVotesRequest, userID string) error
		GetVoteTally(ctx context.Context) ([]domain.VoteTallyEntry, error)
	}

	voteService struct {
		voteRepository    VoteRepository
		sessionRepository session.SessionRepository
		hub               *events.Hub
	}
)

func NewVoteService(voteRepository VoteRepository, sessionRepository session.SessionRepository, hub *events.Hub) VoteService {
	return &voteService{
		voteRepository:    voteRepository,
		sessionRepository: sessionRepository,
		hub:               hub,
	}
}

func (s *voteService) LoadUserVotes(ctx context.Context, userID string) (domain.UserVotesResponse, error) {
	votes, err := s.voteRepository.GetUserVotes(ctx, userID)
	if err != nil {
		return domain.UserVotesResponse{}, err
	}

	response := domain.UserVotesResponse{Editable: len(votes) == 0}
	for _, v := range votes {
		switch v.Pick {
		case entities.PickFirst:
			response.FirstPick = v.RestaurantID.String()
		case entities.PickSecond:
			response.SecondPick = v.RestaurantID.String()
		case entities.PickThird:
			response.ThirdPick = v.RestaurantID.String()
		default:
			return domain.UserVotesResponse{}, domain.ErrUnknownPickValue
		}
	}
	return response, nil
}

// SubmitVotes replaces the user's ranked picks. The repository swaps
// the vote rows and moves the rank weights between restaurant counters
// in one transaction, computing the difference against the ballot it
// reads under lock rather than against anything read here.
func (s *voteService) SubmitVotes(ctx context.Context, req domain.SubmitVotesRequest, userID string) error {
	if _, err := s.sessionRepository.GetActiveVotingSession(ctx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoVotingSession
		}
		return err
	}

	if req.FirstPick == "" && req.SecondPick == "" && req.ThirdPick == "" {
		return domain.ErrNoPickSelected
	}

	picks := map[string]string{
		entities.PickFirst:  req.FirstPick,
		entities.PickSecond: req.SecondPick,
		entities.PickThird:  req.ThirdPick,
	}

	seen := make(map[string]bool)
	for _, restaurantID := range picks {
		if restaurantID == "" {
			continue
		}
		if seen[restaurantID] {
			return domain.ErrDuplicatePick
		}
		seen[restaurantID] = true
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	var newVotes []*entities.UserVote
	for pick, restaurantID := range picks {
		if restaurantID == "" {
			continue
		}

		restaurantUUID, err := uuid.Parse(restaurantID)
		if err != nil {
			return domain.ErrParseUUID
		}

		newVotes = append(newVotes, &entities.UserVote{
			ID:           uuid.New(),
			UserID:       userUUID,
			RestaurantID: restaurantUUID,
			Pick:         pick,
		})
	}

	changed, err := s.voteRepository.ReplaceUserVotes(ctx, userUUID, newVotes)
	if err != nil {
		return err
	}

	for _, restaurantID := range changed {
		s.hub.Publish(events.Event{
			Table: events.TableRestaurants,
			Event: events.EventUpdate,
			RowID: restaurantID.String(),
		})
	}

	return nil
}

func (s *voteService) GetVoteTally(ctx context.Context) ([]domain.VoteTallyEntry, error) {
	rows, err := s.voteRepository.GetVoteTally(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.VoteTallyEntry
	for _, row := range rows {
		response = append(response, domain.VoteTallyEntry{
			RestaurantID:   row.RestaurantID.String(),
			RestaurantName: row.RestaurantName,
			Votes:          row.Votes,
			WeightedSum:    row.WeightedSum,
		})
	}
	return response, nil
}
