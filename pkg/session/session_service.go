package session

import (
	"context"
	"errors"
	"time"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"

	"gorm.io/gorm"
)

type (
	SessionService interface {
		GetActiveVotingSession(ctx context.Context) (domain.SessionResponse, error)
		StartVotingSession(ctx context.Context) (domain.SessionResponse, error)
		EndVotingSession(ctx context.Context) error

		GetActiveOrderingSession(ctx context.Context) (domain.SessionResponse, error)
		StartOrderingSession(ctx context.Context) (domain.SessionResponse, error)
		EndOrderingSession(ctx context.Context) error
	}

	sessionService struct {
		sessionRepository SessionRepository
		hub               *events.Hub
	}
)

func NewSessionService(sessionRepository SessionRepository, hub *events.Hub) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		hub:               hub,
	}
}

func (s *sessionService) GetActiveVotingSession(ctx context.Context) (domain.SessionResponse, error) {
	session, err := s.sessionRepository.GetActiveVotingSession(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionResponse{}, domain.ErrNoActiveSession
		}
		return domain.SessionResponse{}, err
	}
	return toSessionResponse(session.ID.String(), session.StartTime, session.EndTime, session.Status), nil
}

func (s *sessionService) StartVotingSession(ctx context.Context) (domain.SessionResponse, error) {
	session, err := s.sessionRepository.StartVotingSession(ctx)
	if err != nil {
		return domain.SessionResponse{}, err
	}

	s.hub.Publish(events.Event{Table: events.TableVotingSessions, Event: events.EventInsert, RowID: session.ID.String()})
	return toSessionResponse(session.ID.String(), session.StartTime, session.EndTime, session.Status), nil
}

func (s *sessionService) EndVotingSession(ctx context.Context) error {
	session, err := s.sessionRepository.GetActiveVotingSession(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoActiveSession
		}
		return err
	}

	if err := s.sessionRepository.EndVotingSession(ctx, session.ID.String()); err != nil {
		return err
	}

	s.hub.Publish(events.Event{Table: events.TableVotingSessions, Event: events.EventUpdate, RowID: session.ID.String()})
	return nil
}

func (s *sessionService) GetActiveOrderingSession(ctx context.Context) (domain.SessionResponse, error) {
	session, err := s.sessionRepository.GetActiveOrderingSession(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionResponse{}, domain.ErrNoActiveSession
		}
		return domain.SessionResponse{}, err
	}
	return toSessionResponse(session.ID.String(), session.StartTime, session.EndTime, session.Status), nil
}

func (s *sessionService) StartOrderingSession(ctx context.Context) (domain.SessionResponse, error) {
	session, err := s.sessionRepository.StartOrderingSession(ctx)
	if err != nil {
		return domain.SessionResponse{}, err
	}

	s.hub.Publish(events.Event{Table: events.TableOrderingSessions, Event: events.EventInsert, RowID: session.ID.String()})
	return toSessionResponse(session.ID.String(), session.StartTime, session.EndTime, session.Status), nil
}

func (s *sessionService) EndOrderingSession(ctx context.Context) error {
	session, err := s.sessionRepository.GetActiveOrderingSession(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoActiveSession
		}
		return err
	}

	if err := s.sessionRepository.EndOrderingSession(ctx, session.ID.String()); err != nil {
		return err
	}

	s.hub.Publish(events.Event{Table: events.TableOrderingSessions, Event: events.EventUpdate, RowID: session.ID.String()})
	return nil
}

func toSessionResponse(id string, startTime time.Time, endTime *time.Time, status string) domain.SessionResponse {
	return domain.SessionResponse{
		ID:        id,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    status,
	}
}
