package vote

import (
	"context"
	"sync"
	"testing"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVoteRepository struct {
	mu          sync.Mutex
	votes       []*entities.UserVote
	restaurants map[uuid.UUID]int
}

func newFakeVoteRepository(restaurantIDs ...uuid.UUID) *fakeVoteRepository {
	restaurants := make(map[uuid.UUID]int, len(restaurantIDs))
	for _, id := range restaurantIDs {
		restaurants[id] = 0
	}
	return &fakeVoteRepository{restaurants: restaurants}
}

func (r *fakeVoteRepository) GetUserVotes(_ context.Context, userID string) ([]*entities.UserVote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entities.UserVote
	for _, v := range r.votes {
		if v.UserID.String() == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ReplaceUserVotes mirrors the real repository: the previous ballot is
// read and the deltas applied under the same lock, so interleaved calls
// cannot both diff against a stale ballot.
func (r *fakeVoteRepository) ReplaceUserVotes(_ context.Context, userID uuid.UUID, votes []*entities.UserVote) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var previous []*entities.UserVote
	for _, v := range r.votes {
		if v.UserID == userID {
			previous = append(previous, v)
		}
	}

	var changed []uuid.UUID
	for restaurantID, delta := range ballotDeltas(previous, votes) {
		if delta == 0 {
			continue
		}
		r.restaurants[restaurantID] += delta
		changed = append(changed, restaurantID)
	}

	kept := r.votes[:0]
	for _, v := range r.votes {
		if v.UserID != userID {
			kept = append(kept, v)
		}
	}
	r.votes = append(kept, votes...)
	return changed, nil
}

func (r *fakeVoteRepository) GetVoteTally(_ context.Context) ([]TallyRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	weighted := make(map[uuid.UUID]int)
	for _, v := range r.votes {
		weighted[v.RestaurantID] += entities.PickWeight(v.Pick)
	}

	var rows []TallyRow
	for id, votes := range r.restaurants {
		rows = append(rows, TallyRow{
			RestaurantID: id,
			Votes:        votes,
			WeightedSum:  weighted[id],
		})
	}
	return rows, nil
}

type fakeSessionRepository struct {
	votingActive   bool
	orderingActive bool
	votingSession  entities.VotingSession
}

func (r *fakeSessionRepository) GetActiveVotingSession(context.Context) (*entities.VotingSession, error) {
	if !r.votingActive {
		return nil, gorm.ErrRecordNotFound
	}
	return &r.votingSession, nil
}

func (r *fakeSessionRepository) StartVotingSession(context.Context) (*entities.VotingSession, error) {
	if r.votingActive {
		return nil, domain.ErrSessionAlreadyActive
	}
	r.votingActive = true
	r.votingSession = entities.VotingSession{ID: uuid.New(), Status: entities.SessionStatusActive}
	return &r.votingSession, nil
}

func (r *fakeSessionRepository) EndVotingSession(context.Context, string) error {
	r.votingActive = false
	return nil
}

func (r *fakeSessionRepository) GetActiveOrderingSession(context.Context) (*entities.OrderingSession, error) {
	if !r.orderingActive {
		return nil, gorm.ErrRecordNotFound
	}
	return &entities.OrderingSession{ID: uuid.New(), Status: entities.SessionStatusActive}, nil
}

func (r *fakeSessionRepository) StartOrderingSession(context.Context) (*entities.OrderingSession, error) {
	if r.orderingActive {
		return nil, domain.ErrSessionAlreadyActive
	}
	r.orderingActive = true
	return &entities.OrderingSession{ID: uuid.New(), Status: entities.SessionStatusActive}, nil
}

func (r *fakeSessionRepository) EndOrderingSession(context.Context, string) error {
	r.orderingActive = false
	return nil
}

func TestSubmitVotesFirstBallot(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b, c)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New().String()

	err := service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick:  a.String(),
		SecondPick: b.String(),
		ThirdPick:  c.String(),
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, voteRepo.restaurants[a])
	assert.Equal(t, 2, voteRepo.restaurants[b])
	assert.Equal(t, 1, voteRepo.restaurants[c])
	assert.Len(t, voteRepo.votes, 3)
}

func TestSubmitVotesPartialBallot(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())

	err := service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: a.String(),
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, 3, voteRepo.restaurants[a])
	assert.Equal(t, 0, voteRepo.restaurants[b])
	assert.Len(t, voteRepo.votes, 1)
}

func TestSubmitVotesMovesWeightOnResubmit(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New().String()

	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: a.String(),
	}, userID))
	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: b.String(),
	}, userID))

	assert.Equal(t, 0, voteRepo.restaurants[a])
	assert.Equal(t, 3, voteRepo.restaurants[b])
	assert.Len(t, voteRepo.votes, 1)
}

func TestSubmitVotesUnchangedPickKeepsWeight(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New().String()

	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick:  a.String(),
		SecondPick: b.String(),
	}, userID))
	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: a.String(),
	}, userID))

	assert.Equal(t, 3, voteRepo.restaurants[a])
	assert.Equal(t, 0, voteRepo.restaurants[b])
}

func TestSubmitVotesLeavesOtherUsersAlone(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	alice := uuid.New().String()
	bob := uuid.New().String()

	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: a.String(),
	}, alice))
	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: b.String(),
	}, bob))
	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: b.String(),
	}, alice))

	// Bob's row survives Alice's resubmission.
	bobVotes, err := voteRepo.GetUserVotes(context.Background(), bob)
	require.NoError(t, err)
	assert.Len(t, bobVotes, 1)
	assert.Equal(t, 6, voteRepo.restaurants[b])
	assert.Equal(t, 0, voteRepo.restaurants[a])
}

func TestSubmitVotesRequiresActiveSession(t *testing.T) {
	voteRepo := newFakeVoteRepository()
	service := NewVoteService(voteRepo, &fakeSessionRepository{}, events.NewHub())

	err := service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: uuid.New().String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNoVotingSession)
}

func TestSubmitVotesRejectsEmptyBallot(t *testing.T) {
	service := NewVoteService(newFakeVoteRepository(), &fakeSessionRepository{votingActive: true}, events.NewHub())

	err := service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNoPickSelected)
}

func TestSubmitVotesRejectsDuplicatePick(t *testing.T) {
	a := uuid.New()
	service := NewVoteService(newFakeVoteRepository(a), &fakeSessionRepository{votingActive: true}, events.NewHub())

	err := service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick:  a.String(),
		SecondPick: a.String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrDuplicatePick)
}

func TestSubmitVotesRapidResubmitKeepsCountersConsistent(t *testing.T) {
	x, y, z := uuid.New(), uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(x, y, z)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New().String()

	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: z.String(),
	}, userID))

	// Two overlapping resubmissions touching different ranks. Whichever
	// lands second must diff against the other's committed ballot, not
	// the original one, or Z gets debited twice and a phantom credit is
	// left behind.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
			FirstPick: x.String(),
		}, userID))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
			SecondPick: y.String(),
		}, userID))
	}()
	wg.Wait()

	tally, err := service.GetVoteTally(context.Background())
	require.NoError(t, err)
	for _, entry := range tally {
		assert.Equal(t, entry.WeightedSum, entry.Votes, "counter drifted from the vote rows")
	}
}

func TestVoteTallyMatchesCounters(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	voteRepo := newFakeVoteRepository(a, b)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())

	for i := 0; i < 4; i++ {
		require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
			FirstPick:  a.String(),
			SecondPick: b.String(),
		}, uuid.New().String()))
	}

	tally, err := service.GetVoteTally(context.Background())
	require.NoError(t, err)
	for _, entry := range tally {
		assert.Equal(t, entry.Votes, entry.WeightedSum, "counter drifted from the vote rows")
	}
}

func TestLoadUserVotesEditableUntilFirstBallot(t *testing.T) {
	a := uuid.New()
	voteRepo := newFakeVoteRepository(a)
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New().String()

	res, err := service.LoadUserVotes(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, res.Editable)

	require.NoError(t, service.SubmitVotes(context.Background(), domain.SubmitVotesRequest{
		FirstPick: a.String(),
	}, userID))

	res, err = service.LoadUserVotes(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, res.Editable)
	assert.Equal(t, a.String(), res.FirstPick)
}

func TestLoadUserVotesRejectsCorruptPick(t *testing.T) {
	voteRepo := newFakeVoteRepository()
	service := NewVoteService(voteRepo, &fakeSessionRepository{votingActive: true}, events.NewHub())
	userID := uuid.New()

	voteRepo.votes = append(voteRepo.votes, &entities.UserVote{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: uuid.New(),
		Pick:         "fourth",
	})

	_, err := service.LoadUserVotes(context.Background(), userID.String())
	assert.ErrorIs(t, err, domain.ErrUnknownPickValue)
}
