package vote

import (
	"context"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// TallyRow pairs a restaurant's stored vote counter with the weighted
	// sum recomputed from the user_votes rows that reference it.
	TallyRow struct {
		RestaurantID   uuid.UUID
		RestaurantName string
		Votes          int
		WeightedSum    int
	}

	VoteRepository interface {
		GetUserVotes(ctx context.Context, userID string) ([]*entities.UserVote, error)
		ReplaceUserVotes(ctx context.Context, userID uuid.UUID, votes []*entities.UserVote) ([]uuid.UUID, error)
		GetVoteTally(ctx context.Context) ([]TallyRow, error)
	}

	voteRepository struct {
		db *gorm.DB
	}
)

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) GetUserVotes(ctx context.Context, userID string) ([]*entities.UserVote, error) {
	var votes []*entities.UserVote
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// ReplaceUserVotes swaps the caller's vote rows for the new ballot and
// adjusts the restaurants' vote counters by the rank-weight difference,
// all inside one transaction. The previous ballot is read under FOR
// UPDATE and the deltas are computed against it inside the transaction,
// so two rapid submissions by the same user serialize instead of both
// debiting against the same stale ballot. Counter updates are relative
// (votes = votes + delta) so concurrent submissions from different users
// cannot lose each other's points. Returns the restaurants whose
// counters changed.
func (r *voteRepository) ReplaceUserVotes(ctx context.Context, userID uuid.UUID, votes []*entities.UserVote) ([]uuid.UUID, error) {
	var changed []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous []*entities.UserVote
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Find(&previous).Error; err != nil {
			return err
		}

		for restaurantID, delta := range ballotDeltas(previous, votes) {
			if delta == 0 {
				continue
			}
			if err := tx.Model(&entities.Restaurant{}).
				Where("id = ?", restaurantID).
				Update("votes", gorm.Expr("votes + ?", delta)).Error; err != nil {
				return err
			}
			changed = append(changed, restaurantID)
		}

		// Scoped to the submitting user only.
		if err := tx.Where("user_id = ?", userID).Delete(&entities.UserVote{}).Error; err != nil {
			return err
		}

		if len(votes) > 0 {
			if err := tx.Create(votes).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// ballotDeltas computes per-restaurant counter adjustments between one
// user's previous and next ballot. A rank whose restaurant is unchanged
// contributes nothing.
func ballotDeltas(previous, next []*entities.UserVote) map[uuid.UUID]int {
	prevByPick := make(map[string]uuid.UUID, len(previous))
	for _, v := range previous {
		prevByPick[v.Pick] = v.RestaurantID
	}
	nextByPick := make(map[string]uuid.UUID, len(next))
	for _, v := range next {
		nextByPick[v.Pick] = v.RestaurantID
	}

	deltas := make(map[uuid.UUID]int)
	for _, pick := range []string{entities.PickFirst, entities.PickSecond, entities.PickThird} {
		weight := entities.PickWeight(pick)
		prevID, hadPrev := prevByPick[pick]
		nextID, hasNext := nextByPick[pick]

		switch {
		case hadPrev && hasNext && prevID != nextID:
			deltas[nextID] += weight
			deltas[prevID] -= weight
		case hadPrev && !hasNext:
			deltas[prevID] -= weight
		case !hadPrev && hasNext:
			deltas[nextID] += weight
		}
	}
	return deltas
}

func (r *voteRepository) GetVoteTally(ctx context.Context) ([]TallyRow, error) {
	var rows []TallyRow

	query := `
		SELECT r.id AS restaurant_id,
		       r.name AS restaurant_name,
		       r.votes AS votes,
		       COALESCE(SUM(CASE uv.pick
		           WHEN 'first' THEN 3
		           WHEN 'second' THEN 2
		           WHEN 'third' THEN 1
		           ELSE 0
		       END), 0) AS weighted_sum
		FROM restaurants r
		LEFT JOIN user_votes uv ON uv.restaurant_id = r.id
		GROUP BY r.id, r.name, r.votes
		ORDER BY r.votes DESC
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
