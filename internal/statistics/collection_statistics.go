package statistics

import (
	"context"
	"fmt"
	"math"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
)

// CollectionStatistics summarizes the schedule state of one collection.
type CollectionStatistics struct {
	CollectionID string
	Total        int     // items with a ledger record
	DueToday     int     // items due on or before today
	Overdue      int     // items strictly past their due date
	Mastered     int     // items at the top score with ten distinct correct days
	AverageScore float64 // mean canonical score, rounded to one decimal
	ScoreCounts  [mastery.MaxScore + 1]int
}

// Calculate summarizes ledger records as of the given day.
func Calculate(collectionID string, records []ledger.ProgressRecord, today mastery.Date) CollectionStatistics {
	stats := CollectionStatistics{
		CollectionID: collectionID,
		Total:        len(records),
	}
	if len(records) == 0 {
		return stats
	}

	scoreSum := 0
	for _, record := range records {
		item := record.Item()
		if item.IsDue(today) {
			stats.DueToday++
		}
		if item.IsOverdue(today) {
			stats.Overdue++
		}
		if item.Mastered() {
			stats.Mastered++
		}
		scoreSum += item.Score
		if item.Score >= 0 && item.Score <= mastery.MaxScore {
			stats.ScoreCounts[item.Score]++
		}
	}
	stats.AverageScore = math.Round(float64(scoreSum)/float64(len(records))*10) / 10
	return stats
}

// Service computes statistics from the progress ledger.
type Service struct {
	progressRepo ledger.ProgressRepository
}

func NewService(progressRepo ledger.ProgressRepository) *Service {
	return &Service{progressRepo: progressRepo}
}

func (s *Service) ForCollection(ctx context.Context, collectionID string, today mastery.Date) (CollectionStatistics, error) {
	records, err := s.progressRepo.List(ctx, collectionID)
	if err != nil {
		return CollectionStatistics{}, fmt.Errorf("progressRepo.List(%s) > %w", collectionID, err)
	}
	return Calculate(collectionID, records, today), nil
}
