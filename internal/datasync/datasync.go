// Package datasync moves progress ledgers between YAML archives and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
)

// ProgressArchive is the YAML document holding one collection's ledger.
type ProgressArchive struct {
	Collection string        `yaml:"collection"`
	ExportedOn mastery.Date  `yaml:"exported_on,omitempty"`
	Items      []ArchiveItem `yaml:"items"`
}

// ArchiveItem is one ledger row in archive form.
type ArchiveItem struct {
	Index         int64        `yaml:"index"`
	Score         int          `yaml:"score"`
	IntervalDays  float64      `yaml:"interval_days"`
	DueOn         mastery.Date `yaml:"due_on,omitempty"`
	Streak        int          `yaml:"streak,omitempty"`
	CorrectDays   int          `yaml:"correct_days,omitempty"`
	LastCorrectOn mastery.Date `yaml:"last_correct_on,omitempty"`
}

// ImportResult tracks counts for one import run.
type ImportResult struct {
	New     int
	Updated int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
	// MarkPending queues imported items for the next upload.
	MarkPending bool
}

// Exporter writes a collection's ledger as a YAML archive.
type Exporter struct {
	progressRepo ledger.ProgressRepository
}

// NewExporter creates a new Exporter.
func NewExporter(progressRepo ledger.ProgressRepository) *Exporter {
	return &Exporter{progressRepo: progressRepo}
}

// Export writes every ledger row of the collection, ordered by item index.
func (exp *Exporter) Export(ctx context.Context, collectionID string, today mastery.Date, writer io.Writer) error {
	records, err := exp.progressRepo.List(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("progressRepo.List(%s) > %w", collectionID, err)
	}

	archive := ProgressArchive{
		Collection: collectionID,
		ExportedOn: today,
		Items:      make([]ArchiveItem, 0, len(records)),
	}
	for _, record := range records {
		item := record.Item()
		archive.Items = append(archive.Items, ArchiveItem{
			Index:         record.ItemIndex,
			Score:         item.Score,
			IntervalDays:  item.IntervalDays,
			DueOn:         item.Due,
			Streak:        item.Streak,
			CorrectDays:   item.CorrectDays,
			LastCorrectOn: item.LastCorrectOn,
		})
	}
	sort.Slice(archive.Items, func(i, j int) bool {
		return archive.Items[i].Index < archive.Items[j].Index
	})

	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(archive); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}

// Importer reads a YAML archive and writes it into the ledger.
type Importer struct {
	progressRepo ledger.ProgressRepository
	writer       io.Writer
}

// NewImporter creates a new Importer. Progress messages go to writer.
func NewImporter(progressRepo ledger.ProgressRepository, writer io.Writer) *Importer {
	return &Importer{
		progressRepo: progressRepo,
		writer:       writer,
	}
}

// Import merges an archive into the ledger as one batch. Existing rows are
// skipped unless UpdateExisting is set; a dry run only reports what would
// change.
func (imp *Importer) Import(ctx context.Context, reader io.Reader, opts ImportOptions) (*ImportResult, error) {
	var archive ProgressArchive
	if err := yaml.NewDecoder(reader).Decode(&archive); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	if archive.Collection == "" {
		return nil, fmt.Errorf("archive has no collection id")
	}

	existing := make(map[int64]struct{})
	records, err := imp.progressRepo.List(ctx, archive.Collection)
	if err != nil {
		return nil, fmt.Errorf("progressRepo.List(%s) > %w", archive.Collection, err)
	}
	for _, record := range records {
		existing[record.ItemIndex] = struct{}{}
	}

	var result ImportResult
	batch := make(map[int64]mastery.Item, len(archive.Items))
	for _, archiveItem := range archive.Items {
		if archiveItem.Score < mastery.MinScore || archiveItem.Score > mastery.MaxScore {
			return nil, fmt.Errorf("item %d has score %d outside [%d, %d]",
				archiveItem.Index, archiveItem.Score, mastery.MinScore, mastery.MaxScore)
		}

		_, exists := existing[archiveItem.Index]
		if exists && !opts.UpdateExisting {
			result.Skipped++
			continue
		}
		if exists {
			result.Updated++
		} else {
			result.New++
		}

		interval := archiveItem.IntervalDays
		if interval <= 0 {
			interval = mastery.IntervalForScore(archiveItem.Score)
		}
		batch[archiveItem.Index] = mastery.Item{
			Score:         archiveItem.Score,
			IntervalDays:  interval,
			Due:           archiveItem.DueOn,
			Streak:        archiveItem.Streak,
			CorrectDays:   archiveItem.CorrectDays,
			LastCorrectOn: archiveItem.LastCorrectOn,
		}
	}

	if opts.DryRun {
		fmt.Fprintf(imp.writer, "dry run: would import %d new and %d updated items into %s (%d skipped)\n",
			result.New, result.Updated, archive.Collection, result.Skipped)
		return &result, nil
	}
	if len(batch) == 0 {
		fmt.Fprintf(imp.writer, "nothing to import into %s (%d skipped)\n", archive.Collection, result.Skipped)
		return &result, nil
	}

	if err := imp.progressRepo.PutBatch(ctx, archive.Collection, batch); err != nil {
		return nil, fmt.Errorf("progressRepo.PutBatch(%s) > %w", archive.Collection, err)
	}
	if opts.MarkPending {
		for index := range batch {
			if err := imp.progressRepo.MarkDirty(ctx, archive.Collection, index); err != nil {
				return nil, fmt.Errorf("progressRepo.MarkDirty(%s, %d) > %w", archive.Collection, index, err)
			}
		}
	}

	fmt.Fprintf(imp.writer, "imported %d new and %d updated items into %s (%d skipped)\n",
		result.New, result.Updated, archive.Collection, result.Skipped)
	return &result, nil
}
