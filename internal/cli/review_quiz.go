// Package cli implements the interactive review session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/k-yamanaka/studycards/internal/collection"
	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
	"github.com/k-yamanaka/studycards/internal/review"
)

var errEnd = errors.New("no more cards")

// ReviewQuizCLI manages one interactive review session over a collection's
// due cards.
type ReviewQuizCLI struct {
	collectionID string
	cards        map[int64]collection.Card
	session      *review.Session
	queue        []review.Candidate

	answered     int
	correctCount int

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewReviewQuizCLI loads the collection's cards, applies the overdue decay
// pass, and selects up to limit due cards for the session. Cards without a
// ledger record count as due immediately.
func NewReviewQuizCLI(
	ctx context.Context,
	collections collection.CollectionRepository,
	progressRepo ledger.ProgressRepository,
	collectionID string,
	limit int,
	rng *rand.Rand,
	stdin io.Reader,
	stdout io.Writer,
) (*ReviewQuizCLI, error) {
	cards, err := collections.ListCards(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collections.ListCards(%s) > %w", collectionID, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("collection %q has no cards", collectionID)
	}

	today := mastery.Today()
	session := review.NewSession(progressRepo, collectionID, today)

	decayed, err := session.DecayOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.DecayOverdue() > %w", err)
	}
	if decayed > 0 {
		fmt.Fprintf(stdout, "%d overdue cards lost a little mastery while you were away.\n", decayed)
	}

	records, err := progressRepo.List(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("progressRepo.List(%s) > %w", collectionID, err)
	}

	cardsByPosition := make(map[int64]collection.Card, len(cards))
	for _, card := range cards {
		cardsByPosition[card.Position] = card
	}

	tracked := make(map[int64]struct{}, len(records))
	pool := make([]review.Candidate, 0, len(cards))
	for _, record := range records {
		tracked[record.ItemIndex] = struct{}{}
		if _, ok := cardsByPosition[record.ItemIndex]; !ok {
			continue
		}
		item := record.Item()
		if !item.IsDue(today) {
			continue
		}
		pool = append(pool, review.Candidate{Key: record.ItemIndex, Item: item})
	}
	// Cards never answered have no ledger record yet and start due.
	for position := range cardsByPosition {
		if _, ok := tracked[position]; !ok {
			pool = append(pool, review.Candidate{Key: position, Item: mastery.NewItem()})
		}
	}

	return &ReviewQuizCLI{
		collectionID: collectionID,
		cards:        cardsByPosition,
		session:      session,
		queue:        review.SelectForReview(pool, limit, rng),
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}, nil
}

// CardCount returns the number of cards left in the session.
func (cli *ReviewQuizCLI) CardCount() int {
	return len(cli.queue)
}

// Session asks one card and records the answer. It returns errEnd when the
// queue is exhausted.
func (cli *ReviewQuizCLI) Session(ctx context.Context) error {
	if len(cli.queue) == 0 {
		fmt.Fprintf(cli.stdoutWriter, "Session finished: %d/%d correct.\n", cli.correctCount, cli.answered)
		return errEnd
	}
	candidate := cli.queue[0]
	card := cli.cards[candidate.Key]

	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s", card.Front)
	fmt.Fprint(cli.stdoutWriter, ": ")

	userAnswer, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("stdinReader.ReadString() > %w", err)
	}

	correct := normalizeAnswer(userAnswer) == normalizeAnswer(card.Back)
	next, err := cli.session.RecordAnswer(ctx, candidate.Key, correct)
	if err != nil {
		return fmt.Errorf("session.RecordAnswer(%d) > %w", candidate.Key, err)
	}

	cli.answered++
	if correct {
		cli.correctCount++
		fmt.Fprintf(cli.stdoutWriter, "Correct! Mastery %d/%d, next review in %.0f days.\n",
			next.Score, mastery.MaxScore, next.IntervalDays)
	} else {
		fmt.Fprint(cli.stdoutWriter, "Wrong. The answer is ")
		_, _ = cli.italic.Fprintf(cli.stdoutWriter, "%s", card.Back)
		fmt.Fprintln(cli.stdoutWriter, ". It comes back tomorrow.")
	}

	cli.queue = cli.queue[1:]
	return nil
}

// Run drives the session loop until the queue is exhausted or the user
// interrupts.
func (cli *ReviewQuizCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// normalizeAnswer compares answers ignoring case and surrounding or repeated
// whitespace.
func normalizeAnswer(answer string) string {
	return strings.Join(strings.Fields(strings.ToLower(answer)), " ")
}
