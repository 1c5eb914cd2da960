package workers

import (
	"context"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
)

type SaveScoreWorker struct {
	repository    repositories.Repository
	saveScoreChan <-chan SaveScoreRequest
}

type NewSaveScoreWorkerOptions struct {
	Repository    repositories.Repository
	SaveScoreChan <-chan SaveScoreRequest
}

// SaveScoreRequest is sent when a game ends.
type SaveScoreRequest struct {
	Name string
	// Snapshot is the final state of the session
	Snapshot *types.Snapshot
}

// NewSaveScoreWorker creates a new SaveScoreWorker.
// The worker stores finished games so that the engine never waits on storage.
func NewSaveScoreWorker(opts NewSaveScoreWorkerOptions) *SaveScoreWorker {
	return &SaveScoreWorker{
		repository:    opts.Repository,
		saveScoreChan: opts.SaveScoreChan,
	}
}

func (w *SaveScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest, ok := <-w.saveScoreChan:
			if !ok {
				return
			}
			w.saveScore(ctx, saveRequest)
		}
	}
}

func (w *SaveScoreWorker) saveScore(ctx context.Context, saveRequest SaveScoreRequest) {
	if saveRequest.Snapshot == nil {
		log.Error("Failed to save score: missing snapshot")
		return
	}
	snapshot := saveRequest.Snapshot

	record := &repositories.ScoreRecord{
		Name:  saveRequest.Name,
		Score: snapshot.Score,
		Level: snapshot.Level,
		Lines: snapshot.Lines,
		Mode:  snapshot.Mode,
	}
	board, err := messages.SerializeSnapshot(snapshot)
	if err != nil {
		// the score is still worth keeping
		log.Warn("Failed to serialize final board: %v", err)
	} else {
		record.Board = board
	}

	if err := w.repository.SaveScore(ctx, record); err != nil {
		log.Error("Failed to save score: %v", err)
		return
	}
	log.Info("Saved score %d for %s", record.Score, record.Name)
}
