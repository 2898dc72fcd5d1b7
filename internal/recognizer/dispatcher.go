package recognizer

import (
	"context"
	"log/slog"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

// ResultHandler receives recognition results in the order the engine
// produced them.
//
//go:generate moq -rm -out result_handler_mock.go . ResultHandler
type ResultHandler interface {
	OnPartial(result *model.Result)
	OnFinal(result *model.Result)
}

// ResultDispatcher drains a result channel into a ResultHandler.
type ResultDispatcher struct {
	resultCh <-chan []*model.Result
	handler  ResultHandler
}

func NewResultDispatcher(resultCh <-chan []*model.Result, handler ResultHandler) *ResultDispatcher {
	return &ResultDispatcher{
		resultCh: resultCh,
		handler:  handler,
	}
}

// Start returns nil once the result channel is closed.
func (d *ResultDispatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results, ok := <-d.resultCh:
			if !ok {
				slog.Debug("ResultDispatcher: result channel closed")
				return nil
			}
			for _, result := range results {
				if result.IsFinal {
					d.handler.OnFinal(result)
				} else {
					d.handler.OnPartial(result)
				}
			}
		}
	}
}
