package google

import (
	"context"
	"log/slog"
	"strings"

	"cloud.google.com/go/speech/apiv2/speechpb"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

//go:generate moq -rm -out response_processor_mock.go . ResponseProcessorInterface
type ResponseProcessorInterface interface {
	Start(ctx context.Context) error
}

var _ ResponseProcessorInterface = (*ResponseProcessor)(nil)

// ResponseProcessor converts streaming responses into results. An interim
// hypothesis still pending when its stream ends is promoted to a final one.
type ResponseProcessor struct {
	responseCh <-chan *speechpb.StreamingRecognizeResponse
	resultCh   chan<- []*model.Result
}

func NewResponseProcessor(
	responseCh <-chan *speechpb.StreamingRecognizeResponse,
	resultCh chan<- []*model.Result,
) *ResponseProcessor {
	return &ResponseProcessor{
		responseCh: responseCh,
		resultCh:   resultCh,
	}
}

func (p *ResponseProcessor) Start(ctx context.Context) error {
	slog.Debug("ResponseProcessor: start")

	var pending string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case resp, ok := <-p.responseCh:
			if !ok {
				return p.promote(ctx, pending)
			}
			if resp == nil {
				if err := p.promote(ctx, pending); err != nil {
					return err
				}
				pending = ""
				continue
			}

			var results []*model.Result
			results, pending = convertResponse(resp, pending)
			if len(results) == 0 {
				continue
			}
			if err := p.publish(ctx, results); err != nil {
				return err
			}
		}
	}
}

func (p *ResponseProcessor) promote(ctx context.Context, pending string) error {
	if pending == "" {
		return nil
	}
	slog.Debug("ResponseProcessor: promoting pending interim result")
	return p.publish(ctx, []*model.Result{model.NewResult(pending, true, nil)})
}

func (p *ResponseProcessor) publish(ctx context.Context, results []*model.Result) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.resultCh <- results:
		return nil
	}
}

// convertResponse returns the results carried by resp and the interim text
// still pending afterwards.
func convertResponse(resp *speechpb.StreamingRecognizeResponse, pending string) ([]*model.Result, string) {
	var (
		results []*model.Result
		interim strings.Builder
	)
	for _, result := range resp.GetResults() {
		if len(result.GetAlternatives()) == 0 {
			continue
		}
		alt := result.GetAlternatives()[0]
		transcript := strings.TrimSpace(alt.GetTranscript())

		if !result.GetIsFinal() {
			interim.WriteString(alt.GetTranscript())
			continue
		}

		pending = ""
		if transcript == "" {
			continue
		}
		results = append(results, model.NewResult(transcript, true, convertWords(alt.GetWords())))
	}

	if s := strings.TrimSpace(interim.String()); s != "" {
		results = append(results, model.NewResult(s, false, nil))
		pending = s
	}
	return results, pending
}

func convertWords(words []*speechpb.WordInfo) []model.Word {
	if len(words) == 0 {
		return nil
	}
	converted := make([]model.Word, 0, len(words))
	for _, w := range words {
		converted = append(converted, model.Word{
			Conf:  float64(w.GetConfidence()),
			Start: w.GetStartOffset().AsDuration().Seconds(),
			End:   w.GetEndOffset().AsDuration().Seconds(),
			Word:  w.GetWord(),
		})
	}
	return converted
}
