package google

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/speech/apiv2/speechpb"

	myspeechpb "github.com/uts/vosk-transcriber/internal/interfaces/speechpb"
)

func TestResponseReceiver_Start(t *testing.T) {
	t.Run("reads streams in order", func(t *testing.T) {
		resp1 := response("one", true)
		resp2 := response("two", true)

		receiveStreamCh := make(chan speechpb.Speech_StreamingRecognizeClient, 2)
		receiveStreamCh <- newRecordingStream(resp1)
		receiveStreamCh <- newRecordingStream(resp2)
		close(receiveStreamCh)

		responseCh := make(chan *speechpb.StreamingRecognizeResponse, 4)
		r := NewResponseReceiver(responseCh, receiveStreamCh)

		if err := r.Start(context.Background()); err != nil {
			t.Fatalf("ResponseReceiver.Start() error = %v, want nil", err)
		}

		var got []*speechpb.StreamingRecognizeResponse
		for resp := range responseCh {
			got = append(got, resp)
		}
		want := []*speechpb.StreamingRecognizeResponse{resp1, nil, resp2, nil}
		if len(got) != len(want) {
			t.Fatalf("received %d responses, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("response[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("receive error", func(t *testing.T) {
		errRecv := errors.New("broken stream")
		stream := &myspeechpb.Speech_StreamingRecognizeClientMock{
			RecvFunc: func() (*speechpb.StreamingRecognizeResponse, error) {
				return nil, errRecv
			},
		}
		receiveStreamCh := make(chan speechpb.Speech_StreamingRecognizeClient, 1)
		receiveStreamCh <- stream
		r := NewResponseReceiver(make(chan *speechpb.StreamingRecognizeResponse), receiveStreamCh)

		if err := r.Start(context.Background()); !errors.Is(err, errRecv) {
			t.Errorf("ResponseReceiver.Start() error = %v, want %v", err, errRecv)
		}
	})
}
