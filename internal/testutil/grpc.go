package testutil

import (
	"context"
	"net"
	"testing"

	speech "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	myspeech "github.com/uts/vosk-transcriber/internal/interfaces/speech"
)

// MockSpeechClient returns a real speech client connected in memory to
// server. Everything is torn down when the test ends.
func MockSpeechClient(t *testing.T, ctx context.Context, server speechpb.SpeechServer) myspeech.Client {
	t.Helper()

	l := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { l.Close() })

	s := grpc.NewServer()
	speechpb.RegisterSpeechServer(s, server)

	go s.Serve(l)
	t.Cleanup(func() { s.Stop() })

	conn, err := grpc.NewClient(
		// passthrough skips the default dns resolver
		"passthrough://bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return l.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	client, err := speech.NewClient(ctx, option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}
