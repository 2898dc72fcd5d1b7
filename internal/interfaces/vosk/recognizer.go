package vosk

// VoskRecognizer is the subset of the native Vosk recognizer used by the
// recognizer core. Results are raw JSON documents.
//
//go:generate moq -rm -out recognizer_mock.go . VoskRecognizer
type VoskRecognizer interface {
	AcceptWaveform([]byte) int
	PartialResult() []byte
	Result() []byte
	FinalResult() []byte
	Free()
}
