package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is a single hypothesis returned by a recognition engine.
type Result struct {
	Transcript string
	IsFinal    bool
	// Raw is the JSON document as produced by the engine. Engines that do not
	// speak the Vosk format synthesise an equivalent document.
	Raw   []byte
	Words []Word
}

// Word is a word timing entry of a final hypothesis.
type Word struct {
	Conf  float64 `json:"conf"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// Hypothesis is the JSON document exchanged with Vosk.
type Hypothesis struct {
	Partial string `json:"partial,omitempty"`
	Text    string `json:"text,omitempty"`
	Result  []Word `json:"result,omitempty"`
}

// ParsePartial decodes a partial hypothesis such as {"partial":"hello"}.
func ParsePartial(data []byte) (*Result, error) {
	var h Hypothesis
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse partial result: %w", err)
	}
	return &Result{
		Transcript: strings.TrimSpace(h.Partial),
		IsFinal:    false,
		Raw:        data,
	}, nil
}

// ParseFinal decodes a final hypothesis such as {"text":"hello","result":[...]}.
func ParseFinal(data []byte) (*Result, error) {
	var h Hypothesis
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}
	return &Result{
		Transcript: strings.TrimSpace(h.Text),
		IsFinal:    true,
		Raw:        data,
		Words:      h.Result,
	}, nil
}

// NewResult builds a Result and its Vosk-shaped raw document for engines that
// report plain transcripts.
func NewResult(transcript string, isFinal bool, words []Word) *Result {
	h := Hypothesis{Result: words}
	if isFinal {
		h.Text = transcript
	} else {
		h.Partial = transcript
	}
	// Marshalling a struct of strings and floats cannot fail.
	raw, _ := json.Marshal(h)
	return &Result{
		Transcript: transcript,
		IsFinal:    isFinal,
		Raw:        raw,
		Words:      words,
	}
}
