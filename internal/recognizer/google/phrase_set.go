package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/speech/apiv2/speechpb"
)

const (
	unknownWord = "[unk]"
	maxBoost    = 20
)

// PhraseSet biases recognition towards a list of phrases.
type PhraseSet struct {
	Phrases []string
	Boost   float32
}

// ParsePhraseSet reads a JSON list of phrases, the grammar format of the Vosk
// engines. Blank entries, duplicates and "[unk]" are dropped.
func ParsePhraseSet(grammar string, boost float32) (*PhraseSet, error) {
	if boost < 0 || boost > maxBoost {
		return nil, fmt.Errorf("phrase boost must be between 0 and %d", maxBoost)
	}
	var raw []string
	if err := json.Unmarshal([]byte(grammar), &raw); err != nil {
		return nil, fmt.Errorf("grammar must be a JSON list of phrases: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	phrases := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" || p == unknownWord || seen[p] {
			continue
		}
		seen[p] = true
		phrases = append(phrases, p)
	}
	if len(phrases) == 0 {
		return nil, errors.New("grammar has no phrases")
	}
	return &PhraseSet{Phrases: phrases, Boost: boost}, nil
}

// toProto builds an inline adaptation, so no phrase set resource has to exist
// in the project.
func (p *PhraseSet) toProto() *speechpb.SpeechAdaptation {
	phrases := make([]*speechpb.PhraseSet_Phrase, 0, len(p.Phrases))
	for _, v := range p.Phrases {
		phrases = append(phrases, &speechpb.PhraseSet_Phrase{Value: v})
	}
	return &speechpb.SpeechAdaptation{
		PhraseSets: []*speechpb.SpeechAdaptation_AdaptationPhraseSet{
			{
				Value: &speechpb.SpeechAdaptation_AdaptationPhraseSet_InlinePhraseSet{
					InlinePhraseSet: &speechpb.PhraseSet{
						Phrases: phrases,
						Boost:   p.Boost,
					},
				},
			},
		},
	}
}
