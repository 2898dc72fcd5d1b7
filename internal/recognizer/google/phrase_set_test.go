package google

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePhraseSet(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		boost   float32
		want    *PhraseSet
		wantErr bool
	}{
		{
			name:    "success",
			grammar: `["turn on", "turn off"]`,
			boost:   10,
			want:    &PhraseSet{Phrases: []string{"turn on", "turn off"}, Boost: 10},
		},
		{
			name:    "drops unknown word, blanks and duplicates",
			grammar: `["yes", " ", "[unk]", "no", "yes"]`,
			boost:   5,
			want:    &PhraseSet{Phrases: []string{"yes", "no"}, Boost: 5},
		},
		{name: "not a list", grammar: `{"yes":1}`, boost: 5, wantErr: true},
		{name: "only unknown word", grammar: `["[unk]"]`, boost: 5, wantErr: true},
		{name: "boost too large", grammar: `["yes"]`, boost: 21, wantErr: true},
		{name: "negative boost", grammar: `["yes"]`, boost: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhraseSet(tt.grammar, tt.boost)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePhraseSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("ParsePhraseSet() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestPhraseSet_toProto(t *testing.T) {
	p := &PhraseSet{Phrases: []string{"yes", "no"}, Boost: 8}
	adaptation := p.toProto()

	sets := adaptation.GetPhraseSets()
	if len(sets) != 1 {
		t.Fatalf("got %d phrase sets, want 1", len(sets))
	}
	inline := sets[0].GetInlinePhraseSet()
	if inline.GetBoost() != 8 {
		t.Errorf("boost = %v, want 8", inline.GetBoost())
	}
	var got []string
	for _, phrase := range inline.GetPhrases() {
		got = append(got, phrase.GetValue())
	}
	if diff := cmp.Diff(got, []string{"yes", "no"}); diff != "" {
		t.Errorf("phrases mismatch (-got +want):\n%s", diff)
	}
}
