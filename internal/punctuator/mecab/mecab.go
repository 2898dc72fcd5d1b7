// Package mecab punctuates space-separated Japanese transcripts using the
// part of speech of the words around each space.
package mecab

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shogo82148/go-mecab"

	mymecab "github.com/uts/vosk-transcriber/internal/interfaces/mecab"
	"github.com/uts/vosk-transcriber/internal/punctuator"
)

// IPADIC part-of-speech labels.
const (
	posNoun         = "名詞"
	posVerb         = "動詞"
	posAdjective    = "形容詞"
	posAdverb       = "副詞"
	posParticle     = "助詞"
	posAuxVerb      = "助動詞"
	posInterjection = "感動詞"
	posFiller       = "フィラー"
	posPrefix       = "接頭詞"
	posSymbol       = "記号"
	posAdnominal    = "連体詞"

	subFinalParticle       = "終助詞"
	subDependent           = "非自立"
	subSuffix              = "接尾"
	subBindingParticle     = "係助詞"
	subParticleConnection  = "助詞類接続"
	subAdnominalization    = "連体化"
	subConjunctiveParticle = "接続助詞"

	formBasic = "基本形"
)

const (
	period = "。"
	comma  = "、"
	space  = " "
)

type node struct {
	surface  string
	part     string
	partType string
	form     string
}

var _ punctuator.PunctuatorInterface = (*MecabPunctuator)(nil)

// MecabPunctuator is safe for concurrent use; calls are serialized because a
// MeCab tagger is not.
type MecabPunctuator struct {
	mecab mymecab.MeCab

	mu      sync.Mutex
	builder strings.Builder
}

func NewMecabPunctuator(mecab mymecab.MeCab) (*MecabPunctuator, error) {
	if mecab == nil {
		return nil, fmt.Errorf("mecab must be specified")
	}
	return &MecabPunctuator{mecab: mecab}, nil
}

// Open creates a tagger on dictionary (or the default one when empty) and a
// punctuator using it. The returned func destroys the tagger.
func Open(dictionary string) (*MecabPunctuator, func(), error) {
	args := map[string]string{}
	if dictionary != "" {
		args["dicdir"] = dictionary
	}
	m, err := mecab.New(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mecab tagger: %w", err)
	}
	// Work around a go-mecab issue where the first ParseToNode result is lost.
	if _, err := m.Parse(""); err != nil {
		m.Destroy()
		return nil, nil, fmt.Errorf("failed to initialize mecab tagger: %w", err)
	}

	p, err := NewMecabPunctuator(m)
	if err != nil {
		m.Destroy()
		return nil, nil, err
	}
	return p, m.Destroy, nil
}

// Punctuate replaces each space of sentence with a period, a comma, a space,
// or nothing, depending on the words on either side.
func (p *MecabPunctuator) Punctuate(sentence string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	mecabNode, err := p.mecab.ParseToNode(sentence)
	if err != nil {
		return "", fmt.Errorf("failed to parse sentence: %w", err)
	}

	p.builder.Reset()
	prevNode := node{}
	// The first node is the surfaceless beginning-of-sentence node.
	for n := mecabNode.Next(); n.Stat() == mecab.NormalNode || n.Stat() == mecab.UnknownNode; n = n.Next() {
		node, hasSpace := parseNode(&n)
		if hasSpace {
			p.builder.WriteString(getPunctuation(prevNode, node))
		}

		prevNode = node
		p.builder.WriteString(node.surface)
	}

	return p.builder.String(), nil
}

func parseNode(n *mecab.Node) (node, bool) {
	// Length excludes leading whitespace, RLength includes it.
	hasSpace := n.Length() < n.RLength()

	fs := strings.Split(n.Feature(), ",")
	field := func(i int) string {
		if i < len(fs) {
			return fs[i]
		}
		return ""
	}
	return node{
		surface:  n.Surface(),
		part:     field(0),
		partType: field(1),
		form:     field(5),
	}, hasSpace
}

func getPunctuation(prev, next node) (p string) {
	if prev.partType == subFinalParticle {
		if next.part != posParticle {
			return period
		}
		if next.partType == subFinalParticle {
			return
		}
	}

	if prev.part == posVerb || prev.part == posAdjective || prev.part == posParticle {
		if prev.form == formBasic &&
			prev.partType != subDependent &&
			next.partType != subDependent &&
			next.part != posNoun &&
			next.part != posParticle &&
			next.part != posAuxVerb {
			return period
		}
	}

	if next.part == posFiller || prev.part == posFiller {
		return comma
	}

	if prev.part == posInterjection {
		return comma
	}

	// e.g. まあ年一回二回ぐらいがちょうどいいのでは[ ]ちょっと２年たったって思わなかったでしょ
	if prev.partType == subBindingParticle && next.partType == subParticleConnection {
		return space
	}
	// e.g. コラボウィークっていうのをやってて[ ]その中の何か三日目か四日目
	if next.part == posAdnominal {
		return comma
	}

	switch prev.part {
	case posNoun:
		if next.part == posVerb || next.part == posNoun {
			return
		}
	case posAdverb:
		if next.part == posNoun {
			return
		}
	case posVerb:
		if next.part == posVerb {
			return
		}
	case posAdjective, posPrefix, posSymbol:
		return
	}

	switch next.part {
	case posNoun:
		if next.partType == subSuffix {
			return
		}
	case posVerb, posParticle, posAuxVerb, posSymbol:
		return
	}

	switch prev.partType {
	case subDependent, subParticleConnection, subAdnominalization, subBindingParticle:
		return
	case subConjunctiveParticle:
		if next.part != posAdjective && next.part != posAdverb && next.part != posNoun {
			return
		}
	}

	if next.partType == subDependent {
		return
	}

	return space
}
