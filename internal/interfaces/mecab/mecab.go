package mecab

import "github.com/shogo82148/go-mecab"

// MeCab is the part of mecab.MeCab used by the punctuator.
//
//go:generate moq -rm -out mecab_mock.go . MeCab
type MeCab interface {
	ParseToNode(string) (mecab.Node, error)
}

var _ MeCab = mecab.MeCab{}
