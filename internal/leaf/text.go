package leaf

import (
	"strings"

	"github.com/goliatone/go-forgery/pkg/rng"
)

// Default parameters for the bare "sentence", "paragraph" and "text" kinds.
const (
	DefaultSentenceWords      = 10
	DefaultParagraphSentences = 5
	DefaultTextMinChars       = 50
	DefaultTextMaxChars       = 200
)

// Sentence builds wordCount lorem words, capitalised and period-terminated.
func Sentence(src *rng.Source, wordCount int) string {
	if wordCount <= 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < wordCount; i++ {
		word := pick(src, loremWords)
		if i == 0 {
			sb.WriteString(capitalize(word))
		} else {
			sb.WriteByte(' ')
			sb.WriteString(word)
		}
	}
	sb.WriteByte('.')
	return sb.String()
}

// Paragraph joins sentenceCount sentences of 5-15 words each.
func Paragraph(src *rng.Source, sentenceCount int) string {
	if sentenceCount <= 0 {
		return ""
	}
	sentences := make([]string, 0, sentenceCount)
	for i := 0; i < sentenceCount; i++ {
		words := int(src.Int64Range(5, 15))
		sentences = append(sentences, Sentence(src, words))
	}
	return strings.Join(sentences, " ")
}

// Text builds lorem text whose length lands in [minChars, maxChars]: a target
// length is drawn from the range, words accumulate past it, and the result is
// cut at exactly the target.
func Text(src *rng.Source, minChars, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	target := maxChars
	if minChars < maxChars {
		target = int(src.Int64Range(int64(minChars), int64(maxChars)))
	}
	if target <= 0 {
		return ""
	}

	var sb strings.Builder
	first := true
	for sb.Len() < target {
		if !first {
			sb.WriteByte(' ')
		}
		word := pick(src, loremWords)
		if first {
			word = capitalize(word)
			first = false
		}
		sb.WriteString(word)
	}
	return sb.String()[:target]
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
