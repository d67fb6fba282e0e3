package usecase

import (
	"context"

	"github.com/jonreiter/govader"
)

// sentimentSampleSize caps how many headlines feed one sentiment score.
const sentimentSampleSize = 20

// SentimentUsecase averages a lexicon compound score over recent headline
// text for one symbol. The analyzer is treated as an opaque text -> score
// function.
type SentimentUsecase struct {
	news     *NewsUsecase
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentUsecase creates a SentimentUsecase backed by a VADER
// analyzer.
func NewSentimentUsecase(news *NewsUsecase) *SentimentUsecase {
	return &SentimentUsecase{
		news:     news,
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score returns the average compound score over recent headline+summary
// text, roughly in [-1, 1]. No headlines means a neutral 0.0, not an error.
func (u *SentimentUsecase) Score(ctx context.Context, symbol string) float64 {
	items := u.news.SymbolNews(ctx, symbol)
	if len(items) > sentimentSampleSize {
		items = items[:sentimentSampleSize]
	}

	var sum float64
	var n int
	for _, item := range items {
		text := item.Title
		if item.Summary != "" {
			text += ". " + item.Summary
		}
		if text == "" {
			continue
		}
		sum += u.analyzer.PolarityScores(text).Compound
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}
