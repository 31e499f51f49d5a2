// Package classify assigns source documents to ledger categories from
// filename and column-header keywords. Every keyword hit is scored and the
// highest-scoring category wins; ties and zero scores come back unknown
// instead of a silent first-match guess.
package classify

import (
	"strings"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

// DefaultKeywords are the built-in per-category keyword lists.
func DefaultKeywords() map[model.Category][]string {
	return map[model.Category][]string{
		model.CategorySales:        {"sales", "revenue", "invoice", "customer", "debtor"},
		model.CategoryPurchase:     {"purchase", "vendor", "supplier", "cost", "creditor"},
		model.CategoryBank:         {"bank", "statement", "balance b/f", "withdrawal", "deposit"},
		model.CategoryTrialBalance: {"trial balance", "opening balance", "closing balance", "ledger"},
	}
}

// Result carries the winning category together with every category's score,
// so ambiguous inputs can be inspected instead of silently guessed.
type Result struct {
	Category model.Category
	Scores   map[model.Category]int
}

// Classifier scores documents against per-category keyword lists.
type Classifier struct {
	keywords map[model.Category][]string
}

// New creates a Classifier. Nil or empty keyword sets fall back to the
// built-in defaults per category.
func New(keywords map[model.Category][]string) *Classifier {
	kw := DefaultKeywords()
	for cat, list := range keywords {
		if len(list) > 0 {
			kw[cat] = list
		}
	}
	return &Classifier{keywords: kw}
}

// Classify scores the filename and headers against every category's
// keywords. The highest total wins; a tie for the top score, or no hits at
// all, yields CategoryUnknown.
func (c *Classifier) Classify(filename string, headers []string) Result {
	haystacks := make([]string, 0, len(headers)+1)
	haystacks = append(haystacks, strings.ToLower(filename))
	for _, h := range headers {
		haystacks = append(haystacks, strings.ToLower(h))
	}

	scores := make(map[model.Category]int, len(c.keywords))
	for cat, words := range c.keywords {
		for _, w := range words {
			w = strings.ToLower(w)
			for _, hay := range haystacks {
				scores[cat] += strings.Count(hay, w)
			}
		}
	}

	best := model.CategoryUnknown
	bestScore := 0
	tied := false
	for _, cat := range model.Categories() {
		s := scores[cat]
		if s > bestScore {
			best, bestScore, tied = cat, s, false
		} else if s == bestScore && s > 0 {
			tied = true
		}
	}

	if bestScore == 0 || tied {
		best = model.CategoryUnknown
	}
	return Result{Category: best, Scores: scores}
}
