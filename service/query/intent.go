package query

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type IntentKind int

const (
	IntentUnrecognized IntentKind = iota
	IntentTopCustomer
	IntentTopItem
	IntentItemsUnderPrice
	IntentItemsOverPrice
	IntentAveragePrice
	IntentMostExpensiveItem
	IntentCheapestItem
	IntentOutOfStockItems
)

// Intent is the classified category of a question plus any extracted
// parameters. Question keeps the original text for the fallback answer.
type Intent struct {
	Kind      IntentKind
	Threshold decimal.Decimal
	Question  string
}

// synonyms maps phrase fragments to intents. Matching is substring-based
// over the normalized question, so trailing punctuation and casing do not
// matter. When several phrases match, the longest one wins.
var synonyms = []struct {
	phrase string
	kind   IntentKind
}{
	{"top customer", IntentTopCustomer},
	{"best customer", IntentTopCustomer},
	{"top buyer", IntentTopCustomer},
	{"who spends the most", IntentTopCustomer},
	{"customer with highest orders", IntentTopCustomer},

	{"top item", IntentTopItem},
	{"top seller", IntentTopItem},
	{"best seller", IntentTopItem},
	{"best selling item", IntentTopItem},
	{"most popular item", IntentTopItem},
	{"most sold item", IntentTopItem},
	{"highest selling item", IntentTopItem},

	{"average price", IntentAveragePrice},
	{"mean price", IntentAveragePrice},
	{"typical cost", IntentAveragePrice},

	{"most expensive item", IntentMostExpensiveItem},
	{"highest price", IntentMostExpensiveItem},
	{"costliest item", IntentMostExpensiveItem},

	{"cheapest item", IntentCheapestItem},
	{"lowest price", IntentCheapestItem},
	{"least expensive item", IntentCheapestItem},

	{"out of stock", IntentOutOfStockItems},
	{"sold out", IntentOutOfStockItems},
	{"not available", IntentOutOfStockItems},
	{"unavailable", IntentOutOfStockItems},
}

var (
	underPriceRe = regexp.MustCompile(`(?:under|below|less than)\s*\$?(\d+(?:\.\d+)?)`)
	overPriceRe  = regexp.MustCompile(`(?:over|above|greater than|more than)\s*\$?(\d+(?:\.\d+)?)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Classify maps free question text onto the closed intent vocabulary.
// It is a pure function: the same text always yields the same intent.
func Classify(question string) Intent {
	q := normalize(question)

	best := Intent{Kind: IntentUnrecognized, Question: question}
	bestLen := 0
	for _, s := range synonyms {
		if len(s.phrase) > bestLen && strings.Contains(q, s.phrase) {
			best = Intent{Kind: s.kind, Question: question}
			bestLen = len(s.phrase)
		}
	}
	if bestLen > 0 {
		return best
	}

	if m := underPriceRe.FindStringSubmatch(q); m != nil {
		if t, err := decimal.NewFromString(m[1]); err == nil {
			return Intent{Kind: IntentItemsUnderPrice, Threshold: t, Question: question}
		}
	}
	if m := overPriceRe.FindStringSubmatch(q); m != nil {
		if t, err := decimal.NewFromString(m[1]); err == nil {
			return Intent{Kind: IntentItemsOverPrice, Threshold: t, Question: question}
		}
	}

	return Intent{Kind: IntentUnrecognized, Question: question}
}

func normalize(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	return whitespaceRe.ReplaceAllString(q, " ")
}
