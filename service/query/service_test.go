package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/dataset"
	"github.com/erin-james/ai-query-interface/model"
)

func TestResolve_EndToEnd(t *testing.T) {
	snap := testSnapshot(t)

	cases := map[string]string{
		"Who is the top customer?": "Grace Hopper is the top customer with $20.00.",
		"best seller":              "Widget is the top item with 6 units sold.",
		"show items under $5":      "Items priced under $5.00: Widget ($3.00).",
		"average price":            "The average price of listed items is $5.00.",
		"most expensive item":      "The most expensive item is Gizmo at $7.00.",
		"cheapest item":            "The cheapest item is Widget at $3.00.",
		"anything out of stock?":   "Out of stock items: Pencil.",
	}

	for question, want := range cases {
		assert.Equal(t, want, Resolve(question, snap, zap.NewNop()), "question: %q", question)
	}
}

func TestResolve_EmptyOrderLinesDegradesGracefully(t *testing.T) {
	snap := testSnapshot(t)
	snap.OrderLines = nil

	answer := Resolve("top customer", snap, zap.NewNop())
	assert.Equal(t, noDataAnswer, answer)
}

func TestResolve_UnrecognizedQuestion(t *testing.T) {
	answer := Resolve("what's the weather", testSnapshot(t), zap.NewNop())
	assert.Equal(t, `Sorry, I couldn't understand "what's the weather".`, answer)
}

func TestResolve_NilSnapshotNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		answer := Resolve("top customer", nil, zap.NewNop())
		assert.Equal(t, noDataAnswer, answer)
	})
}

func TestService_ResolveQuestion(t *testing.T) {
	store := dataset.NewStore(testSnapshot(t))
	svc := NewService(store, zap.NewNop())

	answer := svc.ResolveQuestion(context.Background(), "top customer")
	assert.Equal(t, "Grace Hopper is the top customer with $20.00.", answer)
}

func TestService_AnswersFollowSnapshotSwap(t *testing.T) {
	store := dataset.NewStore(testSnapshot(t))
	svc := NewService(store, zap.NewNop())

	next := testSnapshot(t)
	next.OrderLines = []model.OrderLine{
		{CustomerID: "C001", ItemID: "I001", Quantity: 1, UnitPrice: dollars(t, "42.00")},
	}
	store.Swap(next)

	answer := svc.ResolveQuestion(context.Background(), "top customer")
	assert.Equal(t, "Ada Lovelace is the top customer with $42.00.", answer)
}
