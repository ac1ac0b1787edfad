// Package query resolves natural-language questions about the four
// datasets into computed answers. The pipeline is classify -> resolve ->
// format; every step runs against one immutable snapshot and the service
// always returns a sentence, never an error.
package query

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/dataset"
	"github.com/erin-james/ai-query-interface/model"
)

type IService interface {
	ResolveQuestion(ctx context.Context, question string) string
}

func NewService(store *dataset.Store, logger *zap.Logger) IService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:  store,
		logger: logger,
	}
}

type service struct {
	store  *dataset.Store
	logger *zap.Logger
}

func (s service) ResolveQuestion(ctx context.Context, question string) string {
	return Resolve(question, s.store.Current(), s.logger)
}

// Resolve answers one question against one snapshot. It honors an
// absolute contract: whatever the data looks like, the caller gets back a
// sentence. ErrNoData and panics both degrade to a fallback answer here.
func Resolve(question string, snap *model.Snapshot, logger *zap.Logger) (answer string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered panic while resolving question",
				zap.Any("panic", r), zap.String("question", question))
			answer = internalErrorAnswer
		}
	}()

	if snap == nil {
		snap = &model.Snapshot{}
	}

	intent := Classify(question)
	access := newDataAccess(snap, logger)

	switch intent.Kind {
	case IntentTopCustomer:
		res, err := resolveTopCustomer(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatTopCustomer(res)

	case IntentTopItem:
		res, err := resolveTopItem(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatTopItem(res)

	case IntentItemsUnderPrice:
		return formatPriceFilter("under", resolveItemsUnderPrice(access, intent.Threshold))

	case IntentItemsOverPrice:
		return formatPriceFilter("over", resolveItemsOverPrice(access, intent.Threshold))

	case IntentAveragePrice:
		res, err := resolveAveragePrice(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatAveragePrice(res)

	case IntentMostExpensiveItem:
		res, err := resolveMostExpensiveItem(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatMostExpensiveItem(res)

	case IntentCheapestItem:
		res, err := resolveCheapestItem(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatCheapestItem(res)

	case IntentOutOfStockItems:
		res, err := resolveOutOfStockItems(access)
		if err != nil {
			return fallbackAnswer(logger, question, err)
		}
		return formatOutOfStock(res)

	default:
		return formatUnrecognized(intent.Question)
	}
}

func fallbackAnswer(logger *zap.Logger, question string, err error) string {
	if errors.Is(err, ErrNoData) {
		logger.Info("no data for question", zap.String("question", question))
		return noDataAnswer
	}
	logger.Error("resolver failed", zap.String("question", question), zap.Error(err))
	return internalErrorAnswer
}
