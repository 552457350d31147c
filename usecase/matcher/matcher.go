// Package matcher ranks business-idea templates against a user's stated
// preferences. Matching is a pure pass over the supplied catalog; the UseCase
// wrapper only adds the static catalog and logging.
package matcher

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/domain"
)

// MaxResults caps how many ranked templates a match returns.
const MaxResults = 3

// Score weights for the ranking stage.
const (
	passionWeight = 2
	skillWeight   = 2
	budgetBonus   = 3
	timeBonus     = 3
)

type UseCase struct {
	catalog []domain.IdeaTemplate
	logger  *zap.Logger
}

func New(catalog []domain.IdeaTemplate, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// MatchIdeas runs the matcher against the configured catalog.
func (uc *UseCase) MatchIdeas(ctx context.Context, input domain.UserPreferenceInput) ([]domain.IdeaTemplate, error) {
	results, err := Match(uc.catalog, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("idea match computed",
		zap.Int("catalog_size", len(uc.catalog)),
		zap.Int("results", len(results)))
	return results, nil
}

// ClassifyTimeTier maps weekly hours to a time tier: under 10 is low, 10-24
// is medium, 25 and above is high.
func ClassifyTimeTier(hoursPerWeek int) domain.Tier {
	switch {
	case hoursPerWeek < 10:
		return domain.TierLow
	case hoursPerWeek < 25:
		return domain.TierMedium
	default:
		return domain.TierHigh
	}
}

// Match filters the catalog against the input and returns up to MaxResults
// templates ordered by descending score. Equal scores keep catalog order.
// The input must carry at least one passion and one skill and a recognized
// budget tier; empty sets are rejected rather than treated as wildcards.
func Match(catalog []domain.IdeaTemplate, input domain.UserPreferenceInput) ([]domain.IdeaTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	timeTier := ClassifyTimeTier(input.TimePerWeek)

	type scoredIdea struct {
		template domain.IdeaTemplate
		score    int
	}

	var survivors []scoredIdea
	for _, tpl := range catalog {
		if !tpl.Budget.IsValid() || !tpl.TimeDemand.IsValid() {
			return nil, domain.NewErrorf(domain.ErrCodeInvalid,
				"catalog template %q carries an unrecognized tier", tpl.ID)
		}
		if !eligible(tpl, input, timeTier) {
			continue
		}
		survivors = append(survivors, scoredIdea{
			template: tpl,
			score:    score(tpl, input, timeTier),
		})
	}

	slices.SortStableFunc(survivors, func(a, b scoredIdea) int {
		return b.score - a.score
	})

	n := len(survivors)
	if n > MaxResults {
		n = MaxResults
	}
	results := make([]domain.IdeaTemplate, 0, n)
	for _, s := range survivors[:n] {
		results = append(results, s.template)
	}
	return results, nil
}

// eligible implements the filter stage. A template always needs a passion
// overlap. Beyond that one of budget equality, skill overlap, or time-tier
// equality suffices; a high-time user additionally matches every non-high
// template, which together with the equality clause disables time filtering
// for that user entirely. The asymmetry mirrors the legacy client and is kept
// for behavioral compatibility.
func eligible(tpl domain.IdeaTemplate, input domain.UserPreferenceInput, timeTier domain.Tier) bool {
	if countShared(tpl.Passions, input.Passions) == 0 {
		return false
	}
	if tpl.Budget == input.Budget {
		return true
	}
	if countShared(tpl.Skills, input.Skills) > 0 {
		return true
	}
	if tpl.TimeDemand == timeTier {
		return true
	}
	if timeTier == domain.TierHigh && tpl.TimeDemand != domain.TierHigh {
		return true
	}
	return false
}

// score implements the weighted-attribute scoring stage. Shared passions and
// skills accumulate per category; the budget and time bonuses are flat.
func score(tpl domain.IdeaTemplate, input domain.UserPreferenceInput, timeTier domain.Tier) int {
	total := passionWeight * countShared(tpl.Passions, input.Passions)
	total += skillWeight * countShared(tpl.Skills, input.Skills)
	if tpl.Budget == input.Budget {
		total += budgetBonus
	}
	if tpl.TimeDemand == timeTier {
		total += timeBonus
	}
	return total
}

func countShared[T comparable](a, b []T) int {
	var shared int
	for _, v := range a {
		if slices.Contains(b, v) {
			shared++
		}
	}
	return shared
}
