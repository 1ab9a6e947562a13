package report

import (
	"leaddesk/internal/errors"
	"leaddesk/internal/models"
)

// Metric names accepted by RankUsers.
const (
	MetricLeads      = "leads"
	MetricReplies    = "replies"
	MetricConversion = "conversion"
	MetricOpen       = "open"
)

// TeamSummary aggregates the outreach stats of a set of users.
type TeamSummary struct {
	Members           int
	NewLeads          int
	Replies           int
	OpenMessages      int
	AvgConversionRate int // whole percent
}

// SummarizeTeam totals the per-user stats and averages the conversion
// rate across the team. An empty team yields all zeros.
func SummarizeTeam(users []models.User) TeamSummary {
	summary := TeamSummary{Members: len(users)}
	for _, u := range users {
		summary.NewLeads += u.Stats.NewLeads
		summary.Replies += u.Stats.Replies
		summary.OpenMessages += u.Stats.OpenMessages
	}
	// avg is already a percent, Rate(avg, 100) just rounds it
	avg := Average(users, func(u models.User) float64 { return u.Stats.ConversionRate })
	summary.AvgConversionRate = Rate(avg, 100)
	return summary
}

// UserMetric returns the named stat of a user as a float.
func UserMetric(metric string) (func(models.User) float64, error) {
	switch metric {
	case MetricLeads:
		return func(u models.User) float64 { return float64(u.Stats.NewLeads) }, nil
	case MetricReplies:
		return func(u models.User) float64 { return float64(u.Stats.Replies) }, nil
	case MetricConversion:
		return func(u models.User) float64 { return u.Stats.ConversionRate }, nil
	case MetricOpen:
		return func(u models.User) float64 { return float64(u.Stats.OpenMessages) }, nil
	}
	return nil, errors.Wrapf(errors.ErrUnknownMetric, "%q", metric)
}

// RankUsers sorts users by the named metric descending, ties broken by
// original order.
func RankUsers(users []models.User, metric string) ([]models.User, error) {
	fn, err := UserMetric(metric)
	if err != nil {
		return nil, err
	}
	return Rank(users, fn), nil
}

// TopPerformer returns the highest-ranked user for the named metric.
// The second return is false for an empty team.
func TopPerformer(users []models.User, metric string) (models.User, bool) {
	ranked, err := RankUsers(users, metric)
	if err != nil || len(ranked) == 0 {
		return models.User{}, false
	}
	return ranked[0], true
}
