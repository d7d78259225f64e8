package dashboard

import (
	"sort"
	"strings"

	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// AlertItem is one active alert prepared for the banner.
type AlertItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Badge       string `json:"badge"`
	ColorToken  string `json:"color"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CityName    string `json:"city_name,omitempty"`
	StartedAgo  string `json:"started_ago"`
}

// AlertList is the alerts banner: items ranked most severe first.
type AlertList struct {
	Total int         `json:"total"`
	Items []AlertItem `json:"items"`
}

// BuildAlertList ranks alerts by severity (extreme first, unknown severities
// last; the incoming newest-first order breaks ties) and formats them for the
// banner.
func BuildAlertList(alerts []domain.Alert) AlertList {
	ranked := make([]domain.Alert, len(alerts))
	copy(ranked, alerts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return derive.SeverityRank(ranked[i].Severity) < derive.SeverityRank(ranked[j].Severity)
	})

	list := AlertList{Total: len(ranked), Items: make([]AlertItem, 0, len(ranked))}
	for _, a := range ranked {
		item := AlertItem{
			ID:         a.ID,
			Type:       a.AlertType,
			Severity:   string(a.Severity),
			Badge:      strings.ToUpper(string(a.Severity)),
			ColorToken: severityColor(a.Severity),
			Title:      a.Title,
			CityName:   a.CityName,
			StartedAgo: derive.RelativeTime(a.StartsAt),
		}
		if a.Description != nil {
			item.Description = *a.Description
		}
		list.Items = append(list.Items, item)
	}
	return list
}

func severityColor(s domain.Severity) string {
	switch s {
	case domain.SeverityExtreme:
		return "severity-extreme"
	case domain.SeverityHigh:
		return "severity-high"
	case domain.SeverityModerate:
		return "severity-moderate"
	case domain.SeverityLow:
		return "severity-low"
	default:
		return "severity-unknown"
	}
}
