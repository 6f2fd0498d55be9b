package telemetry

import "encoding/json"

// Stats summarizes a single run for the end-of-game screen.
type Stats struct {
	RunID          string            `json:"run_id"`
	EventCounts    map[EventType]int `json:"event_counts"`
	FloorsStarted  int               `json:"floors_started"`
	MonstersFought int               `json:"monsters_fought"`
	DamageTaken    int               `json:"damage_taken"`
	HealingDone    int               `json:"healing_done"`
	GoldEarned     int               `json:"gold_earned"`
	GoldSpent      int               `json:"gold_spent"`
	CardsBought    int               `json:"cards_bought"`
	JokersSpent    int               `json:"jokers_spent"`
	Flees          int               `json:"flees"`
}

// Summarize folds a run's events into Stats.
func Summarize(runID string, events []Event) Stats {
	stats := Stats{
		RunID:       runID,
		EventCounts: make(map[EventType]int),
	}

	for _, event := range events {
		if event.RunID != runID {
			continue
		}
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventFloorStarted:
			stats.FloorsStarted++
		case EventMonsterFought:
			stats.MonstersFought++
			stats.DamageTaken += metaInt(metadata, "damage")
			stats.GoldEarned += metaInt(metadata, "bounty")
		case EventPotionDrunk:
			stats.HealingDone += metaInt(metadata, "healed")
		case EventJokerDestroyed:
			stats.JokersSpent++
			stats.GoldEarned += metaInt(metadata, "refund")
		case EventCardBought:
			stats.CardsBought++
			stats.GoldSpent += metaInt(metadata, "price")
		case EventFled:
			stats.Flees++
		}
	}

	return stats
}

// metaInt reads a numeric metadata field; json decodes numbers as
// float64.
func metaInt(m EventMetadata, key string) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}
