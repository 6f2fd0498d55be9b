package telemetry

import "time"

type EventType string

const (
	EventFloorStarted   EventType = "floor_started"
	EventRoomRestocked  EventType = "room_restocked"
	EventMonsterFought  EventType = "monster_fought"
	EventPotionDrunk    EventType = "potion_drunk"
	EventWeaponEquipped EventType = "weapon_equipped"
	EventWeaponRepaired EventType = "weapon_repaired"
	EventJokerDestroyed EventType = "joker_destroyed"
	EventFled           EventType = "fled"
	EventShopEntered    EventType = "shop_entered"
	EventCardBought     EventType = "card_bought"
	EventBossReleased   EventType = "boss_released"
	EventGameWon        EventType = "game_won"
	EventGameLost       EventType = "game_lost"
)

// Event is one recorded game occurrence. Metadata is a JSON object
// whose keys depend on the event type.
type Event struct {
	ID        int       `json:"id"`
	RunID     string    `json:"run_id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
