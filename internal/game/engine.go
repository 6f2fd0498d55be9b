package game

import (
	"time"

	"github.com/google/uuid"

	"deckdelve/internal/card"
	"deckdelve/internal/deck"
	"deckdelve/internal/telemetry"
)

// State is the engine's phase. Commands are routed by state; the
// transitions are owned entirely by the engine.
type State string

const (
	StateFloor State = "floor"
	StateShop  State = "shop"
	StateLost  State = "lost"
	StateWon   State = "won"
)

const (
	startingHealth = 12
	startingMoney  = 5
	roomSize       = 4

	// pristineDurability marks an unused weapon. Durability drops to
	// the rank of the last monster defeated, so any real value is 1-13
	// and a repaired weapon never gets anywhere near the sentinel.
	pristineDurability = 255
)

// Game is the single mutable aggregate for one run. All piles are
// exclusively owned; cards only move between them through the methods
// below.
type Game struct {
	dungeon        deck.Pile
	dungeonDiscard deck.Pile
	room           deck.Pile
	bosses         deck.Pile
	shop           deck.Pile
	shopStock      deck.Pile
	shopDiscard    deck.Pile

	health           int
	money            int
	weaponDamage     int
	weaponDurability int
	fled             bool
	state            State
	floor            int

	runID    string
	shuffler Shuffler
	reporter Reporter
	events   telemetry.Repository
	prompt   PromptFunc
}

// PromptFunc asks the player one follow-up question and returns the
// raw answer line. The joker destroy target is the only use.
type PromptFunc func(question string) (string, error)

// Options configures a new Game. Zero-value fields get working
// defaults, so game.New(game.Options{}) is a playable time-seeded run.
type Options struct {
	Shuffler Shuffler
	Reporter Reporter
	Events   telemetry.Repository
	Prompt   PromptFunc
}

// New builds, shuffles and partitions the deck and returns a Game in
// the Floor state. Callers should follow with StartFloor and a quiet
// RefreshRoom, exactly as a shop exit does.
func New(opts Options) *Game {
	if opts.Shuffler == nil {
		opts.Shuffler = NewRandShuffler(time.Now().UnixNano())
	}
	if opts.Reporter == nil {
		opts.Reporter = DiscardReporter{}
	}
	if opts.Events == nil {
		opts.Events = telemetry.NewMemoryRepository()
	}

	cards := deck.Build()
	opts.Shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	pools := deck.Partition(cards)

	return &Game{
		dungeon:          pools.Dungeon,
		bosses:           pools.Bosses,
		shop:             pools.Shop,
		health:           startingHealth,
		money:            startingMoney,
		weaponDurability: pristineDurability,
		state:            StateFloor,
		runID:            uuid.NewString(),
		shuffler:         opts.Shuffler,
		reporter:         opts.Reporter,
		events:           opts.Events,
		prompt:           opts.Prompt,
	}
}

// StartFloor resets the player for a fresh floor and recycles the room
// and discard back into the dungeon before reshuffling it.
func (g *Game) StartFloor() {
	g.health = startingHealth
	g.weaponDamage = 0
	g.weaponDurability = pristineDurability

	g.dungeon.Push(g.room.TakeAll()...)
	g.dungeon.Push(g.dungeonDiscard.TakeAll()...)
	g.shuffler.Shuffle(len(g.dungeon), func(i, j int) {
		g.dungeon[i], g.dungeon[j] = g.dungeon[j], g.dungeon[i]
	})

	g.floor++
	g.record(telemetry.EventFloorStarted, telemetry.EventMetadata{"floor": g.floor})
}

// RefreshRoom runs after every floor-phase action. It tops the room
// back up to four cards once it has thinned to one or none, then
// checks for loss and for floor completion. The top-up happens first
// so a floor can only end on an empty or monster-free room, never
// mid-room. The loss check always wins over the win check.
func (g *Game) RefreshRoom(quiet bool) {
	if len(g.room) <= 1 {
		drawn := 0
		for len(g.room) < roomSize {
			c, ok := g.dungeon.DrawFront()
			if !ok {
				break
			}
			g.room.Push(c)
			drawn++
		}
		if drawn > 0 && g.state == StateFloor && !quiet {
			g.reportf(CatNotification, "Restocked room")
			g.record(telemetry.EventRoomRestocked, telemetry.EventMetadata{"drawn": drawn})
		}
	}

	if g.health <= 0 {
		g.state = StateLost
		g.reportf(CatBad, "You lost")
		g.record(telemetry.EventGameLost, telemetry.EventMetadata{"floor": g.floor})
		return
	}

	if len(g.dungeon) == 0 && !g.room.Any(card.Card.IsMonster) {
		g.reportf(CatGood, "Floor complete!")

		if len(g.bosses) == 0 {
			g.state = StateWon
			g.record(telemetry.EventGameWon, telemetry.EventMetadata{"floor": g.floor})
			return
		}

		g.state = StateShop
		for i := 0; i < roomSize; i++ {
			c, ok := g.shop.DrawFront()
			if !ok {
				break
			}
			g.shopStock.Push(c)
		}
		g.record(telemetry.EventShopEntered, telemetry.EventMetadata{"stock": len(g.shopStock)})
	}
}

func (g *Game) record(t telemetry.EventType, md telemetry.EventMetadata) {
	_ = g.events.RecordEvent(g.runID, t, md)
}

// Read-only state for display.

func (g *Game) State() State { return g.state }

func (g *Game) Health() int { return g.health }

func (g *Game) Money() int { return g.money }

func (g *Game) WeaponDamage() int { return g.weaponDamage }

func (g *Game) WeaponDurability() int { return g.weaponDurability }

func (g *Game) RunID() string { return g.runID }

// WeaponDegraded reports whether the equipped weapon has fought at
// least one monster.
func (g *Game) WeaponDegraded() bool { return g.weaponDurability != pristineDurability }

func (g *Game) DungeonLen() int { return len(g.dungeon) }

func (g *Game) Room() []card.Card { return g.room.Cards() }

func (g *Game) ShopStock() []card.Card { return g.shopStock.Cards() }

func (g *Game) Bosses() []card.Card { return g.bosses.Cards() }
