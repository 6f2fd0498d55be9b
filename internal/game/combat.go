package game

import (
	"fmt"
	"strconv"
	"strings"

	"deckdelve/internal/card"
	"deckdelve/internal/telemetry"
)

// UseCard plays the room card in the given 1-based slot. Invalid input
// is reported as a single status line and leaves the game untouched.
// On success the played card moves to the dungeon discard and the flee
// flag clears.
func (g *Game) UseCard(slot int) {
	if slot < 1 || slot > len(g.room) {
		g.reportf(CatBad, "No card in room slot %d", slot)
		return
	}

	c := g.room[slot-1]
	switch {
	case c.IsJoker():
		ok := false
		slot, ok = g.playJoker(slot)
		if !ok {
			return
		}
	case c.Suit() == card.Clubs, c.Suit() == card.Spades:
		g.fightMonster(c)
	case c.Suit() == card.Hearts:
		g.drinkPotion(c)
	case c.Suit() == card.Diamonds:
		g.takeWeapon(c)
	}

	played, _ := g.room.RemoveAt(slot - 1)
	g.dungeonDiscard.Push(played)
	g.fled = false
}

// playJoker destroys a second room card for half its value, rounded
// up. The joker's own slot may shift left when the destroyed card sat
// before it; the adjusted slot is returned so the joker itself can be
// discarded by the caller.
func (g *Game) playJoker(slot int) (adjusted int, ok bool) {
	answer, err := g.ask("Choose a card to destroy:")
	if err != nil {
		g.reportf(CatBad, "Must enter a number between 1 and 4")
		return slot, false
	}

	target, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		g.reportf(CatBad, "Must enter a number between 1 and 4")
		return slot, false
	}
	if target < 1 || target > len(g.room) {
		g.reportf(CatBad, "No card in room slot %d", target)
		return slot, false
	}
	if target == slot {
		g.reportf(CatBad, "Cannot destroy itself")
		return slot, false
	}

	destroyed := g.room[target-1]
	refund := (destroyed.Value() + 1) / 2

	g.reportf(CatPlain, "Destroyed %s", destroyed)
	g.reportf(CatMoney, "+$%d", refund)
	g.money += refund

	removed, _ := g.room.RemoveAt(target - 1)
	g.dungeonDiscard.Push(removed)
	if target < slot {
		slot--
	}

	g.record(telemetry.EventJokerDestroyed, telemetry.EventMetadata{
		"destroyed": destroyed.String(),
		"value":     destroyed.Value(),
		"refund":    refund,
	})
	return slot, true
}

// fightMonster resolves combat. The weapon is usable only while its
// durability exceeds the monster's rank; otherwise the fight is
// barehanded for full rank damage. A weapon that overkills pays the
// difference as bounty, and its durability always drops to the rank of
// the monster it just beat.
func (g *Game) fightMonster(monster card.Card) {
	rank := int(monster.Rank())
	damage := 0
	bounty := 0

	if g.weaponDamage > 0 && g.weaponDurability > rank {
		delta := rank - g.weaponDamage
		if delta < 0 {
			bounty = -delta
			g.money += bounty
			g.reportf(CatPlain, "Fought %s using weapon", monster)
			g.reportf(CatMoney, "+$%d", bounty)
		} else {
			damage = delta
			g.health = maxInt(g.health-delta, 0)
			g.reportf(CatPlain, "Fought %s using weapon", monster)
			g.reportf(CatBad, "-%d HP", delta)
		}
		g.weaponDurability = rank
	} else {
		damage = rank
		g.health = maxInt(g.health-rank, 0)
		g.reportf(CatPlain, "Fought %s barehanded", monster)
		g.reportf(CatBad, "-%d HP", rank)
	}

	g.record(telemetry.EventMonsterFought, telemetry.EventMetadata{
		"monster": monster.String(),
		"rank":    rank,
		"damage":  damage,
		"bounty":  bounty,
	})
}

// drinkPotion heals. Ace through ten heal by rank, capped so healing
// never raises health past 12 nor lowers it when a full heal already
// pushed it higher. Face cards are full heals: health becomes 12 plus
// twice the rank above ten.
func (g *Game) drinkPotion(potion card.Card) {
	rank := int(potion.Rank())
	before := g.health

	if rank < int(card.Jack) {
		g.health = minInt(g.health+rank, maxInt(startingHealth, g.health))
		g.reportf(CatGood, "+%d HP", rank)
	} else {
		absorption := (rank - int(card.Ten)) * 2
		g.health = startingHealth + absorption
		g.reportf(CatGood, "Full heal + %d HP", absorption)
	}

	g.record(telemetry.EventPotionDrunk, telemetry.EventMetadata{
		"potion": potion.String(),
		"rank":   rank,
		"healed": g.health - before,
	})
}

// takeWeapon equips (ranks up to ten) or repairs (face cards). Repair
// adds twice the rank above ten, and only to a degraded weapon; the
// result is deliberately not clamped since durability only gates which
// monsters the weapon may still fight.
func (g *Game) takeWeapon(weapon card.Card) {
	rank := int(weapon.Rank())

	if rank < int(card.Jack) {
		g.weaponDamage = rank
		g.weaponDurability = pristineDurability
		g.reportf(CatPlain, "Equipped %s", weapon)
		g.record(telemetry.EventWeaponEquipped, telemetry.EventMetadata{"damage": rank})
		return
	}

	repair := (rank - int(card.Ten)) * 2
	if g.weaponDurability < pristineDurability {
		g.weaponDurability += repair
	}
	g.reportf(CatGood, "Repaired %d durability", repair)
	g.record(telemetry.EventWeaponRepaired, telemetry.EventMetadata{"repair": repair})
}

// Flee returns the whole room to the back of the dungeon, undiscarded,
// to be redealt later. Only a full room can be fled, and never twice
// in a row.
func (g *Game) Flee() {
	if len(g.room) < roomSize {
		g.reportf(CatBad, "Can only flee from a full room")
		return
	}
	if g.fled {
		g.reportf(CatBad, "Cannot flee twice in a row")
		return
	}

	// Back-to-front, matching the order the cards return to the pile.
	for i := len(g.room) - 1; i >= 0; i-- {
		g.dungeon.Push(g.room[i])
	}
	g.room = nil
	g.fled = true

	g.reportf(CatBad, "Fled from room!")
	g.record(telemetry.EventFled, nil)
}

// BuyCard purchases the shop-stock card in the given 1-based slot for
// its value. Bought cards join the back of the dungeon and surface on
// the next floor, not in the current room.
func (g *Game) BuyCard(slot int) {
	if slot < 1 || slot > len(g.shopStock) {
		g.reportf(CatBad, "No card in shop slot %d", slot)
		return
	}

	c := g.shopStock[slot-1]
	if g.money < c.Value() {
		g.reportf(CatBad, "Can't afford card")
		return
	}

	g.reportf(CatBad, "-$%d", c.Value())
	g.reportf(CatPlain, "%s added to dungeon", c)
	g.money -= c.Value()

	bought, _ := g.shopStock.RemoveAt(slot - 1)
	g.dungeon.Push(bought)

	g.record(telemetry.EventCardBought, telemetry.EventMetadata{
		"card":  bought.String(),
		"price": bought.Value(),
	})
}

// LeaveShop closes the shop and opens the next floor: unsold stock is
// discarded (and the shop pool recycled once it runs dry), the two
// lowest remaining bosses join the dungeon, and a fresh floor starts
// with a quiet room refresh.
func (g *Game) LeaveShop() {
	g.shopDiscard.Push(g.shopStock.TakeAll()...)
	if len(g.shop) == 0 {
		g.reportf(CatNotification, "Shop restocked")
		g.shop.Push(g.shopDiscard.TakeAll()...)
		g.shuffler.Shuffle(len(g.shop), func(i, j int) {
			g.shop[i], g.shop[j] = g.shop[j], g.shop[i]
		})
	}

	// The shop state is only ever entered with bosses remaining, and
	// they are consumed two at a time from an even-sized pool.
	first, _ := g.bosses.DrawFront()
	second, _ := g.bosses.DrawFront()
	g.reportf(CatPlain, "%s & %s added to dungeon", first, second)
	g.dungeon.Push(first, second)
	g.record(telemetry.EventBossReleased, telemetry.EventMetadata{
		"bosses": fmt.Sprintf("%s %s", first, second),
	})

	g.state = StateFloor
	g.StartFloor()
	g.RefreshRoom(true)
}

func (g *Game) ask(question string) (string, error) {
	if g.prompt == nil {
		return "", fmt.Errorf("no prompt attached")
	}
	return g.prompt(question)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
