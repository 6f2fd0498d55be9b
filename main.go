package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"deckdelve/internal/config"
	"deckdelve/internal/game"
	"deckdelve/internal/telemetry"
	"deckdelve/internal/ui"
)

func main() {
	cfg, err := config.Load("deckdelve.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg = config.FromEnv(cfg)

	if cfg.NoColor {
		color.NoColor = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := os.Stdout
	scanner := bufio.NewScanner(os.Stdin)
	events := telemetry.NewMemoryRepository()

	newGame := func() *game.Game {
		g := game.New(game.Options{
			Shuffler: game.NewRandShuffler(seed),
			Reporter: ui.ColorReporter{Out: out},
			Events:   events,
			Prompt: func(question string) (string, error) {
				fmt.Fprintln(out, question)
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					return "", scanner.Err()
				}
				return scanner.Text(), nil
			},
		})
		g.StartFloor()
		g.RefreshRoom(true)
		// A retry deals a fresh run; reseed so it is a different one.
		seed++
		return g
	}

	g := newGame()
	summaryShown := false

	for {
		if done := g.State() == game.StateLost || g.State() == game.StateWon; done && !summaryShown {
			printSummary(g, events)
			summaryShown = true
		}

		ui.Render(out, g)
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch g.State() {
		case game.StateFloor:
			switch {
			case parts[0] == "use" && len(parts) == 2:
				if slot, err := strconv.Atoi(parts[1]); err == nil {
					g.UseCard(slot)
				} else {
					reportInvalidSlot(out)
				}
			case parts[0] == "flee" && len(parts) == 1:
				g.Flee()
			case parts[0] == "quit":
				return
			default:
				reportInvalidCommand(out)
			}
			g.RefreshRoom(false)

		case game.StateShop:
			switch {
			case parts[0] == "buy" && len(parts) == 2:
				if slot, err := strconv.Atoi(parts[1]); err == nil {
					g.BuyCard(slot)
				} else {
					reportInvalidSlot(out)
				}
			case parts[0] == "continue" && len(parts) == 1:
				g.LeaveShop()
			case parts[0] == "quit":
				return
			default:
				reportInvalidCommand(out)
			}

		case game.StateLost, game.StateWon:
			switch parts[0] {
			case "retry":
				g = newGame()
				summaryShown = false
			case "quit":
				return
			default:
				reportInvalidCommand(out)
			}
		}
	}
}

func printSummary(g *game.Game, events *telemetry.MemoryRepository) {
	recorded, err := events.GetEvents(g.RunID())
	if err != nil {
		log.Printf("read run events: %v", err)
		return
	}
	ui.RenderSummary(os.Stdout, telemetry.Summarize(g.RunID(), recorded))
}

func reportInvalidSlot(out *os.File) {
	fmt.Fprintln(out, ui.Styled(game.CatBad, "Must enter a number between 1 and 4"))
}

func reportInvalidCommand(out *os.File) {
	fmt.Fprintln(out, ui.Styled(game.CatBad, "Invalid command"))
}
