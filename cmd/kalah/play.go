package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/kalah-cli/internal/config"
	"github.com/lox/kalah-cli/internal/display"
	"github.com/lox/kalah-cli/internal/game"
	"github.com/lox/kalah-cli/internal/search"
	"github.com/lox/kalah-cli/kalah"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs the line-based interactive game: the engine plays Side
// A, the human plays Side B by entering rows 0-5.
type PlayCmd struct {
	Depth       int  `help:"Override search depth from config"`
	SeedsPerPit int  `help:"Override seeds per pit from config"`
	EngineFirst bool `help:"Engine moves first without prompting"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Depth > 0 {
		cfg.Game.SearchDepth = c.Depth
	}
	if c.SeedsPerPit > 0 {
		cfg.Game.SeedsPerPit = c.SeedsPerPit
	}

	logger, closer, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	fmt.Println(titleStyle.Render(" Kalah "))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	engineFirst := c.EngineFirst
	if !engineFirst {
		fmt.Print("Is the engine playing first (y/n)? ")
		choice, _ := reader.ReadString('\n')
		engineFirst = strings.TrimSpace(choice) == "y"
	}

	match := game.NewMatch(
		kalah.New(uint8(cfg.Game.SeedsPerPit)),
		game.NewSearchAgent("engine", cfg.Game.SearchDepth),
		game.NewHumanAgent("you"),
		logger,
		game.WithFirstMover(engineFirst),
	)
	searcher := search.New()

	for {
		fmt.Println(display.Render(match.Board()))

		if match.GameOver() {
			break
		}

		var again bool
		if match.SideAToMove() {
			result := searcher.Search(match.Board(), true, cfg.Game.SearchDepth)
			if !result.HasMove() {
				break
			}
			fmt.Printf("Engine plays %d (eval = %d)\n\n", result.Move, result.Eval)
			again, err = match.ApplyMove(result.Move)
			if err != nil {
				return err
			}
		} else {
			pit, ok := readRow(reader)
			if !ok {
				fmt.Println("Bye")
				return nil
			}
			again, err = match.ApplyMove(pit)
			if err != nil {
				fmt.Println(err)
				continue
			}
		}

		if again {
			fmt.Println("Extra turn")
			fmt.Println()
		}
	}

	result, err := match.Finish()
	if err != nil {
		return err
	}

	fmt.Println(display.Render(result.Final))
	fmt.Printf("Final score %d - %d\n", result.StoreA, result.StoreB)
	if result.Winner == "" {
		fmt.Println("Draw")
	} else {
		fmt.Printf("Winner: %s\n", result.Winner)
	}
	return nil
}

// readRow prompts for a human row until a valid one arrives. ok is
// false when input ends or the player quits.
func readRow(reader *bufio.Reader) (int, bool) {
	for {
		fmt.Printf("Your move, row (0-%d): ", kalah.PitsPerSide-1)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return 0, false
		}

		row, err := strconv.Atoi(line)
		if err != nil || row < 0 || row >= kalah.PitsPerSide {
			fmt.Printf("Enter a number between 0 and %d\n", kalah.PitsPerSide-1)
			continue
		}
		return kalah.FacingIndex(row), true
	}
}
