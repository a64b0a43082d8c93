// Command quoridor plays one game between two built-in strategies and
// prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/theogom/quoridor-go/board"
	"github.com/theogom/quoridor-go/referee"
	"github.com/theogom/quoridor-go/strategy"
	"github.com/theogom/quoridor-go/strategy/greedy"
	"github.com/theogom/quoridor-go/strategy/search"
)

func builtinStrategy(name string, totalBudget time.Duration) (strategy.Strategy, error) {
	switch name {
	case "greedy":
		return greedy.New(), nil
	case "search":
		return search.New(totalBudget), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want greedy or search)", name)
	}
}

type stderrLogger struct{}

func (stderrLogger) BeginGame(n, wallsEach int, black, white string) {
	log.Printf("n=%d walls=%d black=%s white=%s", n, wallsEach, black, white)
}

func (stderrLogger) EndGame(o referee.Outcome) {
	log.Printf("game over: winner=%s reason=%s", o.Winner, o.Reason)
}

func (stderrLogger) LogMove(turn int, color board.Color, m board.Move) {
	log.Printf("turn %d: %s plays %s", turn, color, m)
}

func (stderrLogger) LogForfeit(turn int, color board.Color, err error) {
	log.Printf("turn %d: %s forfeits: %v", turn, color, err)
}

func run() error {
	n := flag.Int("n", 15, "board side length")
	walls := flag.Int("walls", 0, "wall allotment per player (0 = computed from -n)")
	seconds := flag.Int("t", 15, "total thinking time per game, in seconds, shared across a search strategy's moves")
	seed := flag.Int64("seed", 1, "random seed for the coin flip deciding which side plays Black")
	flag.Parse()

	if flag.NArg() != 2 {
		return fmt.Errorf("usage: quoridor [flags] <strategy-a> <strategy-b>")
	}

	wallsEach := *walls
	if wallsEach <= 0 {
		wallsEach = (2*(*n)*(*n-1) + 14) / 15
	}

	budget := time.Duration(*seconds) * time.Second
	a, err := builtinStrategy(flag.Arg(0), budget)
	if err != nil {
		return err
	}
	b, err := builtinStrategy(flag.Arg(1), budget)
	if err != nil {
		return err
	}

	if rand.New(rand.NewSource(*seed)).Intn(2) == 1 {
		a, b = b, a
	}

	ref, err := referee.New(*n, wallsEach, a, b, stderrLogger{})
	if err != nil {
		return err
	}
	outcome := ref.Play()
	fmt.Printf("winner=%s reason=%s\n", outcome.Winner, outcome.Reason)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("quoridor: ")
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(2)
	}
}
