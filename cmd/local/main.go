package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/blackjack"
)

// local runs a blackjack table in a single process, driven by stdin.
// Useful for poking at the state machine without a websocket client.
//
// Commands:
//
//	join <name>
//	start <player#>
//	bet <player#> <amount>
//	hit|stand|double <player#>
//	quit
var (
	seats   = flag.Int("seats", 2, "number of seats at the table")
	rounds  = flag.Int("rounds", 1, "number of rounds to play")
	timeout = flag.Int("timeout", 30, "turn timeout in seconds")
)

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	game, err := blackjack.NewGame(nil, "LOCAL0", blackjack.Settings{
		Seats:       *seats,
		Rounds:      *rounds,
		TurnTimeout: *timeout,
	}, nil)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	ticker := time.NewTicker(game.Interval())
	defer ticker.Stop()

	nextSeat := 0
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}

			events, err := dispatch(game, line, &nextSeat)
			if err != nil {
				fmt.Printf("error: %s\n", err)
				continue
			}

			printEvents(events)

		case <-ticker.C:
			events, err := game.Tick()
			if err != nil {
				logrus.WithError(err).Error("tick failed")
				continue
			}

			printEvents(events)
		}
	}
}

func dispatch(game *blackjack.Game, line string, nextSeat *int) ([]blackjack.Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	switch fields[0] {
	case "join":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: join <name>")
		}

		id := seatID(*nextSeat)
		events, err := game.AddPlayer(id, fields[1])
		if err != nil {
			return nil, err
		}

		*nextSeat++
		fmt.Printf("%s seated as player %d\n", fields[1], *nextSeat)
		return events, nil

	case "start":
		id, err := parseSeat(fields, 2)
		if err != nil {
			return nil, err
		}

		return game.Start(id)

	case "bet":
		if len(fields) != 3 {
			return nil, fmt.Errorf("usage: bet <player#> <amount>")
		}

		id, err := parseSeat(fields[:2], 2)
		if err != nil {
			return nil, err
		}

		amount, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("bad amount %q", fields[2])
		}

		return game.PlaceBet(id, amount)

	case "hit", "stand", "double":
		id, err := parseSeat(fields, 2)
		if err != nil {
			return nil, err
		}

		action, err := blackjack.ActionFromString(fields[0])
		if err != nil {
			return nil, err
		}

		return game.PlayerAction(id, action)

	case "quit", "exit":
		os.Exit(0)
	}

	return nil, fmt.Errorf("unknown command %q", fields[0])
}

func parseSeat(fields []string, want int) (string, error) {
	if len(fields) != want {
		return "", fmt.Errorf("usage: %s <player#>", fields[0])
	}

	seat, err := strconv.Atoi(fields[1])
	if err != nil || seat < 1 {
		return "", fmt.Errorf("bad player number %q", fields[1])
	}

	return seatID(seat - 1), nil
}

func seatID(seat int) string {
	return fmt.Sprintf("seat-%d", seat)
}

func printEvents(events []blackjack.Event) {
	for _, ev := range events {
		data, _ := json.Marshal(ev.Data)
		fmt.Printf("%s %s\n", ev.Name, data)
	}
}
