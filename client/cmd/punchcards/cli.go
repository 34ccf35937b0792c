package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/itchan-dev/punchcards/client/apiclient"
	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
)

const defaultServer = "http://localhost:8080"

// newApp builds the command tree. Command output goes to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "punchcards",
		Usage:  "punch card tracker client",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "punchcards server base url",
				Value:   defaultServer,
				Sources: cli.EnvVars("PUNCHCARDS_SERVER"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "cards",
				Usage:  "show every card with its punches",
				Action: listCards,
			},
			{
				Name:   "persons",
				Usage:  "list people",
				Action: listPersons,
			},
			{
				Name:   "new-card",
				Usage:  "create a card",
				Action: newCard,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "card title", Required: true},
					&cli.StringFlag{Name: "capacity", Usage: "number of punch slots", Value: "10"},
				},
			},
			{
				Name:   "new-person",
				Usage:  "create a person",
				Action: newPerson,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "full name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "optional email"},
					&cli.StringFlag{Name: "phone", Usage: "optional phone number"},
				},
			},
			{
				Name:   "punch",
				Usage:  "punch a card",
				Action: punch,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "card", Usage: "card id", Required: true},
					&cli.StringFlag{Name: "person", Usage: "puncher id", Required: true},
					&cli.StringFlag{Name: "reason", Usage: "why the card is punched"},
				},
			},
			{
				Name:   "delete-card",
				Usage:  "delete a card and all of its punches",
				Action: deleteCard,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "card", Usage: "card id", Required: true},
				},
			},
		},
	}
}

func client(cmd *cli.Command) *apiclient.APIClient {
	return apiclient.New(cmd.String("server"))
}

func listCards(ctx context.Context, cmd *cli.Command) error {
	cards, err := client(cmd).GetCards(ctx)
	if err != nil {
		return err
	}
	printCards(cmd.Root().Writer, cards)
	return nil
}

func listPersons(ctx context.Context, cmd *cli.Command) error {
	people, err := client(cmd).GetPersons(ctx)
	if err != nil {
		return err
	}
	for _, p := range people {
		fmt.Fprintf(cmd.Root().Writer, "%d\t%s\n", p.Id, p.Name)
	}
	return nil
}

func newCard(ctx context.Context, cmd *cli.Command) error {
	capacity, err := strconv.Atoi(cmd.String("capacity"))
	if err != nil {
		return fmt.Errorf("capacity must be an integer: %w", err)
	}

	card, err := client(cmd).CreateCard(ctx, api.CreateCardRequest{Title: cmd.String("title"), Capacity: capacity})
	if err != nil {
		return fmt.Errorf("error creating card: %w", err)
	}
	fmt.Fprintf(cmd.Root().Writer, "created card %d: %s\n", card.Id, cardLine(card.Title, 0, card.Capacity))
	return nil
}

func newPerson(ctx context.Context, cmd *cli.Command) error {
	person, err := client(cmd).CreatePerson(ctx, api.CreatePersonRequest{
		Name:        cmd.String("name"),
		Email:       optional(cmd.String("email")),
		PhoneNumber: optional(cmd.String("phone")),
	})
	if err != nil {
		return fmt.Errorf("error creating person: %w", err)
	}
	fmt.Fprintf(cmd.Root().Writer, "created person %d: %s\n", person.Id, person.Name)
	return nil
}

func punch(ctx context.Context, cmd *cli.Command) error {
	cardID, err := parseID(cmd, "card")
	if err != nil {
		return err
	}
	personID, err := parseID(cmd, "person")
	if err != nil {
		return err
	}

	p, err := client(cmd).CreatePunch(ctx, api.CreatePunchRequest{
		CardId:    cardID,
		PuncherId: personID,
		Date:      time.Now().UTC(),
		Reason:    cmd.String("reason"),
	})
	if err != nil {
		return fmt.Errorf("error creating punch: %w", err)
	}
	fmt.Fprintf(cmd.Root().Writer, "punched card %d (punch %d)\n", p.CardId, p.Id)
	return nil
}

func deleteCard(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd, "card")
	if err != nil {
		return err
	}

	if err := client(cmd).DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("error deleting card with id %d: %w", id, err)
	}
	fmt.Fprintf(cmd.Root().Writer, "deleted card %d\n", id)
	return nil
}

func parseID(cmd *cli.Command, flag string) (int64, error) {
	id, err := strconv.ParseInt(cmd.String(flag), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("--%s must be a positive integer, got %q", flag, cmd.String(flag))
	}
	return id, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func cardLine(title string, punched, capacity int) string {
	return fmt.Sprintf("%s - %d / %d", title, punched, capacity)
}

// printCards writes one summary line per card followed by its punches in
// local time.
func printCards(out io.Writer, cards []domain.FullCard) {
	if len(cards) == 0 {
		fmt.Fprintln(out, "no cards yet")
		return
	}
	for _, card := range cards {
		fmt.Fprintf(out, "[%d] %s", card.Id, cardLine(card.Title, len(card.Punches), card.Capacity))
		if card.Remaining() == 0 {
			fmt.Fprint(out, " (all slots punched)")
		}
		fmt.Fprintln(out)
		for _, p := range card.Punches {
			fmt.Fprintf(out, "\tPunched by %s on %s: %q\n",
				p.Puncher.Name, p.Date.Local().Format("Mon, Jan _2 at 03:04 pm"), p.Reason)
		}
	}
}
