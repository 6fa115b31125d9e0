package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/localstore"
	"github.com/heartmarshall/vocabflash-backend/internal/flashcard"
)

const (
	// quitAnswer ends a study run early.
	quitAnswer = ":q"
	// shuffleAnswer reshuffles the cards and starts the run over.
	shuffleAnswer = ":s"
)

func newStudyCommand(cc *commandContext) *cobra.Command {
	var date, from, to string

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Quiz yourself on saved words in random order",
		Long: `Quiz yourself on saved words in random order.

Each card shows a word; type its meaning and press Enter. An answer is
accepted when it equals the meaning or one contains the other, ignoring
case. Type ` + shuffleAnswer + ` to reshuffle and start over, or ` + quitAnswer + ` to stop early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			items, err := selectItems(store, date, from, to)
			if err != nil {
				return err
			}

			session := flashcard.NewSession(cc.rnd)
			if err := session.Load(toCards(items)); err != nil {
				return err
			}

			res := runStudy(session, cmd.InOrStdin(), cmd.OutOrStdout())
			printSummary(cmd.OutOrStdout(), res)
			return nil
		},
	}

	addDateFlags(cmd, &date, &from, &to)
	return cmd
}

func toCards(items []localstore.Item) []flashcard.Card {
	cards := make([]flashcard.Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, flashcard.Card{ID: it.ID, Word: it.Word, Meaning: it.Meaning})
	}
	return cards
}

type studyResult struct {
	total    int
	answered int
	correct  int
}

// runStudy drives a loaded session until it completes, the user quits or
// input runs out.
func runStudy(session *flashcard.Session, in io.Reader, out io.Writer) studyResult {
	res := studyResult{total: session.Len()}
	scanner := bufio.NewScanner(in)

	for {
		card, ok := session.Current()
		if !ok {
			return res
		}

		fmt.Fprintf(out, "\n[%d/%d] %s\n", session.Position()+1, session.Len(), paint(out, card.Word, text.Bold))
		fmt.Fprint(out, "Your answer: ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return res
		}
		answer := scanner.Text()
		switch strings.TrimSpace(answer) {
		case quitAnswer:
			return res
		case shuffleAnswer:
			if err := session.Shuffle(); err != nil {
				return res
			}
			res.answered, res.correct = 0, 0
			fmt.Fprintln(out, "Shuffled, starting over.")
			continue
		}

		correct, err := session.Check(answer)
		if err != nil {
			return res
		}
		res.answered++
		if correct {
			res.correct++
			fmt.Fprintln(out, paint(out, "Correct!", text.FgGreen))
		} else {
			fmt.Fprintln(out, paint(out, "Incorrect.", text.FgRed))
		}
		fmt.Fprintf(out, "Meaning: %s\n", card.Meaning)

		if completed, err := session.Advance(); err != nil || completed {
			return res
		}
	}
}

func printSummary(out io.Writer, res studyResult) {
	pct := 0.0
	if res.answered > 0 {
		pct = float64(res.correct) / float64(res.answered) * 100
	}
	fmt.Fprintf(out, "\nSession finished: %d/%d correct (%.0f%%), %d of %d cards answered\n",
		res.correct, res.answered, pct, res.answered, res.total)
}
