package main

import (
	"fmt"
	"strings"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

type MeldsCmd struct {
	Hand []string `arg:"" help:"Cards in the hand, e.g. 'AC 2C 3C 7H 7S 7D'"`
	All  bool     `short:"a" help:"Also list every maximal meld set"`
}

func (c *MeldsCmd) Run() error {
	hand, err := cards.ParseHand(strings.Join(c.Hand, " "))
	if err != nil {
		return err
	}
	catalog := meld.Default()

	fmt.Println(headerStyle.Render("Hand"))
	fmt.Println(row("Cards", renderCards(hand.Cards())))
	fmt.Println(row("Points", hand.Points()))

	melds := catalog.Melds(hand)
	fmt.Println(headerStyle.Render(fmt.Sprintf("Melds (%d)", len(melds))))
	for _, m := range melds {
		fmt.Println(row(m.Kind().String(), "["+renderCards(m)+"]"))
	}

	if c.All {
		sets := catalog.MaximalMeldSets(hand)
		fmt.Println(headerStyle.Render(fmt.Sprintf("Maximal meld sets (%d)", len(sets))))
		for _, s := range sets {
			fmt.Println(row(fmt.Sprintf("deadwood %d", meld.Deadwood(hand, s)), renderMeldSet(s)))
		}
	}

	best := catalog.BestMeldSets(hand)
	fmt.Println(headerStyle.Render(fmt.Sprintf("Best meld sets (%d)", len(best))))
	for _, s := range best {
		fmt.Println(row("melds", renderMeldSet(s)))
	}
	fmt.Println(row("Min deadwood", winStyle.Render(fmt.Sprint(catalog.MinDeadwood(hand)))))
	return nil
}
