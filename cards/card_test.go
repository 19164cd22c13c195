package cards

import (
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceClubs := NewCard(Ace, Clubs)
	if aceClubs.ID() != 0 {
		t.Errorf("Expected AC id 0, got %d", aceClubs.ID())
	}
	if aceClubs.String() != "AC" {
		t.Errorf("Expected 'AC', got %s", aceClubs.String())
	}

	kingDiamonds := NewCard(King, Diamonds)
	if kingDiamonds.ID() != 51 {
		t.Errorf("Expected KD id 51, got %d", kingDiamonds.ID())
	}
	if kingDiamonds.Rank() != King || kingDiamonds.Suit() != Diamonds {
		t.Errorf("KD decoded as rank %d suit %d", kingDiamonds.Rank(), kingDiamonds.Suit())
	}

	twoSpades := NewCard(Two, Spades)
	if twoSpades.ID() != 27 {
		t.Errorf("Expected 2S id 27, got %d", twoSpades.ID())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of clubs", input: "AC", wantCard: NewCard(Ace, Clubs)},
		{name: "lower case", input: "td", wantCard: NewCard(Ten, Diamonds)},
		{name: "king of hearts", input: "KH", wantCard: NewCard(King, Hearts)},
		{name: "nine of spades", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "XS", wantCard: NoCard, wantErr: true},
		{name: "invalid suit", input: "AX", wantCard: NoCard, wantErr: true},
		{name: "empty string", input: "", wantCard: NoCard, wantErr: true},
		{name: "too long", input: "10H", wantCard: NoCard, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for id := 0; id < NumCards; id++ {
		card := FromID(id)
		str := card.String()
		if seen[str] {
			t.Errorf("Duplicate card: %s", str)
		}
		seen[str] = true

		parsed, err := ParseCard(str)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", str, err)
		}
		if parsed != card {
			t.Errorf("Round-trip failed for %s", str)
		}
		if NewCard(card.Rank(), card.Suit()) != card {
			t.Errorf("rank/suit round-trip failed for %s", str)
		}
	}

	if len(seen) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(seen))
	}
}

func TestPoints(t *testing.T) {
	t.Parallel()
	want := map[string]int{
		"AC": 1, "2H": 2, "5S": 5, "9D": 9, "TC": 10, "JH": 10, "QS": 10, "KD": 10,
	}
	for name, points := range want {
		if got := MustParseCard(name).Points(); got != points {
			t.Errorf("%s points = %d, want %d", name, got, points)
		}
	}
}

func TestIsRed(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"AH", "7D"} {
		if !MustParseCard(name).IsRed() {
			t.Errorf("%s should be red", name)
		}
	}
	for _, name := range []string{"AC", "7S"} {
		if MustParseCard(name).IsRed() {
			t.Errorf("%s should be black", name)
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cs, err := ParseCards("AC  2h\t3S")
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if Format(cs) != "AC 2H 3S" {
		t.Errorf("Format = %q", Format(cs))
	}

	if _, err := ParseCards("AC AC"); err == nil {
		t.Error("expected duplicate card error")
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("TD")
	}
}
