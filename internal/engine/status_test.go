package engine

import (
	"testing"

	"github.com/FredLuc12/MiniRPG/internal/game"
)

func newDummy(hp int) *game.Combatant {
	return &game.Combatant{Name: "Dummy", HP: hp, MaxHP: hp}
}

func TestResolveStartOfTurn_PoisonTicksAndExpires(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewPoison(8, 3))

	for i := 0; i < 3; i++ {
		ResolveStartOfTurn(c)
	}
	if c.HP != 76 {
		t.Fatalf("expected 3 poison ticks (HP 76), got HP=%d", c.HP)
	}
	if len(c.Statuses) != 0 {
		t.Fatalf("expected poison to expire, %d statuses left", len(c.Statuses))
	}
	ResolveStartOfTurn(c)
	if c.HP != 76 {
		t.Fatalf("expired poison dealt damage")
	}
}

func TestResolveStartOfTurn_InsertionOrderAndEndTurnUntouched(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewStun(1))
	ApplyStatus(c, game.NewBurn(12, 2))
	ApplyStatus(c, game.NewPoison(5, 2))

	events := ResolveStartOfTurn(c)
	if len(events) < 3 || events[0].Kind != EventTurnSkipped || events[1].Kind != EventStatusExpired || events[2].Kind != EventStatusDamage {
		t.Fatalf("unexpected event order: %+v", events)
	}
	if c.HP != 95 {
		t.Fatalf("burn must not fire at start of turn, HP=%d", c.HP)
	}
	if len(c.Statuses) != 2 || c.Statuses[0].Kind != game.StatusBurn || c.Statuses[0].Duration != 2 {
		t.Fatalf("burn duration changed by the start pass: %+v", c.Statuses)
	}
}

func TestResolveEndOfTurn_Burn(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewBurn(12, 2))
	ApplyStatus(c, game.NewPoison(5, 3))

	ResolveEndOfTurn(c)
	ResolveEndOfTurn(c)
	if c.HP != 76 {
		t.Fatalf("expected two burn ticks, HP=%d", c.HP)
	}
	if len(c.Statuses) != 1 || c.Statuses[0].Kind != game.StatusPoison || c.Statuses[0].Duration != 3 {
		t.Fatalf("end pass touched start-turn statuses: %+v", c.Statuses)
	}
}

func TestAbsorbThroughShields_PartialAbsorbExpiresShield(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewShield(30, 3))

	rest, events := AbsorbThroughShields(c, 40)
	if rest != 10 {
		t.Fatalf("expected 10 damage through, got %d", rest)
	}
	if len(c.Statuses) != 0 {
		t.Fatalf("depleted shield should be gone, got %+v", c.Statuses)
	}
	if events[0].Kind != EventShieldAbsorbed || events[0].Amount != 30 || events[len(events)-1].Kind != EventStatusExpired {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestAbsorbThroughShields_Conservation(t *testing.T) {
	for incoming := 1; incoming <= 120; incoming += 7 {
		c := newDummy(100)
		ApplyStatus(c, game.NewShield(25, 5))
		ApplyStatus(c, game.NewShield(40, 5))

		rest, events := AbsorbThroughShields(c, incoming)
		absorbed := 0
		for _, e := range events {
			if e.Kind == EventShieldAbsorbed {
				absorbed += e.Amount
			}
		}
		if absorbed+rest != incoming {
			t.Fatalf("incoming %d: absorbed %d + passed %d", incoming, absorbed, rest)
		}
		for _, s := range c.Statuses {
			if s.Points < 0 {
				t.Fatalf("incoming %d: negative shield points %d", incoming, s.Points)
			}
		}
	}
}

// A shield loses a duration point in the start-of-turn pass and another one
// every time it is visited by incoming damage.
func TestShieldDurationDecrementsTwicePerRound(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewShield(100, 3))

	ResolveStartOfTurn(c)
	AbsorbThroughShields(c, 5)
	if len(c.Statuses) != 1 || c.Statuses[0].Duration != 1 {
		t.Fatalf("expected duration 1 after both decrement paths, got %+v", c.Statuses)
	}
	AbsorbThroughShields(c, 5)
	if len(c.Statuses) != 0 {
		t.Fatalf("expected shield to expire on the next hit")
	}
}

func TestAbsorbThroughShields_TicksEveryVisitedStatus(t *testing.T) {
	c := newDummy(100)
	ApplyStatus(c, game.NewPoison(8, 3))
	AbsorbThroughShields(c, 10)
	if c.Statuses[0].Duration != 2 {
		t.Fatalf("expected poison duration 2, got %d", c.Statuses[0].Duration)
	}
}

func TestIsStunned(t *testing.T) {
	c := newDummy(10)
	if IsStunned(c) {
		t.Fatalf("fresh combatant is stunned")
	}
	ApplyStatus(c, game.NewStun(1))
	if !IsStunned(c) {
		t.Fatalf("expected stun")
	}
	ResolveStartOfTurn(c)
	if IsStunned(c) {
		t.Fatalf("stun should expire after one start pass")
	}
}
