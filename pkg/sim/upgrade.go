package sim

import (
	"github.com/pkg/errors"

	"survivor/pkg/items"
)

var (
	ErrNoPendingOffer = errors.New("no pending level-up offer")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// Choice is one card of a level-up offer.
type Choice struct {
	ItemID      string
	Title       string
	Description string

	IsWeapon  bool
	Weapon    items.WeaponKind
	IsNew     bool // weapon not owned yet
	NextLevel int  // level the weapon reaches if picked
}

// Offer is one level-up presentation.
type Offer struct {
	Level   int
	Choices [3]Choice
}

// PendingOffer returns the offer waiting for a choice, if any.
func (w *World) PendingOffer() (Offer, bool) {
	if w.offer == nil {
		return Offer{}, false
	}
	return *w.offer, true
}

// OnLevelUp registers fn to be called every time an offer is presented.
func (w *World) OnLevelUp(fn func(Offer)) {
	w.onLevelUp = append(w.onLevelUp, fn)
}

// Choose applies choice i of the pending offer. The world resumes once
// every queued level-up has been answered.
func (w *World) Choose(i int) error {
	if w.offer == nil {
		return ErrNoPendingOffer
	}
	if i < 0 || i >= len(w.offer.Choices) {
		return errors.Wrapf(ErrInvalidChoice, "index %d", i)
	}

	choice := w.offer.Choices[i]
	if err := w.ApplyUpgrade(choice.ItemID); err != nil {
		return err
	}

	w.offer = nil
	w.pendingLevelUps--
	if w.pendingLevelUps > 0 {
		w.presentOffer()
		return nil
	}
	w.paused = false
	return nil
}

// ApplyUpgrade grants an upgrade from the pool without an offer.
func (w *World) ApplyUpgrade(itemID string) error {
	item, ok := items.Get(itemID)
	if !ok {
		return errors.Wrapf(ErrUnknownUpgrade, "%q", itemID)
	}

	p := w.player
	switch item.Type {
	case items.ItemTypeWeapon:
		if err := p.AddOrUpgradeWeapon(item.Weapon); err != nil {
			return errors.Wrapf(err, "apply %s", itemID)
		}
	case items.ItemTypeConsumable:
		if heal := int(float64(p.MaxHP) * item.Effect.HealFraction); heal > 0 {
			p.HP = min(p.HP+heal, p.MaxHP)
		}
		p.Speed += item.Effect.SpeedBonus
	}

	w.log.Info().Str("upgrade", itemID).Int("level", p.Level).Msg("Upgrade applied")
	return nil
}

func (w *World) queueLevelUp() {
	w.pendingLevelUps++
	if w.offer == nil {
		w.presentOffer()
	}
}

// presentOffer rolls a fresh offer and pauses the world until it is answered.
func (w *World) presentOffer() {
	offer := w.rollOffer()
	w.offer = &offer
	w.paused = true
	for _, fn := range w.onLevelUp {
		fn(offer)
	}
}

// rollOffer draws three choices uniformly, with replacement.
func (w *World) rollOffer() Offer {
	offer := Offer{Level: w.player.Level - w.pendingLevelUps + 1}
	for i := range offer.Choices {
		id := items.UpgradePool[w.rng.Intn(len(items.UpgradePool))]
		offer.Choices[i] = w.describe(id)
	}
	return offer
}

func (w *World) describe(id string) Choice {
	item, _ := items.Get(id)
	c := Choice{
		ItemID:      id,
		Title:       item.Name,
		Description: item.Description,
	}
	if item.Type != items.ItemTypeWeapon {
		return c
	}

	c.IsWeapon = true
	c.Weapon = item.Weapon
	if wp, ok := w.player.Weapon(item.Weapon); ok {
		c.NextLevel = wp.Level() + 1
	} else {
		c.IsNew = true
		c.NextLevel = 1
	}
	return c
}
