package game

import (
	"errors"
	"strings"
)

var ErrUnknownSkill = errors.New("unknown skill")

// SkillID is the closed set of skills the combat resolver knows how to run.
type SkillID string

const (
	SkillPowerStrike SkillID = "power_strike"
	SkillFireball    SkillID = "fireball"
	SkillShield      SkillID = "shield"
	SkillSneakAttack SkillID = "sneak_attack"
)

// Skills lists every known skill in menu order.
var Skills = []SkillID{SkillPowerStrike, SkillFireball, SkillShield, SkillSneakAttack}

// ParseSkill accepts the canonical id, case-insensitive, with spaces or dashes.
func ParseSkill(s string) (SkillID, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, id := range Skills {
		if string(id) == norm {
			return id, nil
		}
	}
	return "", ErrUnknownSkill
}
