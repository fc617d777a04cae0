package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

// Special effect names with engine behavior
const (
	EffectAwakenedTrigger = "awakened_trigger"
	EffectFullHeal        = "full_heal"
	EffectPotentialMax    = "potential_max"
	RecruitPrefix         = "crew_member_"
	cultivationPrefix     = "crew_boost"
)

var amountPattern = regexp.MustCompile(`^([a-z_]+)\+(\d+)(%?)$`)

// ParseEffect turns an authored effect string such as "strength+2",
// "shield+30%" or "crew_boost_gold" into its typed form. Unknown names on
// special rewards become passive effects tagged with the name.
func ParseEffect(kind entities.RewardKind, raw string) (entities.Effect, error) {
	text := strings.ToLower(strings.TrimSpace(raw))
	eff := entities.Effect{Raw: raw}

	switch {
	case text == "":
		return eff, errors.InvalidArgument("effect is required")
	case text == EffectFullHeal:
		eff.Kind = entities.EffectHeal
		eff.Full = true
	case text == EffectPotentialMax:
		eff.Kind = entities.EffectPotential
		eff.Full = true
	case text == EffectAwakenedTrigger:
		eff.Kind = entities.EffectBreakthrough
		eff.Level = entities.BreakthroughAwakened
	case strings.HasPrefix(text, RecruitPrefix):
		eff.Kind = entities.EffectRecruit
		eff.Tag = strings.TrimPrefix(text, RecruitPrefix)
	case strings.HasPrefix(text, cultivationPrefix):
		eff.Kind = entities.EffectCultivation
	default:
		m := amountPattern.FindStringSubmatch(text)
		if m == nil {
			if kind != entities.RewardSpecial {
				return eff, errors.InvalidArgumentf("unrecognized %s effect %q", kind, raw)
			}
			eff.Kind = entities.EffectPassive
			eff.Tag = text
			break
		}
		amount, err := strconv.Atoi(m[2])
		if err != nil {
			return eff, errors.InvalidArgumentf("effect %q has a bad amount", raw)
		}
		eff.Amount = amount
		eff.Percent = m[3] == "%"
		if err := applyNamedAmount(&eff, m[1], kind); err != nil {
			return eff, err
		}
	}

	if err := checkKind(kind, eff); err != nil {
		return eff, err
	}
	return eff, nil
}

func applyNamedAmount(eff *entities.Effect, name string, kind entities.RewardKind) error {
	if stat, err := entities.ParseStat(name); err == nil {
		eff.Kind = entities.EffectStatGrant
		eff.Stat = stat
		return nil
	}

	switch name {
	case "all_stats", "all_combat_stats":
		eff.Kind = entities.EffectAllStats
	case "random_stat":
		eff.Kind = entities.EffectRandomStat
	case "potential":
		eff.Kind = entities.EffectPotential
	case "intelligence":
		eff.Kind = entities.EffectIntelligence
	case "damage":
		eff.Kind = entities.EffectDamageBonus
	case "heal":
		eff.Kind = entities.EffectHeal
		eff.Percent = true
	case "shield":
		eff.Kind = entities.EffectShield
	case "crew_stat":
		eff.Kind = entities.EffectCultivation
	default:
		if kind != entities.RewardSpecial {
			return errors.InvalidArgumentf("unrecognized %s effect %q", kind, eff.Raw)
		}
		eff.Kind = entities.EffectPassive
		eff.Tag = name
		eff.Amount = 0
		eff.Percent = false
	}
	return nil
}

var allowedEffects = map[entities.RewardKind][]entities.EffectKind{
	entities.RewardStat: {
		entities.EffectStatGrant,
		entities.EffectAllStats,
		entities.EffectRandomStat,
		entities.EffectPotential,
		entities.EffectIntelligence,
	},
	entities.RewardSkill:       {entities.EffectDamageBonus},
	entities.RewardSupport:     {entities.EffectHeal, entities.EffectShield},
	entities.RewardCultivation: {entities.EffectCultivation},
}

func checkKind(kind entities.RewardKind, eff entities.Effect) error {
	allowed, ok := allowedEffects[kind]
	if !ok {
		return nil
	}
	for _, k := range allowed {
		if k == eff.Kind {
			return nil
		}
	}
	return errors.InvalidArgumentf("%s reward cannot carry a %s effect (%q)", kind, eff.Kind, eff.Raw)
}

var statKeywords = []struct {
	stat  entities.Stat
	words []string
}{
	{entities.StatStrength, []string{"strength", "power"}},
	{entities.StatSpeed, []string{"speed", "agility"}},
	{entities.StatDurability, []string{"durability", "endurance"}},
}

// InferStat guesses a cultivation card's stat from its name. It returns
// false when the name mentions no stat; the stat is then rolled at grant time.
func InferStat(name string) (entities.Stat, bool) {
	lower := strings.ToLower(name)
	for _, k := range statKeywords {
		for _, w := range k.words {
			if strings.Contains(lower, w) {
				return k.stat, true
			}
		}
	}
	return "", false
}
