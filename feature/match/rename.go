package match

// effectRenames maps codex status effect names to the names the guide
// stores them under. The two sites disagree cosmetically on a fixed set
// of effects, mostly temporary variants the guide suffixes "[temp]".
var effectRenames = map[string]string{
	"Bloodshift":       "Bloodshift [temp]",
	"Brynhild":         "Call of Brynhild",
	"Darkblight":       "Darkblight [temp]",
	"Dark Immune":      "Dark Immune [temp]",
	"Dark Sigil":       "Dark Sigil [temp]",
	"Defending":        "Defending [Magical]",
	"Dragon Sigil":     "Dragon Sigil [temp]",
	"Drakeblight":      "Drakeblight [temp]",
	"Dumbr":            "Call of Dumbr",
	"Earthblight":      "Earthblight [temp]",
	"Earth Immune":     "Earth Immune [temp]",
	"Earth Sigil":      "Earth Sigil [temp]",
	"Fireblight":       "Fireblight [temp]",
	"Fire Immune":      "Fire Immune [temp]",
	"Fire Sigil":       "Fire Sigil [temp]",
	"Foresight ↑":      "Foresight ↑ [temp]",
	"Foresight ↓":      "Foresight ↓ [temp]",
	"Holyblight":       "Holyblight [temp]",
	"Holy Immune":      "Holy Immune [temp]",
	"Holy Sigil":       "Holy Sigil [temp]",
	"Idun":             "Call of Idun",
	"Jord":             "Call of Jord",
	"Lightningblight":  "Lightningblight [temp]",
	"Lightning Immune": "Lightning Immune [temp]",
	"Lightning Sigil":  "Lightning Sigil [temp]",
	"Lyon's Mark":      "Lyon's Mark [temp]",
	"Skadi":            "Call of Skadi",
	"Target ↑":         "Target ↑ [temp]",
	"Target ↑↑":        "Target ↑↑ [temp]",
	"Target ↓":         "Target ↓ [temp]",
	"Target ↓↓":        "Target ↓↓ [temp]",
	"Tree of Demise":   "Tree of Demise [temp]",
	"Tree of Life":     "Tree of Life [temp]",
	"Waterblight":      "Waterblight [temp]",
	"Water Immune":     "Water Immune [temp]",
	"Water Sigil":      "Water Sigil [temp]",
	"Windblight":       "Windblight [temp]",
	"Windswept":        "Windswept [temp]",
}

// EffectNameToGuide translates a codex status effect name to its guide
// name. Names absent from the rename table pass through unchanged.
func EffectNameToGuide(name string) string {
	if renamed, ok := effectRenames[name]; ok {
		return renamed
	}
	return name
}
