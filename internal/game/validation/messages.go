package validation

import "strings"

// messageTemplates maps each rule code to its human-readable message.
// Placeholders of the form {name} are interpolated from context params.
var messageTemplates = map[Code]string{
	CodeWarbandNameRequired:              "Warband name is required",
	CodeInvalidPointLimit:                "Point limit must be 75 or 125",
	CodeWeirdoNameRequired:               "Weirdo name is required",
	CodeAttributesIncomplete:             "All five attributes must be set to a valid level",
	CodeCloseCombatWeaponRequired:        "At least one close combat weapon is required",
	CodeRangedWeaponRequired:             "Firepower {firepower} requires at least one ranged weapon",
	CodeFirepowerRequiredForRangedWeapon: "Ranged weapons require firepower of 2d8 or 2d10",
	CodeEquipmentLimitExceeded:           "Carrying {count} equipment items, limit is {limit}",
	CodeTrooperPointLimitExceeded:        "Trooper costs {cost} points, limit is {limit}",
	CodeLeaderTraitInvalid:               "Only the leader may have a leader trait",
	CodeMultiple25PointWeirdos:           "Only one weirdo may cost 21-25 points, found {count}",
	CodeWarbandPointLimitExceeded:        "Warband costs {cost} points, limit is {limit}",
}

// Message renders the message for code, interpolating {key} placeholders
// from params. Unknown codes render as the code itself so a finding is
// never silently empty.
func Message(code Code, params map[string]string) string {
	tmpl, ok := messageTemplates[code]
	if !ok {
		return string(code)
	}
	if len(params) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
