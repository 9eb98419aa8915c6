package validation

// Code identifies a single game rule that a warband or weirdo can violate.
type Code string

const (
	// CodeWarbandNameRequired fires when a warband name is empty after trimming.
	CodeWarbandNameRequired Code = "WARBAND_NAME_REQUIRED"
	// CodeInvalidPointLimit fires when the point limit is not a playable size.
	CodeInvalidPointLimit Code = "INVALID_POINT_LIMIT"
	// CodeWeirdoNameRequired fires when a weirdo name is empty after trimming.
	CodeWeirdoNameRequired Code = "WEIRDO_NAME_REQUIRED"
	// CodeAttributesIncomplete fires when any attribute is missing or not an
	// enumerated level.
	CodeAttributesIncomplete Code = "ATTRIBUTES_INCOMPLETE"
	// CodeCloseCombatWeaponRequired fires when a weirdo carries no close
	// combat weapon.
	CodeCloseCombatWeaponRequired Code = "CLOSE_COMBAT_WEAPON_REQUIRED"
	// CodeRangedWeaponRequired fires when firepower is set but no ranged
	// weapon is carried.
	CodeRangedWeaponRequired Code = "RANGED_WEAPON_REQUIRED"
	// CodeFirepowerRequiredForRangedWeapon fires when ranged weapons are
	// carried with firepower None.
	CodeFirepowerRequiredForRangedWeapon Code = "FIREPOWER_REQUIRED_FOR_RANGED_WEAPON"
	// CodeEquipmentLimitExceeded fires when a weirdo carries more equipment
	// than its type and warband ability allow.
	CodeEquipmentLimitExceeded Code = "EQUIPMENT_LIMIT_EXCEEDED"
	// CodeTrooperPointLimitExceeded fires when a trooper exceeds its point cap.
	CodeTrooperPointLimitExceeded Code = "TROOPER_POINT_LIMIT_EXCEEDED"
	// CodeLeaderTraitInvalid fires when a trooper has a leader trait.
	CodeLeaderTraitInvalid Code = "LEADER_TRAIT_INVALID"
	// CodeMultiple25PointWeirdos fires when more than one weirdo occupies the
	// 21-25 point special slot.
	CodeMultiple25PointWeirdos Code = "MULTIPLE_25_POINT_WEIRDOS"
	// CodeWarbandPointLimitExceeded fires when the roster total exceeds the
	// warband point limit.
	CodeWarbandPointLimitExceeded Code = "WARBAND_POINT_LIMIT_EXCEEDED"
)
