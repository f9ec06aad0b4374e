package domain

import "strings"

// Trust levels
const (
	MaxLevel     = 60 // Implementor; bypasses builder lists
	LevelHero    = 51
	LevelBuilder = 52 // Default minimum trust for recedit
)

// Crafting skill names - stable identifiers shared with the skill subsystem
const (
	SkillSkinning       = "skinning"
	SkillButchering     = "butchering"
	SkillBlacksmithing  = "blacksmithing"
	SkillLeatherworking = "leatherworking"
	SkillTailoring      = "tailoring"
	SkillWoodworking    = "woodworking"
	SkillCooking        = "cooking"
	SkillAlchemy        = "alchemy"
	SkillJewelcrafting  = "jewelcrafting"
)

// CraftingSkills lists every skill a recipe may require, in lookup order
var CraftingSkills = []string{
	SkillSkinning,
	SkillButchering,
	SkillBlacksmithing,
	SkillLeatherworking,
	SkillTailoring,
	SkillWoodworking,
	SkillCooking,
	SkillAlchemy,
	SkillJewelcrafting,
}

// LookupSkill resolves a crafting skill by case-insensitive prefix
func LookupSkill(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	for _, s := range CraftingSkills {
		if strings.HasPrefix(s, name) {
			return s, true
		}
	}
	return "", false
}

// Default material prototype vnums. Worlds override these through the
// materials file (see config.MaterialVNUMs).
const (
	DefaultVNUMHide          VNUM = 3100
	DefaultVNUMMeat          VNUM = 3101
	DefaultVNUMTannedLeather VNUM = 3110
	DefaultVNUMIronIngot     VNUM = 3111
	DefaultVNUMBronzeIngot   VNUM = 3112
	DefaultVNUMLinenScraps   VNUM = 3113
)
