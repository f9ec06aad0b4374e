package crafting

// ==================== Player Messages ====================

// Refusal messages
const (
	MsgCraftWhat          = "Craft what?"
	MsgUnknownRecipeFmt   = "You don't know how to craft '%s'."
	MsgDidYouMeanFmt      = " Did you mean '%s'?"
	MsgBadProductFmt      = "Error: recipe %d produces unknown object %d."
	MsgLevelTooLowFmt     = "You must be level %d to craft %s."
	MsgSkillUnlearnedFmt  = "You know nothing about %s."
	MsgSkillTooLowFmt     = "You are not skilled enough at %s to craft %s."
	MsgNoStationTypeFmt   = "You need a %s nearby to craft %s."
	MsgNoStationObjectFmt = "You need %s nearby to craft %s."
	MsgMissingMaterialFmt = "You need %d of %s to craft %s."
	MsgSalvageWhat        = "Salvage what?"
	MsgNotCarryingFmt     = "You aren't carrying '%s'."
	MsgNothingToSalvage   = "There is nothing worth salvaging from %s."
	MsgBadSalvageMatFmt   = "Error: salvage material %d of %s does not exist."
)

// Outcome messages
const (
	MsgCraftSuccessFmt     = "You craft %s (%s quality)."
	MsgCraftFailureFmt     = "You fail to craft %s and waste the materials."
	MsgRoomCraftSuccessFmt = "%s crafts %s."
	MsgRoomCraftFailureFmt = "%s tries to craft %s but fails."
	MsgSalvageFmt          = "You salvage %s and recover %s."
	MsgRoomSalvageFmt      = "%s salvages %s."
	MsgMultipleFmt         = "%d x %s"
)

// ==================== Salvage Yield ====================

const (
	// UnskilledYieldPct is the share recovered when the required skill was never learned
	UnskilledYieldPct = 25

	// BaseYieldPct is where learned yield starts before skill contributes
	BaseYieldPct = 25
)

// ==================== Log Messages ====================

const (
	LogMsgCraftCalled    = "Craft called"
	LogMsgCraftEvaluated = "Craft evaluated"
	LogMsgCraftRefused   = "Craft refused"
	LogMsgSalvageCalled  = "Salvage called"
	LogMsgSalvageRefused = "Salvage refused"
	LogMsgSalvageDone    = "Salvage completed"
)
