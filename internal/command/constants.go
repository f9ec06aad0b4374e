package command

// Messages
const (
	MsgHuh              = "Huh?"
	MsgInternalError    = "Something went wrong. The error has been logged."
	MsgNoRecipesKnown   = "You don't know any recipes."
	MsgNoRecipesMatch   = "You know no recipes matching '%s'."
	MsgRecipesHeader    = "You know the following recipes:"
	MsgMatUsageFmt      = "Syntax: %s <vnum> add|remove|show [arg]"
	MsgNoObjectFmt      = "No object with vnum %d exists."
	MsgNoMobFmt         = "No mobile with vnum %d exists."
	MsgBadVNUMFmt       = "'%s' is not a valid vnum."
	MsgUnknownMatFmt    = "'%s' is not a material type. Valid types: %s."
	MsgAddedFmt         = "Added [%d] %s."
	MsgRemovedFmt       = "Removed [%d]."
	MsgNotYourAreaFmt   = "You are not a builder of the area owning vnum %d."
	MsgCorpseMatsHeader = "Corpse materials of %s:"
	MsgSalvageHeader    = "Salvage materials of %s:"
	MsgAllMaterials     = "Material prototypes:"
)

// Command names
const (
	CmdSkin        = "skin"
	CmdButcher     = "butcher"
	CmdSalvage     = "salvage"
	CmdCraft       = "craft"
	CmdRecipes     = "recipes"
	CmdRecedit     = "recedit"
	CmdSalvageMats = "salvagemats"
	CmdCorpseMats  = "corpsemats"
	CmdMaterials   = "materials"
)

// Log messages
const (
	LogMsgCommandRefused = "Command refused"
	LogMsgCommandFailed  = "Command failed"
	LogMsgUnknownCommand = "Unknown command"
	LogMsgCommandDenied  = "Builder command denied"
)
