package recedit

// Entry messages
const (
	MsgUsage           = "Syntax: recedit <vnum> | recedit create <vnum> | recedit list"
	MsgNotAuthorized   = "You are not authorized to edit recipes."
	MsgBadVNUMFmt      = "'%s' is not a valid vnum."
	MsgNoRecipeFmt     = "There is no recipe with vnum %d."
	MsgRecipeExistsFmt = "Vnum %d is already assigned to a recipe."
	MsgNoAreaFmt       = "Vnum %d is not inside any area."
	MsgNotBuilderFmt   = "You are not a builder of %s."
	MsgEditingFmt      = "Editing recipe [%d] %s."
	MsgCreatedFmt      = "Recipe [%d] created."
	MsgNoRecipes       = "No recipes defined."
)

// Sub-command messages
const (
	MsgSyntaxFmt         = "Syntax: %s"
	MsgOK                = "Ok."
	MsgDone              = "Leaving the recipe editor."
	MsgUnknownSkillFmt   = "There is no crafting skill called '%s'."
	MsgUnknownStationFmt = "'%s' is not a workstation type. Valid types: %s."
	MsgNotStationFmt     = "Object %d is not a workstation."
	MsgUnknownDiscFmt    = "'%s' is not a discovery type. Valid types: %s."
	MsgNoObjectFmt       = "No object with vnum %d exists."
	MsgNotMaterialFmt    = "%s is not a crafting material."
	MsgTooManyInputs     = "A recipe holds at most %d ingredients."
	MsgNoIngredientFmt   = "There is no ingredient #%s."
	MsgCommandsHeader    = "Recipe editor commands:"
)

// Quantity bounds for input and output
const (
	MinQuantity = 1
	MaxQuantity = 100
)
