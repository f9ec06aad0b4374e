package harvest

// Refusal messages
const (
	MsgWhatFmt         = "%s what?"
	MsgTargetNotHere   = "You don't see that here."
	MsgNotCorpseFmt    = "You can only %s corpses."
	MsgAlreadyDoneFmt  = "That corpse has already been %s."
	MsgNothingToFmt    = "There is nothing to %s on that corpse."
	MsgNeedToolFmt     = "You need to wield a %s to %s."
	MsgSkillUnknownFmt = "You don't know how to %s."
)

// Outcome messages
const (
	MsgSuccessFmt     = "You %s %s and obtain %s."
	MsgRoomFmt        = "%s %s %s."
	MsgFailureFmt     = "You try to %s %s but ruin it."
	MsgRoomFailureFmt = "%s tries to %s %s but ruins it."
)

// Log messages
const (
	LogMsgExtractCalled  = "Extract called"
	LogMsgExtractRefused = "Extract refused"
	LogMsgExtractDone    = "Extract completed"
)
