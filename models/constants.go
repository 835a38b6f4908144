package models

// Gender values accepted from clients. "Any" is only valid as a filter.
const (
	GenderAny    = "Any"
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Inbound socket events
const (
	EventJoinQueue   = "join_queue"
	EventSendMessage = "send_message"
	EventReportUser  = "report_user"
)

// Outbound socket events
const (
	EventMatchFound     = "match_found"
	EventReceiveMessage = "receive_message"
	EventPartnerLeft    = "partner_left"
)

// DailyFilterLimit caps filtered (non-random) match attempts per device per calendar day
const DailyFilterLimit = 10

// SystemSender is the sender handle on server-generated chat messages
const SystemSender = "System"

// In-band system notifications shown to users
const (
	MsgStrangerLeft = "The stranger has left the chat. 🚪"
	MsgDailyLimit   = "🚫 Daily Limit Reached! You can only use specific gender filters 10 times per day. Try 'Random Match'."
)
