package domain

// Defaults used when the environment does not override them.
const (
	DefaultCompanyName      = "WIS Software"
	DefaultGeneralChannel   = "general"
	DefaultLoggingChannel   = "hr"
	DefaultChannelTTLDays   = 3
	DefaultDaysInAdvance    = 7
	DefaultChannelMessage   = "@%username% is having a birthday soon, so let's discuss a present."
	DefaultCronSchedule     = "0 0 7 * * *"
	DefaultTenorSearchTerms = "darthvaderbirthday,futuramabirthday,gameofthronesbirthday,harrypotterbirthday,kingofthehillbirthday,lanadelreybirthday,madhatterbirthday,pulpfictionbirthday,rickandmortybirthday,rocketbirthday,sheldonbirthday,simpsonbirthday,thesimpsonsbirthday,tmntbirthday"
)

// SelfReference lets a caller name themselves in a command.
const SelfReference = "me"

// ChannelNameMaxLen is the Slack limit for conversation names.
const ChannelNameMaxLen = 80
