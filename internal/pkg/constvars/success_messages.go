package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	CSRFTokenIssuedSuccess = "csrf token issued"
	SignupSuccess          = "user created successfully"
	LoginSuccess           = "successfully login"
	LogoutSuccess          = "successfully logout"
	RefreshTokenSuccess    = "token refreshed"

	GetProfileSuccess   = "get profile successfully"
	GetStatsSuccess     = "get stats successfully"
	DeleteUserSuccess   = "user deleted successfully"
	ExportUserSuccess   = "export created successfully"
	HealthCheckSuccess  = "service is healthy"
	GetMoodsSuccess     = "get moods successfully"
	GetPromptSuccess    = "get prompt successfully"
	GetHeatmapSuccess   = "get heatmap successfully"
	GetMoodTrendSuccess = "get mood trend successfully"

	CreateJournalSuccessMessage = "journal created successfully"
	UpdateJournalSuccessMessage = "journal updated successfully"
	FindJournalSuccessMessage   = "get journal successfully"
	FindJournalsSuccessMessage  = "get journals successfully"
	DeleteJournalSuccessMessage = "journal deleted successfully"

	CreateEntrySuccessMessage = "entry created successfully"
	UpdateEntrySuccessMessage = "entry updated successfully"
	FindEntrySuccessMessage   = "get entry successfully"
	FindEntriesSuccessMessage = "get entries successfully"
	DeleteEntrySuccessMessage = "entry deleted successfully"
)
