package constants

// NSQ topics for dustbin events
const (
	TopicDustbinCreated         = "dustbin.created"
	TopicDustbinFillUpdated     = "dustbin.fill_updated"
	TopicDustbinReportSubmitted = "dustbin.report_submitted"
)
