package enums

type FeedbackType string

const (
	FeedbackTypeBugReport       FeedbackType = "bug_report"
	FeedbackTypeFeatureRequest  FeedbackType = "feature_request"
	FeedbackTypeGeneralFeedback FeedbackType = "general_feedback"
	FeedbackTypeComplaint       FeedbackType = "complaint"
)

func IsValidFeedbackType(value string) bool {
	switch FeedbackType(value) {
	case FeedbackTypeBugReport, FeedbackTypeFeatureRequest, FeedbackTypeGeneralFeedback, FeedbackTypeComplaint:
		return true
	}
	return false
}

type FeedbackStatus string

const (
	FeedbackStatusNew        FeedbackStatus = "new"
	FeedbackStatusInProgress FeedbackStatus = "in_progress"
	FeedbackStatusClosed     FeedbackStatus = "closed"
)

func IsValidFeedbackStatus(value string) bool {
	switch FeedbackStatus(value) {
	case FeedbackStatusNew, FeedbackStatusInProgress, FeedbackStatusClosed:
		return true
	}
	return false
}
