package enums

type ReportReason string

const (
	ReportReasonInappropriate  ReportReason = "inappropriate_content"
	ReportReasonFakeProfile    ReportReason = "fake_profile"
	ReportReasonStolenIdentity ReportReason = "stolen_identity"
	ReportReasonImpersonation  ReportReason = "impersonation"
	ReportReasonSpam           ReportReason = "spam"
	ReportReasonHarassment     ReportReason = "harassment"
	ReportReasonOther          ReportReason = "other"
)

func IsValidReportReason(value string) bool {
	switch ReportReason(value) {
	case ReportReasonInappropriate,
		ReportReasonFakeProfile,
		ReportReasonStolenIdentity,
		ReportReasonImpersonation,
		ReportReasonSpam,
		ReportReasonHarassment,
		ReportReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func IsValidReportStatus(value string) bool {
	switch ReportStatus(value) {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}
