package metrics

// Metrics records what the bot does.
type Metrics interface {
	IncReportRuns(report string)
	IncTrashTalkLines(kind string)
	IncFetchFailures(resource string)
	IncNotifSent(channel string)
	IncNotifFailed(channel string)
}
