package metadata

const (
	RunStatusDoing uint = 1
	RunStatusDone  uint = 2
	RunStatusFail  uint = 3
)

func RunStatusName(status uint) string {
	switch status {
	case RunStatusDoing:
		return "doing"
	case RunStatusDone:
		return "done"
	case RunStatusFail:
		return "fail"
	default:
		return "unknown"
	}
}
