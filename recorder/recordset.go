package recorder

// RecordSet is the read surface shared by the sampled Recorder and the
// EventRecorder. The export layer renders any mix of the two through it.
type RecordSet interface {
	ID() string
	Headers() []string
	Records() []Record
}

var (
	_ RecordSet = (*Recorder)(nil)
	_ RecordSet = (*EventRecorder)(nil)
)
