package bot

// Result describes how an invocation ended
type Result string

// results
const (
	ResultAborted           Result = "aborted"
	ResultIgnored           Result = "ignored"
	ResultWebhookRegistered Result = "webhook_registered"
	ResultQuipAdded         Result = "quip_added"
	ResultQuipsListed       Result = "quips_listed"
	ResultQuipRemoved       Result = "quip_removed"
	ResultBroadcast         Result = "broadcast"
	ResultSuppressed        Result = "suppressed"
	ResultNothingToSend     Result = "nothing_to_send"
)

// Diagnostic is a swallowed collaborator failure
type Diagnostic struct {
	Stage string
	Err   error
}

func (d Diagnostic) String() string {
	return d.Stage + ": " + d.Err.Error()
}

// Outcome of a single invocation. Callers always treat it as a success so the
// platform never redelivers an update; failures only show up in Diagnostics
// and the logs.
type Outcome struct {
	InvocationID string
	Result       Result
	Reason       string
	Diagnostics  []Diagnostic
}

// Ok is always true
func (o Outcome) Ok() bool {
	return true
}

// Failed reports whether a collaborator call failed at stage
func (o Outcome) Failed(stage string) bool {
	for _, d := range o.Diagnostics {
		if d.Stage == stage {
			return true
		}
	}
	return false
}
