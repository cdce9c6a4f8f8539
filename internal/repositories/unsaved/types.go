package unsaved

// PushInput contains the identifier to append
type PushInput struct {
	EventID    string
	Identifier string
}

type ListInput struct {
	EventID string
}

// ListOutput contains the ledger in order
type ListOutput struct {
	Identifiers []string
}

type CountInput struct {
	EventID string
}

type CountOutput struct {
	Count int
}

type BeginReplayInput struct {
	EventID string
}

// BeginReplayOutput contains the identifiers to replay in order
type BeginReplayOutput struct {
	Identifiers []string
}

// CommitReplayInput contains the identifiers that must stay in the ledger
type CommitReplayInput struct {
	EventID   string
	Remaining []string
}

type DrainInput struct {
	EventID string
}

// DrainOutput contains the removed identifiers in order
type DrainOutput struct {
	Identifiers []string
}

type RestoreInput struct {
	EventID     string
	Identifiers []string
}

type ClearInput struct {
	EventID string
}
