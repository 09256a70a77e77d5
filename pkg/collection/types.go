package collection

import (
	"context"

	"business-admin/pkg/ordering"
)

// Item is one entry of an ordered collection. F carries the domain fields.
type Item[F any] struct {
	ID        string
	SortOrder int
	IsActive  bool
	Fields    F
}

// Patch is a partial update. Fields is keyed by the JSON name of the domain field;
// nil pointers leave the corresponding attribute untouched.
type Patch struct {
	Fields    map[string]any
	SortOrder *int
	IsActive  *bool
}

// Remote is the CRUD API a collection mirrors. parent scopes every call to one tenant.
type Remote[F any] interface {
	List(ctx context.Context, parent string) ([]Item[F], error)
	Create(ctx context.Context, parent string, item Item[F]) (Item[F], error)
	Update(ctx context.Context, parent, id string, patch Patch) (Item[F], error)
	Delete(ctx context.Context, parent, id string) error
}

// BatchReorderer is implemented by remotes that persist a whole ordering in one call.
type BatchReorderer interface {
	Reorder(ctx context.Context, parent string, positions []ordering.Position) error
}

// Level is the severity of a Notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a user-visible message produced by a collection operation.
type Notification struct {
	Level   Level
	Op      Op
	Message string
	Details []string
	Err     error
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Rejection is implemented by errors the server returned inside a success:false envelope.
// Their message is shown verbatim instead of the generic transport message.
type Rejection interface {
	error
	RejectionMessage() string
	RejectionDetails() []string
}

// Op names a collection operation.
type Op string

const (
	OpLoad    Op = "load"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpToggle  Op = "toggle"
	OpDelete  Op = "delete"
	OpReorder Op = "reorder"
)

// TxnState is the lifecycle of one mutation.
type TxnState int

const (
	TxnPending TxnState = iota
	TxnCommitted
	TxnRolledBack
)

func (s TxnState) String() string {
	switch s {
	case TxnPending:
		return "pending"
	case TxnCommitted:
		return "committed"
	case TxnRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

// Txn records one mutation and how it settled.
type Txn struct {
	Seq    uint64
	Op     Op
	ItemID string
	State  TxnState
	Err    error
}
