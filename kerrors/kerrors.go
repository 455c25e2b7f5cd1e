// Package kerrors defines the flat error taxonomy shared by every KST core
// package. Simple, non-parameterized failures use plain sentinel values
// (errors.Is-friendly, same convention as the rest of this codebase); failures
// that must carry a witness use Error, a single typed struct so callers can
// errors.As into one shape regardless of which package raised it.
package kerrors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the stable error categories from the KST error
// taxonomy. Kind values are never renamed once published.
type Kind string

const (
	KindInvalidItem              Kind = "InvalidItem"
	KindDuplicateItemID          Kind = "DuplicateItemId"
	KindEmptyDomain              Kind = "EmptyDomain"
	KindUnknownItem              Kind = "UnknownItem"
	KindCyclicPrerequisites      Kind = "CyclicPrerequisites"
	KindNotAQuasiOrder           Kind = "NotAQuasiOrder"
	KindAxiomViolation           Kind = "AxiomViolation"
	KindInaccessibleState        Kind = "InaccessibleState"
	KindInconsistentObservation  Kind = "InconsistentObservation"
	KindAlreadyAsked             Kind = "AlreadyAsked"
	KindNoRemainingItems         Kind = "NoRemainingItems"
	KindParameterOutOfRange      Kind = "ParameterOutOfRange"
	KindEMDiverged               Kind = "EMDiverged"
	KindSingularFundamentalMatrix Kind = "SingularFundamentalMatrix"
)

// Error is the single carrier type for every parameterized error kind in the
// taxonomy. Witness holds whatever evidence the caller needs to act on the
// failure (a cycle, a counterexample pair, an offending state) and is kind-
// specific; callers that care inspect it after an errors.As match.
type Error struct {
	Kind    Kind
	Message string
	Witness any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, kerrors.New(KindX, "", nil)) match on Kind alone,
// ignoring Message/Witness, which is how callers are expected to probe kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

// New builds an *Error of the given kind carrying an optional witness.
func New(kind Kind, message string, witness any) *Error {
	return &Error{Kind: kind, Message: message, Witness: witness}
}

// Sentinel errors for session-protocol misuse (spec §4.3/§7): these have no
// useful witness beyond "it happened here", so a plain sentinel is enough.
var (
	// ErrAlreadyAsked is returned when observe() targets an item already asked.
	ErrAlreadyAsked = New(KindAlreadyAsked, "item already asked in this session", nil)

	// ErrNoRemainingItems is returned when select_item is called with no
	// unasked items left in the domain.
	ErrNoRemainingItems = New(KindNoRemainingItems, "no remaining items to ask", nil)

	// ErrSessionComplete is returned when observe() is called on a session
	// already in the Complete/Failed state.
	ErrSessionComplete = errors.New("session is already complete")
)

// Of reports whether err carries the given Kind, walking wrapped errors.
func Of(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
