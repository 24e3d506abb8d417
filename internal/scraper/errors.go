package scraper

import (
	"errors"
	"fmt"
)

// Fatal run-level failures. When one of these surfaces, the sejours table is
// left untouched: the replace step never ran.
var (
	// ErrTokenIntrouvable means the listing page carried no access token
	ErrTokenIntrouvable = errors.New("token introuvable")

	// ErrAucunCottage means the listing page carried no cottage elements
	ErrAucunCottage = errors.New("aucun cottage trouvé")
)

// StageError wraps a fatal error with the pipeline stage it happened in
type StageError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Err
}

// ErrorMessage renders a run failure the way the comparator UI displays it
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenIntrouvable):
		return "❌ Token introuvable."
	case errors.Is(err, ErrAucunCottage):
		return "❌ Aucun cottage trouvé."
	default:
		return "❌ Erreur : " + err.Error()
	}
}
