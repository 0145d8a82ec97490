package event

import "errors"

var ErrInvalidScope = errors.New("invalid event scope")

type Scope string

const (
	ScopeEntertainment Scope = "entertainment"
	ScopeEnlightenment Scope = "enlightenment"
	ScopeEducation     Scope = "education"
)

var scopeLabels = map[Scope]string{
	ScopeEntertainment: "Развлечение",
	ScopeEnlightenment: "Просвещение",
	ScopeEducation:     "Образование",
}

func NewScope(s string) (Scope, error) {
	scope := Scope(s)
	if !scope.IsValid() {
		return "", ErrInvalidScope
	}
	return scope, nil
}

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	_, ok := scopeLabels[s]
	return ok
}

// Label is the display string used in tables and exports.
func (s Scope) Label() string {
	return scopeLabels[s]
}

func Scopes() []Scope {
	return []Scope{ScopeEntertainment, ScopeEnlightenment, ScopeEducation}
}
