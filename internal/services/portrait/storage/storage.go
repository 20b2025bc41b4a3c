// Package storage defines persistence contracts for generated crews.
package storage

import (
	"context"

	"github.com/louisbranch/crewportrait/internal/crew"
	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
)

var (
	// ErrNotFound indicates a requested crew is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
	// ErrPageTokenInvalid indicates a page token this store did not issue.
	ErrPageTokenInvalid = apperrors.New(apperrors.CodePageTokenInvalid, "page token is invalid")
)

const (
	// DefaultPageSize applies when a list request leaves the size unset.
	DefaultPageSize = 50
	// MaxPageSize caps one page of results.
	MaxPageSize = 200
)

// MemberRecord is one stored crew member with the crew it belongs to.
type MemberRecord struct {
	CrewID   string
	Position int
	Portrait crew.Portrait
}

// MemberQuery selects crew members. Filter is an AIP-160 expression.
type MemberQuery struct {
	Filter    string
	PageSize  int
	PageToken string
}

// MemberPage stores one page of crew members.
type MemberPage struct {
	Members       []MemberRecord
	NextPageToken string
}

// CrewStore persists generated crews.
type CrewStore interface {
	PutCrew(ctx context.Context, c crew.Crew) error
	GetCrew(ctx context.Context, crewID string) (crew.Crew, error)
	ListCrewMembers(ctx context.Context, query MemberQuery) (MemberPage, error)
}

// ClampPageSize applies the default and maximum page sizes.
func ClampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}
