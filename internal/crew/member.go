// Package crew drafts WW2 aircrew and ground crew from a free-text
// description and dresses every member in a generated portrait.
package crew

import (
	"strings"
	"time"

	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

// MaxCrewSize caps how many members one draft keeps.
const MaxCrewSize = 10

// MaxSkillRank is the highest rank a skill can hold.
const MaxSkillRank = 6

// Class splits flying crew from base staff.
type Class string

const (
	ClassAirCrew  Class = "AirCrew"
	ClassBaseCrew Class = "BaseCrew"
)

// Role is an AirCrew position.
type Role string

const (
	RoleNone           Role = "None"
	RolePilot          Role = "Pilot"
	RoleGunner         Role = "Gunner"
	RoleNavigator      Role = "Navigator"
	RoleBombAimer      Role = "BombAimer"
	RoleFlightEngineer Role = "FlightEngineer"
	RoleRadioOperator  Role = "RadioOperator"
)

// Job is a BaseCrew trade.
type Job string

const (
	JobNone          Job = "None"
	JobAAFCook       Job = "AAFCook"
	JobFieldMechanic Job = "FieldMechanic"
	JobFieldEngineer Job = "FieldEngineer"
	JobRAFMedic      Job = "RAFMedic"
	JobAAFLabour     Job = "AAFLabour"
)

var (
	roles = []Role{RolePilot, RoleGunner, RoleNavigator, RoleBombAimer, RoleFlightEngineer, RoleRadioOperator}
	jobs  = []Job{JobAAFCook, JobFieldMechanic, JobFieldEngineer, JobRAFMedic, JobAAFLabour}
)

// Roles lists the AirCrew roles a draft may use.
func Roles() []Role {
	return append([]Role(nil), roles...)
}

// Jobs lists the BaseCrew jobs a draft may use.
func Jobs() []Job {
	return append([]Job(nil), jobs...)
}

// SkillRanks rates an airman from 0 to MaxSkillRank per discipline.
type SkillRanks struct {
	Flying      int `json:"Flying"`
	Shooting    int `json:"Shooting"`
	Bombing     int `json:"Bombing"`
	Endurance   int `json:"Endurance"`
	Engineering int `json:"Engineering"`
	Navigating  int `json:"Navigating"`
}

// Member is the biographical record of one crew member.
type Member struct {
	ID          string            `json:"Id"`
	CreatorName string            `json:"CreatorName"`
	FirstName   string            `json:"FirstName"`
	LastName    string            `json:"LastName"`
	Nickname    string            `json:"Nickname"`
	BirthDate   string            `json:"BirthDate"`
	Gender      catalog.Gender    `json:"Gender"`
	Ethnicity   Ethnicity         `json:"Ethnicity"`
	Class       Class             `json:"Class"`
	Role        Role              `json:"Role"`
	Job         Job               `json:"Job"`
	Biography   map[string]string `json:"Biography"`
	SkillRanks  SkillRanks        `json:"SkillRanks"`
}

// Portrait pairs a member with the character drawn for them.
type Portrait struct {
	Character appearance.Character `json:"character"`
	Metadata  Member               `json:"metadata"`
}

// Crew is one generated crew.
type Crew struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	Members     []Portrait `json:"crew"`
}

const (
	defaultFirstName = "Unknown"
	defaultBirthDate = "1920-01-01"
	birthDateLayout  = "2006-01-02"
)

// latestBirthDate is the first date a crew member may not be born on.
var latestBirthDate = time.Date(1922, time.January, 1, 0, 0, 0, 0, time.UTC)

// Normalize fills defaults and coerces every field into its allowed domain.
// The ID is left alone; the service assigns it.
func Normalize(m Member) Member {
	m.CreatorName = strings.TrimSpace(m.CreatorName)
	m.FirstName = strings.TrimSpace(m.FirstName)
	if m.FirstName == "" {
		m.FirstName = defaultFirstName
	}
	m.LastName = strings.TrimSpace(m.LastName)
	m.Nickname = strings.TrimSpace(m.Nickname)
	m.BirthDate = normalizeBirthDate(m.BirthDate)

	if gender, ok := catalog.ParseGender(string(m.Gender)); ok && gender != catalog.GenderAny {
		m.Gender = gender
	} else {
		m.Gender = catalog.GenderMale
	}
	m.Ethnicity = ParseEthnicity(string(m.Ethnicity))

	switch {
	case strings.EqualFold(string(m.Class), string(ClassBaseCrew)):
		m.Class = ClassBaseCrew
	default:
		m.Class = ClassAirCrew
	}
	m.Role = normalizeRole(m.Role)
	m.Job = normalizeJob(m.Job)

	if m.Biography == nil {
		m.Biography = map[string]string{"en": ""}
	} else {
		bio := make(map[string]string, len(m.Biography))
		for lang, text := range m.Biography {
			bio[strings.TrimSpace(lang)] = strings.TrimSpace(text)
		}
		m.Biography = bio
	}
	m.SkillRanks = clampSkills(m.SkillRanks)
	return m
}

func normalizeBirthDate(raw string) string {
	parsed, err := time.Parse(birthDateLayout, strings.TrimSpace(raw))
	if err != nil || !parsed.Before(latestBirthDate) {
		return defaultBirthDate
	}
	return parsed.Format(birthDateLayout)
}

func normalizeRole(raw Role) Role {
	for _, role := range roles {
		if strings.EqualFold(string(raw), string(role)) {
			return role
		}
	}
	if strings.EqualFold(string(raw), string(RoleNone)) {
		return RoleNone
	}
	return RolePilot
}

func normalizeJob(raw Job) Job {
	for _, job := range jobs {
		if strings.EqualFold(string(raw), string(job)) {
			return job
		}
	}
	return JobNone
}

func clampSkills(s SkillRanks) SkillRanks {
	return SkillRanks{
		Flying:      clampRank(s.Flying),
		Shooting:    clampRank(s.Shooting),
		Bombing:     clampRank(s.Bombing),
		Endurance:   clampRank(s.Endurance),
		Engineering: clampRank(s.Engineering),
		Navigating:  clampRank(s.Navigating),
	}
}

func clampRank(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSkillRank {
		return MaxSkillRank
	}
	return v
}
