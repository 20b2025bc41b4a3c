package crew

import (
	"context"
	"encoding/json"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/louisbranch/crewportrait/internal/crew/worldbuilder"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

// RosterDrafter drafts crews offline from wartime name tables. It reads a
// crew size and a few nationality keywords from the description.
type RosterDrafter struct {
	mu sync.Mutex
	wb *worldbuilder.WorldBuilder
}

// NewRosterDrafter creates a drafter drawing from rng.
func NewRosterDrafter(rng *rand.Rand) *RosterDrafter {
	return &RosterDrafter{wb: worldbuilder.New(rng)}
}

// Name identifies the drafter.
func (r *RosterDrafter) Name() string { return "roster" }

type originHint struct {
	keywords  []string
	origin    worldbuilder.Origin
	ethnicity Ethnicity
}

var originHints = []originHint{
	{keywords: []string{"tuskegee", "caribbean", "jamaica", "trinidad", "west indian", "african"}, origin: worldbuilder.OriginCaribbean, ethnicity: EthnicityAfrican},
	{keywords: []string{"chinese", "japanese", "hong kong", "asian", "burma"}, origin: worldbuilder.OriginChinese, ethnicity: EthnicityAsian},
	{keywords: []string{"egypt", "leban", "iraq", "palestin", "arab", "middle east"}, origin: worldbuilder.OriginMiddleEastern, ethnicity: EthnicityMiddleEastern},
	{keywords: []string{"spanish", "mexic", "argentin", "chile", "cuba", "latin", "hispanic"}, origin: worldbuilder.OriginSpanish, ethnicity: EthnicityHispanic},
}

var (
	crewSizePattern = regexp.MustCompile(`\b(\d{1,2})\b`)
	femaleKeywords  = []string{"waaf", "women", "woman", "female"}
	baseKeywords    = []string{"ground crew", "groundcrew", "base crew", "mechanic", "cook", "medic"}
	dutyByRole      = map[Role]string{
		RolePilot:          "a pilot",
		RoleGunner:         "an air gunner",
		RoleNavigator:      "a navigator",
		RoleBombAimer:      "a bomb aimer",
		RoleFlightEngineer: "a flight engineer",
		RoleRadioOperator:  "a wireless operator",
	}
	dutyByJob = map[Job]string{
		JobAAFCook:       "the station cook",
		JobFieldMechanic: "a field mechanic",
		JobFieldEngineer: "a field engineer",
		JobRAFMedic:      "a medical orderly",
		JobAAFLabour:     "an airfield labourer",
	}
)

// Draft returns a JSON array in the same shape a language model produces.
func (r *RosterDrafter) Draft(ctx context.Context, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lower := strings.ToLower(description)

	r.mu.Lock()
	members := r.draft(lower)
	r.mu.Unlock()

	raw, err := json.Marshal(members)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *RosterDrafter) draft(lower string) []Member {
	count := requestedSize(lower)
	if count == 0 {
		count = 5 + r.wb.Intn(6)
	}
	origin, ethnicity := worldbuilder.OriginBritish, EthnicityEuropean
	for _, hint := range originHints {
		if containsAny(lower, hint.keywords) {
			origin, ethnicity = hint.origin, hint.ethnicity
			break
		}
	}
	female := containsAny(lower, femaleKeywords)
	base := containsAny(lower, baseKeywords)

	members := make([]Member, 0, count)
	for i := 0; i < count; i++ {
		gender := catalog.GenderMale
		if female {
			gender = catalog.GenderFemale
		}
		first := r.wb.FirstName(origin, female)
		m := Member{
			FirstName: first,
			LastName:  r.wb.LastName(origin),
			BirthDate: r.wb.BirthDate().Format(birthDateLayout),
			Gender:    gender,
			Ethnicity: ethnicity,
			Role:      RoleNone,
			Job:       JobNone,
		}
		if r.wb.Intn(3) == 0 {
			m.Nickname = r.wb.Nickname()
		}
		var duty string
		if base {
			m.Class = ClassBaseCrew
			m.Job = jobs[i%len(jobs)]
			duty = dutyByJob[m.Job]
		} else {
			m.Class = ClassAirCrew
			m.Role = roles[i%len(roles)]
			duty = dutyByRole[m.Role]
			m.SkillRanks = r.rollSkills(m.Role)
		}
		m.Biography = map[string]string{"en": r.wb.Biography(first, r.wb.Hometown(origin), duty)}
		members = append(members, m)
	}
	return members
}

// rollSkills gives the role's own discipline a head start.
func (r *RosterDrafter) rollSkills(role Role) SkillRanks {
	roll := func() int { return r.wb.Intn(MaxSkillRank + 1) }
	ranks := SkillRanks{
		Flying:      roll(),
		Shooting:    roll(),
		Bombing:     roll(),
		Endurance:   roll(),
		Engineering: roll(),
		Navigating:  roll(),
	}
	boost := func(v int) int { return min(MaxSkillRank, v+2) }
	switch role {
	case RolePilot:
		ranks.Flying = boost(ranks.Flying)
	case RoleGunner:
		ranks.Shooting = boost(ranks.Shooting)
	case RoleNavigator:
		ranks.Navigating = boost(ranks.Navigating)
	case RoleBombAimer:
		ranks.Bombing = boost(ranks.Bombing)
	case RoleFlightEngineer:
		ranks.Engineering = boost(ranks.Engineering)
	case RoleRadioOperator:
		ranks.Endurance = boost(ranks.Endurance)
	}
	return ranks
}

func requestedSize(lower string) int {
	match := crewSizePattern.FindStringSubmatch(lower)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 {
		return 0
	}
	return min(n, MaxCrewSize)
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
