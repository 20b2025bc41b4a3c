package crew

import (
	"fmt"
	"strings"
)

// BuildPrompt asks for a JSON array of crew members matching description.
func BuildPrompt(description string) string {
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, string(role))
	}
	jobNames := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobNames = append(jobNames, string(job))
	}
	ethnicityNames := make([]string, 0, len(skinRanges))
	for _, e := range Ethnicities() {
		ethnicityNames = append(ethnicityNames, fmt.Sprintf("%q", string(e)))
	}

	return fmt.Sprintf(`You are a crew generator for a WW2 aviation game. Generate a crew based on this description: %q

IMPORTANT: Return ONLY valid JSON, no markdown formatting, no code blocks, no explanations.

Requirements:
- Generate an appropriate number of crew members (if not specified, generate 5-10)
- MAXIMUM %d crew members total - never generate more than %d
- All birth dates must be before 1922 (valid format: YYYY-MM-DD)
- Use authentic names appropriate for the nationality/squadron mentioned
- Class must be either "AirCrew" or "BaseCrew"
- For AirCrew: Role must be one of: %s
- For BaseCrew: Job must be one of: %s
- Skill ranks must be 0-%d (only for AirCrew)
- Gender must be "Male" or "Female"
- Create brief but authentic biographies (2-3 sentences)
- Add "Ethnicity" field based on the nationality/description. Valid values: %s
  Examples: Polish -> European, Tuskegee Airmen -> African, Japanese -> Asian

Return a JSON array with this EXACT structure:
%s

Generate the crew now:`,
		strings.TrimSpace(description),
		MaxCrewSize, MaxCrewSize,
		strings.Join(roleNames, ", "),
		strings.Join(jobNames, ", "),
		MaxSkillRank,
		strings.Join(ethnicityNames, ", "),
		promptExample,
	)
}

const promptExample = `[
  {
    "FirstName": "Jan",
    "LastName": "Kowalski",
    "Nickname": "Eagle",
    "BirthDate": "1918-05-15",
    "Gender": "Male",
    "Ethnicity": "European",
    "Class": "AirCrew",
    "Role": "Pilot",
    "Job": "None",
    "Biography": {"en": "Brief biography here..."},
    "SkillRanks": {"Flying": 4, "Shooting": 3, "Bombing": 2, "Endurance": 5, "Engineering": 2, "Navigating": 3}
  }
]`
