package session

// Category is one onboarding entry point with its symptom options.
type Category struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
}

// catalog lists the onboarding categories in display order. The trailing
// "Other" symptom admits free-text selections.
var catalog = []Category{
	{
		Title:       "I am feeling...",
		Description: "Choose this if you are experiencing any discomfort like pain or tension",
		Symptoms: []string{
			"Fatigued / Weak / Shaky",
			"Dizzy / Lightheaded",
			"Pain",
			"Nauseous / Queasy",
			"Fever / Chills",
			"Numbness / Tingling",
			"Other",
		},
	},
	{
		Title:       "I am having trouble with...",
		Description: "Choose this if you have functional issues like breathing or moving",
		Symptoms: []string{
			"Breathing Issues (Shortness of Breath, Wheezing, Chest Tightness)",
			"Sleeping Issues (Trouble Falling Asleep, Staying Asleep, Unrested Sleep)",
			"Eating Issues (Loss of Appetite, Difficulty Swallowing)",
			"Moving Issues (Weakness, Stiffness, Painful Joints, Coordination Problems)",
			"Speaking / Thinking Clearly",
			"Bladder / Bowel Control Issues",
			"Vision / Hearing Changes",
			"Other",
		},
	},
	{
		Title:       "I am noticing...",
		Description: "Choose this if you see physical changes in your body like a rash or weight loss",
		Symptoms: []string{
			"Unexplained Weight Loss / Gain",
			"Swelling (Hands, Feet, Face, Abdomen, Joints)",
			"Skin Changes (Rash, Bruising, Peeling)",
			"Lumps, Hair Loss, or Other Growths",
			"Urine / Bowel Changes (Color, Frequency, Pain, Constipation, Diarrhea, Blood in Stool)",
			"Other",
		},
	},
}

// Catalog returns the onboarding categories in display order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// ValidSelection reports whether the category exists and the symptom is
// one of its options. Any symptom text is accepted when "Other" was
// picked, so a free-text symptom validates as long as it is non-empty.
func ValidSelection(category, symptom string) bool {
	if symptom == "" {
		return false
	}
	for _, c := range catalog {
		if c.Title != category {
			continue
		}
		for _, s := range c.Symptoms {
			if s == symptom {
				return true
			}
		}
		// Unlisted symptom text counts as an "Other" selection.
		return true
	}
	return false
}
