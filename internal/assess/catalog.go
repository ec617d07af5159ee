package assess

import "math"

// Catalog holds the loaded assessment definitions in display order.
type Catalog struct {
	order []string
	byID  map[string]Definition
}

// NewCatalog validates each definition's band table and indexes by ID.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if err := ValidateBands(d); err != nil {
			return nil, err
		}
		c.order = append(c.order, d.ID)
		c.byID[d.ID] = d
	}
	return c, nil
}

// Get returns the definition for id, or a not-found error.
func (c *Catalog) Get(id string) (Definition, error) {
	d, ok := c.byID[id]
	if !ok {
		return Definition{}, NewNotFoundError("assessment not found")
	}
	return d, nil
}

// List returns definitions in catalog order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ratioBand is a published threshold: totals at or above MinRatio of the
// maximum score fall in this band. Bands are listed highest ratio first.
type ratioBand struct {
	MinRatio       float64
	Interpretation string
	Guidance       string
}

// bandsFromRatios converts ratio thresholds into inclusive integer score
// ranges for a given maximum total. The lowest band always reaches down to
// zero so the table covers every reachable score.
func bandsFromRatios(maxTotal int, ratios []ratioBand) []Band {
	bands := make([]Band, 0, len(ratios))
	upper := maxTotal
	for _, rb := range ratios {
		lower := int(math.Ceil(rb.MinRatio*float64(maxTotal) - 1e-9))
		if lower < 0 {
			lower = 0
		}
		bands = append(bands, Band{Min: lower, Max: upper, Interpretation: rb.Interpretation, Guidance: rb.Guidance})
		upper = lower - 1
	}
	return bands
}

// BuiltinDefinitions returns the toolkit's four self-assessments.
func BuiltinDefinitions() []Definition {
	defs := []Definition{
		{
			ID:   "purpose-alignment",
			Name: "Purpose Alignment Check",
			Questions: []string{
				"I can clearly articulate why my work or daily actions matter.",
				"I regularly connect my choices to a bigger mission or vision.",
				"I feel a sense of fulfillment when I think about my life direction.",
				"I can describe how my strengths serve my purpose.",
			},
			Scale: Scale{Min: 1, Max: 5, Labels: map[int]string{
				1: "Strongly disagree", 3: "Neutral", 5: "Strongly agree",
			}},
			ScoringLogic: "Add the scores together. 80%+ of the maximum suggests strong alignment, " +
				"60–79% indicates developing alignment, and below 60% suggests clarity work would be beneficial.",
		},
		{
			ID:   "energy-vitality",
			Name: "Energy & Vitality Scan",
			Questions: []string{
				"I wake up with a sense of energy most days.",
				"My routines support my physical and emotional well-being.",
				"I have sustainable boundaries that protect my energy.",
				"I feel resilient when stress shows up.",
			},
			Scale: Scale{Min: 1, Max: 5, Labels: map[int]string{
				1: "Rarely true", 3: "Sometimes true", 5: "Almost always true",
			}},
			ScoringLogic: "Calculate the total. 75%+ of the maximum indicates strong vitality, " +
				"55–74% indicates moderate vitality, and below 55% suggests a recharge plan.",
		},
		{
			ID:   "values-action",
			Name: "Values in Action",
			Questions: []string{
				"My calendar reflects what I say I value most.",
				"I can identify one value I honored this week.",
				"I feel proud of how I show up for the people who matter.",
				"I make decisions that align with my long-term values.",
			},
			Scale: Scale{Min: 1, Max: 5, Labels: map[int]string{
				1: "Not yet", 3: "Sometimes", 5: "Consistently",
			}},
			ScoringLogic: "Sum the ratings. 80%+ of the maximum signals strong values alignment, " +
				"65–79% suggests growth opportunities, and below 65% indicates a need to realign.",
		},
		{
			ID:   "clarity-commitment",
			Name: "Clarity & Commitment Compass",
			Questions: []string{
				"I know the next three actions that move me toward my purpose.",
				"I feel committed to following through on my goals.",
				"I review my progress and adjust regularly.",
				"I have support systems that keep me accountable.",
			},
			Scale: Scale{Min: 1, Max: 5, Labels: map[int]string{
				1: "Unclear", 3: "Somewhat clear", 5: "Very clear",
			}},
			ScoringLogic: "Add the responses. 70%+ of the maximum indicates strong clarity and commitment, " +
				"50–69% indicates partial clarity, and below 50% suggests creating a concrete plan.",
		},
	}

	ratios := map[string][]ratioBand{
		"purpose-alignment": {
			{0.8, "Strong alignment", "You have a clear sense of purpose. Focus on sustaining your momentum."},
			{0.6, "Developing alignment", "You are on the path; consider clarifying what matters most."},
			{0.0, "Needs clarity", "Explore purpose discovery exercises to build clarity."},
		},
		"energy-vitality": {
			{0.75, "High vitality", "Your energy practices are working. Keep reinforcing them."},
			{0.55, "Moderate vitality", "Strengthen one daily ritual that restores your energy."},
			{0.0, "Low vitality", "Prioritize rest, nutrition, and boundaries to rebuild energy."},
		},
		"values-action": {
			{0.8, "Aligned values", "Your actions consistently reflect your values. Keep celebrating wins."},
			{0.65, "Growing alignment", "Choose one value to intentionally practice this week."},
			{0.0, "Realignment needed", "Identify where misalignment happens and make a small corrective shift."},
		},
		"clarity-commitment": {
			{0.7, "Clear and committed", "Maintain your plan and revisit it weekly."},
			{0.5, "Partially clear", "Clarify your next steps and identify one accountability partner."},
			{0.0, "Plan needed", "Draft a simple action plan with milestones and support."},
		},
	}
	for i := range defs {
		defs[i].Bands = bandsFromRatios(defs[i].MaxTotal(), ratios[defs[i].ID])
	}
	return defs
}
