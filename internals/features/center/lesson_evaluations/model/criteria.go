package model

type CriterionOption struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

type Criterion struct {
	Code    string            `json:"code"`
	Name    string            `json:"name"`
	Options []CriterionOption `json:"options"`
}

func options(labels ...string) []CriterionOption {
	out := make([]CriterionOption, len(labels))
	for i, l := range labels {
		out[i] = CriterionOption{Score: i + 1, Label: l}
	}
	return out
}

// Criteria is the rubric teachers score against, in display order.
var Criteria = []Criterion{
	{Code: "focus_score", Name: "Focus", Options: options(
		"Not focused: often distracted during the lesson",
		"Rarely focused: drifts off now and then, needs reminders",
		"Fairly focused: stays on task for most of the lesson",
		"Well focused: attentive and seldom distracted",
		"Fully focused: concentrates throughout and takes in the material actively",
	)},
	{Code: "punctuality_score", Name: "Punctuality", Options: options(
		"Almost always late or leaves early",
		"Often late or leaves early",
		"Sometimes late or leaves early",
		"Rarely late: nearly always on time",
		"Always on time, never leaves early",
	)},
	{Code: "interaction_score", Name: "Interaction", Options: options(
		"Passive: asks nothing and does not join discussion",
		"Little interaction: answers only when asked",
		"Average: joins in when encouraged, asks when needed",
		"Good: asks questions and offers opinions unprompted",
		"Excellent: always active and helps drive the lesson",
	)},
	{Code: "project_idea_score", Name: "Project ideas", Options: options(
		"No ideas for the project",
		"Weak ideas: vague, impractical or off topic",
		"Average ideas: workable but not yet original",
		"Good ideas: clear and with room to grow",
		"Excellent ideas: original, creative and highly practical",
	)},
	{Code: "critical_thinking_score", Name: "Critical thinking", Options: options(
		"Accepts everything without analysis",
		"Struggles to question or analyse a problem",
		"Asks questions but analysis stays shallow",
		"Analyses and weighs information and argues a position",
		"Questions constantly and looks at problems from many angles",
	)},
	{Code: "teamwork_score", Name: "Teamwork", Options: options(
		"Refuses to cooperate or gets in the way of the group",
		"Takes part reluctantly and contributes little",
		"Willing to work in a group but not yet proactive",
		"Active in the group and supports teammates",
		"Connects the team and lifts its spirit",
	)},
	{Code: "idea_sharing_score", Name: "Idea sharing", Options: options(
		"Keeps ideas to themself",
		"Shares only when asked and hesitates to speak",
		"Willing to share but lacks confidence",
		"Presents ideas clearly on their own initiative",
		"Presents ideas coherently and persuasively and encourages others",
	)},
	{Code: "creativity_score", Name: "Creativity", Options: options(
		"Only follows what is given, no new ideas",
		"Finds it hard to come up with new solutions",
		"Produces some new ideas with limits",
		"Often brings original ideas and approaches",
		"Consistently inventive with original solutions and products",
	)},
	{Code: "communication_score", Name: "Communication", Options: options(
		"Struggles to express ideas and causes misunderstanding",
		"Awkward and unclear",
		"Gets the message across but not always coherently",
		"Clear, coherent and easy to follow",
		"Effective, persuasive and inspiring",
	)},
	{Code: "homework_score", Name: "Homework", Options: options(
		"Hardly ever does or hands in homework",
		"Does homework carelessly",
		"Complete but of average quality",
		"Complete, good quality and on time",
		"Always complete, outstanding and goes beyond the task",
	)},
	{Code: "old_knowledge_score", Name: "Prior knowledge", Options: options(
		"Has forgotten or never understood earlier material",
		"Partial and hazy grasp of earlier material",
		"Remembers and understands the basics",
		"Understands earlier material well and applies it",
		"Masters earlier material and extends it",
	)},
	{Code: "new_knowledge_score", Name: "New knowledge", Options: options(
		"Great difficulty understanding new material",
		"Slow, needs time and help to understand",
		"Understands new material but needs revision",
		"Picks up new material quickly and effectively",
		"Absorbs new material very quickly and can analyse it",
	)},
}

func IsCriterion(code string) bool {
	for _, c := range Criteria {
		if c.Code == code {
			return true
		}
	}
	return false
}
