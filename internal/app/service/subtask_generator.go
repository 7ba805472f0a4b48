package service

import (
	"strings"

	"github.com/AndrewAitken/simp/internal/core/domain"
)

type subtaskCategory string

const (
	subtasksPlanning       subtaskCategory = "planning"
	subtasksResearch       subtaskCategory = "research"
	subtasksDevelopment    subtaskCategory = "development"
	subtasksWriting        subtaskCategory = "writing"
	subtasksOrganizational subtaskCategory = "organizational"
	subtasksCleaning       subtaskCategory = "cleaning"
)

type keywordGroup struct {
	category subtaskCategory
	keywords []string
}

// Match order matters: the first group containing a keyword of the input
// wins, so "план уборки" classifies as planning, not cleaning.
var keywordGroups = []keywordGroup{
	{subtasksPlanning, []string{"план", "распис", "календар", "plan", "schedule", "roadmap"}},
	{subtasksResearch, []string{"исследов", "изуч", "анализ", "research", "study", "analy"}},
	{subtasksDevelopment, []string{"разработ", "код", "программ", "develop", "code", "build"}},
	{subtasksWriting, []string{"напис", "стать", "текст", "write", "draft", "blog"}},
	{subtasksOrganizational, []string{"организ", "встреч", "созвон", "organiz", "meeting", "call"}},
	{subtasksCleaning, []string{"убор", "почист", "помы", "clean", "tidy", "wash"}},
}

var subtaskTitles = map[subtaskCategory][5]string{
	subtasksPlanning: {
		"Define the end goal",
		"List the milestones",
		"Estimate time for each step",
		"Block time in the calendar",
		"Review the plan with fresh eyes",
	},
	subtasksResearch: {
		"Collect the key sources",
		"Skim and shortlist material",
		"Take structured notes",
		"Compare the options found",
		"Summarize the findings",
	},
	subtasksDevelopment: {
		"Sketch the solution outline",
		"Set up the working environment",
		"Implement the first version",
		"Test the result",
		"Clean up and refactor",
	},
	subtasksWriting: {
		"Gather reference material",
		"Outline the structure",
		"Write the first draft",
		"Edit for clarity",
		"Proofread the final text",
	},
	subtasksOrganizational: {
		"Clarify what needs to happen",
		"Identify who is involved",
		"Prepare the materials",
		"Confirm time and place",
		"Follow up afterwards",
	},
	subtasksCleaning: {
		"Clear away the clutter",
		"Sort items into keep and discard",
		"Wipe down the surfaces",
		"Put everything back in place",
		"Take out the trash",
	},
}

func classifySubtaskText(text string) subtaskCategory {
	lowered := strings.ToLower(text)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lowered, keyword) {
				return group.category
			}
		}
	}
	return subtasksOrganizational
}

// GenerateSubtasksList classifies the free text into one of six fixed
// categories and returns that category's five subtasks with fresh ids. It is
// pure apart from id generation: identical input always yields titles from
// the same category.
func (s *TaskService) GenerateSubtasksList(text string) []domain.SubTask {
	titles := subtaskTitles[classifySubtaskText(text)]
	out := make([]domain.SubTask, 0, len(titles))
	for _, title := range titles {
		out = append(out, domain.SubTask{ID: s.newID(), Title: title})
	}
	return out
}
