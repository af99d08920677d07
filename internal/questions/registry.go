// Package questions holds the onboarding questionnaire definitions. The
// static questions are compiled in from an embedded YAML file; the
// speakers question is filled with live options by the caller.
package questions

import (
	"embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"pulpit/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// SpeakersQuestionID identifies the dynamically populated question.
const SpeakersQuestionID = "speakers"

// Registry holds the ordered question definitions. Immutable after
// NewRegistry; WithSpeakerOptions returns copies.
type Registry struct {
	questions []models.Question
}

type questionsFile struct {
	Questions []models.Question `yaml:"questions"`
}

// NewRegistry loads the embedded question definitions.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/questions.yaml")
	if err != nil {
		return nil, fmt.Errorf("read questions config: %w", err)
	}

	var file questionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal questions config: %w", err)
	}

	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("questions config is empty")
	}

	found := false
	for _, q := range file.Questions {
		if q.ID == SpeakersQuestionID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("questions config is missing the %q question", SpeakersQuestionID)
	}

	return &Registry{questions: file.Questions}, nil
}

// WithSpeakerOptions returns the question list with the speakers
// question's options built from the given speakers. Speaker order is
// preserved (callers pass primary-key order).
func (r *Registry) WithSpeakerOptions(speakers []models.Speaker) []models.Question {
	result := make([]models.Question, len(r.questions))
	copy(result, r.questions)

	options := make([]models.QuestionOption, 0, len(speakers))
	for i := range speakers {
		options = append(options, speakerOption(&speakers[i]))
	}

	for i := range result {
		if result[i].ID == SpeakersQuestionID {
			result[i].Options = options
		}
	}

	return result
}

func speakerOption(speaker *models.Speaker) models.QuestionOption {
	churchName := "No Church"
	if speaker.Church != nil {
		churchName = speaker.Church.Name
	}

	var subtitle *string
	if speaker.Title != "" {
		title := speaker.Title
		subtitle = &title
	}

	return models.QuestionOption{
		Value:             strconv.FormatInt(speaker.ID, 10),
		Label:             speaker.Name,
		Subtitle:          subtitle,
		ChurchName:        &churchName,
		ProfilePictureURL: speaker.ProfilePictureURL,
	}
}
