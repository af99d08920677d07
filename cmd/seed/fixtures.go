package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"pulpit/internal/domain/models"
	"pulpit/internal/domain/services"
)

type churchFixture struct {
	request services.CreateChurchRequest
}

type speakerFixture struct {
	churchName string
	request    services.CreateSpeakerRequest
}

type sermonFixture struct {
	speakerName string
	request     services.CreateSermonRequest
}

type featuredFixture struct {
	churchName  string
	sermonTitle string
	sortOrder   int
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func stylePtr(v models.TeachingStyle) *models.TeachingStyle     { return &v }
func approachPtr(v models.BibleApproach) *models.BibleApproach  { return &v }
func envPtr(v models.EnvironmentStyle) *models.EnvironmentStyle { return &v }

// builtinChurches is the default dataset used when no CSV is supplied
func builtinChurches() []churchFixture {
	return []churchFixture{
		{request: services.CreateChurchRequest{
			Name:         "Grace Community Church",
			Denomination: "Non-denominational",
			Description:  strPtr("A large contemporary congregation with weekly expository teaching."),
			Website:      strPtr("https://gracecommunity.example.org"),
			FoundedYear:  intPtr(1978),
			ServiceTimes: models.JSONMap{"sunday": []string{"9:00", "11:00"}},
		}},
		{request: services.CreateChurchRequest{
			Name:         "St. Andrew's Cathedral",
			Denomination: "Anglican",
			Description:  strPtr("Historic downtown parish with traditional liturgy."),
			Website:      strPtr("https://standrews.example.org"),
			FoundedYear:  intPtr(1892),
			ServiceTimes: models.JSONMap{"sunday": []string{"8:00", "10:30"}},
		}},
		{request: services.CreateChurchRequest{
			Name:         "Riverside Chapel",
			Denomination: "Baptist",
			Description:  strPtr("A mid-size church blending traditional hymns with modern worship."),
			FoundedYear:  intPtr(1954),
		}},
	}
}

// builtinSpeakers covers every combination the matcher distinguishes
func builtinSpeakers() []speakerFixture {
	return []speakerFixture{
		{churchName: "Grace Community Church", request: services.CreateSpeakerRequest{
			Name:             "David Reyes",
			Title:            "Senior Pastor",
			Bio:              strPtr("Verse-by-verse teacher with a background in biblical languages."),
			YearsOfService:   intPtr(22),
			TeachingStyle:    stylePtr(models.TeachingAcademic),
			BibleApproach:    approachPtr(models.BibleMoreScripture),
			EnvironmentStyle: envPtr(models.EnvironmentContemporary),
			IsRecommended:    true,
			SpeakingTopics: []models.SpeakingTopic{
				{Name: "Old Testament survey", Category: "teaching"},
			},
		}},
		{churchName: "Grace Community Church", request: services.CreateSpeakerRequest{
			Name:             "Hannah Osei",
			Title:            "Teaching Pastor",
			YearsOfService:   intPtr(9),
			TeachingStyle:    stylePtr(models.TeachingRelatable),
			BibleApproach:    approachPtr(models.BibleMoreApplication),
			EnvironmentStyle: envPtr(models.EnvironmentContemporary),
		}},
		{churchName: "St. Andrew's Cathedral", request: services.CreateSpeakerRequest{
			Name:             "Michael Okafor",
			Title:            "Rector",
			YearsOfService:   intPtr(17),
			TeachingStyle:    stylePtr(models.TeachingAcademic),
			BibleApproach:    approachPtr(models.BibleBalanced),
			EnvironmentStyle: envPtr(models.EnvironmentTraditional),
			IsRecommended:    true,
		}},
		{churchName: "Riverside Chapel", request: services.CreateSpeakerRequest{
			Name:             "Sarah Lindqvist",
			Title:            "Lead Pastor",
			YearsOfService:   intPtr(12),
			TeachingStyle:    stylePtr(models.TeachingRelatable),
			BibleApproach:    approachPtr(models.BibleMoreApplication),
			EnvironmentStyle: envPtr(models.EnvironmentBlended),
		}},
		{churchName: "Riverside Chapel", request: services.CreateSpeakerRequest{
			Name:             "James Whitfield",
			Title:            "Associate Pastor",
			YearsOfService:   intPtr(5),
			TeachingStyle:    stylePtr(models.TeachingBalanced),
			BibleApproach:    approachPtr(models.BibleBalanced),
			EnvironmentStyle: envPtr(models.EnvironmentBlended),
		}},
		{request: services.CreateSpeakerRequest{
			Name:             "Ruth Adebayo",
			Title:            "Itinerant Evangelist",
			TeachingStyle:    stylePtr(models.TeachingRelatable),
			BibleApproach:    approachPtr(models.BibleMoreScripture),
			EnvironmentStyle: envPtr(models.EnvironmentTraditional),
			IsRecommended:    true,
		}},
	}
}

func builtinSermons() []sermonFixture {
	return []sermonFixture{
		{speakerName: "David Reyes", request: services.CreateSermonRequest{
			Title:       "The Covenant Thread",
			Description: strPtr("Tracing the covenant promises from Genesis to Revelation."),
			MediaURL:    "https://media.example.org/sermons/covenant-thread.mp3",
		}},
		{speakerName: "Hannah Osei", request: services.CreateSermonRequest{
			Title:    "Faith on Monday Morning",
			MediaURL: "https://media.example.org/sermons/faith-monday.mp3",
		}},
		{speakerName: "Sarah Lindqvist", request: services.CreateSermonRequest{
			Title:    "Sixty Seconds on Grace",
			MediaURL: "https://media.example.org/clips/sixty-seconds-grace.mp4",
			IsClip:   true,
		}},
	}
}

// builtinFeaturedSermons pins the full-length sermons onto their home
// church's shelf. The clip is left out on purpose.
func builtinFeaturedSermons() []featuredFixture {
	return []featuredFixture{
		{churchName: "Grace Community Church", sermonTitle: "The Covenant Thread", sortOrder: 0},
		{churchName: "Grace Community Church", sermonTitle: "Faith on Monday Morning", sortOrder: 1},
	}
}

// loadChurchesCSV reads church fixtures from a CSV file with a header row:
// name,denomination,description,website
func loadChurchesCSV(path string) ([]churchFixture, error) {
	rows, err := readCSV(path, 4)
	if err != nil {
		return nil, err
	}

	var fixtures []churchFixture
	for _, row := range rows {
		req := services.CreateChurchRequest{
			Name:         row[0],
			Denomination: row[1],
		}
		if row[2] != "" {
			req.Description = strPtr(row[2])
		}
		if row[3] != "" {
			req.Website = strPtr(row[3])
		}
		fixtures = append(fixtures, churchFixture{request: req})
	}
	return fixtures, nil
}

// loadSpeakersCSV reads speaker fixtures from a CSV file with a header row:
// name,title,church,teaching_style,bible_approach,environment_style,is_recommended
func loadSpeakersCSV(path string) ([]speakerFixture, error) {
	rows, err := readCSV(path, 7)
	if err != nil {
		return nil, err
	}

	var fixtures []speakerFixture
	for i, row := range rows {
		teaching := models.TeachingStyle(row[3])
		approach := models.BibleApproach(row[4])
		env := models.EnvironmentStyle(row[5])
		if !teaching.Valid() || !approach.Valid() || !env.Valid() {
			return nil, fmt.Errorf("row %d: invalid attribute values %q %q %q", i+2, row[3], row[4], row[5])
		}

		recommended, _ := strconv.ParseBool(row[6])

		fixtures = append(fixtures, speakerFixture{
			churchName: row[2],
			request: services.CreateSpeakerRequest{
				Name:             row[0],
				Title:            row[1],
				TeachingStyle:    &teaching,
				BibleApproach:    &approach,
				EnvironmentStyle: &env,
				IsRecommended:    recommended,
			},
		})
	}
	return fixtures, nil
}

// readCSV reads all records after the header, enforcing a column count
func readCSV(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columns

	// skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
