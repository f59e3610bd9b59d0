package db

import (
	"strings"
	"time"

	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/brianvoe/gofakeit/v7"
)

// CreateRandomPage returns a page with revisions newest first.
func CreateRandomPage(faker *gofakeit.Faker, revisions int) page.Page {
	newest := faker.DateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	title := faker.Sentence(3)
	history := make([]page.PageData, revisions)
	for i := range history {
		history[i] = page.PageData{
			PagePresentation: page.PagePresentation{
				Language: "en",
				Title:    title,
				Content:  strings.Join([]string{faker.Sentence(6), faker.Sentence(8)}, "\n"),
			},
			DateAndTime: page.FormatDateAndTime(newest.Add(-time.Duration(i) * time.Hour)),
		}
	}
	return page.Page{ID: faker.UUID(), PageDataHistory: history}
}

func CreateRandomPageSet(faker *gofakeit.Faker) page.PageSet {
	frontPage := CreateRandomPage(faker, faker.IntRange(1, 3))
	sandBox := CreateRandomPage(faker, 1)
	pageSet := page.NewPageSet()
	pageSet.FrontPage = &frontPage
	pageSet.SandBox = &sandBox
	for i := faker.IntRange(1, 4); i > 0; i-- {
		pageSet.Pages = append(pageSet.Pages, CreateRandomPage(faker, faker.IntRange(1, 4)))
	}
	return pageSet
}
