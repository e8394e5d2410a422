package store

import "github.com/go-while/go-matal/internal/models"

// SeedProverbs returns the five example records written to a fresh
// store on first boot. Returned as a new slice each call so callers
// can not modify the seed data through a shared backing array.
func SeedProverbs() []models.Proverb {
	return []models.Proverb{
		{
			ID:            1,
			TextDari:      "قطره قطره دریا می‌شود",
			TextPashto:    "څاڅکی څاڅکی سیند جوړیږي",
			TranslationEn: "Drop by drop, a river is formed.",
			Meaning:       "Small, steady efforts add up to great results.",
			Category:      "perseverance",
		},
		{
			ID:            2,
			TextDari:      "با یک دست دو تربوز گرفته نمی‌شود",
			TextPashto:    "په یو لاس کې دوه هندواڼې نه نیول کیږي",
			TranslationEn: "You cannot hold two watermelons in one hand.",
			Meaning:       "Taking on two big tasks at once means doing neither well.",
			Category:      "wisdom",
		},
		{
			ID:            3,
			TextDari:      "هر که بامش بیش، برفش بیشتر",
			TextPashto:    "چا چې بام لوی وي، واوره یې ډېره وي",
			TranslationEn: "The bigger the roof, the more snow it gathers.",
			Meaning:       "Greater wealth brings greater burdens.",
			Category:      "wealth",
		},
		{
			ID:            4,
			TextDari:      "آب که از سر گذشت، چه یک نیزه چه صد نیزه",
			TextPashto:    "اوبه چې له سره تېرې شي، یوه نیزه که سل نیزې یو شان دي",
			TranslationEn: "Once the water is over your head, one spear's depth or a hundred is the same.",
			Meaning:       "Past a certain point of trouble, the degree no longer matters.",
			Category:      "fate",
		},
		{
			ID:            5,
			TextDari:      "جوینده یابنده است",
			TextPashto:    "لټوونکی موندونکی دی",
			TranslationEn: "The seeker is the finder.",
			Meaning:       "Whoever keeps searching will eventually succeed.",
			Category:      "perseverance",
		},
	}
}
