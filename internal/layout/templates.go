package layout

import "fmt"

// TemplateID names one of the canned hall layouts.
type TemplateID string

const (
	TemplateCinemaSmall  TemplateID = "cinema_small"
	TemplateCinemaLarge  TemplateID = "cinema_large"
	TemplateConference   TemplateID = "conference"
	TemplateWeddingSmall TemplateID = "wedding_small"
	TemplateWeddingLarge TemplateID = "wedding_large"
	TemplateClub         TemplateID = "club"
)

// TemplateInfo describes a template for catalog listings.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Templates returns the catalog of available hall templates.
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{TemplateCinemaSmall, "Small cinema", "5 rows, 2 blocks of 4 seats with a center aisle"},
		{TemplateCinemaLarge, "Large cinema", "10 rows, 2 blocks of 6 seats with a center aisle"},
		{TemplateConference, "Conference hall", "Stage, head table, two 10x8 seat blocks, side screens"},
		{TemplateWeddingSmall, "Wedding hall (small)", "6 round tables of 8, dance floor, head table"},
		{TemplateWeddingLarge, "Wedding hall (large)", "12 round tables of 10, dance floor, head table"},
		{TemplateClub, "Club / lounge", "Central dance floor, VIP booths, cocktail tables"},
	}
}

// BuildTemplate produces the full, centered item list for a template.
func BuildTemplate(id TemplateID) ([]PlacedItem, error) {
	switch id {
	case TemplateCinemaSmall:
		return cinemaTemplate(5, 4), nil
	case TemplateCinemaLarge:
		return cinemaTemplate(10, 6), nil
	case TemplateConference:
		return conferenceTemplate(), nil
	case TemplateWeddingSmall:
		return weddingTemplate(false), nil
	case TemplateWeddingLarge:
		return weddingTemplate(true), nil
	case TemplateClub:
		return clubTemplate(), nil
	}
	return nil, fmt.Errorf("unknown template: %s", id)
}

func cinemaTemplate(rows, colsPerSide int) []PlacedItem {
	blockWidth := float64(colsPerSide)*SeatPitch - SeatGap
	aisle := 60.0
	totalWidth := blockWidth*2 + aisle

	var items []PlacedItem
	items = append(items, DecorBlock(totalWidth/2, 0, KindDecorScreen, totalWidth*0.8, 20, "SCREEN", 0))

	startY := 100.0
	items = append(items, SeatBlock(0, startY, rows, colsPerSide, 'A', 1)...)
	items = append(items, SeatBlock(blockWidth+aisle, startY, rows, colsPerSide, 'A', colsPerSide+1)...)

	items = append(items, DecorBlock(totalWidth/2, startY+float64(rows)*40+50, KindDecorGeneric, 120, 40, "ENTRANCE", 0))
	return Center(items)
}

func conferenceTemplate() []PlacedItem {
	var items []PlacedItem
	items = append(items, DecorBlock(500, 0, KindDecorStage, 600, 100, "STAGE", 0))
	items = append(items, DecorBlock(500, 20, KindDecorGeneric, 400, 40, "HEAD TABLE", 0))

	rows, colsPerSide := 10, 8
	items = append(items, SeatBlock(100, 180, rows, colsPerSide, 'A', 1)...)
	items = append(items, SeatBlock(100+float64(colsPerSide)*SeatPitch+60, 180, rows, colsPerSide, 'A', colsPerSide+1)...)

	items = append(items, DecorBlock(50, 50, KindDecorScreen, 150, 10, "SCREEN L", 20))
	items = append(items, DecorBlock(950, 50, KindDecorScreen, 150, 10, "SCREEN R", -20))

	items = append(items, DecorBlock(500, 180+float64(rows)*40+50, KindDecorGeneric, 120, 40, "ENTRANCE", 0))
	return Center(items)
}

func weddingTemplate(large bool) []PlacedItem {
	var items []PlacedItem
	items = append(items, DecorBlock(800, 60, KindDecorStage, 400, 100, "LIVE STAGE", 0))
	items = append(items, DecorBlock(1080, 40, KindDecorGeneric, 100, 60, "DJ", 0))
	items = append(items, DecorBlock(800, 300, KindDecorGeneric, 400, 260, "DANCE FLOOR", 0))

	items = append(items, RectTableSet(800, 560, "M-HEAD", 4, false)...)

	var positions [][2]float64
	seatsPerTable := 8
	if large {
		seatsPerTable = 10
		positions = [][2]float64{
			{250, 170}, {480, 170}, {1120, 170}, {1350, 170},
			{250, 400}, {480, 400}, {1120, 400}, {1350, 400},
			{250, 630}, {480, 630}, {1120, 630}, {1350, 630},
		}
	} else {
		positions = [][2]float64{
			{350, 250}, {1250, 250},
			{350, 480}, {1250, 480},
			{350, 710}, {1250, 710},
		}
	}
	for i, pos := range positions {
		items = append(items, RoundTableSet(pos[0], pos[1], fmt.Sprintf("M%d", i+1), seatsPerTable)...)
	}

	items = append(items, DecorBlock(200, 800, KindDecorBar, 200, 60, "BAR", 0))
	items = append(items, DecorBlock(1400, 800, KindDecorGeneric, 250, 60, "BUFFET", 0))
	items = append(items, DecorBlock(800, 840, KindDecorGeneric, 150, 50, "ENTRANCE", 0))
	return Center(items)
}

func clubTemplate() []PlacedItem {
	var items []PlacedItem
	items = append(items, DecorBlock(800, 450, KindDecorGeneric, 300, 300, "DANCE", 0))
	items = append(items, DecorBlock(800, 50, KindDecorBar, 400, 80, "MAIN BAR", 0))
	items = append(items, DecorBlock(800, 250, KindDecorGeneric, 100, 50, "DJ", 0))

	for i := 0; i < 4; i++ {
		items = append(items, RectTableSet(150, 200+float64(i)*150, fmt.Sprintf("VIP-L%d", i+1), 4, true)...)
	}
	for i := 0; i < 4; i++ {
		items = append(items, RectTableSet(1450, 200+float64(i)*150, fmt.Sprintf("VIP-R%d", i+1), 4, true)...)
	}
	for i := 0; i < 6; i++ {
		items = append(items, RoundTableSet(400+float64(i)*160, 750, fmt.Sprintf("T%d", i+1), 2)...)
	}

	items = append(items, DecorBlock(800, 860, KindDecorGeneric, 120, 40, "ENTRANCE", 0))
	return Center(items)
}
