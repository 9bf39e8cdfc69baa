package layout

import (
	"fmt"
	"math"
)

// SeatBlock generates a rows x cols grid of seats. Row labels count up from
// startRow ('A' gives A, B, C, ...), column numbers from startCol, and seat
// ids combine the two ("A1", "B12"). Seats sit on a 35-unit pitch from the
// given origin.
func SeatBlock(originX, originY float64, rows, cols int, startRow byte, startCol int) []PlacedItem {
	items := make([]PlacedItem, 0, rows*cols)
	for r := 0; r < rows; r++ {
		rowLetter := string(startRow + byte(r))
		for c := 0; c < cols; c++ {
			items = append(items, PlacedItem{
				ID:   fmt.Sprintf("%s%d", rowLetter, startCol+c),
				Kind: KindSeat,
				X:    originX + float64(c)*SeatPitch,
				Y:    originY + float64(r)*SeatPitch,
				W:    SeatSize,
				H:    SeatSize,
			})
		}
	}
	return items
}

// RoundTableSet generates one round table centered at (cx, cy) with
// seatCount seats spread evenly on a circle around it. Each seat is rotated
// to face the table. Seat ids are "<tableID>-1" .. "<tableID>-N".
func RoundTableSet(cx, cy float64, tableID string, seatCount int) []PlacedItem {
	radius := math.Max(25, 5+float64(seatCount)*4)
	seatDist := radius + 20

	items := make([]PlacedItem, 0, seatCount+1)
	items = append(items, PlacedItem{
		ID:   tableID,
		Kind: KindTableRound,
		X:    cx - radius,
		Y:    cy - radius,
		W:    radius * 2,
		H:    radius * 2,
	})

	for i := 0; i < seatCount; i++ {
		angle := 2 * math.Pi / float64(seatCount) * float64(i)
		sx := cx + math.Cos(angle)*seatDist
		sy := cy + math.Sin(angle)*seatDist
		items = append(items, PlacedItem{
			ID:       fmt.Sprintf("%s-%d", tableID, i+1),
			Kind:     KindSeat,
			X:        sx - SeatSize/2,
			Y:        sy - SeatSize/2,
			W:        SeatSize,
			H:        SeatSize,
			ParentID: tableID,
			Rotation: normalizeDegrees(angle*180/math.Pi + 90),
		})
	}
	return items
}

// RectTableSet generates one rectangular (or square) table centered at
// (cx, cy) with seats split across its two long sides. Front-row seats keep
// rotation 0, back-row seats get 180 so both rows face the table. An odd
// seat count leaves the extra seat on the front row.
func RectTableSet(cx, cy float64, tableID string, seatCount int, square bool) []PlacedItem {
	sideSeats := (seatCount + 1) / 2

	var w, h float64
	if square {
		w = math.Max(50, float64(sideSeats)*SeatPitch+10)
		h = w
	} else {
		w = math.Max(70, float64(sideSeats)*SeatPitch+20)
		h = 60
	}

	tx := cx - w/2
	ty := cy - h/2

	items := make([]PlacedItem, 0, seatCount+1)
	items = append(items, PlacedItem{
		ID:   tableID,
		Kind: KindTableRect,
		X:    tx,
		Y:    ty,
		W:    w,
		H:    h,
	})

	spacing := w / float64(sideSeats+1)
	for i := 0; i < sideSeats; i++ {
		if i+1 > seatCount {
			break
		}
		items = append(items, PlacedItem{
			ID:       fmt.Sprintf("%s-%d", tableID, i+1),
			Kind:     KindSeat,
			X:        tx + spacing*float64(i+1) - SeatSize/2,
			Y:        ty - 32,
			W:        SeatSize,
			H:        SeatSize,
			ParentID: tableID,
		})
	}
	for i := 0; i < sideSeats; i++ {
		seatNum := sideSeats + i + 1
		if seatNum > seatCount {
			break
		}
		items = append(items, PlacedItem{
			ID:       fmt.Sprintf("%s-%d", tableID, seatNum),
			Kind:     KindSeat,
			X:        tx + spacing*float64(i+1) - SeatSize/2,
			Y:        ty + h + 2,
			W:        SeatSize,
			H:        SeatSize,
			ParentID: tableID,
			Rotation: 180,
		})
	}
	return items
}

// DecorBlock generates a single decor item centered at (cx, cy). The id is
// derived from the label; the editor reassigns it when placing interactively.
func DecorBlock(cx, cy float64, kind ItemKind, w, h float64, label string, rotation float64) PlacedItem {
	return PlacedItem{
		ID:       "D-" + label,
		Kind:     kind,
		X:        cx - w/2,
		Y:        cy - h/2,
		W:        w,
		H:        h,
		Label:    label,
		Rotation: normalizeDegrees(rotation),
	}
}
