// README: PDF rendering for saved itineraries.
package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"tripforge/internal/itinerary"
)

// PDF renders an itinerary as a printable A4 document.
func PDF(it itinerary.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 9, it.Title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Destination: %s", it.Destination))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Duration: %s", it.Duration))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total budget: %s", it.TotalBudget))
	pdf.Ln(10)

	if it.Overview != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, it.Overview, "", "L", false)
		pdf.Ln(4)
	}

	if len(it.AccommodationOptions) > 0 {
		sectionHeader(pdf, "Where to Stay")
		for _, acc := range it.AccommodationOptions {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 6, acc.Name, "", "L", false)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s - %s - %s", acc.Type, acc.Location, acc.PriceRange), "", "L", false)
			if acc.WhyRecommended != "" {
				pdf.MultiCell(0, 5, acc.WhyRecommended, "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	for _, day := range it.Days {
		sectionHeader(pdf, fmt.Sprintf("Day %d: %s", day.Day, day.Title))

		for _, act := range day.Activities {
			pdf.SetFont("Arial", "B", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s", act.TimeOfDay, act.Activity), "", "L", false)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s - %s, %s", act.Location, act.EstimatedCost, act.Duration), "", "L", false)
			if act.Description != "" {
				pdf.MultiCell(0, 5, act.Description, "", "L", false)
			}
			pdf.Ln(2)
		}

		for _, meal := range day.Meals {
			pdf.SetFont("Arial", "B", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", meal.Type, meal.Restaurant), "", "L", false)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s - %s, %s", meal.Cuisine, meal.Location, meal.EstimatedCost), "", "L", false)
			pdf.Ln(2)
		}

		if day.DailyBudget != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 6, fmt.Sprintf("Daily budget: %s", day.DailyBudget))
			pdf.Ln(8)
		}
	}

	if len(it.TravelTips) > 0 {
		sectionHeader(pdf, "Travel Tips")
		bulletList(pdf, it.TravelTips)
	}
	if len(it.PackingList) > 0 {
		sectionHeader(pdf, "Packing List")
		bulletList(pdf, it.PackingList)
	}
	if len(it.LocalCuisine) > 0 {
		sectionHeader(pdf, "Local Cuisine")
		bulletList(pdf, it.LocalCuisine)
	}

	sectionHeader(pdf, "Getting There & Around")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, it.Transportation.GettingThere, "", "L", false)
	pdf.MultiCell(0, 5, it.Transportation.GettingAround, "", "L", false)
	pdf.MultiCell(0, 5, it.Transportation.Costs, "", "L", false)

	if it.EmergencyInfo != (itinerary.EmergencyInfo{}) {
		sectionHeader(pdf, "Emergency")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("Police: %s  Ambulance: %s", it.EmergencyInfo.Police, it.EmergencyInfo.Ambulance), "", "L", false)
		if it.EmergencyInfo.Embassy != "" {
			pdf.MultiCell(0, 5, fmt.Sprintf("Embassy: %s", it.EmergencyInfo.Embassy), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func bulletList(pdf *gofpdf.Fpdf, items []string) {
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}
