// Package extract is the boundary to the AI document extractor. It sends
// a photographed source document to Gemini and returns a tagged,
// partially-populated analysis result. Nothing here is trusted: every
// payload field is optional and all defaulting happens in this package,
// before the result reaches the bookkeeping logic.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the extraction model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Category classifies an analyzed image.
type Category string

const (
	CategoryInvoice Category = "INVOICE"
	CategoryShelf   Category = "SHELF"
	CategorySketch  Category = "SKETCH"
	CategoryUnknown Category = "UNKNOWN"
)

// InvoiceLine is one extracted invoice table row. All fields are optional.
type InvoiceLine struct {
	Name      *string  `json:"name"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
	Total     *float64 `json:"total"`
}

// InvoiceDetails is the extractor's best-effort guess at an invoice.
type InvoiceDetails struct {
	Date        *string       `json:"date"`
	TotalAmount *float64      `json:"totalAmount"`
	GSTNumber   *string       `json:"gstNumber"`
	VendorName  *string       `json:"vendorName"`
	Items       []InvoiceLine `json:"items"`
	TaxAmount   *float64      `json:"taxAmount"`
}

// ShelfDetails is the extractor's best-effort guess at a storage shelf photo.
type ShelfDetails struct {
	ItemType         *string  `json:"itemType"`
	ItemCount        *int     `json:"itemCount"`
	DominantColors   []string `json:"dominantColors"`
	ColorCode        *string  `json:"colorCode"`
	QuantityEstimate *string  `json:"quantityEstimate"`
}

// SketchDetails is the extractor's best-effort guess at a design sketch.
// Sketches are render-only: they never touch the bookkeeping state.
type SketchDetails struct {
	DesignConcept    *string `json:"designConcept"`
	FabricSuggestion *string `json:"fabricSuggestion"`
}

// Result is the tagged output of one analysis. At most one payload is
// populated, matching the category; even then its fields may be missing.
type Result struct {
	Category    Category        `json:"category"`
	Summary     string          `json:"summary"`
	InvoiceData *InvoiceDetails `json:"invoiceData"`
	ShelfData   *ShelfDetails   `json:"shelfData"`
	SketchData  *SketchDetails  `json:"sketchData"`
}

const analysisPrompt = `Analyze this image for a textile factory application.
Identify if it is an INVOICE, a SHELF, or a SKETCH.
For INVOICES: Extract vendor, date, total, GST, tax amount, and a LIST of all items (name, qty, price, total).
For SHELVES: Look for specific item names, counts, and color codes.
For SKETCHES: Describe design and fabric.`

// Extractor analyzes document images with Gemini.
type Extractor struct {
	client *genai.Client
	model  string
}

// New returns an Extractor using the given client and model. An empty
// model selects DefaultModel.
func New(client *genai.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Analyze sends the image to the extractor and decodes its structured
// guess. The call blocks until the model answers; a transport or decoding
// failure is returned as-is, with no state touched, so the user can retry.
func (e *Extractor) Analyze(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
			{Text: analysisPrompt},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema,
		Temperature:      genai.Ptr[float32](0.1),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model %q", e.model)
	}

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("could not parse analysis response: %w", err)
	}
	switch result.Category {
	case CategoryInvoice, CategoryShelf, CategorySketch, CategoryUnknown:
	default:
		result.Category = CategoryUnknown
	}
	return &result, nil
}
