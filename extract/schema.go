package extract

import "google.golang.org/genai"

// analysisSchema constrains the model's JSON answer to the Result shape.
// Only category and summary are required; every payload field is optional
// and defaulted later, at normalization.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"category": {
			Type:        genai.TypeString,
			Enum:        []string{"INVOICE", "SHELF", "SKETCH", "UNKNOWN"},
			Description: "The category of the uploaded image based on its content.",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A brief, one-sentence summary of what is detected in the image.",
		},
		"invoiceData": {
			Type:        genai.TypeObject,
			Description: "Extracted data if the image is an invoice.",
			Properties: map[string]*genai.Schema{
				"date":        {Type: genai.TypeString, Description: "Date found on the invoice (YYYY-MM-DD or DD/MM/YYYY)."},
				"totalAmount": {Type: genai.TypeNumber, Description: "Grand total amount of the invoice."},
				"gstNumber":   {Type: genai.TypeString, Description: "GSTIN or Tax ID number."},
				"vendorName":  {Type: genai.TypeString, Description: "Name of the vendor or supplier."},
				"taxAmount":   {Type: genai.TypeNumber, Description: "Total tax or GST amount."},
				"items": {
					Type:        genai.TypeArray,
					Description: "List of items extracted from the invoice table.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":      {Type: genai.TypeString, Description: "Name of the product/service."},
							"quantity":  {Type: genai.TypeNumber, Description: "Quantity purchased."},
							"unitPrice": {Type: genai.TypeNumber, Description: "Price per unit."},
							"total":     {Type: genai.TypeNumber, Description: "Total line item price."},
						},
					},
				},
			},
		},
		"shelfData": {
			Type:        genai.TypeObject,
			Description: "Extracted data if the image is a storage shelf or inventory.",
			Properties: map[string]*genai.Schema{
				"itemType":  {Type: genai.TypeString, Description: "The specific name of the item stored (e.g., 'Blue Denim Rolls', 'Cotton Spools')."},
				"itemCount": {Type: genai.TypeInteger, Description: "Approximate count of distinct items visible."},
				"dominantColors": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "List of dominant fabric/material colors.",
				},
				"colorCode":        {Type: genai.TypeString, Description: "Any visible color code, batch number, or hex code (e.g., 'Lot-402', '#123456')."},
				"quantityEstimate": {Type: genai.TypeString, Description: "A qualitative estimate of stock (e.g., 'Low', 'Full', 'Overflowing')."},
			},
		},
		"sketchData": {
			Type:        genai.TypeObject,
			Description: "Extracted data if the image is a fashion design sketch.",
			Properties: map[string]*genai.Schema{
				"designConcept":    {Type: genai.TypeString, Description: "Description of the style, cut, and pattern."},
				"fabricSuggestion": {Type: genai.TypeString, Description: "Suggested fabrics based on the drape and look."},
			},
		},
	},
	Required: []string{"category", "summary"},
}
