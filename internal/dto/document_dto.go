package dto

// ExtractPDFResponse carries the text extracted from an uploaded PDF.
type ExtractPDFResponse struct {
	Text string `json:"text"`
}

// LanguageListResponse lists supported languages and the import extension table.
type LanguageListResponse struct {
	Languages  []string          `json:"languages"`
	Extensions map[string]string `json:"extensions"`
}

// DetectLanguageRequest asks for the language of an imported file.
type DetectLanguageRequest struct {
	Filename string `json:"filename" validate:"required"`
}

// DetectLanguageResponse is the language derived from a file name.
type DetectLanguageResponse struct {
	Language string `json:"language"`
}
