package dto

// HintRequest is the payload for the hint endpoint. Error carries the error
// text the student observed.
type HintRequest struct {
	Assignment string `json:"assignment"`
	Code       string `json:"code" validate:"required"`
	Error      string `json:"error" validate:"required"`
}

// HintResponse is the pedagogical hint returned to the student.
type HintResponse struct {
	Broke   string `json:"broke"`
	Concept string `json:"concept"`
	Nudge   string `json:"nudge"`
}

// DetectErrorRequest is the payload for the error detection endpoint.
type DetectErrorRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
}

// DetectErrorResponse is the predicted outcome of running the code.
type DetectErrorResponse struct {
	HasError     bool   `json:"hasError"`
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}
