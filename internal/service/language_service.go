package service

import (
	"strings"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/language"
)

// LanguageService exposes the supported language set and filename detection.
type LanguageService interface {
	List() dto.LanguageListResponse
	Detect(filename string) dto.DetectLanguageResponse
}

type languageService struct{}

// NewLanguageService constructs the language service.
func NewLanguageService() LanguageService {
	return languageService{}
}

func (languageService) List() dto.LanguageListResponse {
	return dto.LanguageListResponse{
		Languages:  language.Supported(),
		Extensions: language.Extensions(),
	}
}

func (languageService) Detect(filename string) dto.DetectLanguageResponse {
	return dto.DetectLanguageResponse{Language: language.FromFilename(strings.TrimSpace(filename))}
}
