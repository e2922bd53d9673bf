package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/handler"
	"github.com/noah-isme/autota-go-api/internal/service"
)

func newLanguageApp() *fiber.App {
	app := fiber.New()
	handler.NewLanguageHandler(service.NewLanguageService()).Register(app.Group("/api/languages"))
	return app
}

func TestLanguageHandler_List(t *testing.T) {
	resp, err := newLanguageApp().Test(httptest.NewRequest(http.MethodGet, "/api/languages", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.LanguageListResponse
	decodeResponse(t, resp, &body)
	require.Contains(t, body.Languages, "python")
	require.Equal(t, "python", body.Extensions[".py"])
}

func TestLanguageHandler_Detect(t *testing.T) {
	app := newLanguageApp()

	resp := postJSON(t, app, "/api/languages/detect", dto.DetectLanguageRequest{Filename: "Main.JAVA"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.DetectLanguageResponse
	decodeResponse(t, resp, &body)
	require.Equal(t, "java", body.Language)

	resp = postJSON(t, app, "/api/languages/detect", dto.DetectLanguageRequest{Filename: "README"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &body)
	require.Equal(t, "plaintext", body.Language)

	resp = postJSON(t, app, "/api/languages/detect", map[string]string{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
