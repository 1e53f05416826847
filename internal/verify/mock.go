package verify

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-rod/rod"
	"github.com/gofiber/fiber/v2"
)

// apiPattern is the request URL glob answered by the in-process API.
const apiPattern = "*/api/*"

type apiResponse struct {
	status int
	header http.Header
	body   []byte
}

// forward runs one browser request through app without a network listener.
func forward(app *fiber.App, method, uri string, header http.Header, body string) (*apiResponse, error) {
	req := httptest.NewRequest(method, uri, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		return nil, fmt.Errorf("mock api %s %s: %w", method, uri, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mock api %s %s: %w", method, uri, err)
	}
	return &apiResponse{status: resp.StatusCode, header: resp.Header, body: b}, nil
}

type hijacker interface {
	HijackRequests() *rod.HijackRouter
}

// hijackAPI answers every API call made by target from app. The returned
// router must be stopped by the caller.
func hijackAPI(target hijacker, app *fiber.App) (*rod.HijackRouter, error) {
	router := target.HijackRequests()
	err := router.Add(apiPattern, "", func(h *rod.Hijack) {
		req := h.Request.Req()
		resp, err := forward(app, req.Method, req.URL.RequestURI(), req.Header, h.Request.Body())
		if err != nil {
			slog.Warn("mock api request failed", "url", req.URL.String(), "error", err)
			h.Response.Fail("Failed")
			return
		}

		payload := h.Response.Payload()
		payload.ResponseCode = resp.status
		for k, vs := range resp.header {
			for _, v := range vs {
				h.Response.SetHeader(k, v)
			}
		}
		h.Response.SetBody(resp.body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to hijack api requests: %w", err)
	}
	go router.Run()
	return router, nil
}
