package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// result is the response envelope every API endpoint wraps its payload in:
// {"code": 0, "message": "success", "data": ..., "success": true}.
// Failures keep HTTP 200; clients branch on the success flag.
type result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

func okResult(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, result{Code: 0, Message: "success", Data: data, Success: true})
}

func failResult(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, result{Code: -1, Message: message, Data: nil, Success: false})
}

// bindBody decodes a loose JSON object body. Endpoints accept schemaless
// bodies for frontend compatibility; missing or empty bodies are fine.
func bindBody(c echo.Context) map[string]any {
	body := map[string]any{}
	if c.Request().Body == nil {
		return body
	}
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil || len(raw) == 0 {
		return body
	}
	_ = json.Unmarshal(raw, &body)
	return body
}

func getStr(m map[string]any, key string) string {
	if v, ok := m[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getInt(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

func getBool(m map[string]any, key string, def bool) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key]; ok {
		if sub, ok := v.(map[string]any); ok {
			return sub
		}
	}
	return nil
}

// intQuery parses a query parameter, falling back to def on absence or junk.
func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// defaultStreamID resolves the fallback stream used by endpoints that accept
// an optional stream id: the first stream in the store, or "".
func (s *Server) defaultStreamID() string {
	streams := s.store.Streams()
	if len(streams) == 0 {
		return ""
	}
	return streams[0].ID
}
